package integration

import (
	"testing"

	"rsalab/src/operations"
	"rsalab/src/utils"
)

// Core keypair / encrypt / decrypt / sign / verify workflow tests.

func TestKeyPairEncryptDecryptWorkflow(t *testing.T) {
	fixtures := []struct {
		Name string
		Data string
	}{
		{"short_phrase", "Das ist eine Testnachricht"},
		{"question", "what time is the meeting tomorrow"},
		{"unicode", "Grüße aus München"},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.Name, func(t *testing.T) {
			pubFile := tempOutputPath(t, "key.pub")
			privFile := tempOutputPath(t, "key.priv")

			keygenResult, err := operations.GenerateKeyPair(operations.KeyGenOptions{
				ModulusBits:       128,
				MillerRabinRounds: 20,
				Seed:              7,
				Radix:             testRadix,
				UseFast:           true,
				PublicKeyFile:     pubFile,
				PrivateKeyFile:    privFile,
				Passphrase:        "correct horse battery staple",
			})
			if err != nil {
				t.Fatalf("GenerateKeyPair failed: %v", err)
			}
			if keygenResult.BlockSizePriv != keygenResult.BlockSizePub+1 {
				t.Errorf("BlockSizePriv = %d, want BlockSizePub+1 = %d", keygenResult.BlockSizePriv, keygenResult.BlockSizePub+1)
			}
			assertFileExists(t, pubFile)
			assertFileExists(t, privFile)

			inputFile := createTempFile(t, "input.txt", []byte(fixture.Data))
			ciphertextFile := tempOutputPath(t, "input.txt.enc")

			encryptResult, err := operations.EncryptFile(operations.EncryptOptions{
				InputFile:     inputFile,
				OutputFile:    ciphertextFile,
				PublicKeyFile: pubFile,
				UseFast:       true,
			})
			if err != nil {
				t.Fatalf("EncryptFile failed: %v", err)
			}
			if encryptResult.PlaintextSize != len(fixture.Data) {
				t.Errorf("PlaintextSize = %d, want %d", encryptResult.PlaintextSize, len(fixture.Data))
			}
			assertFileExists(t, ciphertextFile)

			plaintextFile := tempOutputPath(t, "input.txt.dec")
			decryptResult, err := operations.DecryptFile(operations.DecryptOptions{
				InputFile:      ciphertextFile,
				OutputFile:     plaintextFile,
				PrivateKeyFile: privFile,
				Passphrase:     "correct horse battery staple",
				UseFast:        true,
			})
			if err != nil {
				t.Fatalf("DecryptFile failed: %v", err)
			}

			decrypted, err := utils.ReadFile(decryptResult.OutputFile)
			if err != nil {
				t.Fatalf("failed to read decrypted file: %v", err)
			}
			assertBytesEqual(t, []byte(fixture.Data), decrypted, "round trip")
		})
	}
}

func TestSignVerifyWorkflow(t *testing.T) {
	pubFile := tempOutputPath(t, "key.pub")
	privFile := tempOutputPath(t, "key.priv")

	_, err := operations.GenerateKeyPair(operations.KeyGenOptions{
		ModulusBits:       128,
		MillerRabinRounds: 20,
		Seed:              13,
		Radix:             testRadix,
		UseFast:           true,
		PublicKeyFile:     pubFile,
		PrivateKeyFile:    privFile,
		Passphrase:        "signing passphrase",
	})
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	messageFile := createTempFile(t, "message.txt", []byte("transfer 100 coins to alice"))
	sigFile := tempOutputPath(t, "message.sig")

	if _, err := operations.SignFile(operations.SignOptions{
		InputFile:      messageFile,
		SignatureFile:  sigFile,
		PrivateKeyFile: privFile,
		Passphrase:     "signing passphrase",
		UseFast:        true,
	}); err != nil {
		t.Fatalf("SignFile failed: %v", err)
	}
	assertFileExists(t, sigFile)

	verifyResult, err := operations.VerifyFile(operations.VerifyOptions{
		InputFile:     messageFile,
		SignatureFile: sigFile,
		PublicKeyFile: pubFile,
		UseFast:       true,
	})
	if err != nil {
		t.Fatalf("VerifyFile failed: %v", err)
	}
	if !verifyResult.Valid {
		t.Fatal("expected signature to be valid")
	}

	tamperedFile := createTempFile(t, "tampered.txt", []byte("transfer 999 coins to alice"))
	tamperedResult, err := operations.VerifyFile(operations.VerifyOptions{
		InputFile:     tamperedFile,
		SignatureFile: sigFile,
		PublicKeyFile: pubFile,
		UseFast:       true,
	})
	if err != nil {
		t.Fatalf("VerifyFile on tampered message failed: %v", err)
	}
	if tamperedResult.Valid {
		t.Fatal("expected signature to be invalid for a tampered message")
	}
}

func TestWrongPassphraseRejected(t *testing.T) {
	pubFile := tempOutputPath(t, "key.pub")
	privFile := tempOutputPath(t, "key.priv")

	_, err := operations.GenerateKeyPair(operations.KeyGenOptions{
		ModulusBits:       96,
		MillerRabinRounds: 20,
		Seed:              21,
		Radix:             testRadix,
		UseFast:           true,
		PublicKeyFile:     pubFile,
		PrivateKeyFile:    privFile,
		Passphrase:        "right passphrase",
	})
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	if _, err := operations.LoadPrivateKey(privFile, "wrong passphrase"); err == nil {
		t.Fatal("expected LoadPrivateKey to fail with the wrong passphrase")
	}
}

func TestCheckReportsPublicKeyMetadata(t *testing.T) {
	pubFile := tempOutputPath(t, "key.pub")
	privFile := tempOutputPath(t, "key.priv")

	keygenResult, err := operations.GenerateKeyPair(operations.KeyGenOptions{
		ModulusBits:       128,
		MillerRabinRounds: 20,
		Seed:              33,
		Radix:             testRadix,
		UseFast:           true,
		PublicKeyFile:     pubFile,
		PrivateKeyFile:    privFile,
		Passphrase:        "whatever",
	})
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	checkResult, err := operations.CheckFile(operations.CheckOptions{PublicKeyFile: pubFile})
	if err != nil {
		t.Fatalf("CheckFile failed: %v", err)
	}
	if checkResult.ModulusBits != keygenResult.ModulusBits {
		t.Errorf("ModulusBits = %d, want %d", checkResult.ModulusBits, keygenResult.ModulusBits)
	}
	if checkResult.Radix != testRadix {
		t.Errorf("Radix = %d, want %d", checkResult.Radix, testRadix)
	}
}
