package operations

import (
	"fmt"

	"rsalab/src/numbertheory"
	"rsalab/src/rsa"
	"rsalab/src/utils"
)

// EncryptOptions contains all the parameters needed for encryption.
type EncryptOptions struct {
	InputFile     string
	OutputFile    string
	PublicKeyFile string
	UseFast       bool
}

// EncryptResult contains the results of the encryption operation.
type EncryptResult struct {
	InputFile     string
	OutputFile    string
	PlaintextSize int
	CiphertextLen int
}

// EncryptFile encrypts the contents of opts.InputFile under the public
// key in opts.PublicKeyFile, writing the g-adic ciphertext string to
// opts.OutputFile.
func EncryptFile(opts EncryptOptions) (*EncryptResult, error) {
	pub, err := LoadPublicKey(opts.PublicKeyFile)
	if err != nil {
		return nil, err
	}

	plaintext, err := utils.ReadFile(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %v", err)
	}

	speed := numbertheory.Slow
	if opts.UseFast {
		speed = numbertheory.Fast
	}
	nt := numbertheory.New(speed)

	ciphertext, err := rsa.Encrypt(string(plaintext), pub, nt)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %v", err)
	}

	if err := utils.WriteFile(opts.OutputFile, []byte(ciphertext)); err != nil {
		return nil, fmt.Errorf("failed to write ciphertext file: %v", err)
	}

	return &EncryptResult{
		InputFile:     opts.InputFile,
		OutputFile:    opts.OutputFile,
		PlaintextSize: len(plaintext),
		CiphertextLen: len([]rune(ciphertext)),
	}, nil
}
