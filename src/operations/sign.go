package operations

import (
	"fmt"

	"rsalab/src/numbertheory"
	"rsalab/src/rsa"
	"rsalab/src/utils"
)

// SignOptions contains all the parameters needed to sign a file.
type SignOptions struct {
	InputFile      string
	SignatureFile  string
	PrivateKeyFile string
	Passphrase     string
	UseFast        bool
}

// SignResult contains the results of the signing operation.
type SignResult struct {
	InputFile     string
	SignatureFile string
}

// SignFile signs the contents of opts.InputFile with the private key
// sealed in opts.PrivateKeyFile, writing the signature to
// opts.SignatureFile.
func SignFile(opts SignOptions) (*SignResult, error) {
	priv, err := LoadPrivateKey(opts.PrivateKeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}

	message, err := utils.ReadFile(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %v", err)
	}

	speed := numbertheory.Slow
	if opts.UseFast {
		speed = numbertheory.Fast
	}
	nt := numbertheory.New(speed)

	signature, err := rsa.Sign(string(message), priv, nt)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %v", err)
	}

	if err := utils.WriteFile(opts.SignatureFile, []byte(signature)); err != nil {
		return nil, fmt.Errorf("failed to write signature file: %v", err)
	}

	return &SignResult{InputFile: opts.InputFile, SignatureFile: opts.SignatureFile}, nil
}

// VerifyOptions contains all the parameters needed to verify a
// signature.
type VerifyOptions struct {
	InputFile     string
	SignatureFile string
	PublicKeyFile string
	UseFast       bool
}

// VerifyResult contains the results of the verification operation.
type VerifyResult struct {
	InputFile string
	Valid     bool
}

// VerifyFile checks whether the signature in opts.SignatureFile is a
// valid signature of opts.InputFile under the public key in
// opts.PublicKeyFile.
func VerifyFile(opts VerifyOptions) (*VerifyResult, error) {
	pub, err := LoadPublicKey(opts.PublicKeyFile)
	if err != nil {
		return nil, err
	}

	message, err := utils.ReadFile(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %v", err)
	}
	signature, err := utils.ReadFile(opts.SignatureFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read signature file: %v", err)
	}

	speed := numbertheory.Slow
	if opts.UseFast {
		speed = numbertheory.Fast
	}
	nt := numbertheory.New(speed)

	valid, err := rsa.Verify(string(message), string(signature), pub, nt)
	if err != nil {
		return nil, fmt.Errorf("failed to verify: %v", err)
	}

	return &VerifyResult{InputFile: opts.InputFile, Valid: valid}, nil
}
