package operations

import (
	"fmt"

	"rsalab/src/numbertheory"
	"rsalab/src/rsa"
	"rsalab/src/utils"
)

// DecryptOptions contains all the parameters needed for decryption.
type DecryptOptions struct {
	InputFile      string
	OutputFile     string
	PrivateKeyFile string
	Passphrase     string
	UseFast        bool
}

// DecryptResult contains the results of the decryption operation.
type DecryptResult struct {
	InputFile     string
	OutputFile    string
	PlaintextSize int
}

// DecryptFile decrypts the ciphertext in opts.InputFile using the
// private key sealed in opts.PrivateKeyFile, writing plaintext to
// opts.OutputFile.
func DecryptFile(opts DecryptOptions) (*DecryptResult, error) {
	priv, err := LoadPrivateKey(opts.PrivateKeyFile, opts.Passphrase)
	if err != nil {
		return nil, err
	}

	ciphertext, err := utils.ReadFile(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %v", err)
	}

	speed := numbertheory.Slow
	if opts.UseFast {
		speed = numbertheory.Fast
	}
	nt := numbertheory.New(speed)

	plaintext, err := rsa.Decrypt(string(ciphertext), priv, nt)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %v", err)
	}

	if err := utils.WriteFile(opts.OutputFile, []byte(plaintext)); err != nil {
		return nil, fmt.Errorf("failed to write plaintext file: %v", err)
	}

	return &DecryptResult{
		InputFile:     opts.InputFile,
		OutputFile:    opts.OutputFile,
		PlaintextSize: len(plaintext),
	}, nil
}
