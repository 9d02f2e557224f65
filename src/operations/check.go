package operations

import (
	"fmt"

	"rsalab/src/utils"
)

// CheckOptions contains all the parameters needed to inspect a public
// key file.
type CheckOptions struct {
	PublicKeyFile string
}

// CheckResult contains the metadata extracted from a public key file.
type CheckResult struct {
	PublicKeyFile string
	ModulusBits   int
	BlockSizePub  int
	Radix         uint32
	SecurityLevel string
	FileSize      int64
}

// CheckFile inspects a public key file and extracts its metadata.
func CheckFile(opts CheckOptions) (*CheckResult, error) {
	pub, err := LoadPublicKey(opts.PublicKeyFile)
	if err != nil {
		return nil, err
	}

	info, err := utils.GetFileInfo(opts.PublicKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %v", err)
	}

	return &CheckResult{
		PublicKeyFile: opts.PublicKeyFile,
		ModulusBits:   pub.N.BitLen(),
		BlockSizePub:  pub.BlockSizePub,
		Radix:         pub.Radix,
		SecurityLevel: determineSecurityLevel(pub.N.BitLen()),
		FileSize:      info.Size(),
	}, nil
}

// determineSecurityLevel determines security level based on RSA
// modulus size.
func determineSecurityLevel(bitLength int) string {
	switch {
	case bitLength >= 2048:
		return "High (RSA-2048+)"
	case bitLength >= 1024:
		return "Medium (RSA-1024+)"
	default:
		return "Low (RSA-<1024)"
	}
}
