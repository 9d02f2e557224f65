package operations

import (
	"fmt"

	"rsalab/src/keystore"
	"rsalab/src/numbertheory"
	"rsalab/src/rsa"
	"rsalab/src/utils"
)

// KeyGenOptions contains all the parameters needed to generate an RSA
// keypair.
type KeyGenOptions struct {
	ModulusBits       uint
	MillerRabinRounds int
	Seed              uint32
	Radix             uint32
	UseFast           bool
	PublicKeyFile     string
	PrivateKeyFile    string
	Passphrase        string
}

// KeyGenResult contains the results of the keypair generation operation.
type KeyGenResult struct {
	PublicKeyFile  string
	PrivateKeyFile string
	ModulusBits    int
	BlockSizePub   int
	BlockSizePriv  int
}

// GenerateKeyPair generates an RSA keypair per opts, writes the public
// key in cleartext and the private key sealed under opts.Passphrase.
func GenerateKeyPair(opts KeyGenOptions) (*KeyGenResult, error) {
	speed := numbertheory.Slow
	if opts.UseFast {
		speed = numbertheory.Fast
	}
	nt := numbertheory.New(speed)

	pub, priv, err := rsa.GenerateKeypair(opts.ModulusBits, opts.MillerRabinRounds, opts.Seed, opts.Radix, nt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %v", err)
	}

	if err := utils.WriteFile(opts.PublicKeyFile, []byte(rsa.EncodePublicKey(pub)+"\n")); err != nil {
		return nil, fmt.Errorf("failed to write public key file: %v", err)
	}

	env, err := keystore.Seal(priv, []byte(opts.Passphrase))
	if err != nil {
		return nil, fmt.Errorf("failed to seal private key: %v", err)
	}
	if err := utils.WriteFile(opts.PrivateKeyFile, keystore.Marshal(env)); err != nil {
		return nil, fmt.Errorf("failed to write private key file: %v", err)
	}

	return &KeyGenResult{
		PublicKeyFile:  opts.PublicKeyFile,
		PrivateKeyFile: opts.PrivateKeyFile,
		ModulusBits:    pub.N.BitLen(),
		BlockSizePub:   pub.BlockSizePub,
		BlockSizePriv:  priv.BlockSizePriv,
	}, nil
}

// LoadPublicKey reads and parses a public key file written by
// GenerateKeyPair.
func LoadPublicKey(path string) (rsa.PublicKey, error) {
	data, err := utils.ReadFile(path)
	if err != nil {
		return rsa.PublicKey{}, fmt.Errorf("failed to read public key file: %v", err)
	}
	pub, err := rsa.DecodePublicKey(string(data))
	if err != nil {
		return rsa.PublicKey{}, fmt.Errorf("failed to parse public key file: %v", err)
	}
	return pub, nil
}

// LoadPrivateKey reads, parses, and opens a sealed private key file
// written by GenerateKeyPair.
func LoadPrivateKey(path, passphrase string) (rsa.PrivateKey, error) {
	data, err := utils.ReadFile(path)
	if err != nil {
		return rsa.PrivateKey{}, fmt.Errorf("failed to read private key file: %v", err)
	}
	env, err := keystore.Unmarshal(data)
	if err != nil {
		return rsa.PrivateKey{}, fmt.Errorf("failed to parse private key file: %v", err)
	}
	priv, err := keystore.Open(env, []byte(passphrase))
	if err != nil {
		return rsa.PrivateKey{}, err
	}
	return priv, nil
}
