package cmd

import (
	"flag"
	"fmt"
	"os"

	"rsalab/src/operations"
	"rsalab/src/utils"
)

// KeyGenCommand handles the keygen subcommand.
func KeyGenCommand(args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)

	var (
		bits       = fs.Uint("bits", 1024, "RSA modulus bit width")
		rounds     = fs.Int("rounds", 20, "Miller-Rabin rounds per primality check")
		seed       = fs.Uint("seed", 0, "PRNG seed (required)")
		radix      = fs.Uint("radix", 55296, "Codec radix (number of representable code points)")
		useFast    = fs.Bool("fast", true, "Use the library fast_exp implementation instead of the manual one")
		pubOut     = fs.String("pub-out", "key.pub", "Output path for the public key")
		privOut    = fs.String("priv-out", "key.priv", "Output path for the sealed private key")
		passphrase = fs.String("passphrase", "", "Passphrase protecting the private key file (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s keygen --seed N --passphrase PASS [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nGenerate an RSA keypair\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	seedSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if !seedSet {
		fs.Usage()
		return fmt.Errorf("--seed is required")
	}
	if *passphrase == "" {
		fs.Usage()
		return fmt.Errorf("--passphrase is required")
	}

	passBytes, err := utils.ParseKeyInput(*passphrase)
	if err != nil {
		return fmt.Errorf("reading passphrase: %v", err)
	}

	opts := operations.KeyGenOptions{
		ModulusBits:       *bits,
		MillerRabinRounds: *rounds,
		Seed:              uint32(*seed),
		Radix:             uint32(*radix),
		UseFast:           *useFast,
		PublicKeyFile:     *pubOut,
		PrivateKeyFile:    *privOut,
		Passphrase:        string(passBytes),
	}

	result, err := operations.GenerateKeyPair(opts)
	if err != nil {
		return err
	}

	fmt.Printf("Keypair generated!\n")
	fmt.Printf("Public key:  %s\n", result.PublicKeyFile)
	fmt.Printf("Private key: %s (sealed)\n", result.PrivateKeyFile)
	fmt.Printf("Modulus:     %d bits\n", result.ModulusBits)
	fmt.Printf("Block sizes: public=%d private=%d\n", result.BlockSizePub, result.BlockSizePriv)

	return nil
}
