package cmd

import (
	"flag"
	"fmt"
	"os"

	"rsalab/src/operations"
)

// CheckCommand handles the check subcommand.
func CheckCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)

	var (
		pubKey = fs.String("pubkey", "", "Public key file to inspect (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s check --pubkey FILE\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nInspect a public key file and display its metadata\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pubKey == "" {
		fs.Usage()
		return fmt.Errorf("--pubkey is required")
	}

	result, err := operations.CheckFile(operations.CheckOptions{PublicKeyFile: *pubKey})
	if err != nil {
		return err
	}

	printCheckResult(result)
	return nil
}

func printCheckResult(result *operations.CheckResult) {
	fmt.Printf("=== PUBLIC KEY METADATA ===\n")
	fmt.Printf("File:           %s (%d bytes)\n", result.PublicKeyFile, result.FileSize)
	fmt.Printf("Modulus:        %d bits\n", result.ModulusBits)
	fmt.Printf("Block size:     %d\n", result.BlockSizePub)
	fmt.Printf("Radix:          %d\n", result.Radix)
	fmt.Printf("Security level: %s\n", result.SecurityLevel)
}
