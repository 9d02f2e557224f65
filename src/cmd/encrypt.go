package cmd

import (
	"flag"
	"fmt"
	"os"

	"rsalab/src/operations"
)

// EncryptCommand handles the encrypt subcommand.
func EncryptCommand(args []string) error {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)

	var (
		inputFile = fs.String("input", "", "Input file to encrypt (required)")
		pubKey    = fs.String("pubkey", "key.pub", "Public key file")
		useFast   = fs.Bool("fast", true, "Use the library fast_exp implementation instead of the manual one")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s encrypt --input FILE [--pubkey FILE]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEncrypt a file under an RSA public key\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inputFile == "" {
		fs.Usage()
		return fmt.Errorf("--input is required")
	}

	outputFile := *inputFile + ".enc"
	result, err := operations.EncryptFile(operations.EncryptOptions{
		InputFile:     *inputFile,
		OutputFile:    outputFile,
		PublicKeyFile: *pubKey,
		UseFast:       *useFast,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Encryption complete!\n")
	fmt.Printf("Input file:  %s (%d bytes)\n", result.InputFile, result.PlaintextSize)
	fmt.Printf("Output file: %s (%d g-adic digits)\n", result.OutputFile, result.CiphertextLen)

	return nil
}
