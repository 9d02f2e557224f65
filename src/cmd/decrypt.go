package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"rsalab/src/operations"
	"rsalab/src/utils"
)

// DecryptCommand handles the decrypt subcommand.
func DecryptCommand(args []string) error {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)

	var (
		inputFile  = fs.String("input", "", "Encrypted file to decrypt (required)")
		privKey    = fs.String("privkey", "key.priv", "Sealed private key file")
		passphrase = fs.String("passphrase", "", "Passphrase protecting the private key (required)")
		outputFile = fs.String("output", "", "Output file (default: removes .enc extension)")
		useFast    = fs.Bool("fast", true, "Use the library fast_exp implementation instead of the manual one")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s decrypt --input FILE --passphrase PASS [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDecrypt a file with the matching RSA private key\n\n")
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
	if *passphrase == "" {
		fs.Usage()
		return fmt.Errorf("--passphrase is required")
	}

	if *outputFile == "" {
		if strings.HasSuffix(*inputFile, ".enc") {
			*outputFile = strings.TrimSuffix(*inputFile, ".enc")
		} else {
			*outputFile = *inputFile + ".dec"
		}
	}

	passBytes, err := utils.ParseKeyInput(*passphrase)
	if err != nil {
		return fmt.Errorf("reading passphrase: %v", err)
	}

	result, err := operations.DecryptFile(operations.DecryptOptions{
		InputFile:      *inputFile,
		OutputFile:     *outputFile,
		PrivateKeyFile: *privKey,
		Passphrase:     string(passBytes),
		UseFast:        *useFast,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Decryption complete!\n")
	fmt.Printf("Input file:  %s\n", result.InputFile)
	fmt.Printf("Output file: %s (%d bytes)\n", result.OutputFile, result.PlaintextSize)

	return nil
}
