package cmd

import (
	"flag"
	"fmt"
	"os"

	"rsalab/src/operations"
	"rsalab/src/utils"
)

// SignCommand handles the sign subcommand.
func SignCommand(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)

	var (
		inputFile  = fs.String("input", "", "File to sign (required)")
		privKey    = fs.String("privkey", "key.priv", "Sealed private key file")
		passphrase = fs.String("passphrase", "", "Passphrase protecting the private key (required)")
		useFast    = fs.Bool("fast", true, "Use the library fast_exp implementation instead of the manual one")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sign --input FILE --passphrase PASS [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nSign a file with an RSA private key\n\n")
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

	passBytes, err := utils.ParseKeyInput(*passphrase)
	if err != nil {
		return fmt.Errorf("reading passphrase: %v", err)
	}

	outputFile := *inputFile + ".sig"
	result, err := operations.SignFile(operations.SignOptions{
		InputFile:      *inputFile,
		SignatureFile:  outputFile,
		PrivateKeyFile: *privKey,
		Passphrase:     string(passBytes),
		UseFast:        *useFast,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Signing complete!\n")
	fmt.Printf("Input file:     %s\n", result.InputFile)
	fmt.Printf("Signature file: %s\n", result.SignatureFile)

	return nil
}

// VerifyCommand handles the verify subcommand.
func VerifyCommand(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)

	var (
		inputFile = fs.String("input", "", "File whose signature should be checked (required)")
		sigFile   = fs.String("sig", "", "Signature file (default: input file + .sig)")
		pubKey    = fs.String("pubkey", "key.pub", "Public key file")
		useFast   = fs.Bool("fast", true, "Use the library fast_exp implementation instead of the manual one")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s verify --input FILE [--sig FILE] [--pubkey FILE]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nVerify a file's signature against an RSA public key\n\n")
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
	if *sigFile == "" {
		*sigFile = *inputFile + ".sig"
	}

	result, err := operations.VerifyFile(operations.VerifyOptions{
		InputFile:     *inputFile,
		SignatureFile: *sigFile,
		PublicKeyFile: *pubKey,
		UseFast:       *useFast,
	})
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Printf("Signature is VALID for %s\n", result.InputFile)
	} else {
		fmt.Printf("Signature is INVALID for %s\n", result.InputFile)
		os.Exit(1)
	}

	return nil
}
