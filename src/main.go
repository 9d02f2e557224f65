package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"rsalab/src/cmd"
	"rsalab/src/telemetry"
)

func main() {
	rawArgs := os.Args[1:]

	verbose := false
	args := rawArgs[:0:0]
	for _, a := range rawArgs {
		if a == "--verbose" || a == "-v" {
			verbose = true
			continue
		}
		args = append(args, a)
	}

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to initialize verbose logger: %v\n", err)
			os.Exit(1)
		}
		telemetry.SetLogger(logger)
	}

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	var err error
	switch command {
	case "keygen":
		err = cmd.KeyGenCommand(args)
	case "encrypt":
		err = cmd.EncryptCommand(args)
	case "decrypt":
		err = cmd.DecryptCommand(args)
	case "sign":
		err = cmd.SignCommand(args)
	case "verify":
		err = cmd.VerifyCommand(args)
	case "check":
		err = cmd.CheckCommand(args)
	case "benchmark":
		err = cmd.BenchmarkCommand(args)
	case "primitives":
		err = cmd.PrimitivesCommand(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("rsalab - arbitrary-precision RSA and number theory toolkit\n\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("  %s [--verbose] <command> [options]\n\n", os.Args[0])
	fmt.Printf("Global options:\n")
	fmt.Printf("  --verbose, -v  Enable development-mode logging for the underlying primitives\n\n")
	fmt.Printf("Commands:\n")
	fmt.Printf("  keygen      Generate an RSA keypair\n")
	fmt.Printf("  encrypt     Encrypt a file under a public key\n")
	fmt.Printf("  decrypt     Decrypt a file with a sealed private key\n")
	fmt.Printf("  sign        Sign a file with a sealed private key\n")
	fmt.Printf("  verify      Verify a file's signature against a public key\n")
	fmt.Printf("  check       Inspect a public key file and show metadata\n")
	fmt.Printf("  benchmark   Benchmark modular exponentiation performance\n")
	fmt.Printf("  primitives  Run a raw number-theory primitive (exp, egcd, inverse, shanks, mul)\n")
	fmt.Printf("  help        Show this help message\n\n")
	fmt.Printf("Examples:\n")
	fmt.Printf("  %s keygen --seed 1234 --passphrase \"correct horse\"\n", os.Args[0])
	fmt.Printf("  %s encrypt --input message.txt\n", os.Args[0])
	fmt.Printf("  %s decrypt --input message.txt.enc --passphrase \"correct horse\"\n", os.Args[0])
	fmt.Printf("  %s sign --input message.txt --passphrase \"correct horse\"\n", os.Args[0])
	fmt.Printf("  %s verify --input message.txt\n", os.Args[0])
	fmt.Printf("  %s check --pubkey key.pub\n", os.Args[0])
	fmt.Printf("  %s benchmark\n", os.Args[0])
	fmt.Printf("\nFor detailed help on a command, use:\n")
	fmt.Printf("  %s <command> --help\n", os.Args[0])
}
