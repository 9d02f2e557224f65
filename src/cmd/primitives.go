package cmd

import (
	"flag"
	"fmt"
	"os"

	"rsalab/src/surface"
)

// PrimitivesCommand handles the primitives subcommand, exposing the raw
// number-theory operations through surface.Dispatcher for scripting and
// debugging without a keypair in hand.
func PrimitivesCommand(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: %s primitives <exp|egcd|inverse|shanks|mul> [options]", os.Args[0])
	}

	op := args[0]
	rest := args[1:]
	dispatcher := surface.Dispatcher{}

	switch op {
	case "exp":
		fs := flag.NewFlagSet("primitives exp", flag.ExitOnError)
		base := fs.String("base", "", "base (required)")
		exp := fs.String("exp", "", "exponent (required)")
		mod := fs.String("mod", "", "modulus (required)")
		useFast := fs.Bool("fast", true, "use the library fast_exp implementation")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		resp, err := dispatcher.Exponentiation(surface.ExponentiationRequest{Base: *base, Exp: *exp, Mod: *mod, UseFast: *useFast})
		if err != nil {
			return err
		}
		fmt.Println(resp.Value)

	case "egcd":
		fs := flag.NewFlagSet("primitives egcd", flag.ExitOnError)
		a := fs.String("a", "", "a (required)")
		b := fs.String("b", "", "b (required)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		resp, err := dispatcher.ExtendedEuclid(surface.ExtendedEuclidRequest{A: *a, B: *b})
		if err != nil {
			return err
		}
		fmt.Printf("g=%s x=%s y=%s\n", resp.G, resp.X, resp.Y)

	case "inverse":
		fs := flag.NewFlagSet("primitives inverse", flag.ExitOnError)
		a := fs.String("a", "", "a (required)")
		n := fs.String("n", "", "modulus (required)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		resp, err := dispatcher.ModularInverse(surface.ModularInverseRequest{A: *a, N: *n})
		if err != nil {
			return err
		}
		fmt.Println(resp.Value)

	case "shanks":
		fs := flag.NewFlagSet("primitives shanks", flag.ExitOnError)
		base := fs.String("base", "", "base (required)")
		element := fs.String("element", "", "target element (required)")
		mod := fs.String("mod", "", "modulus (required)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		resp, err := dispatcher.Shanks(surface.ShanksRequest{Base: *base, Element: *element, Mod: *mod})
		if err != nil {
			return err
		}
		fmt.Println(resp.Value)

	case "mul":
		fs := flag.NewFlagSet("primitives mul", flag.ExitOnError)
		a := fs.String("a", "", "a (required)")
		b := fs.String("b", "", "b (required)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		resp, err := dispatcher.Multiplication(surface.MultiplicationRequest{A: *a, B: *b})
		if err != nil {
			return err
		}
		fmt.Println(resp.Value)

	default:
		return fmt.Errorf("unknown primitives operation %q", op)
	}

	return nil
}
