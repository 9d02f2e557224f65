package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"rsalab/src/operations"
	"rsalab/src/utils"
)

// BenchmarkCommand handles the benchmark subcommand.
func BenchmarkCommand(args []string) error {
	fs := flag.NewFlagSet("benchmark", flag.ExitOnError)

	var (
		duration    = fs.Duration("duration", 2*time.Second, "How long to run each benchmark sample")
		samples     = fs.Int("samples", 3, "Number of benchmark samples to take")
		modulusBits = fs.Int("bits", 2048, "Bit width of the fixed modulus used for sampling")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s benchmark [--duration DURATION] [--samples COUNT] [--bits N]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nBenchmark modular exponentiation performance for both fast_exp variants\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Printf("Benchmarking modular exponentiation (%d-bit modulus)...\n", *modulusBits)
	fmt.Printf("Duration per sample: %v, samples: %d\n\n", *duration, *samples)

	pb := utils.NewProgressBar(uint64(*samples * 2))
	result, err := operations.RunBenchmark(operations.BenchmarkOptions{
		Duration:    *duration,
		Samples:     *samples,
		ModulusBits: *modulusBits,
		Progress: func(done, total int) {
			pb.Update(uint64(done))
		},
	})
	if err != nil {
		return err
	}
	pb.Finish()
	fmt.Println()

	fmt.Printf("=== Benchmark Results ===\n")
	fmt.Printf("Fast variant: %.0f exponentiations/second\n", result.FastOpsPerSec)
	fmt.Printf("Slow variant: %.0f exponentiations/second\n", result.SlowOpsPerSec)
	if result.SlowOpsPerSec > 0 {
		fmt.Printf("Speedup:      %.1fx\n\n", result.FastOpsPerSec/result.SlowOpsPerSec)
	}

	fmt.Printf("=== Rough Prime Generation Estimates ===\n")
	for _, est := range result.PrimeEstimates {
		fmt.Printf("%d-bit candidate: %s\n", est.BitWidth, utils.FormatDuration(est.EstimatedTime))
	}

	return nil
}
