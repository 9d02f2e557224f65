package operations

import (
	"math/big"
	"time"

	"rsalab/src/numbertheory"
	"rsalab/src/utils"
)

// BenchmarkOptions contains all the parameters needed for benchmarking.
type BenchmarkOptions struct {
	Duration    time.Duration
	Samples     int
	ModulusBits int
	// Progress, if non-nil, is called after each sample completes with the
	// running count out of the total sample count across both variants.
	Progress func(done, total int)
}

// BenchmarkSample represents a single benchmark sample.
type BenchmarkSample struct {
	Operations   uint64
	Elapsed      time.Duration
	OpsPerSecond float64
}

// BenchmarkResult contains the results of benchmarking both fast_exp
// variants.
type BenchmarkResult struct {
	FastSamples    []BenchmarkSample
	SlowSamples    []BenchmarkSample
	FastOpsPerSec  float64
	SlowOpsPerSec  float64
	PrimeEstimates []PrimeEstimate
}

// PrimeEstimate is a rough time estimate for generating a prime of a
// given bit width, extrapolated from the measured exponentiation rate.
type PrimeEstimate struct {
	BitWidth      uint
	EstimatedTime time.Duration
}

// RunBenchmark times fast_exp under both Speed variants over a fixed
// modulus: run a tight inner loop for a while and count iterations rather
// than timing each call.
func RunBenchmark(opts BenchmarkOptions) (*BenchmarkResult, error) {
	modulus := samplingModulus(opts.ModulusBits)

	total := opts.Samples * 2
	done := 0
	report := func() {
		done++
		if opts.Progress != nil {
			opts.Progress(done, total)
		}
	}

	fastSamples := collectSamples(numbertheory.New(numbertheory.Fast), modulus, opts.Duration, opts.Samples, report)
	slowSamples := collectSamples(numbertheory.New(numbertheory.Slow), modulus, opts.Duration, opts.Samples, report)

	fastRate := averageRate(fastSamples)
	slowRate := averageRate(slowSamples)

	bitWidths := []uint{512, 1024, 2048, 4096}
	var estimates []PrimeEstimate
	for _, bw := range bitWidths {
		// Generating a random candidate of bw bits and Miller-Rabin
		// testing it costs roughly bw modular exponentiations in
		// expectation; a crude but directionally useful estimate.
		estimates = append(estimates, PrimeEstimate{
			BitWidth:      bw,
			EstimatedTime: utils.EstimateTime(uint64(bw), fastRate),
		})
	}

	return &BenchmarkResult{
		FastSamples:    fastSamples,
		SlowSamples:    slowSamples,
		FastOpsPerSec:  fastRate,
		SlowOpsPerSec:  slowRate,
		PrimeEstimates: estimates,
	}, nil
}

func samplingModulus(bits int) *big.Int {
	if bits <= 0 {
		bits = 256
	}
	m := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return m.Sub(m, big.NewInt(159))
}

func collectSamples(nt numbertheory.Service, modulus *big.Int, duration time.Duration, samples int, onSample func()) []BenchmarkSample {
	var result []BenchmarkSample
	for i := 0; i < samples; i++ {
		ops, elapsed := benchmarkExponentiation(nt, modulus, duration)
		result = append(result, BenchmarkSample{
			Operations:   ops,
			Elapsed:      elapsed,
			OpsPerSecond: float64(ops) / elapsed.Seconds(),
		})
		if onSample != nil {
			onSample()
		}
	}
	return result
}

func averageRate(samples []BenchmarkSample) float64 {
	var totalOps uint64
	var totalTime time.Duration
	for _, s := range samples {
		totalOps += s.Operations
		totalTime += s.Elapsed
	}
	if totalTime == 0 {
		return 0
	}
	return float64(totalOps) / totalTime.Seconds()
}

// benchmarkExponentiation runs nt.FastExp in a tight loop against a
// fixed modulus for the given duration, returning the operation count
// and actual elapsed time.
func benchmarkExponentiation(nt numbertheory.Service, modulus *big.Int, duration time.Duration) (uint64, time.Duration) {
	base := big.NewInt(12345)
	exp := big.NewInt(65537)

	var operations uint64
	start := time.Now()
	end := start.Add(duration)

	for time.Now().Before(end) {
		for i := 0; i < 100; i++ {
			nt.FastExp(base, exp, modulus)
			operations++
		}
	}

	return operations, time.Since(start)
}
