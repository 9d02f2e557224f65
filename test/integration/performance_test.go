package integration

import (
	"testing"
	"time"

	"rsalab/src/operations"
)

const (
	benchmarkDuration = 50 * time.Millisecond
	benchmarkSamples  = 2
)

func TestBenchmarkOperation(t *testing.T) {
	result, err := operations.RunBenchmark(operations.BenchmarkOptions{
		Duration:    benchmarkDuration,
		Samples:     benchmarkSamples,
		ModulusBits: 256,
	})
	if err != nil {
		t.Fatalf("RunBenchmark failed: %v", err)
	}

	if len(result.FastSamples) != benchmarkSamples {
		t.Errorf("len(FastSamples) = %d, want %d", len(result.FastSamples), benchmarkSamples)
	}
	if len(result.SlowSamples) != benchmarkSamples {
		t.Errorf("len(SlowSamples) = %d, want %d", len(result.SlowSamples), benchmarkSamples)
	}
	if result.FastOpsPerSec <= 0 {
		t.Error("FastOpsPerSec should be positive")
	}
	if result.SlowOpsPerSec <= 0 {
		t.Error("SlowOpsPerSec should be positive")
	}
	if len(result.PrimeEstimates) != 4 {
		t.Errorf("len(PrimeEstimates) = %d, want 4", len(result.PrimeEstimates))
	}
}
