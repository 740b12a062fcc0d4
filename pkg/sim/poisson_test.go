package sim

import (
	"testing"
)

func TestZeroRateAlwaysReturnsZero(t *testing.T) {
	gen := NewPoissonGenerator(1)
	for i := 0; i < 100; i++ {
		if got := gen.Generate(0); got != 0 {
			t.Fatalf("Generate(0) = %d, want 0", got)
		}
	}
}

func TestZeroRateConsumesNoRandomness(t *testing.T) {
	// Interleaving zero-rate draws must not advance the stream
	a := NewPoissonGenerator(99)
	b := NewPoissonGenerator(99)

	for i := 0; i < 50; i++ {
		a.Generate(0)
	}

	for i := 0; i < 20; i++ {
		if got, want := a.Generate(2.5), b.Generate(2.5); got != want {
			t.Fatalf("draw %d: got %d, want %d", i, got, want)
		}
	}
}

func TestGenerateNeverNegative(t *testing.T) {
	gen := NewPoissonGenerator(7)
	for _, rate := range []float64{0, 0.01, 0.5, 1.0, 2.5, 10.0, 20.0} {
		for i := 0; i < 1000; i++ {
			if got := gen.Generate(rate); got < 0 {
				t.Fatalf("Generate(%v) = %d, want >= 0", rate, got)
			}
		}
	}
}

func TestReproducibleSequence(t *testing.T) {
	a := NewPoissonGenerator(42)
	b := NewPoissonGenerator(42)

	for i := 0; i < 500; i++ {
		if got, want := a.Generate(1.7), b.Generate(1.7); got != want {
			t.Fatalf("draw %d diverged: %d vs %d", i, got, want)
		}
	}
}

func TestSampleMeanConvergence(t *testing.T) {
	const rate = 2.5
	const samples = 10_000

	gen := NewPoissonGenerator(1234)
	sum := 0
	for i := 0; i < samples; i++ {
		sum += gen.Generate(rate)
	}

	mean := float64(sum) / samples
	if diff := mean - rate; diff < -0.15 || diff > 0.15 {
		t.Fatalf("sample mean %.4f not within 0.15 of %.1f", mean, rate)
	}
}

func TestSmallRateSkewsToZero(t *testing.T) {
	gen := NewPoissonGenerator(5678)

	zeros := 0
	for i := 0; i < 1000; i++ {
		if gen.Generate(0.01) == 0 {
			zeros++
		}
	}

	if zeros < 900 {
		t.Fatalf("expected at least 900 of 1000 samples to be 0 at rate 0.01, got %d", zeros)
	}
}
