package seqs_test

import (
	"fmt"
	"slices"
	"testing"

	"windowed/seqs"
)

// prevent the compiler from optimizing the benchmarked work away
var resultSink int

// --- Payloads ---

type PayloadTiny int64

type PayloadMedium struct {
	Data [128]byte
}

// --- Benchmark 1: Windowing Matrix ---
// Measures the adapter across the two dimensions that dominate its cost:
// element size (snapshot copy) and window size (buffer churn).
func BenchmarkWindows_Matrix(b *testing.B) {
	const sourceLen = 10_000
	windowSizes := []int{2, 16, 128}

	b.Run("Payload=Tiny", func(b *testing.B) {
		for _, ws := range windowSizes {
			runWindowsBenchmark(b, sourceLen, ws, func(i int) PayloadTiny { return PayloadTiny(i) })
		}
	})

	b.Run("Payload=Medium", func(b *testing.B) {
		for _, ws := range windowSizes {
			runWindowsBenchmark(b, sourceLen, ws, func(i int) PayloadMedium { return PayloadMedium{} })
		}
	})
}

func runWindowsBenchmark[T any](b *testing.B, sourceLen, windowSize int, factory func(int) T) {
	input := make([]T, sourceLen)
	for i := range input {
		input[i] = factory(i)
	}

	b.Run(fmt.Sprintf("WindowSize=%d", windowSize), func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			count := 0
			for range seqs.Windows(slices.Values(input), windowSize) {
				count++
			}
			resultSink = count
		}
	})
}

// --- Benchmark 2: Rolling Aggregates vs Materialized Windows ---
// Compares the O(1)-per-step incremental aggregates against computing the
// same statistic over fully built windows.
func BenchmarkRolling(b *testing.B) {
	const sourceLen = 10_000
	windowSizes := []int{16, 128}

	input := make([]int, sourceLen)
	for i := range input {
		input[i] = (i * 2654435761) % 10_000
	}

	sum := func(w []int) int {
		s := 0
		for _, v := range w {
			s += v
		}
		return s
	}

	for _, ws := range windowSizes {
		b.Run(fmt.Sprintf("WindowSize=%d", ws), func(b *testing.B) {
			b.Run("RollingSum_Incremental", func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					last := 0
					for s := range seqs.RollingSum(slices.Values(input), ws) {
						last = s
					}
					resultSink = last
				}
			})

			b.Run("Sum_Via_Windows", func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					last := 0
					for s := range seqs.Map(seqs.Windows(slices.Values(input), ws), sum) {
						last = s
					}
					resultSink = last
				}
			})

			b.Run("RollingMax_Monotonic", func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					last := 0
					for m := range seqs.RollingMax(slices.Values(input), ws) {
						last = m
					}
					resultSink = last
				}
			})

			b.Run("Max_Via_Windows", func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					last := 0
					for m := range seqs.Map(seqs.Windows(slices.Values(input), ws), slices.Max) {
						last = m
					}
					resultSink = last
				}
			})
		})
	}
}

// --- Benchmark 3: First Window Latency ---
// The lazy adapter should pay for exactly one window regardless of source length.
func BenchmarkWindows_FirstWindow(b *testing.B) {
	b.ReportAllocs()
	source := seqs.Range(0, 1_000_000, 1)
	for b.Loop() {
		w, _ := seqs.First(seqs.Windows(source, 64))
		resultSink = len(w)
	}
}
