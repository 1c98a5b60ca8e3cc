package seqs

import (
	"iter"
	"math/rand/v2"
)

// RandomInts generates a sequence of the specified number of random integers.
// Handy as a throwaway source for exercising window pipelines.
func RandomInts(size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < size; i++ {
			if !yield(rand.Int()) {
				return
			}
		}
	}
}

// Range yields start, start+step, ... up to (exclusive) end.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat yields the same value count times.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}
