package seqs

import "iter"

// Take yields at most the first n elements of seq, then stops pulling.
// Bounding a window sequence this way keeps the source consumption bounded
// too: Take(Windows(s, k), n) pulls at most k+n-1 source elements.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Skip discards the first n elements of seq and yields the rest.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
