package seqs

import "iter"

// Map applies transform to each element of seq, yielding the transformed
// elements. Applied to a window sequence it turns [Windows] into arbitrary
// per-window computations, e.g. Map(Windows(s, n), slices.Max).
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Filter yields only the elements of seq that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Peek performs the provided action on each element of the sequence without
// modifying it. It is useful for debugging (e.g., logging) or side effects,
// such as counting how many elements a downstream adapter actually pulls.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}
