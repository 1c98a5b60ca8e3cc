package seqs

import (
	"iter"

	"windowed/deques"
)

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// RollingSum yields the sum of each sliding window of the given size.
// It emits on the same schedule as [Windows]: the first sum once size
// elements have arrived, then one per source element.
//
// The sum is updated incrementally (add the entering element, subtract the
// leaving one), so each step is O(1) regardless of size. For floating point
// elements this accumulates rounding error over long sequences.
func RollingSum[T Number](seq iter.Seq[T], size int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if size <= 0 {
			return
		}

		win := deques.New[T](size)
		var sum T

		for v := range seq {
			win.PushBack(v)
			sum += v

			if win.Len() < size {
				continue
			}
			if !yield(sum) {
				return
			}

			old, _ := win.PopFront()
			sum -= old
		}
	}
}

// RollingMean yields the arithmetic mean of each sliding window of the given
// size. Emission schedule and the floating point caveat match [RollingSum].
func RollingMean[T Number](seq iter.Seq[T], size int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if size <= 0 {
			return
		}

		win := deques.New[T](size)
		var sum T

		for v := range seq {
			win.PushBack(v)
			sum += v

			if win.Len() < size {
				continue
			}
			if !yield(float64(sum) / float64(size)) {
				return
			}

			old, _ := win.PopFront()
			sum -= old
		}
	}
}

// RollingMin yields the minimum of each sliding window of the given size,
// on the same emission schedule as [Windows].
func RollingMin[T Number](seq iter.Seq[T], size int) iter.Seq[T] {
	return rollingExtremum(seq, size, func(a, b T) bool { return a <= b })
}

// RollingMax yields the maximum of each sliding window of the given size,
// on the same emission schedule as [Windows].
func RollingMax[T Number](seq iter.Seq[T], size int) iter.Seq[T] {
	return rollingExtremum(seq, size, func(a, b T) bool { return a >= b })
}

type rollingEntry[T Number] struct {
	val T
	idx int
}

// rollingExtremum keeps a monotonic deque of candidates: a new element
// discards every candidate it beats from the back (they can never be the
// extremum again), and the front is discarded once it slides out of the
// window. The front is therefore always the current window's extremum, and
// each element is pushed and popped at most once.
func rollingExtremum[T Number](seq iter.Seq[T], size int, beats func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		if size <= 0 {
			return
		}

		cand := deques.New[rollingEntry[T]](size)
		i := 0

		for v := range seq {
			// 1. drop dominated candidates from the back
			for {
				back, ok := cand.Back()
				if !ok || !beats(v, back.val) {
					break
				}
				cand.PopBack()
			}
			cand.PushBack(rollingEntry[T]{val: v, idx: i})

			// 2. drop the front candidate once it left the window
			if front, ok := cand.Front(); ok && front.idx <= i-size {
				cand.PopFront()
			}

			// 3. the window is complete from index size-1 onwards
			if i >= size-1 {
				front, _ := cand.Front()
				if !yield(front.val) {
					return
				}
			}
			i++
		}
	}
}
