package seqs

import (
	"iter"

	"windowed/deques"
)

// Windows creates a sliding window over the input sequence: every window
// holds exactly size consecutive elements in source order, and consecutive
// windows overlap by size-1 elements, advancing one source element per step.
//
// Behaviour to note:
//   - Each yielded window is a fresh slice, independent of the internal
//     buffer and of every other window. Mutating one window never affects
//     another.
//   - size <= 0 yields an empty sequence.
//   - A source with fewer than size elements yields an empty sequence; the
//     elements pulled while trying to fill the first window stay consumed.
//   - Elements are copied by value into successive windows, so the adapter
//     is best suited to cheaply copyable element types. For pointerful types
//     the copies share referents.
//
// The source is pulled on demand: consuming only the first window costs
// exactly size source elements, and abandoning the windows early stops the
// source.
func Windows[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}

		next, stop := iter.Pull(seq)
		defer stop()

		win := deques.New[T](size)

		for {
			// 1. slide: a full buffer drops its oldest element
			if win.Len() == size {
				win.PopFront()
			}

			// 2. refill from the source; a dry source ends the sequence
			for win.Len() < size {
				v, ok := next()
				if !ok {
					return
				}
				win.PushBack(v)
			}

			// 3. emit an independent copy of the buffer
			if !yield(win.Snapshot()) {
				return
			}
		}
	}
}

// TryWindows is the error-aware form of [Windows] for sources that yield
// (element, error) pairs.
//
// Elements paired with a nil error enter the window normally. If the source
// yields an error:
//   - The error is yielded to the consumer with a nil window; the element
//     that carried it does not enter any window.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryWindows[T any](seq iter.Seq2[T, error], size int) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		if size <= 0 {
			return
		}

		next, stop := iter.Pull2(seq)
		defer stop()

		win := deques.New[T](size)

		for {
			if win.Len() == size {
				win.PopFront()
			}

			for win.Len() < size {
				v, err, ok := next()
				if !ok {
					return
				}
				if err != nil {
					// forward the failure; windowing resumes if the
					// consumer decides to continue
					if !yield(nil, err) {
						return
					}
					continue
				}
				win.PushBack(v)
			}

			if !yield(win.Snapshot(), nil) {
				return
			}
		}
	}
}
