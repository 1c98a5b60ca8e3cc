// Package sliceutil holds the eager slice counterparts of the seqs adapters:
// when the whole input is already in memory, building all windows at once is
// simpler and lets [Windows] hand out zero-copy views.
package sliceutil

// Windows returns every overlapping window of the specified size, advancing one
// element per step. Each window is a view into the original slice: no element
// data is copied, and mutating a window mutates the source (and its neighbors).
// A collection shorter than size produces zero windows.
func Windows[T any](collection []T, size int) [][]T {
	if size <= 0 {
		panic("sliceutil.Windows: size must be greater than 0")
	}
	if len(collection) < size {
		return [][]T{}
	}
	n := len(collection) - size + 1
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([][]T, 0, n)
	for i := 0; i < n; i++ {
		// full slice expression keeps appends on a window from spilling
		// into the source
		res = append(res, collection[i:i+size:i+size])
	}
	return res
}

// WindowsCopy returns every overlapping window of the specified size,
// creating a new slice for each window. Windows are fully independent of the
// source and of each other.
func WindowsCopy[T any](collection []T, size int) [][]T {
	if size <= 0 {
		panic("sliceutil.WindowsCopy: size must be greater than 0")
	}
	if len(collection) < size {
		return [][]T{}
	}
	n := len(collection) - size + 1
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([][]T, 0, n)
	for i := 0; i < n; i++ {
		w := make([]T, size)
		copy(w, collection[i:i+size])
		res = append(res, w)
	}
	return res
}
