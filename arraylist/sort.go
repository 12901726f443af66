package arraylist

import "cmp"

//go:generate go run ./specialize

// Sort sorts the list in place. compare(a, b) must return a negative number when a sorts before b,
// a positive number when a sorts after b, and zero otherwise, in the same way as [cmp.Compare]. It
// has to describe a total order, otherwise the resulting order is unspecified.
//
// Sort is a quicksort with Lomuto partitioning around the last element of each range. It is not
// stable and degrades to quadratic time on input that is already sorted.
func (l *List[T]) Sort(compare func(a, b T) int) {
	quickSort(l.data[:l.n], 0, l.n-1, compare)
}

// SortOrdered sorts l in place by the natural order of its elements. It uses the same algorithm
// as [List.Sort].
func SortOrdered[T cmp.Ordered](l *List[T]) {
	quickSortOrdered(l.data[:l.n], 0, l.n-1)
}

// quickSort sorts v[lo] to v[hi], both inclusive.
func quickSort[T any](v []T, lo, hi int, compare func(a, b T) int) {
	if lo >= hi {
		return
	}
	p := partition(v, lo, hi, compare)
	quickSort(v, lo, p-1, compare)
	quickSort(v, p+1, hi, compare)
}

// partition moves every element that compares less or equal to the pivot v[hi] in front of it and
// returns the final position of the pivot.
func partition[T any](v []T, lo, hi int, compare func(a, b T) int) int {
	pivot := v[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if compare(v[j], pivot) <= 0 {
			v[i], v[j] = v[j], v[i]
			i++
		}
	}
	v[i], v[hi] = v[hi], v[i]
	return i
}
