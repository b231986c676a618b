// Package array provides the small sorting helpers used by the rasterizer's
// scanline polygon fill.
package array

// quickSortThreshold is the slice length below which insertion sort is used.
const quickSortThreshold = 9

// LessFunc compares two elements.
type LessFunc[T any] func(a, b T) bool

// QuickSortSlice sorts a slice in place using hybrid quicksort with
// insertion sort for small ranges.
func QuickSortSlice[T any](arr []T, less LessFunc[T]) {
	if len(arr) < 2 {
		return
	}
	quickSort(arr, 0, len(arr)-1, less)
}

// SortInts sorts an int slice ascending. This is the sort applied to the
// scanline intersection list of the polygon fill.
func SortInts(arr []int) {
	QuickSortSlice(arr, func(a, b int) bool { return a < b })
}

func quickSort[T any](arr []T, lo, hi int, less LessFunc[T]) {
	for hi-lo+1 >= quickSortThreshold {
		mid := lo + (hi-lo)/2

		// Median-of-three pivot selection.
		if less(arr[mid], arr[lo]) {
			arr[mid], arr[lo] = arr[lo], arr[mid]
		}
		if less(arr[hi], arr[mid]) {
			arr[hi], arr[mid] = arr[mid], arr[hi]
			if less(arr[mid], arr[lo]) {
				arr[mid], arr[lo] = arr[lo], arr[mid]
			}
		}

		pivot := arr[mid]
		i, j := lo, hi
		for i <= j {
			for less(arr[i], pivot) {
				i++
			}
			for less(pivot, arr[j]) {
				j--
			}
			if i <= j {
				arr[i], arr[j] = arr[j], arr[i]
				i++
				j--
			}
		}

		// Recurse into the smaller partition, loop on the larger.
		if j-lo < hi-i {
			if lo < j {
				quickSort(arr, lo, j, less)
			}
			lo = i
		} else {
			if i < hi {
				quickSort(arr, i, hi, less)
			}
			hi = j
		}
	}
	insertionSort(arr, lo, hi, less)
}

func insertionSort[T any](arr []T, lo, hi int, less LessFunc[T]) {
	for i := lo + 1; i <= hi; i++ {
		v := arr[i]
		j := i - 1
		for j >= lo && less(v, arr[j]) {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = v
	}
}
