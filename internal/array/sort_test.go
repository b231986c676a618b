package array

import (
	"math/rand"
	"sort"
	"testing"
)

func TestSortInts(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{5}, []int{5}},
		{"sorted", []int{1, 2, 3}, []int{1, 2, 3}},
		{"reversed", []int{3, 2, 1}, []int{1, 2, 3}},
		{"duplicates", []int{4, 1, 4, 2, 1}, []int{1, 1, 2, 4, 4}},
		{"negatives", []int{0, -3, 7, -3, 2}, []int{-3, -3, 0, 2, 7}},
	}

	for _, tt := range tests {
		got := append([]int(nil), tt.input...)
		SortInts(got)
		for i := range tt.expected {
			if got[i] != tt.expected[i] {
				t.Errorf("%s: SortInts = %v, want %v", tt.name, got, tt.expected)
				break
			}
		}
	}
}

func TestQuickSortSliceLarge(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	arr := make([]int, 1000)
	for i := range arr {
		arr[i] = rng.Intn(100)
	}
	want := append([]int(nil), arr...)
	sort.Ints(want)

	SortInts(arr)
	for i := range arr {
		if arr[i] != want[i] {
			t.Fatalf("element %d = %d, want %d", i, arr[i], want[i])
		}
	}
}

func TestQuickSortSliceCustomLess(t *testing.T) {
	arr := []int{1, 2, 3, 4}
	QuickSortSlice(arr, func(a, b int) bool { return a > b })
	for i, want := range []int{4, 3, 2, 1} {
		if arr[i] != want {
			t.Fatalf("descending sort = %v", arr)
		}
	}
}
