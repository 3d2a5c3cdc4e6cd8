package networks

import (
	"testing"

	"github.com/mizar/sortingnetwork-tauri-app/planner"
)

// isSortingNetwork brute-forces the 0/1 principle directly over ints: run
// every 0/1 input of width n through cmp and check the output is
// non-decreasing. Only used for small n in tests.
func isSortingNetwork(n int, cmp []planner.Comparator) bool {
	for bits := 0; bits < 1<<uint(n); bits++ {
		wires := make([]int, n)
		for i := 0; i < n; i++ {
			wires[i] = (bits >> uint(i)) & 1
		}
		for _, c := range cmp {
			if wires[c.A] > wires[c.B] {
				wires[c.A], wires[c.B] = wires[c.B], wires[c.A]
			}
		}
		for i := 1; i < n; i++ {
			if wires[i-1] > wires[i] {
				return false
			}
		}
	}
	return true
}

func TestOddEvenTranspositionSort_IsSorting(t *testing.T) {
	for n := 2; n <= 10; n++ {
		cmp := OddEvenTranspositionSort(n)
		if !isSortingNetwork(n, cmp) {
			t.Fatalf("odd-even transposition network for n=%d is not a sorting network", n)
		}
	}
}

func TestInsertionSort_IsSorting(t *testing.T) {
	for n := 2; n <= 10; n++ {
		cmp := InsertionSort(n)
		if !isSortingNetwork(n, cmp) {
			t.Fatalf("insertion sort network for n=%d is not a sorting network", n)
		}
	}
}

func TestBatcherOddEvenMergeSort_IsSorting(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16} {
		cmp := BatcherOddEvenMergeSort(n)
		if !isSortingNetwork(n, cmp) {
			t.Fatalf("batcher odd-even merge sort network for n=%d is not a sorting network", n)
		}
	}
}

func TestBatcherOddEvenMergeSort_PanicsOnNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-power-of-two n")
		}
	}()
	BatcherOddEvenMergeSort(5)
}

func TestComparatorsWellFormed(t *testing.T) {
	for _, gen := range []func(int) []planner.Comparator{
		OddEvenTranspositionSort,
		InsertionSort,
	} {
		cmp := gen(6)
		for _, c := range cmp {
			if c.A < 0 || c.B >= 6 || c.A >= c.B {
				t.Fatalf("malformed comparator %+v", c)
			}
		}
	}
}
