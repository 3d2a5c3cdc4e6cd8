package networks

import (
	"fmt"

	"github.com/mizar/sortingnetwork-tauri-app/planner"
)

// A comparator in this package's model always places the minimum at its
// lower-indexed wire (planner.Comparator requires A < B, min at A); every
// generator below is built exclusively from such comparators, so networks
// requiring an oriented "descending" exchange (e.g. the classic Bitonic
// sort's bitonic-sequence construction, or Parberry's pairwise network)
// are out of scope here — see DESIGN.md.

// OddEvenTranspositionSort returns the canonical n-wire odd-even
// transposition network: n alternating layers, each comparing every
// other adjacent wire pair. Correct for any n >= 2.
func OddEvenTranspositionSort(n int) []planner.Comparator {
	if n < 2 {
		panic(fmt.Sprintf("networks: odd-even transposition: n must be >= 2, got %d", n))
	}
	var out []planner.Comparator
	for layer := 0; layer < n; layer++ {
		for i := layer % 2; i+1 < n; i += 2 {
			out = append(out, planner.Comparator{A: i, B: i + 1})
		}
	}
	return out
}

// InsertionSort returns a comparator network equivalent to insertion sort:
// for each position k from 1 to n-1, a descending run of compare-exchanges
// bubbles the new element down to its sorted place. Correct for any n >= 2.
func InsertionSort(n int) []planner.Comparator {
	if n < 2 {
		panic(fmt.Sprintf("networks: insertion sort: n must be >= 2, got %d", n))
	}
	var out []planner.Comparator
	for k := 1; k < n; k++ {
		for i := k - 1; i >= 0; i-- {
			out = append(out, planner.Comparator{A: i, B: i + 1})
		}
	}
	return out
}

// BatcherOddEvenMergeSort returns Batcher's odd-even mergesort network,
// recursively sorting then merging halves using only ascending
// compare-exchanges. n must be a power of two.
func BatcherOddEvenMergeSort(n int) []planner.Comparator {
	if n < 2 || n&(n-1) != 0 {
		panic(fmt.Sprintf("networks: batcher odd-even merge sort: n must be a power of two >= 2, got %d", n))
	}
	var out []planner.Comparator
	oddEvenMergeSort(0, n, &out)
	return out
}

func oddEvenMergeSort(lo, n int, out *[]planner.Comparator) {
	if n > 1 {
		m := n / 2
		oddEvenMergeSort(lo, m, out)
		oddEvenMergeSort(lo+m, m, out)
		oddEvenMerge(lo, n, 1, out)
	}
}

func oddEvenMerge(lo, n, r int, out *[]planner.Comparator) {
	step := r * 2
	if step < n {
		oddEvenMerge(lo, n, step, out)
		oddEvenMerge(lo+r, n, step, out)
		for i := lo + r; i+r < lo+n; i += step {
			*out = append(*out, planner.Comparator{A: i, B: i + r})
		}
	} else {
		*out = append(*out, planner.Comparator{A: lo, B: lo + r})
	}
}
