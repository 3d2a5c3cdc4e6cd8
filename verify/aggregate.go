package verify

import (
	"math/bits"

	"github.com/mizar/sortingnetwork-tauri-app/bitset"
)

// fullMask returns the mask of the low n bits, or all bits for n>=64.
func fullMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

// checkUnsorted records, for every wire i asserted to 1 by o, a violation
// against every wire j>i asserted to 0 by z: wires i<j observed in an
// order where out[i]=1 and out[j]=0 violate the sortedness invariant.
// unsorted[i] accumulates the set of such j as a bitmask.
func checkUnsorted(unsorted []uint64, z, o uint64) {
	ro := o
	for ro != 0 {
		i := bits.TrailingZeros64(ro)
		unsorted[i] |= z & ((^uint64(0) << 1) << uint(i))
		ro &= ro - 1
	}
}

// snapshotUnsorted derives an unsorted-pair bitmap from the current,
// possibly-partial, per-root state sets. It is used both for progress
// snapshots mid-run (where it is provisional: later jobs can clear bits it
// sets, and every pair i<j of wires in two different components reads as
// unsorted) and, after the last job, as the authoritative final result,
// whether or not every component has been folded into one by then.
//
// For every live component (root with a non-empty state set) the two
// synthetic pairs (qMask, nqMask) and (nqMask, qMask) are folded in first,
// where qMask is that component's wire support and nqMask its complement:
// these record that any wire outside the component is, as far as this
// component's states are concerned, simultaneously a possible 0 and a
// possible 1 — the closure the aggregator needs so that components which
// have not yet been compared against each other don't silently read as
// "consistent".
func snapshotUnsorted(n int, states [][]bitset.Pair) []uint64 {
	unsorted := make([]uint64, n)
	for root, set := range states {
		if len(set) == 0 {
			continue
		}
		qMask := set[0].Support()
		nqMask := fullMask(n) &^ qMask
		checkUnsorted(unsorted, qMask, nqMask)
		checkUnsorted(unsorted, nqMask, qMask)
		for _, p := range set {
			checkUnsorted(unsorted, p.Z, p.O)
		}
		_ = root
	}
	return unsorted
}

// unsortedBitsToBools expands the packed per-wire bitmask form into the
// [][]bool shape exposed on Progress, for callers that would rather index
// a slice of slices than shift bits.
func unsortedBitsToBools(n int, unsorted []uint64) [][]bool {
	out := make([][]bool, n)
	for i := 0; i < n; i++ {
		row := make([]bool, n)
		for j := 0; j < n; j++ {
			if unsorted[i]&(uint64(1)<<uint(j)) != 0 {
				row[j] = true
			}
		}
		out[i] = row
	}
	return out
}
