package layout

import (
	"testing"

	"github.com/mizar/sortingnetwork-tauri-app/planner"
)

func TestLayout_BubbleThree(t *testing.T) {
	cmp := []planner.Comparator{{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 1}}
	pos := Layout(3, cmp)
	if pos.N != 3 {
		t.Fatalf("expected N=3, got %d", pos.N)
	}
	if pos.Depth == 0 {
		t.Fatalf("expected non-zero depth for a well-formed network")
	}
	if len(pos.XPos) != len(cmp) {
		t.Fatalf("expected one x position per comparator, got %d", len(pos.XPos))
	}
	// the first two comparators both touch wire 1 so cannot share a layer;
	// they must get distinct x positions.
	if pos.XPos[0] == pos.XPos[1] {
		t.Fatalf("expected distinct x positions for overlapping comparators")
	}
}

func TestLayout_DisjointPairShareALayer(t *testing.T) {
	cmp := []planner.Comparator{{A: 0, B: 1}, {A: 2, B: 3}}
	pos := Layout(4, cmp)
	if pos.Depth != 1 {
		t.Fatalf("expected depth 1 for two disjoint comparators, got %d", pos.Depth)
	}
}

func TestLayout_OutOfRangeIsDegenerate(t *testing.T) {
	cmp := []planner.Comparator{{A: 0, B: 9}}
	pos := Layout(3, cmp)
	if pos.Depth != 0 {
		t.Fatalf("expected degenerate depth 0 for out-of-range comparator, got %d", pos.Depth)
	}
}

func TestRender_ProducesNonEmptyPaths(t *testing.T) {
	cmp := []planner.Comparator{{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 1}}
	pos := Layout(3, cmp)
	used := []bool{true, true, false}
	unsorted := [][]bool{
		{false, false, false},
		{false, false, false},
		{false, false, false},
	}
	svg := Render(pos, used, unsorted, 4, 4)
	if svg.PathCmpNormal == "" {
		t.Fatalf("expected non-empty path for used comparators")
	}
	if svg.PathCmpUnused == "" {
		t.Fatalf("expected non-empty path for the unused comparator")
	}
	if svg.PathNodes == "" {
		t.Fatalf("expected non-empty wire path")
	}
}

func TestRender_UnsortedAdjacentMarked(t *testing.T) {
	cmp := []planner.Comparator{{A: 0, B: 2}, {A: 1, B: 3}}
	pos := Layout(4, cmp)
	used := []bool{true, true}
	unsorted := [][]bool{
		{false, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
		{false, false, false, false},
	}
	svg := Render(pos, used, unsorted, 3, 3)
	if svg.PathNodesUnsorted == "" {
		t.Fatalf("expected an unsorted marker when an adjacent bit is set")
	}
}
