package layout

import (
	"fmt"
	"strings"

	"github.com/mizar/sortingnetwork-tauri-app/planner"
)

const (
	xScale     = 35
	xScaleThin = 11
	yScale     = 20
	nodeR      = 3
	nodeR2     = nodeR * 2
)

// Pos is a network's layered screen layout: one x position per comparator,
// the overall canvas size, and the number of layers (Depth) it took to
// place them.
type Pos struct {
	N           int
	Depth       int
	Width       int
	Height      int
	XPos        []int
	Comparators []planner.Comparator
}

// indexedComparator pairs a comparator with its position in the original
// list, the unit layering works on once comparators start getting
// reordered into layers.
type indexedComparator struct {
	index int
	cmp   planner.Comparator
}

// Layout assigns each comparator in cmp an x position by greedily packing
// them into layers (passes over the wire set that touch disjoint wires),
// then, within a layer, into the narrowest free lane so that concurrent
// comparators in the same layer don't overlap visually. If cmp contains an
// out-of-range entry, Layout returns a degenerate Pos with Depth 0 and the
// naive evenly-spaced x positions, mirroring the upstream renderer's
// fail-soft behavior for data it cannot lay out.
func Layout(n int, cmp []planner.Comparator) Pos {
	width := xScale*2 + xScaleThin*max0(len(cmp)-1)
	height := yScale * (n + 1)
	xPos := make([]int, len(cmp))
	for i := range xPos {
		xPos[i] = i*xScaleThin + xScale
	}
	comparators := append([]planner.Comparator(nil), cmp...)

	for _, c := range cmp {
		if c.A < 0 || c.B >= n || c.A >= c.B {
			return Pos{N: n, Depth: 0, Width: width, Height: height, XPos: xPos, Comparators: comparators}
		}
	}

	depth := 0
	w := xScale
	remain := make([]indexedComparator, len(cmp))
	for i, c := range cmp {
		remain[i] = indexedComparator{index: i, cmp: c}
	}

	for len(remain) > 0 {
		depth++
		used := make([]bool, n)
		var curr, next []indexedComparator
		f := true
		for _, ic := range remain {
			if f && !used[ic.cmp.A] && !used[ic.cmp.B] {
				curr = append(curr, ic)
			} else {
				f = false
				next = append(next, ic)
			}
			used[ic.cmp.A] = true
			used[ic.cmp.B] = true
		}

		var lanes [][]bool
	placeInLane:
		for _, ic := range curr {
			a, b := ic.cmp.A, ic.cmp.B
			for lane, occupied := range lanes {
				if rangeAny(occupied, a, b) {
					continue
				}
				xPos[ic.index] = w + xScaleThin*lane
				fillRange(occupied, a, b)
				continue placeInLane
			}
			xPos[ic.index] = w + xScaleThin*len(lanes)
			occupied := make([]bool, n)
			fillRange(occupied, a, b)
			lanes = append(lanes, occupied)
		}

		w += max0(len(lanes)-1)*xScaleThin + xScale
		remain = next
	}

	return Pos{N: n, Depth: depth, Width: w, Height: height, XPos: xPos, Comparators: comparators}
}

func rangeAny(row []bool, a, b int) bool {
	for i := a; i <= b; i++ {
		if row[i] {
			return true
		}
	}
	return false
}

func fillRange(row []bool, a, b int) {
	for i := a; i <= b; i++ {
		row[i] = true
	}
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// SVG holds rendered path data, ready to drop into an <svg> element's
// children. Coordinates follow the same scale Layout uses.
type SVG struct {
	Width             int
	Height            int
	PathNodes         string
	PathCmpNormal     string
	PathCmpUnused     string
	PathNodesUnknown  string
	PathNodesUnsorted string
}

// Render draws pos's comparators (filled if used, hollow if not) and, at
// the right edge, one marker per adjacent wire pair: filled if known
// unsorted, hollow-dashed if the verification hasn't progressed far enough
// to rule it out yet, and omitted once known sorted. used and unsorted are
// a completed or in-flight verify.Progress's Used and Unsorted fields;
// progress/progressAll are that same Progress's Progress/ProgressAll.
func Render(pos Pos, used []bool, unsorted [][]bool, progress, progressAll int) SVG {
	var pathNodes, pathCmpNormal, pathCmpUnused, pathNodesUnknown, pathNodesUnsorted strings.Builder

	for i, c := range pos.Comparators {
		x := pos.XPos[i]
		y1 := yScale*(c.A+1) + nodeR
		yd := yScale*(c.B-c.A) - nodeR2
		path := fmt.Sprintf(
			"M%d %da%d %d 0 1 1 0-%da%d %d 0 1 1 0 %dv%da%d %d 0 1 1 0 %da%d %d 0 1 1 0-%dz",
			x, y1, nodeR, nodeR, nodeR2, nodeR, nodeR, nodeR2, yd, nodeR, nodeR, nodeR2, nodeR, nodeR, nodeR2,
		)
		if i < len(used) && used[i] {
			pathCmpNormal.WriteString(path)
		} else {
			pathCmpUnused.WriteString(path)
		}
	}

	unsortX := pos.Width - xScale/2
	limit := max0(pos.N - 1)
	for i := 0; i < limit; i++ {
		y := yScale*(2*i+3)/2 + nodeR
		path := fmt.Sprintf("M%d %da%d %d 0 1 1 0-%da%d %d 0 1 1 0 %dz", unsortX, y, nodeR, nodeR, nodeR2, nodeR, nodeR, nodeR2)
		adjacent := i < len(unsorted) && i+1 < len(unsorted[i]) && unsorted[i][i+1]
		switch {
		case adjacent:
			pathNodesUnsorted.WriteString(path)
		case progress < progressAll:
			pathNodesUnknown.WriteString(path)
		}
	}

	for i := 0; i < pos.N; i++ {
		pathNodes.WriteString(fmt.Sprintf("M0 %dh%d", yScale*(i+1), pos.Width))
	}

	return SVG{
		Width:             pos.Width,
		Height:            pos.Height,
		PathNodes:         pathNodes.String(),
		PathCmpNormal:     pathCmpNormal.String(),
		PathCmpUnused:     pathCmpUnused.String(),
		PathNodesUnknown:  pathNodesUnknown.String(),
		PathNodesUnsorted: pathNodesUnsorted.String(),
	}
}
