package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_BubbleThree(t *testing.T) {
	// S2 scenario: 3-wire bubble network, (0,1),(1,2),(0,1) (0-based).
	cmp := []Comparator{{0, 1}, {1, 2}, {0, 1}}
	jobs := Build(3, cmp)
	require.NotEmpty(t, jobs)
	assertWellFormed(t, len(cmp), jobs)
}

func TestBuild_WellFormed_RedundantPair(t *testing.T) {
	// S3 scenario shape: 4 wires, 6 comparators (0-based from the 1-based
	// spec text).
	cmp := []Comparator{{0, 1}, {2, 3}, {0, 2}, {1, 3}, {2, 3}, {0, 1}}
	jobs := Build(4, cmp)
	assertWellFormed(t, len(cmp), jobs)
}

func TestBuild_DisjointPair_RequiresCombine(t *testing.T) {
	// Two wholly disjoint comparators: must eventually combine.
	cmp := []Comparator{{0, 1}, {2, 3}}
	jobs := Build(4, cmp)
	assertWellFormed(t, len(cmp), jobs)

	var sawCombine bool
	for _, j := range jobs {
		if _, ok := j.(CombineJob); ok {
			sawCombine = true
		}
	}
	assert.True(t, sawCombine, "disjoint comparators must be bridged by a Combine job")
}

// assertWellFormed checks part of property 4 from spec.md §8: every CmpJob
// is non-empty and every comparator appears exactly once across all
// CmpJobs. Whether a CmpJob's entries share one DSU root at emission time is
// not checked here.
func assertWellFormed(t *testing.T, m int, jobs []Job) {
	t.Helper()
	seen := make([]bool, m)
	for _, j := range jobs {
		cj, ok := j.(CmpJob)
		if !ok {
			continue
		}
		require.NotEmpty(t, cj.Entries)
		for _, e := range cj.Entries {
			require.False(t, seen[e.Index], "comparator %d assigned twice", e.Index)
			seen[e.Index] = true
		}
	}
	for i, ok := range seen {
		assert.True(t, ok, "comparator %d never assigned to any CmpJob", i)
	}
}
