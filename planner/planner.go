package planner

import (
	"fmt"

	"github.com/mizar/sortingnetwork-tauri-app/dsu"
)

// Comparator is an ordered pair (A, B), A < B: after application, wire A
// holds the min, wire B the max.
type Comparator struct {
	A, B int
}

// CmpEntry is one comparator assigned to a CmpJob: Index is its position in
// the original comparator list, A and B its wires (both rooted, at the
// moment the job was emitted, at the job's Root).
type CmpEntry struct {
	Index, A, B int
}

// Job is either a CmpJob or a CombineJob.
type Job interface {
	isJob()
}

// CmpJob applies every entry's comparator, in order, to the state set owned
// by DSU root Root. All entries share that root at the moment the job is
// emitted.
type CmpJob struct {
	Root    int
	Entries []CmpEntry
}

func (CmpJob) isJob() {}

// CombineJob merges two components' state sets: after execution, Slave's
// set is empty, and Master holds the Cartesian OR of the two.
type CombineJob struct {
	Master, Slave int
}

func (CombineJob) isJob() {}

// combineCandidate is the lexicographically smallest (size, rootA, rootB)
// tuple considered for a Combine job within one layer.
type combineCandidate struct {
	size, rootA, rootB int
	valid              bool
}

func (c combineCandidate) less(size, rootA, rootB int) bool {
	if !c.valid {
		return true
	}
	if size != c.size {
		return size < c.size
	}
	if rootA != c.rootA {
		return rootA < c.rootA
	}
	return rootB < c.rootB
}

// Build compiles cmp into a plan over n wires. It panics if any comparator
// is out of range, matching the invariant-violation handling documented for
// the executor: by the time comparators reach the planner they have already
// been validated by netfmt.Parse (or an equivalent caller).
func Build(n int, cmp []Comparator) []Job {
	for _, c := range cmp {
		if c.A < 0 || c.B >= n || c.A >= c.B {
			panic(fmt.Sprintf("planner: build: invalid comparator (%d,%d) for n=%d", c.A, c.B, n))
		}
	}

	layered := make([]bool, len(cmp))
	cmpSkip := 0
	d := dsu.New(n)
	fullMask := fullMask(n)

	var jobs []Job

	for cmpSkip < len(cmp) {
		mask := fullMask
		buckets := make([][]CmpEntry, n)
		var candidate combineCandidate

		for i := cmpSkip; i < len(cmp); i++ {
			if mask == 0 || mask&(mask-1) == 0 {
				break // fewer than two wires remain available this layer
			}
			if layered[i] {
				continue
			}

			a, b := cmp[i].A, cmp[i].B
			available := (mask>>uint(a))&(mask>>uint(b))&1 != 0
			mask &^= (uint64(1) << uint(a)) | (uint64(1) << uint(b))
			if !available {
				continue
			}

			if d.Connected(a, b) {
				root := d.Root(a)
				buckets[root] = append(buckets[root], CmpEntry{Index: i, A: a, B: b})
				layered[i] = true
				continue
			}

			rootA, sizeA := d.Find(a)
			rootB, sizeB := d.Find(b)
			size := sizeA + sizeB
			if candidate.less(size, rootA, rootB) {
				candidate = combineCandidate{size: size, rootA: rootA, rootB: rootB, valid: true}
			}
		}

		anyLayered := false
		for root, entries := range buckets {
			if len(entries) == 0 {
				continue
			}
			anyLayered = true
			jobs = append(jobs, CmpJob{Root: root, Entries: entries})
		}

		if anyLayered {
			for cmpSkip < len(cmp) && layered[cmpSkip] {
				cmpSkip++
			}
			continue
		}

		if !candidate.valid {
			panic("planner: build: no layerable comparator and no combine candidate: invariant violated")
		}

		if !d.Unite(candidate.rootA, candidate.rootB) {
			panic("planner: build: combine candidate roots were already united")
		}
		master := d.Root(candidate.rootA)
		slave := candidate.rootA ^ candidate.rootB ^ master
		jobs = append(jobs, CombineJob{Master: master, Slave: slave})
	}

	return jobs
}

func fullMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}
