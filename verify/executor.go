package verify

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/joeycumines/logiface"

	"github.com/mizar/sortingnetwork-tauri-app/bitset"
	"github.com/mizar/sortingnetwork-tauri-app/dsu"
	"github.com/mizar/sortingnetwork-tauri-app/planner"
	"github.com/mizar/sortingnetwork-tauri-app/pool"
)

// cmpChunkSize and combineChunkSize bound how many state pairs a single
// worker goroutine handles before returning, per spec's "e.g. 65536 pairs
// each".
const (
	cmpChunkSize     = 65536
	combineChunkSize = 65536
)

// Run builds a plan for the given network and starts executing it on a
// background goroutine, returning immediately with a Future the caller
// drains. p may be nil, in which case a default-sized pool.Pool is used.
// logger may be nil, in which case no structured log lines are emitted (the
// Future's message stream is unaffected either way).
//
// Run does not validate comparators itself: an out-of-range entry makes
// planner.Build panic on the background goroutine Run starts, which the
// caller cannot recover. By the time a network reaches the executor it is
// expected to have already been validated (by netfmt.Parse or an
// equivalent caller), so a bad comparator here is an invariant violation,
// not a reportable Error.
func Run[E logiface.Event](n int, comparators []planner.Comparator, p *pool.Pool, logger *logiface.Logger[E]) *Future {
	if p == nil {
		p = pool.New(0)
	}

	q := newUnboundedQueue[Message]()
	cancel := &atomic.Bool{}
	future := &Future{queue: q, cancel: cancel}

	go execute(n, comparators, p, logger, q, cancel)

	return future
}

// execute is the producer goroutine: it owns state vectors, the DSU, and the
// used bitmap exclusively, and is the only writer to q.
func execute[E logiface.Event](n int, comparators []planner.Comparator, p *pool.Pool, logger *logiface.Logger[E], q *unboundedQueue[Message], cancel *atomic.Bool) {
	defer q.Close()

	start := time.Now()
	m := len(comparators)
	totalJobs := m + 1 // progress_all = M+1, the "+1" for finalization

	jobs := planner.Build(n, comparators)

	states := make([][]bitset.Pair, n)
	for i := 0; i < n; i++ {
		states[i] = []bitset.Pair{bitset.Wire(i)}
	}
	used := make([]bool, m)
	d := dsu.New(n)
	progress := 0

	cancelled := func() bool { return cancel.Load() }

	pushProgress := func(logText string) {
		q.Push(Progress{
			N:           n,
			M:           m,
			Progress:    progress,
			ProgressAll: totalJobs,
			Used:        append([]bool(nil), used...),
			Unsorted:    unsortedBitsToBools(n, snapshotUnsorted(n, states)),
			ElapsedMS:   time.Since(start).Milliseconds(),
			Log:         logText,
		})
	}

	pushProgress("planning complete")

	for _, job := range jobs {
		if cancelled() {
			q.Push(CancelMessage{})
			return
		}

		switch jb := job.(type) {
		case planner.CmpJob:
			if root := d.Root(jb.Root); root != jb.Root {
				panic(fmt.Sprintf("verify: cmp job root %d is stale (current root %d): invariant violated", jb.Root, root))
			}

			pairs := states[jb.Root]
			results := pool.MapChunks(context.Background(), p, pairs, cmpChunkSize, func(_ context.Context, chunk []bitset.Pair) cmpChunkResult {
				return applyCmpChunk(jb.Entries, chunk)
			})

			if cancelled() {
				q.Push(CancelMessage{})
				return
			}

			extended := make([]bitset.Pair, 0, len(pairs)/4+1)
			for _, r := range results {
				for _, idx := range r.used {
					used[idx] = true
				}
				extended = append(extended, r.extra...)
			}

			if cancelled() {
				q.Push(CancelMessage{})
				return
			}

			merged := append(pairs, extended...)

			if cancelled() {
				q.Push(CancelMessage{})
				return
			}

			merged = bitset.SortDedupe(merged)

			if cancelled() {
				q.Push(CancelMessage{})
				return
			}

			states[jb.Root] = merged
			progress += len(jb.Entries)

			logText := fmt.Sprintf("cmp root=%d entries=%d states=%d", jb.Root, len(jb.Entries), len(merged))
			if logger != nil {
				logger.Info().
					Int(`root`, jb.Root).
					Int(`entries`, len(jb.Entries)).
					Int(`states`, len(merged)).
					Int64(`elapsed_ms`, time.Since(start).Milliseconds()).
					Log(`applied comparator batch`)
			}

			pushProgress(logText)

		case planner.CombineJob:
			masterSet := states[jb.Master]
			slaveSet := states[jb.Slave]

			if cancelled() {
				q.Push(CancelMessage{})
				return
			}

			productChunks := pool.MapChunks(context.Background(), p, slaveSet, combineChunkSize, func(_ context.Context, chunk []bitset.Pair) []bitset.Pair {
				out := make([]bitset.Pair, 0, len(chunk)*len(masterSet))
				for _, sp := range chunk {
					for _, mp := range masterSet {
						out = append(out, mp.Union(sp))
					}
				}
				return out
			})

			if cancelled() {
				q.Push(CancelMessage{})
				return
			}

			combined := make([]bitset.Pair, 0, len(masterSet)*len(slaveSet))
			for _, chunk := range productChunks {
				combined = append(combined, chunk...)
			}

			if !d.Unite(jb.Master, jb.Slave) {
				panic(fmt.Sprintf("verify: combine job roots (%d,%d) already united: invariant violated", jb.Master, jb.Slave))
			}
			states[jb.Master] = combined
			states[jb.Slave] = nil

			logText := fmt.Sprintf("combine master=%d slave=%d states=%d", jb.Master, jb.Slave, len(combined))
			if logger != nil {
				logger.Info().
					Int(`master`, jb.Master).
					Int(`slave`, jb.Slave).
					Int(`states`, len(combined)).
					Int64(`elapsed_ms`, time.Since(start).Milliseconds()).
					Log(`combined components`)
			}
			q.Push(LogMessage{Text: logText})
		}
	}

	if cancelled() {
		q.Push(CancelMessage{})
		return
	}

	progress = totalJobs
	pushProgress("finalized")
	q.Push(DoneMessage{})
}

// cmpChunkResult is what one worker returns after applying a CmpJob's
// entries to its chunk of state pairs: the chunk itself is mutated in
// place to hold each input's primary (non-branching) outcome, and extra
// holds the additional pairs produced by branches, plus the set of
// original comparator indices that were used anywhere in this chunk.
type cmpChunkResult struct {
	used  []int
	extra []bitset.Pair
}

// stackFrame is a deferred branch continuation: resume applying entries
// from index pos against (z, o).
type stackFrame struct {
	pos  int
	z, o uint64
}

// applyCmpChunk applies entries, in order, to every pair in chunk,
// following the forced-swap/branch rule from the executor contract: a
// comparator (a,b) does nothing unless the tracked set includes both "a
// is 1" and "b is 0"; if it also definitely excludes "a is 0 and b is 1"
// the outcome is a forced swap, otherwise the pair must be split into the
// already-sorted case (kept in place) and the needs-swap case (deferred
// onto a stack, to bound recursion depth by entry count rather than call
// stack depth).
func applyCmpChunk(entries []planner.CmpEntry, chunk []bitset.Pair) cmpChunkResult {
	var res cmpChunkResult
	var stack []stackFrame

	for idx := range chunk {
		z, o := chunk[idx].Z, chunk[idx].O
		for pos := 0; pos < len(entries); pos++ {
			e := entries[pos]
			a, b := uint(e.A), uint(e.B)
			if (o>>a)&1 == 0 || (z>>b)&1 == 0 {
				continue
			}
			res.used = append(res.used, e.Index)
			if (z>>a)&1 == 0 || (o>>b)&1 == 0 {
				z, o = swapBits(z, o, a, b)
				continue
			}
			stack = append(stack, stackFrame{pos: pos + 1, z: z, o: o ^ (uint64(1) << a) ^ (uint64(1) << b)})
			z ^= uint64(1) << b
		}
		chunk[idx] = bitset.Pair{Z: z, O: o}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pos, z, o := top.pos, top.z, top.o

		for pos < len(entries) {
			e := entries[pos]
			pos++
			a, b := uint(e.A), uint(e.B)
			if (o>>a)&1 == 0 || (z>>b)&1 == 0 {
				continue
			}
			res.used = append(res.used, e.Index)
			if (z>>a)&1 == 0 || (o>>b)&1 == 0 {
				z, o = swapBits(z, o, a, b)
				continue
			}
			stack = append(stack, stackFrame{pos: pos, z: z, o: o ^ (uint64(1) << a) ^ (uint64(1) << b)})
			z ^= uint64(1) << b
		}

		res.extra = append(res.extra, bitset.Pair{Z: z, O: o})
	}

	return res
}

// swapBits exchanges the a and b bits of z and, separately, of o.
func swapBits(z, o uint64, a, b uint) (uint64, uint64) {
	xz := ((z >> a) ^ (z >> b)) & 1
	xo := ((o >> a) ^ (o >> b)) & 1
	z ^= (xz << a) | (xz << b)
	o ^= (xo << a) | (xo << b)
	return z, o
}
