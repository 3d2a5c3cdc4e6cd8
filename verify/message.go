package verify

// Message is the tagged union of values delivered on a Future's progress
// channel: exactly one Progress at start, one Progress per Cmp job
// completed, one Log per Combine job, then, for a run that completes, a
// terminal Progress and Done. A run that observes cancellation sends Cancel
// as its last message, with no terminal Progress before it.
type Message interface {
	isMessage()
}

// Progress is a snapshot of verification state at the start, after each Cmp
// job, and after finalization. Progress/ProgressAll track how many
// of the M original comparators have been checked so far; ProgressAll is
// always M+1, the "+1" accounting for the finalization step itself.
type Progress struct {
	N, M int

	Progress    int
	ProgressAll int

	// Used reports, per comparator (by original index), whether a reachable
	// state caused it to swap or branch.
	Used []bool

	// Unsorted[i] has bit j set (as the bool at Unsorted[i][j]) iff wires i
	// and j have been observed in an order that violates i<j => out[i]<=out[j].
	Unsorted [][]bool

	ElapsedMS int64
	Log       string
}

func (Progress) isMessage() {}

// IsSortingNetwork reports whether no unsorted wire pair has been observed.
// It is meaningful on any Progress, but only conclusive on the terminal one.
func (p Progress) IsSortingNetwork() bool {
	for _, row := range p.Unsorted {
		for _, bad := range row {
			if bad {
				return false
			}
		}
	}
	return true
}

// UnsortedPairs returns every (i, j) with i<j such that wires i and j have
// been observed in violation of the i<j => out[i]<=out[j] invariant.
func (p Progress) UnsortedPairs() [][2]int {
	var pairs [][2]int
	for i, row := range p.Unsorted {
		for j, bad := range row {
			if bad {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// UnsortedAdjacent returns every i such that the adjacent wire pair (i, i+1)
// is in violation, a convenient summary for rendering.
func (p Progress) UnsortedAdjacent() []int {
	var out []int
	for i := 0; i+1 < len(p.Unsorted); i++ {
		if p.Unsorted[i][i+1] {
			out = append(out, i)
		}
	}
	return out
}

// LogMessage is an informational, non-progress-bearing log line, emitted
// for Combine jobs (which don't advance Progress/ProgressAll).
type LogMessage struct {
	Text string
}

func (LogMessage) isMessage() {}

// DoneMessage is the terminal message for a verification that ran to
// completion.
type DoneMessage struct{}

func (DoneMessage) isMessage() {}

// CancelMessage is the terminal message for a verification that observed
// cancellation before completing.
type CancelMessage struct{}

func (CancelMessage) isMessage() {}

// ErrorMessage is the terminal message type for a verification that could
// not proceed. The executor in this package does not send it: an invalid
// comparator makes the background goroutine panic instead (see Run).
type ErrorMessage struct {
	Text string
}

func (ErrorMessage) isMessage() {}
