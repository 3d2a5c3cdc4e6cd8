package verify

import "sync/atomic"

// Future is the handle a caller uses to drain a running verification's
// message stream and, optionally, cancel it early. It is returned by Run
// before the verification has necessarily produced anything.
type Future struct {
	queue  *unboundedQueue[Message]
	cancel *atomic.Bool
}

// Recv blocks until the next Message is available or the stream has been
// fully drained (ok == false), which happens only after a terminal message
// (Done, Cancel, or Error) has already been returned.
func (f *Future) Recv() (Message, bool) {
	return f.queue.Pop()
}

// TryRecv is the non-blocking form of Recv.
func (f *Future) TryRecv() (msg Message, ok bool, wouldBlock bool) {
	return f.queue.TryPop()
}

// Cancel requests cooperative cancellation. The executor polls the same
// flag at checkpoints throughout each job and, on observing it set, stops
// early and emits a terminal CancelMessage instead of running to
// completion. Cancel is idempotent and safe to call from any goroutine,
// including concurrently with Recv.
func (f *Future) Cancel() {
	f.cancel.Store(true)
}

// Cancelled reports whether Cancel has been called, regardless of whether
// the executor has yet observed it.
func (f *Future) Cancelled() bool {
	return f.cancel.Load()
}
