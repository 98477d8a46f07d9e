package genhw

import (
	"math"
	"sync"
	"time"
)

// Fence tracks completion of a command submission. The zero value is an
// unsubmitted fence: querying or waiting on it returns ErrUnavailable
// until the submission layer calls Submit.
//
// A Fence may be reused; each Submit starts a new pending period ended by
// the matching Signal. All methods are safe for concurrent use.
type Fence struct {
	mu        sync.Mutex
	done      chan struct{}
	submitted bool
	signaled  bool
}

// NewFence creates an unsubmitted fence.
func NewFence() *Fence { return &Fence{} }

// Submit associates the fence with a new command submission, putting it in
// the pending state.
func (f *Fence) Submit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = true
	f.signaled = false
	f.done = make(chan struct{})
}

// Signal marks the current submission complete. Signaling an already
// complete or unsubmitted fence is a no-op.
func (f *Fence) Signal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.submitted || f.signaled {
		return
	}
	f.signaled = true
	close(f.done)
}

// Status reports the fence state without waiting: nil when the submission
// completed, ErrNotReady while pending, ErrUnavailable before any
// submission.
func (f *Fence) Status() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case !f.submitted:
		return ErrUnavailable
	case f.signaled:
		return nil
	default:
		return ErrNotReady
	}
}

// Wait blocks until the submission completes or timeoutNS nanoseconds
// elapse. A negative timeout waits forever. Returns nil on completion,
// ErrNotReady on timeout, ErrUnavailable before any submission.
func (f *Fence) Wait(timeoutNS int64) error {
	f.mu.Lock()
	ch := f.done
	submitted := f.submitted
	f.mu.Unlock()

	if !submitted {
		return ErrUnavailable
	}
	if timeoutNS < 0 {
		<-ch
		return nil
	}

	t := time.NewTimer(time.Duration(timeoutNS))
	defer t.Stop()
	select {
	case <-ch:
		return nil
	case <-t.C:
		return ErrNotReady
	}
}

// WaitFences waits on several fences with a timeout in seconds, clamped to
// an infinite wait when the nanosecond conversion would overflow. With
// waitAll false it returns nil as soon as any fence completes; otherwise
// it waits on every fence and returns the last failure, if any.
func WaitFences(timeoutSeconds uint64, waitAll bool, fences ...*Fence) error {
	var ns int64
	if timeoutSeconds <= math.MaxInt64/(1000*1000*1000) {
		ns = int64(timeoutSeconds) * 1000 * 1000 * 1000
	} else {
		ns = -1
	}

	var err error
	for _, f := range fences {
		r := f.Wait(ns)
		if !waitAll && r == nil {
			return nil
		}
		if r != nil {
			err = r
		}
	}
	return err
}
