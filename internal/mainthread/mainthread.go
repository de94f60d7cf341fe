// SPDX-License-Identifier: Unlicense OR MIT

// Package mainthread marshals function calls onto one OS thread.
package mainthread

import "sync"

// Queue runs functions on the thread that created it. Calls from other
// threads block until the owning thread drains the queue with Run.
type Queue struct {
	main  uint64
	funcs chan func()
	// Wake, if set, is called after a function is queued.
	Wake func()

	mu      sync.Mutex
	pending int
}

// New returns a Queue owned by the calling thread. The caller must have
// locked its goroutine to the thread with runtime.LockOSThread.
func New() *Queue {
	return &Queue{
		main:  threadID(),
		funcs: make(chan func(), 16),
	}
}

// OnMain reports whether the caller runs on the owning thread. On
// platforms without thread identity every caller is the owner.
func (q *Queue) OnMain() bool {
	id := threadID()
	return id == 0 || id == q.main
}

// Call runs f on the owning thread and returns when f has returned.
func (q *Queue) Call(f func()) {
	if q.OnMain() {
		f()
		return
	}
	done := make(chan struct{})
	q.mu.Lock()
	q.pending++
	q.mu.Unlock()
	q.funcs <- func() {
		defer close(done)
		f()
	}
	if q.Wake != nil {
		q.Wake()
	}
	<-done
}

// Pending returns the number of queued calls whose callers are still
// waiting.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending
}

// Run executes the queued functions without blocking. It must be called
// from the owning thread.
func (q *Queue) Run() {
	for {
		select {
		case f := <-q.funcs:
			f()
			q.mu.Lock()
			q.pending--
			q.mu.Unlock()
		default:
			return
		}
	}
}
