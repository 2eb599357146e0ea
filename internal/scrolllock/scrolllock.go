// Package scrolllock suspends page scrolling while an overlay needs the
// screen to itself.
//
// The lock is reference counted. The first Acquire records the target's
// scroll offset and disables scrolling; the last Release puts the exact
// recorded offset back and re-enables scrolling. Nested overlays therefore
// restore the offset that was current before the outermost one opened.
package scrolllock

import "sync"

// Target is the scrollable surface being locked.
type Target interface {
	ScrollOffset() int
	SetScrollOffset(int)
	SetScrollEnabled(bool)
}

// Lock guards one Target.
type Lock struct {
	mu     sync.Mutex
	target Target
	depth  int
	saved  int
}

// New returns a lock for t.
func New(t Target) *Lock {
	return &Lock{target: t}
}

// Acquire takes a reference on the lock. The returned handle must be
// released exactly once; extra releases are ignored.
func (l *Lock) Acquire() *Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.depth == 0 && l.target != nil {
		l.saved = l.target.ScrollOffset()
		l.target.SetScrollEnabled(false)
	}
	l.depth++
	return &Handle{lock: l}
}

// Held reports whether any handle is outstanding.
func (l *Lock) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.depth > 0
}

// Depth returns the number of outstanding handles.
func (l *Lock) Depth() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.depth
}

func (l *Lock) release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.depth == 0 {
		return
	}
	l.depth--
	if l.depth == 0 && l.target != nil {
		l.target.SetScrollOffset(l.saved)
		l.target.SetScrollEnabled(true)
	}
}

// Handle is one reference on a Lock.
type Handle struct {
	lock *Lock
	once sync.Once
}

// Release drops the reference. Safe to call more than once and on nil.
func (h *Handle) Release() {
	if h == nil || h.lock == nil {
		return
	}
	h.once.Do(h.lock.release)
}
