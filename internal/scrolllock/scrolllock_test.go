package scrolllock

import (
	"sync"
	"testing"
)

type fakePage struct {
	offset  int
	enabled bool
	sets    int
}

func (p *fakePage) ScrollOffset() int { return p.offset }
func (p *fakePage) SetScrollOffset(o int) { p.offset = o; p.sets++ }
func (p *fakePage) SetScrollEnabled(on bool) { p.enabled = on }

func TestAcquireRelease_RestoresOffset(t *testing.T) {
	page := &fakePage{offset: 17, enabled: true}
	l := New(page)

	h := l.Acquire()
	if page.enabled {
		t.Error("scrolling should be disabled while held")
	}
	if !l.Held() {
		t.Error("expected lock to be held")
	}

	// Something scrolls the page while locked (resize, re-render).
	page.offset = 3

	h.Release()
	if page.offset != 17 {
		t.Errorf("offset: got %d, want 17", page.offset)
	}
	if !page.enabled {
		t.Error("scrolling should be re-enabled after release")
	}
	if l.Held() {
		t.Error("lock should be free after release")
	}
}

func TestRelease_Idempotent(t *testing.T) {
	page := &fakePage{offset: 5, enabled: true}
	l := New(page)

	h := l.Acquire()
	h.Release()
	h.Release()
	h.Release()

	if page.sets != 1 {
		t.Errorf("expected one restore, got %d", page.sets)
	}
	if l.Depth() != 0 {
		t.Errorf("depth: got %d, want 0", l.Depth())
	}

	var nilHandle *Handle
	nilHandle.Release()
}

func TestNested_RestoresOutermostOffset(t *testing.T) {
	page := &fakePage{offset: 40, enabled: true}
	l := New(page)

	outer := l.Acquire()
	page.offset = 10
	inner := l.Acquire()
	if l.Depth() != 2 {
		t.Fatalf("depth: got %d, want 2", l.Depth())
	}

	inner.Release()
	if page.enabled {
		t.Error("still held by outer; scrolling must stay disabled")
	}
	if page.sets != 0 {
		t.Error("inner release must not restore")
	}

	outer.Release()
	if page.offset != 40 {
		t.Errorf("offset: got %d, want 40", page.offset)
	}
	if !page.enabled {
		t.Error("expected scrolling re-enabled")
	}
}

func TestRapidToggle(t *testing.T) {
	page := &fakePage{offset: 8, enabled: true}
	l := New(page)
	for i := 0; i < 100; i++ {
		h := l.Acquire()
		page.offset = i
		h.Release()
		h.Release()
		if page.offset != 8 || !page.enabled || l.Held() {
			t.Fatalf("iteration %d: offset=%d enabled=%v held=%v", i, page.offset, page.enabled, l.Held())
		}
	}
}

func TestConcurrentAcquireRelease(t *testing.T) {
	page := &fakePage{offset: 2, enabled: true}
	l := New(page)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := l.Acquire()
			h.Release()
		}()
	}
	wg.Wait()

	if l.Held() {
		t.Error("lock should be free after all releases")
	}
	if !page.enabled {
		t.Error("scrolling should be enabled")
	}
}

func TestNilTarget(t *testing.T) {
	l := New(nil)
	h := l.Acquire()
	h.Release()
	if l.Held() {
		t.Error("lock should be free")
	}
}
