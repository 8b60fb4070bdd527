// Package reveal implements one-shot viewport observation: each registered target is
// activated the first time enough of it scrolls into view and is then forgotten.
package reveal

import (
	"sort"
	"sync"
)

// DefaultThreshold is the fraction of a section that must be visible before it reveals.
const DefaultThreshold = 0.1

// Target is anything with a stable identifier and a current position in the document.
type Target interface {
	ID() string
	Bounds() Rect
}

// Options controls when a target counts as visible.
type Options struct {
	// Threshold is the intersection ratio (0..1) that triggers activation.
	Threshold float64
	// RootMargin grows or shrinks the viewport before intersecting.
	RootMargin Margin
}

// ActivateFunc is invoked once per target when it first becomes visible.
type ActivateFunc func(id string)

type registration struct {
	target   Target
	opts     Options
	activate ActivateFunc
	seq      uint64
}

// Observer tracks registered targets against a viewport.
type Observer struct {
	mu       sync.Mutex
	viewport Rect
	entries  map[string]*registration
	seq      uint64
	closed   bool
}

// NewObserver returns an observer whose initial viewport is the given rectangle. Targets
// registered while already inside it activate during Observe without any Update call.
func NewObserver(viewport Rect) *Observer {
	return &Observer{
		viewport: viewport,
		entries:  map[string]*registration{},
	}
}

// Observe registers target. Registering an id that is still pending replaces the
// previous registration. Calls after Disconnect are ignored.
func (o *Observer) Observe(target Target, opts Options, activate ActivateFunc) {
	if target == nil || activate == nil {
		return
	}
	opts.Threshold = clampThreshold(opts.Threshold)

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.seq++
	reg := &registration{target: target, opts: opts, activate: activate, seq: o.seq}
	o.entries[target.ID()] = reg
	ready := o.visibleLocked(reg)
	if ready {
		delete(o.entries, target.ID())
	}
	o.mu.Unlock()

	if ready {
		activate(target.ID())
	}
}

// Unobserve drops a pending target without activating it.
func (o *Observer) Unobserve(id string) {
	o.mu.Lock()
	delete(o.entries, id)
	o.mu.Unlock()
}

// Update runs one observation cycle against viewport and returns how many targets were
// activated. Activations are delivered in document order (top, then left), not in
// registration order.
func (o *Observer) Update(viewport Rect) int {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return 0
	}
	o.viewport = viewport
	var ready []*registration
	for id, reg := range o.entries {
		if o.visibleLocked(reg) {
			ready = append(ready, reg)
			delete(o.entries, id)
		}
	}
	o.mu.Unlock()

	sort.SliceStable(ready, func(i, j int) bool {
		a, b := ready[i].target.Bounds(), ready[j].target.Bounds()
		if a.Top() != b.Top() {
			return a.Top() < b.Top()
		}
		if a.Left() != b.Left() {
			return a.Left() < b.Left()
		}
		return ready[i].seq < ready[j].seq
	})
	for _, reg := range ready {
		reg.activate(reg.target.ID())
	}
	return len(ready)
}

// Pending returns the number of targets still waiting to activate.
func (o *Observer) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.entries)
}

// Disconnect cancels every pending registration. No callback runs afterwards.
func (o *Observer) Disconnect() {
	o.mu.Lock()
	o.closed = true
	o.entries = map[string]*registration{}
	o.mu.Unlock()
}

func (o *Observer) visibleLocked(reg *registration) bool {
	root := reg.opts.RootMargin.Expand(o.viewport)
	ratio, ok := Ratio(reg.target.Bounds(), root)
	if !ok {
		return false
	}
	return ratio >= reg.opts.Threshold
}

func clampThreshold(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
