package store

import (
	"log/slog"
	"sync"
)

// Entity is anything held in a collection, keyed by its server-assigned id.
type Entity interface {
	EntityID() string
}

// Snapshot is a point-in-time copy of a collection's state, safe for
// the caller to hold while the collection keeps changing.
type Snapshot[T Entity] struct {
	Selected *T
	Error    string
	Success  string
	Items    []T
	Loading  bool
}

// Collection holds one entity kind plus the status of its most recent
// async operation. There is a single loading flag per collection; the
// UI is expected to serialize operations on the same collection, and a
// monotonic sequence number makes sure a response that resolves after
// a newer operation has started is discarded instead of clobbering
// newer state.
type Collection[T Entity] struct {
	selected *T
	errMsg   string
	success  string
	items    []T
	seq      uint64
	mu       sync.Mutex
	loading  bool
}

// Snapshot returns a copy of the current state.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot[T]{
		Error:   c.errMsg,
		Success: c.success,
		Loading: c.loading,
		Items:   make([]T, len(c.items)),
	}
	copy(snap.Items, c.items)
	if c.selected != nil {
		selected := *c.selected
		snap.Selected = &selected
	}
	return snap
}

// ClearError resets the error message. Purely local.
func (c *Collection[T]) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errMsg = ""
}

// ClearSuccess resets the success message. Purely local.
func (c *Collection[T]) ClearSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.success = ""
}

// SetSelected sets or clears the selected item locally, without a
// remote fetch.
func (c *Collection[T]) SetSelected(item *T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if item == nil {
		c.selected = nil
		return
	}
	selected := *item
	c.selected = &selected
}

// begin marks the start of an async operation: loading on, error
// cleared, and for mutating operations the stale success message
// cleared too. It returns the operation's sequence number.
func (c *Collection[T]) begin(clearSuccess bool) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.loading = true
	c.errMsg = ""
	if clearSuccess {
		c.success = ""
	}
	return c.seq
}

// settle applies the outcome of the operation identified by seq. When
// a newer operation has started since, the completion is stale and is
// dropped without touching any state, loading flag included: the newer
// operation owns it now.
func (c *Collection[T]) settle(seq uint64, apply func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		slog.Debug("Discarding stale completion", "seq", seq, "current", c.seq)
		return false
	}
	c.loading = false
	apply()
	return true
}

// fail settles the operation with an error message. Items are left
// exactly as they were.
func (c *Collection[T]) fail(seq uint64, msg string) bool {
	return c.settle(seq, func() {
		c.errMsg = msg
	})
}

// removeWhere filters items locally without touching the async status
// fields. Used for cross-collection consistency, not for remote deletes.
func (c *Collection[T]) removeWhere(match func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	removed := 0
	for _, item := range c.items {
		if match(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	return removed
}

// mutateItems applies a local edit to the items slice, outside of any
// async operation lifecycle.
func (c *Collection[T]) mutateItems(edit func(items []T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	edit(c.items)
}
