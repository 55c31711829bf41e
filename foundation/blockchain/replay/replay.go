// Package replay tracks the set of transaction ids the chain has already
// seen so a captured transaction can't be submitted a second time. The
// guard can run with protection disabled, that mode exists on purpose to
// demonstrate the double-spend the protection prevents.
package replay

import (
	"errors"
	"sync"
)

// ErrDuplicateID is returned from Admit when the transaction id has been
// seen before and secure mode is on.
var ErrDuplicateID = errors.New("transaction id already processed")

// Guard maintains the set of known transaction ids. Ids are never removed,
// only an explicit Reset clears the set.
type Guard struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// New constructs a guard with an empty id set.
func New() *Guard {
	return &Guard{
		seen: make(map[string]struct{}),
	}
}

// Admit records the transaction id and decides whether the submission may
// proceed. With secure mode on a known id is rejected before it can reach
// the pending pool. With secure mode off the id is still recorded for
// bookkeeping but the duplicate is allowed through.
func (g *Guard) Admit(id string, secure bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.seen[id]; exists && secure {
		return ErrDuplicateID
	}

	g.seen[id] = struct{}{}
	return nil
}

// Record adds a transaction id to the set unconditionally. Used when a
// block commits so ids mined in insecure mode are known once secure mode
// is switched back on.
func (g *Guard) Record(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seen[id] = struct{}{}
}

// Known reports whether the id has been recorded.
func (g *Guard) Known(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, exists := g.seen[id]
	return exists
}

// Count returns the number of recorded ids.
func (g *Guard) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.seen)
}

// Reset clears the id set. Resetting the chain does not reset the guard,
// the caller has to ask for this explicitly.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seen = make(map[string]struct{})
}
