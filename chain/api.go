// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Model lifecycle (Close) and read-only diagnostics (Stats).
// Policy:
//   - Close is the only destructive operation; entries are never removed one by one.
//   - Stats is an O(n+E) snapshot under the read lock.

package chain

// Stats produces a read-only snapshot of registry and table sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Single pass over entries: count terminal entries, pairs and observations.
//
// Determinism:
//   - Deterministic for a fixed model; IsTerminal is called once per entry.
//
// Complexity:
//   - Time O(n+E), Space O(1).
func (c *Chain[T]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st := Stats{States: len(c.entries)}
	for i, e := range c.entries {
		if c.terminalLocked(Ref(i)) {
			st.Terminal++
		}
		st.Transitions += len(e.next)
		st.Observations += totalWeight(e.next)
	}

	return st
}

// Close tears the model down: Ops.Free runs exactly once per owned state, in
// insertion order, then every entry and table is dropped.
//
// Behavior highlights:
//   - After Close, AddState/RecordTransition/PickStart/Generate* return ErrClosed,
//     Ref-taking queries return ErrBadReference, Len returns 0.
//   - A second Close returns ErrClosed and frees nothing.
//
// Complexity:
//   - Time O(n), plus the cost of Free.
func (c *Chain[T]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return chainErrorf(methodClose, ErrClosed, "already closed")
	}
	c.closed = true

	for _, e := range c.entries {
		if c.ops.Free != nil {
			c.ops.Free(e.state)
		}
		e.next = nil
	}
	c.entries = nil

	return nil
}
