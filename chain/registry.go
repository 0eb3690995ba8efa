// File: registry.go
// Role: State registry: dedup lookup, insert-or-get, state access.
//
// Determinism:
//   - Refs are assigned in insertion order; Refs() returns them ascending.
//   - FindState returns the FIRST entry (insertion order) comparing equal.
//
// Concurrency:
//   - AddState holds the write lock across lookup + copy + append, so two
//     concurrent inserts of equal states cannot both append.
//   - Queries hold the read lock.
package chain

// FindState returns the Ref of the first entry whose state compares equal to
// state, scanning in insertion order.
//
// Returns:
//   - (ref, true) if found; (0, false) otherwise, including after Close.
//
// Complexity:
//   - Time O(n·C) where C is the cost of Ops.Compare; there is no secondary index.
func (c *Chain[T]) FindState(state T) (Ref, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.findLocked(state)
}

// AddState returns the entry for state, registering a copy of it first if no
// equal entry exists yet.
//
// Implementation:
//   - Stage 1: Under the write lock, reject a closed Chain (ErrClosed).
//   - Stage 2: Return the existing Ref when FindState would succeed.
//   - Stage 3: Enforce WithMaxStates before any copy is made.
//   - Stage 4: Copy the state via Ops.Copy; on error nothing is registered.
//   - Stage 5: Append a new entry with an empty table and fire Hooks.OnAdd.
//
// Errors:
//   - ErrClosed: Close was called.
//   - ErrAllocation: Ops.Copy failed (wrapping the copy error's text) or the
//     registry is at capacity.
//
// Complexity:
//   - Time O(n·C) for the lookup, O(1) amortized for the append.
func (c *Chain[T]) AddState(state T) (Ref, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, chainErrorf(methodAddState, ErrClosed, "insert")
	}
	if ref, ok := c.findLocked(state); ok {
		return ref, nil
	}
	if c.maxStates > 0 && len(c.entries) >= c.maxStates {
		return 0, chainErrorf(methodAddState, ErrAllocation, "registry full (%d states)", c.maxStates)
	}

	owned := state
	if c.ops.Copy != nil {
		var err error
		if owned, err = c.ops.Copy(state); err != nil {
			return 0, chainErrorf(methodAddState, ErrAllocation, "copy state: %v", err)
		}
	}

	ref := Ref(len(c.entries))
	c.entries = append(c.entries, &entry[T]{state: owned})
	if c.hooks.OnAdd != nil {
		c.hooks.OnAdd(ref)
	}

	return ref, nil
}

// State returns the owned state stored at ref.
// The returned value must be treated as read-only.
//
// Errors:
//   - ErrBadReference: ref is not registered (or the Chain is closed).
func (c *Chain[T]) State(ref Ref) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.validLocked(ref) {
		var zero T
		return zero, chainErrorf(methodState, ErrBadReference, "ref %d", ref)
	}

	return c.entries[ref].state, nil
}

// Len returns the number of registered entries (0 after Close).
func (c *Chain[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Refs returns every registered Ref in insertion order.
func (c *Chain[T]) Refs() []Ref {
	c.mu.RLock()
	defer c.mu.RUnlock()

	refs := make([]Ref, len(c.entries))
	for i := range refs {
		refs[i] = Ref(i)
	}

	return refs
}

// findLocked scans entries in insertion order. Caller holds mu.
func (c *Chain[T]) findLocked(state T) (Ref, bool) {
	for i, e := range c.entries {
		if c.ops.Compare(e.state, state) == 0 {
			return Ref(i), true
		}
	}

	return 0, false
}

// validLocked reports whether ref addresses a live entry. Caller holds mu.
func (c *Chain[T]) validLocked(ref Ref) bool {
	return ref >= 0 && int(ref) < len(c.entries)
}

// terminalLocked applies Ops.IsTerminal to the entry at ref. Caller holds mu.
func (c *Chain[T]) terminalLocked(ref Ref) bool {
	if c.ops.IsTerminal == nil {
		return false
	}

	return c.ops.IsTerminal(c.entries[ref].state)
}
