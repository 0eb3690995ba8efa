// File: transitions.go
// Role: Per-entry transition tables: record and read (to, count) pairs.
//
// Invariants:
//   - No table holds two pairs with the same target.
//   - Every count is ≥ 1.
//   - Pairs keep record order; PickNext breaks ties by this order.
//
// Concurrency:
//   - RecordTransition holds the write lock for the whole read-modify-write.
package chain

// RecordTransition records one observation of from→to.
//
// Implementation:
//   - Stage 1: Under the write lock, reject a closed Chain and unknown refs.
//   - Stage 2: If a pair already targets to, increment its count.
//   - Stage 3: Otherwise enforce WithMaxSuccessors and append {to, 1}.
//
// Errors:
//   - ErrClosed: Close was called.
//   - ErrBadReference: from or to is not registered; the table is untouched.
//   - ErrAllocation: the table of from is at capacity; the table is untouched.
//
// Complexity:
//   - Time O(d) where d = number of distinct successors of from; O(1) amortized append.
func (c *Chain[T]) RecordTransition(from, to Ref) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return chainErrorf(methodRecord, ErrClosed, "%d→%d", from, to)
	}
	if !c.validLocked(from) {
		return chainErrorf(methodRecord, ErrBadReference, "source ref %d", from)
	}
	if !c.validLocked(to) {
		return chainErrorf(methodRecord, ErrBadReference, "target ref %d", to)
	}

	e := c.entries[from]
	for i := range e.next {
		if e.next[i].To == to {
			e.next[i].Count++
			c.fireRecord(from, to, e.next[i].Count)
			return nil
		}
	}

	if c.maxSuccessors > 0 && len(e.next) >= c.maxSuccessors {
		return chainErrorf(methodRecord, ErrAllocation, "table of %d full (%d successors)", from, c.maxSuccessors)
	}
	e.next = append(e.next, Transition{To: to, Count: 1})
	c.fireRecord(from, to, 1)

	return nil
}

// Successors returns a copy of the transition table of ref in record order.
// An empty (non-nil) slice means ref has no observed successor.
//
// Errors:
//   - ErrBadReference: ref is not registered.
func (c *Chain[T]) Successors(ref Ref) ([]Transition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.validLocked(ref) {
		return nil, chainErrorf(methodSuccessors, ErrBadReference, "ref %d", ref)
	}
	out := make([]Transition, len(c.entries[ref].next))
	copy(out, c.entries[ref].next)

	return out, nil
}

func (c *Chain[T]) fireRecord(from, to Ref, count int) {
	if c.hooks.OnRecord != nil {
		c.hooks.OnRecord(from, to, count)
	}
}
