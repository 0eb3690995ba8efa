// File: select.go
// Role: Random selection engine: uniform start pick, frequency-weighted next pick.
//
// Start pick:
//   - The non-terminal candidate set is built once per call, then sampled
//     with a single draw. There is no reject-and-retry loop, so the call
//     terminates even when almost every entry is terminal.
//
// Next pick (cumulative scan):
//
//	W = Σ count; r ∈ [0, W); first pair with cumulative > r wins.
//
//	pairs    (X,3) (Y,1)
//	cum        3     4
//	r=0,1,2 → X   r=3 → Y
package chain

// PickStart draws a start entry uniformly among non-terminal entries.
//
// Errors:
//   - ErrClosed: Close was called.
//   - ErrEmptyModel: the registry is empty or every entry is terminal.
//
// Complexity:
//   - Time O(n) to build the candidate set, Space O(n).
func (c *Chain[T]) PickStart() (Ref, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pickStartLocked()
}

// PickNext draws a successor of from, weighted by observed counts.
//
// Returns:
//   - (to, true, nil) on success.
//   - (0, false, nil) when the table of from is empty ("no successor").
//
// Errors:
//   - ErrBadReference: from is not registered.
//
// Complexity:
//   - Time O(d), two passes over the table of from.
func (c *Chain[T]) PickNext(from Ref) (Ref, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.validLocked(from) {
		return 0, false, chainErrorf(methodPickNext, ErrBadReference, "ref %d", from)
	}
	to, ok := c.pickNextLocked(from)

	return to, ok, nil
}

func (c *Chain[T]) pickStartLocked() (Ref, error) {
	if c.closed {
		return 0, chainErrorf(methodPickStart, ErrClosed, "pick")
	}

	candidates := make([]Ref, 0, len(c.entries))
	for i := range c.entries {
		if !c.terminalLocked(Ref(i)) {
			candidates = append(candidates, Ref(i))
		}
	}
	if len(candidates) == 0 {
		return 0, chainErrorf(methodPickStart, ErrEmptyModel, "%d states, none non-terminal", len(c.entries))
	}

	return candidates[c.intn(len(candidates))], nil
}

func (c *Chain[T]) pickNextLocked(from Ref) (Ref, bool) {
	next := c.entries[from].next
	total := totalWeight(next)
	if total == 0 {
		return 0, false
	}

	return pickWeighted(next, c.intn(total))
}

// totalWeight sums the counts of a table.
func totalWeight(next []Transition) int {
	var w int
	for _, t := range next {
		w += t.Count
	}

	return w
}

// pickWeighted returns the target of the first pair whose cumulative count
// exceeds r. r must lie in [0, totalWeight(next)); otherwise false.
func pickWeighted(next []Transition, r int) (Ref, bool) {
	var cum int
	for _, t := range next {
		cum += t.Count
		if cum > r {
			return t.To, true
		}
	}

	return 0, false
}
