// File: generate.go
// Role: Sequence generator: walks the model from a start entry until a
//       terminal entry, an exhausted table, or the length bound.
//
// Phases:
//
//	phaseStart   → phaseWalking   start resolved (given or PickStart)
//	phaseWalking → phaseWalking   print, not terminal, below bound, successor found
//	phaseWalking → phaseDone      print, then terminal | bound reached | no successor
//
// Guarantees: 1 ≤ prints ≤ maxLength per call; no print after phaseDone.
package chain

// walkPhase is the generator state.
type walkPhase int

const (
	phaseStart walkPhase = iota
	phaseWalking
	phaseDone
)

// Generate walks from a start entry drawn by PickStart.
//
// Errors:
//   - ErrBadLength: maxLength < 1.
//   - ErrClosed: Close was called.
//   - ErrEmptyModel: no non-terminal entry exists.
func (c *Chain[T]) Generate(maxLength int) (*Walk, error) {
	if maxLength < 1 {
		return nil, chainErrorf(methodGenerate, ErrBadLength, "got %d", maxLength)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	start, err := c.pickStartLocked()
	if err != nil {
		return nil, err
	}

	return c.walkLocked(start, maxLength), nil
}

// GenerateFrom walks from the given start entry. A terminal start is
// allowed; it is printed and the walk stops.
//
// Errors:
//   - ErrBadLength: maxLength < 1.
//   - ErrClosed: Close was called.
//   - ErrBadStartState: start is not registered.
func (c *Chain[T]) GenerateFrom(start Ref, maxLength int) (*Walk, error) {
	if maxLength < 1 {
		return nil, chainErrorf(methodGenerateFrom, ErrBadLength, "got %d", maxLength)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, chainErrorf(methodGenerateFrom, ErrClosed, "start %d", start)
	}
	if !c.validLocked(start) {
		return nil, chainErrorf(methodGenerateFrom, ErrBadStartState, "ref %d", start)
	}

	return c.walkLocked(start, maxLength), nil
}

// walkLocked runs the phase machine. Caller holds mu (read) and has
// validated start and maxLength.
//
// Complexity: O(L·d) for a walk of length L over tables of size ≤ d.
func (c *Chain[T]) walkLocked(start Ref, maxLength int) *Walk {
	walk := &Walk{States: make([]Ref, 0, min(maxLength, len(c.entries)))}
	phase := phaseStart
	cur := start
	step := 0

	for phase != phaseDone {
		switch phase {
		case phaseStart:
			step = 1
			phase = phaseWalking

		case phaseWalking:
			c.visitLocked(cur, step)
			walk.States = append(walk.States, cur)

			switch {
			case c.terminalLocked(cur):
				walk.Stop = StopTerminal
				phase = phaseDone
			case step >= maxLength:
				walk.Stop = StopMaxLength
				phase = phaseDone
			default:
				next, ok := c.pickNextLocked(cur)
				if !ok {
					walk.Stop = StopExhausted
					phase = phaseDone
					break
				}
				cur = next
				step++
			}
		}
	}

	if c.hooks.OnStop != nil {
		c.hooks.OnStop(walk.Stop, len(walk.States))
	}

	return walk
}

// visitLocked prints the state at ref and fires Hooks.OnVisit.
func (c *Chain[T]) visitLocked(ref Ref, step int) {
	if c.ops.Print != nil {
		c.ops.Print(c.entries[ref].state)
	}
	if c.hooks.OnVisit != nil {
		c.hooks.OnVisit(ref, step)
	}
}
