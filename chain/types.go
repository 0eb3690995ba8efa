// Package chain declares Ref, Transition, Ops, Chain, Walk, Stats and Hooks,
// and the New constructor.
//
// Storage model:
//
//	entries[ref] = &entry{state, next: [(to, count), ...]}
//
// The registry is an arena: a Transition stores the target's Ref (an index),
// never a pointer, so a table cannot outlive or dangle relative to its target.
package chain

import (
	"cmp"
	"math/rand"
	"sync"
)

// Ref identifies one registry entry. Refs are dense indexes assigned in
// insertion order starting at 0 and are never reused.
type Ref int

// Transition is one (target, observed count) pair of a transition table.
type Transition struct {
	// To is the successor entry.
	To Ref

	// Count is how many times the transition was recorded; always ≥ 1.
	Count int
}

// Ops bundles the caller-supplied capabilities for states of type T.
//
// Only Compare is required. Missing Copy means the value itself is stored,
// missing Free/Print are no-ops, missing IsTerminal means no state is terminal.
type Ops[T any] struct {
	// Copy returns an owned copy of state. A non-nil error aborts the insert
	// and surfaces as ErrAllocation.
	Copy func(state T) (T, error)

	// Compare orders two states; the chain only tests the result against 0.
	Compare func(a, b T) int

	// Free releases an owned state. Called exactly once per entry by Close.
	Free func(state T)

	// Print emits one visited state during generation. It must not mutate state.
	Print func(state T)

	// IsTerminal reports whether a walk must stop after state.
	IsTerminal func(state T) bool
}

// OrderedOps returns Ops for any cmp.Ordered type: value copy, cmp.Compare,
// no terminal states. Callers usually set Print and IsTerminal afterwards.
func OrderedOps[T cmp.Ordered]() Ops[T] {
	return Ops[T]{Compare: cmp.Compare[T]}
}

// StopReason tells why a walk ended.
type StopReason int

const (
	// StopTerminal means the last printed state is terminal.
	StopTerminal StopReason = iota
	// StopMaxLength means the walk printed maxLength states.
	StopMaxLength
	// StopExhausted means the last printed state has no recorded successor.
	StopExhausted
)

// String returns a short lower-case label, used as a metrics label value.
func (r StopReason) String() string {
	switch r {
	case StopTerminal:
		return "terminal"
	case StopMaxLength:
		return "max_length"
	case StopExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Walk is the result of one generation call.
type Walk struct {
	// States lists the visited entries in print order (len ≥ 1).
	States []Ref

	// Stop records which condition ended the walk.
	Stop StopReason
}

// Len returns the number of visited states.
func (w *Walk) Len() int { return len(w.States) }

// Stats is a read-only snapshot of registry and table sizes.
type Stats struct {
	States       int // registry entries
	Terminal     int // entries for which IsTerminal is true
	Transitions  int // distinct (from,to) pairs over all tables
	Observations int // sum of all pair counts
}

// Hooks are optional observation callbacks. They run while the Chain holds
// its lock and must not call back into the Chain.
type Hooks struct {
	// OnAdd fires after a new entry is registered.
	OnAdd func(ref Ref)

	// OnRecord fires after a transition is recorded; count is the new count.
	OnRecord func(from, to Ref, count int)

	// OnVisit fires after a state is printed; step starts at 1.
	OnVisit func(ref Ref, step int)

	// OnStop fires once per walk with the stop reason and walk length.
	OnStop func(reason StopReason, length int)
}

// entry is one registry slot: an owned state plus its outgoing table.
type entry[T any] struct {
	state T
	next  []Transition
}

// Chain is the weighted transition model over states of type T.
//
// mu guards entries, every entry table and closed.
// rngMu guards rng; math/rand.Rand is not goroutine-safe.
type Chain[T any] struct {
	mu    sync.RWMutex
	rngMu sync.Mutex

	ops   Ops[T]
	hooks Hooks

	maxStates     int // 0 = unbounded
	maxSuccessors int // 0 = unbounded

	rng     *rand.Rand
	entries []*entry[T]
	closed  bool
}

// New creates an empty Chain over T.
//
// Returns ErrNilCompare if ops.Compare is nil and ErrOptionViolation if any
// Option carried an invalid value.
// Complexity: O(len(opts)).
func New[T any](ops Ops[T], opts ...Option) (*Chain[T], error) {
	if ops.Compare == nil {
		return nil, chainErrorf(methodNew, ErrNilCompare, "ops")
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Chain[T]{
		ops:           ops,
		hooks:         cfg.hooks,
		maxStates:     cfg.maxStates,
		maxSuccessors: cfg.maxSuccessors,
		rng:           cfg.rng,
	}, nil
}
