// Package chain provides a generic, thread-safe weighted transition model
// (a first-order Markov chain) over caller-defined states, and generates
// random walks biased by observed transition frequency.
//
// The Chain C = (S,T) keeps:
//
//   - An ordered registry S of unique states, deduplicated by Ops.Compare.
//     Entries keep insertion order forever and are addressed by a stable Ref
//     (an index into the registry arena).
//   - Per-entry transition tables T[s] = [(to, count), ...] in record order.
//     No table holds two pairs with the same target; every count is ≥ 1.
//
// Capabilities (Ops[T]):
//
//	Copy       func(T) (T, error) // once per new entry; error ⇒ ErrAllocation
//	Compare    func(a, b T) int   // required; only == 0 is used
//	Free       func(T)            // once per owned state, on Close
//	Print      func(T)            // once per visited state during a walk
//	IsTerminal func(T) bool       // stops walks; excluded from start picks
//
// Core Methods:
//
//	// Registry
//	FindState(state T) (Ref, bool)       // O(n) scan, first equal entry
//	AddState(state T) (Ref, error)       // insert-or-get, O(n)
//	State(ref Ref) (T, error)            // O(1)
//
//	// Transition tables
//	RecordTransition(from, to Ref) error // O(d) where d = |T[from]|
//	Successors(ref Ref) ([]Transition, error)
//
//	// Random selection
//	PickStart() (Ref, error)             // uniform over non-terminal entries
//	PickNext(from Ref) (Ref, bool, error)// weighted by transition count
//
//	// Generation
//	Generate(maxLength int) (*Walk, error)
//	GenerateFrom(start Ref, maxLength int) (*Walk, error)
//
//	// Lifecycle
//	Stats() Stats
//	Close() error
//
// Weighted selection:
//
//	W = Σ count over T[from]; draw r ∈ [0, W);
//	return the first pair (in table order) whose cumulative count > r.
//
// With pairs {(X,3),(Y,1)}: r ∈ {0,1,2} ⇒ X, r = 3 ⇒ Y. A draw equal to a
// cumulative sum belongs to the NEXT pair.
//
// Determinism:
//
//	The RNG is owned by the Chain and seeded once (WithSeed or WithRand).
//	Same seed + same build order + same start ⇒ identical walk.
//
// Concurrency:
//
//	One coarse sync.RWMutex guards the registry and every table. AddState and
//	RecordTransition hold the write lock for the whole operation; queries and
//	walks hold the read lock. The RNG has its own mutex. Callbacks run under
//	the read lock and must not mutate the Chain.
//
// Errors:
//
//	ErrAllocation     – Copy failed or a configured capacity is exhausted
//	ErrEmptyModel     – no non-terminal entry to start a walk from
//	ErrBadStartState  – GenerateFrom got an unregistered Ref
//	ErrBadReference   – any other method got an unregistered Ref
//	ErrBadLength      – maxLength < 1
//	ErrClosed         – the Chain was torn down
//	ErrNilCompare     – Ops.Compare is nil
//	ErrOptionViolation – invalid Option value
package chain
