// SPDX-License-Identifier: MIT
// Package: markov/chain
//
// options.go: functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • WithRand panics on nil to surface programmer error early.
//   • Numeric limits record a violation that New returns as ErrOptionViolation,
//     since they usually come from user input (flags, config files).
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package chain

import (
	"fmt"
	"math/rand"
)

// Option customizes a Chain before it is returned by New.
type Option func(*config)

// config aggregates all knobs resolved by New.
type config struct {
	rng           *rand.Rand
	hooks         Hooks
	maxStates     int
	maxSuccessors int

	// first violation recorded while applying options
	err error
}

// newConfig applies opts in order over deterministic defaults
// (rng seeded with defaultSeed, no hooks, no capacity limits).
func newConfig(opts ...Option) (config, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return config{}, cfg.err
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultSeed)
	}

	return cfg, nil
}

// WithSeed seeds the Chain's RNG. Use it once, at construction.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand hands the Chain an existing RNG. The Chain serializes its own
// draws, but r must not be used elsewhere concurrently. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("chain: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithHooks installs observation callbacks. Nil fields stay no-ops.
func WithHooks(h Hooks) Option {
	return func(c *config) {
		c.hooks = h
	}
}

// WithMaxStates bounds the registry size; AddState beyond it fails with
// ErrAllocation.
//
//	n > 0:  limit to n entries
//	n == 0: explicit no limit
//	n < 0:  ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.recordErr(fmt.Errorf("%w: max states cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		c.maxStates = n
	}
}

// WithMaxSuccessors bounds every transition table; recording a new target
// beyond it fails with ErrAllocation. Same value policy as WithMaxStates.
func WithMaxSuccessors(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.recordErr(fmt.Errorf("%w: max successors cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		c.maxSuccessors = n
	}
}

// recordErr keeps the first violation only.
func (c *config) recordErr(err error) {
	if c.err == nil {
		c.err = err
	}
}
