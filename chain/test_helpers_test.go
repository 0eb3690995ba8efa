// SPDX-License-Identifier: MIT
// Package chain_test contains shared fixtures for markov/chain tests.
//
// Purpose:
//   - Provide a word-like string model (terminal = ends with ".") with a
//     recording printer, so tests can assert printed output byte-for-byte.
//   - Keep magic numbers out of test bodies.

package chain_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/markov/chain"
	"github.com/stretchr/testify/require"
)

// Common states used across chain tests.
const (
	StateA    = "a"
	StateB    = "b"
	StateC    = "c"
	StateX    = "X"
	StateY    = "Y"
	StateBEnd = "b."
	StateCEnd = "c."
)

// Common sizes and seeds.
const (
	Seed42      = 42
	Seed7       = 7
	Draws       = 40000
	MaxLen5     = 5
	MaxLen20    = 20
	NConcurrent = 64
)

// recorder collects printed states.
type recorder struct {
	sb     strings.Builder
	states []string
}

// print mimics the text generator: words separated by spaces, no space
// after a sentence end.
func (r *recorder) print(s string) {
	r.states = append(r.states, s)
	if isEnd(s) {
		r.sb.WriteString(s)
		return
	}
	r.sb.WriteString(s)
	r.sb.WriteString(" ")
}

func (r *recorder) String() string { return r.sb.String() }

func isEnd(s string) bool { return strings.HasSuffix(s, ".") }

// wordOps returns string Ops printing into rec (rec may be nil).
func wordOps(rec *recorder) chain.Ops[string] {
	ops := chain.OrderedOps[string]()
	ops.IsTerminal = isEnd
	if rec != nil {
		ops.Print = rec.print
	}

	return ops
}

// newWordChain builds an empty string chain and fails the test on error.
func newWordChain(t *testing.T, rec *recorder, opts ...chain.Option) *chain.Chain[string] {
	t.Helper()
	c, err := chain.New(wordOps(rec), opts...)
	require.NoError(t, err)

	return c
}

// mustAdd registers states in order and returns their refs.
func mustAdd(t *testing.T, c *chain.Chain[string], states ...string) []chain.Ref {
	t.Helper()
	refs := make([]chain.Ref, len(states))
	for i, s := range states {
		ref, err := c.AddState(s)
		require.NoError(t, err, "AddState(%q)", s)
		refs[i] = ref
	}

	return refs
}

// mustRecord records from→to n times.
func mustRecord(t *testing.T, c *chain.Chain[string], from, to chain.Ref, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, c.RecordTransition(from, to), "RecordTransition(%d,%d)", from, to)
	}
}
