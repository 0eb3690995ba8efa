package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPickWeighted_Boundaries pins the cumulative-scan boundary: a draw equal
// to a cumulative sum belongs to the NEXT pair.
func TestPickWeighted_Boundaries(t *testing.T) {
	const x, y, z Ref = 10, 20, 30
	next := []Transition{{To: x, Count: 3}, {To: y, Count: 1}, {To: z, Count: 2}}
	// cumulative: 3, 4, 6

	cases := []struct {
		r    int
		want Ref
	}{
		{0, x}, {1, x}, {2, x},
		{3, y}, // r == cum(X)
		{4, z}, // r == cum(Y)
		{5, z},
	}
	for _, tc := range cases {
		got, ok := pickWeighted(next, tc.r)
		assert.True(t, ok, "r=%d", tc.r)
		assert.Equal(t, tc.want, got, "r=%d", tc.r)
	}

	_, ok := pickWeighted(next, 6)
	assert.False(t, ok, "r == W is out of range")
	_, ok = pickWeighted(nil, 0)
	assert.False(t, ok, "empty table has no successor")
}

// TestPickWeighted_EqualWeights resolves ties by record order.
func TestPickWeighted_EqualWeights(t *testing.T) {
	next := []Transition{{To: 1, Count: 1}, {To: 2, Count: 1}}

	got, _ := pickWeighted(next, 0)
	assert.Equal(t, Ref(1), got, "first-recorded transition wins at r=0")
	got, _ = pickWeighted(next, 1)
	assert.Equal(t, Ref(2), got)
}

// TestTotalWeight sums counts.
func TestTotalWeight(t *testing.T) {
	assert.Equal(t, 0, totalWeight(nil))
	assert.Equal(t, 6, totalWeight([]Transition{{Count: 1}, {Count: 5}}))
}

// TestStopReason_String covers metric label values.
func TestStopReason_String(t *testing.T) {
	assert.Equal(t, "terminal", StopTerminal.String())
	assert.Equal(t, "max_length", StopMaxLength.String())
	assert.Equal(t, "exhausted", StopExhausted.String())
	assert.Equal(t, "unknown", StopReason(99).String())
}
