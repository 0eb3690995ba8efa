package corpus

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/markov/chain"
)

// defaultMaxLineBytes bounds one corpus line (the scanner buffer).
const defaultMaxLineBytes = 1 << 20

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	wordLimit    int // 0 = no limit
	maxLineBytes int

	err error
}

func defaultOptions() buildOptions {
	return buildOptions{maxLineBytes: defaultMaxLineBytes}
}

// WithWordLimit stops reading after n words.
//
//	n > 0:  read at most n words
//	n == 0: explicit no limit
//	n < 0:  ErrOptionViolation
func WithWordLimit(n int) Option {
	return func(o *buildOptions) {
		if n < 0 {
			o.setErr(fmt.Errorf("%w: word limit cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.wordLimit = n
	}
}

// WithMaxLineBytes sets the longest accepted line; n must be > 0.
func WithMaxLineBytes(n int) Option {
	return func(o *buildOptions) {
		if n <= 0 {
			o.setErr(fmt.Errorf("%w: max line bytes must be positive (%d)", ErrOptionViolation, n))
			return
		}
		o.maxLineBytes = n
	}
}

func (o *buildOptions) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Result summarizes one Build call.
type Result struct {
	Words int // words read and registered (duplicates included)
	Lines int // lines read, including the partially read last one
}

// Build reads r and feeds c: every word is registered with AddState and every
// pair of adjacent words on the same line, whose first word does not end a
// sentence, is recorded with RecordTransition.
//
// Build stops at EOF or when the word limit is reached. On error the words
// and transitions committed so far stay in c.
//
// Complexity: O(N·n) for N corpus words over n distinct words (AddState scans).
func Build(r io.Reader, c *chain.Chain[string], opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	var res Result
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(o.maxLineBytes, bufio.MaxScanTokenSize)), o.maxLineBytes)

	for !o.limitReached(res.Words) && sc.Scan() {
		res.Lines++

		var prev chain.Ref
		var prevWord string
		hasPrev := false
		for _, word := range Tokenize(sc.Text()) {
			if o.limitReached(res.Words) {
				break
			}
			cur, err := c.AddState(word)
			if err != nil {
				return res, fmt.Errorf("corpus: line %d: add %q: %w", res.Lines, word, err)
			}
			if hasPrev && !IsSentenceEnd(prevWord) {
				if err := c.RecordTransition(prev, cur); err != nil {
					return res, fmt.Errorf("corpus: line %d: record %q→%q: %w", res.Lines, prevWord, word, err)
				}
			}
			prev, prevWord, hasPrev = cur, word, true
			res.Words++
		}
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("%w: line %d: %v", ErrRead, res.Lines+1, err)
	}

	return res, nil
}

func (o *buildOptions) limitReached(words int) bool {
	return o.wordLimit > 0 && words >= o.wordLimit
}
