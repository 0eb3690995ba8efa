package corpus

import (
	"io"
	"strings"

	"github.com/katalvlaran/markov/chain"
)

// sentenceEnd marks the last word of a sentence.
const sentenceEnd = "."

// IsSentenceEnd reports whether word ends a sentence (its last byte is '.').
func IsSentenceEnd(word string) bool {
	return strings.HasSuffix(word, sentenceEnd)
}

// Ops returns the word capabilities. Print writes each word to w followed
// by a space, except sentence ends which are written bare, so a walk renders
// as "w1 w2 ... wn." on one line. Write errors are ignored, as with fmt.Print.
//
// Strings are immutable, so Copy and Free are left nil.
func Ops(w io.Writer) chain.Ops[string] {
	return chain.Ops[string]{
		Compare:    strings.Compare,
		IsTerminal: IsSentenceEnd,
		Print: func(word string) {
			if IsSentenceEnd(word) {
				_, _ = io.WriteString(w, word)
				return
			}
			_, _ = io.WriteString(w, word+" ")
		},
	}
}

// Tokenize splits line into words on ' ', '\n' and '\r'. Empty fields are dropped.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\r'
	})
}
