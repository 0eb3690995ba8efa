// Package corpus turns plain text into a chain.Chain[string] of words and
// supplies the word capabilities used to print generated sentences.
//
// What:
//
//   - Tokenize splits a line on ' ', '\n' and '\r' only (tabs stay inside words).
//   - Build reads a corpus line by line, registers every word and records
//     prev→cur for adjacent words of the same line.
//   - Ops provides Compare/Print/IsTerminal for words; a word ending in '.'
//     ends a sentence.
//
// Rules:
//
//   - Adjacency never crosses a line break.
//   - A sentence-ending word gets no successor, so every walk that reaches
//     one stops there.
//   - WithWordLimit(n) stops reading after n words (0 = whole corpus).
//
// Errors:
//
//   - ErrOptionViolation: invalid option value (e.g. negative word limit).
//   - ErrRead: the underlying reader failed (wrapping the cause).
//   - chain errors (ErrAllocation, ...) propagate wrapped.
package corpus
