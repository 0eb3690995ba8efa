// Package markov is an in-memory toolkit for building weighted transition
// models (first-order Markov chains) over any state type and generating
// biased random walks from them.
//
// 🚀 What is markov?
//
//	A small, thread-safe library plus a CLI:
//		• chain:  generic state registry, transition counts, weighted selection
//		          and a bounded sequence generator
//		• corpus: learns word-to-word transitions from text
//		• board:  snakes-and-ladders boards as move models
//		• metrics: Prometheus counters fed by chain hooks
//
// ✨ Guarantees
//
//   - Each distinct state (by the caller's Compare) is stored once.
//   - A successor is drawn with probability count / total over its table.
//   - Walks stop at a terminal state, at the length limit, or when the
//     current state has no recorded successor.
//   - Seeded runs are reproducible.
//
// Layout:
//
//	chain/       : Chain[T], Ops[T], options, errors
//	corpus/      : tokenizer and Build for text corpora
//	board/       : Layout, Board, BuildChain
//	metrics/     : Collector, WriteText
//	cmd/markov/  : `markov tweets` and `markov snakes`
//	examples/    : runnable programs over custom state types
//
// Quick ASCII example, corpus "the cat. the dog.":
//
//	the ──1──▶ cat.
//	 └───1──▶ dog.
//
// generates "the cat." or "the dog." with equal odds.
//
//	go get github.com/katalvlaran/markov
package markov
