// Command markov builds weighted transition models and prints random walks
// over them: sentences learned from a text corpus, or games of snakes and
// ladders.
package main

import "os"

func main() {
	if err := execute(newRootCmd(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
