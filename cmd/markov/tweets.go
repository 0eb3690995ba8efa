package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/markov/chain"
	"github.com/katalvlaran/markov/corpus"
	"github.com/katalvlaran/markov/internal/logging"
)

func newTweetsCmd(a *app) *cobra.Command {
	var maxWords int

	cmd := &cobra.Command{
		Use:   "tweets <seed> <count> <corpus-path> [words-to-read]",
		Short: "Generate sentences from a text corpus",
		Long: `Learns word-to-word transitions from the corpus (whitespace separated,
one or more sentences per line) and prints count generated sentences.
A word ending in '.' ends a sentence. When words-to-read is given, only
that many words are learned.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseSeed(args[0])
			if err != nil {
				return err
			}
			count, err := parseCount("count", args[1])
			if err != nil {
				return err
			}
			words := 0
			if len(args) == 4 {
				if words, err = parseCount("words-to-read", args[3]); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("max-words") {
				a.cfg.Tweets.MaxWords = maxWords
			}
			if a.cfg.Tweets.MaxWords < 1 {
				return fmt.Errorf("invalid max-words %d: must be at least 1", a.cfg.Tweets.MaxWords)
			}

			return a.runTweets(cmd, seed, count, args[2], words)
		},
	}

	cmd.Flags().IntVar(&maxWords, "max-words", 0, "Maximum words per sentence (overrides config)")

	return cmd
}

func (a *app) runTweets(cmd *cobra.Command, seed int64, count int, path string, words int) error {
	log := logging.WithRun(a.log, a.runID, "tweets")
	out := cmd.OutOrStdout()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("the given file is not valid: %w", err)
	}
	defer f.Close()

	col, err := a.collector("tweets")
	if err != nil {
		return err
	}
	c, err := chain.New(corpus.Ops(out), chain.WithSeed(seed), chain.WithHooks(col.Hooks()))
	if err != nil {
		return err
	}
	defer closeModel(log, c)

	res, err := corpus.Build(f, c,
		corpus.WithWordLimit(words),
		corpus.WithMaxLineBytes(a.cfg.Tweets.MaxLineBytes),
	)
	if err != nil {
		return err
	}
	st := c.Stats()
	log.Info("model built",
		"path", path,
		"words", res.Words,
		"lines", res.Lines,
		"states", st.States,
		"transitions", st.Transitions,
	)

	for i := 1; i <= count; i++ {
		start, err := c.PickStart()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Tweet %d: ", i)
		w, err := c.GenerateFrom(start, a.cfg.Tweets.MaxWords)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		log.Debug("sentence generated", "index", i, "length", w.Len(), "stop", w.Stop.String())
	}

	return nil
}
