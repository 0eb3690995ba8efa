package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/markov/board"
	"github.com/katalvlaran/markov/chain"
	"github.com/katalvlaran/markov/internal/logging"
)

func newSnakesCmd(a *app) *cobra.Command {
	var (
		maxLength  int
		layoutPath string
	)

	cmd := &cobra.Command{
		Use:   "snakes <seed> <count>",
		Short: "Simulate games of snakes and ladders",
		Long: `Builds the board's move model (one move per die face, ladders and
snakes taken immediately) and prints count random walks from cell 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseSeed(args[0])
			if err != nil {
				return err
			}
			count, err := parseCount("count", args[1])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-length") {
				a.cfg.Snakes.MaxLength = maxLength
			}
			if a.cfg.Snakes.MaxLength < 1 {
				return fmt.Errorf("invalid max-length %d: must be at least 1", a.cfg.Snakes.MaxLength)
			}
			if layoutPath != "" {
				layout, err := board.LoadLayoutFile(layoutPath)
				if err != nil {
					return err
				}
				a.cfg.Snakes.Board = layout
			}

			return a.runSnakes(cmd, seed, count)
		},
	}

	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Maximum cells per walk (overrides config)")
	cmd.Flags().StringVar(&layoutPath, "layout", "", "YAML board layout file (overrides config)")

	return cmd
}

func (a *app) runSnakes(cmd *cobra.Command, seed int64, count int) error {
	log := logging.WithRun(a.log, a.runID, "snakes")
	out := cmd.OutOrStdout()

	b, err := board.New(a.cfg.Snakes.Board)
	if err != nil {
		return err
	}
	col, err := a.collector("snakes")
	if err != nil {
		return err
	}
	c, err := chain.New(b.Ops(out), chain.WithSeed(seed), chain.WithHooks(col.Hooks()))
	if err != nil {
		return err
	}
	defer closeModel(log, c)

	refs, err := b.BuildChain(c)
	if err != nil {
		return err
	}
	st := c.Stats()
	log.Info("board built", "cells", b.Size(), "dice_max", b.DiceMax(), "transitions", st.Transitions)

	for i := 1; i <= count; i++ {
		fmt.Fprintf(out, "Random Walk %d: ", i)
		w, err := c.GenerateFrom(refs[0], a.cfg.Snakes.MaxLength)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		log.Debug("walk generated", "index", i, "length", w.Len(), "stop", w.Stop.String())
	}

	return nil
}
