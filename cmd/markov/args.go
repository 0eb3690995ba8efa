package main

import (
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// negativeNumber matches positional integers such as a negative seed, which
// pflag would otherwise parse as shorthand flags.
var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// execute normalizes args for root and runs it.
func execute(root *cobra.Command, args []string) error {
	root.SetArgs(normalizeArgs(root, args))
	return root.Execute()
}

// normalizeArgs rewrites args so negative numbers reach the subcommand as
// positionals:
//
//	tweets -5 1 corpus.txt --max-words 3
//	tweets --max-words 3 -- -5 1 corpus.txt
//
// Flag values are left in place, so "--max-words -3" still reaches the flag.
// Args already containing "--", or without negative numbers, are returned as is.
func normalizeArgs(root *cobra.Command, args []string) []string {
	if slices.Contains(args, "--") || !slices.ContainsFunc(args, negativeNumber.MatchString) {
		return args
	}
	cmd, _, err := root.Find(args)
	if err != nil || cmd == root {
		return args
	}
	path := strings.Fields(cmd.CommandPath())[1:]

	var words, flags, positionals []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case negativeNumber.MatchString(a):
			positionals = append(positionals, a)
		case strings.HasPrefix(a, "--"):
			flags = append(flags, a)
			if !strings.Contains(a, "=") && takesValue(cmd.Flag(a[2:])) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case strings.HasPrefix(a, "-") && len(a) > 1:
			flags = append(flags, a)
			if len(a) == 2 && takesValue(shorthand(cmd, a[1:])) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case len(words) < len(path) && a == path[len(words)]:
			words = append(words, a)
		default:
			positionals = append(positionals, a)
		}
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, words...)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positionals...)
}

// shorthand looks a one-letter flag up on cmd and its parents.
func shorthand(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().ShorthandLookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().ShorthandLookup(name)
}

func takesValue(f *pflag.Flag) bool {
	return f != nil && f.NoOptDefVal == ""
}
