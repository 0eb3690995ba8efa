package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markov/chain"
	"github.com/katalvlaran/markov/internal/logging"
)

// runCLI runs the CLI in-process and returns captured stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := execute(cmd, args)
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// linearLayout is a four-cell board with a one-face die: every walk is
// [1] -> [2] -> [3] -> [4].
const linearLayout = "size: 4\ndice_max: 1\n"

func TestTweets_Deterministic(t *testing.T) {
	path := writeFile(t, "corpus.txt", "a b.\n")

	out, _, err := runCLI(t, "tweets", "1", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "Tweet 1: a b.\nTweet 2: a b.\n", out)
}

func TestTweets_SameSeedSameOutput(t *testing.T) {
	path := writeFile(t, "corpus.txt",
		"the cat sat on the mat.\nthe dog ran to the park.\na cat and a dog met.\n")

	first, _, err := runCLI(t, "tweets", "42", "5", path)
	require.NoError(t, err)
	second, _, err := runCLI(t, "tweets", "42", "5", path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 5, strings.Count(first, "Tweet "))
}

func TestTweets_MaxWords(t *testing.T) {
	path := writeFile(t, "corpus.txt", "x x x x\n")

	out, _, err := runCLI(t, "tweets", "--max-words", "3", "7", "1", path)
	require.NoError(t, err)
	assert.Equal(t, "Tweet 1: x x x \n", out)
}

func TestTweets_WordLimit(t *testing.T) {
	path := writeFile(t, "corpus.txt", "a b.\nc d.\n")

	_, stderr, err := runCLI(t, "--log-level", "info", "tweets", "1", "1", path, "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "words=2")
	assert.Contains(t, stderr, "states=2")
}

func TestTweets_Errors(t *testing.T) {
	path := writeFile(t, "corpus.txt", "a b.\n")

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"too few args", []string{"tweets", "1", "1"}, "accepts between 3 and 4 arg(s)"},
		{"bad seed", []string{"tweets", "x", "1", path}, "invalid seed"},
		{"negative count", []string{"tweets", "1", "-2", path}, "must not be negative"},
		{"bad words", []string{"tweets", "1", "1", path, "many"}, "invalid words-to-read"},
		{"missing file", []string{"tweets", "1", "1", filepath.Join(t.TempDir(), "nope.txt")}, "the given file is not valid"},
		{"bad max words", []string{"tweets", "--max-words", "0", "1", "1", path}, "invalid max-words"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Contains(t, stderr, "Error:")
		})
	}

}

// TestTweets_EmptyModel leaves stdout clean when no sentence can start.
func TestTweets_EmptyModel(t *testing.T) {
	for name, body := range map[string]string{
		"empty":          "",
		"sentences only": "a. b.\nc.\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "corpus.txt", body)
			out, _, err := runCLI(t, "tweets", "1", "2", path)
			require.ErrorIs(t, err, chain.ErrEmptyModel)
			assert.Empty(t, out)
		})
	}
}

// TestNegativeNumbers passes negative positionals through to the commands.
func TestNegativeNumbers(t *testing.T) {
	path := writeFile(t, "corpus.txt", "a b.\n")
	layout := writeFile(t, "board.yaml", linearLayout)

	out, _, err := runCLI(t, "tweets", "-5", "1", path)
	require.NoError(t, err)
	assert.Equal(t, "Tweet 1: a b.\n", out)

	out, _, err = runCLI(t, "snakes", "-1", "1", "--layout", layout)
	require.NoError(t, err)
	assert.Equal(t, "Random Walk 1: [1] -> [2] -> [3] -> [4]\n", out)

	out, _, err = runCLI(t, "--log-level", "error", "snakes", "--layout", layout, "-9223372036854775808", "1")
	require.NoError(t, err)
	assert.Equal(t, "Random Walk 1: [1] -> [2] -> [3] -> [4]\n", out)

	out, _, err = runCLI(t, "tweets", "--", "-5", "1", path)
	require.NoError(t, err)
	assert.Equal(t, "Tweet 1: a b.\n", out)

	_, _, err = runCLI(t, "tweets", "--max-words", "-3", "-5", "1", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid max-words -3")

	_, _, err = runCLI(t, "snakes", "1", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"untouched", []string{"tweets", "1", "2", "c.txt"}, []string{"tweets", "1", "2", "c.txt"}},
		{"has dash dash", []string{"tweets", "--", "-1", "2", "c.txt"}, []string{"tweets", "--", "-1", "2", "c.txt"}},
		{"negative seed", []string{"tweets", "-1", "2", "c.txt"}, []string{"tweets", "--", "-1", "2", "c.txt"}},
		{
			"flags kept with values",
			[]string{"--log-level", "debug", "tweets", "-1", "2", "c.txt", "--max-words", "-4", "--metrics"},
			[]string{"tweets", "--log-level", "debug", "--max-words", "-4", "--metrics", "--", "-1", "2", "c.txt"},
		},
		{"inline value", []string{"snakes", "--max-length=5", "-1", "2"}, []string{"snakes", "--max-length=5", "--", "-1", "2"}},
		{"unknown command", []string{"nope", "-1"}, []string{"nope", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(newRootCmd(), tt.in))
		})
	}
}

func TestCloseModel_LogsError(t *testing.T) {
	var buf bytes.Buffer
	c, err := chain.New(chain.OrderedOps[string]())
	require.NoError(t, err)
	require.NoError(t, c.Close())

	closeModel(logging.New(&buf, slog.LevelDebug), c)
	assert.Contains(t, buf.String(), "msg=\"close model\"")
	assert.Contains(t, buf.String(), "err=")
}

func TestSnakes_LayoutFlag(t *testing.T) {
	layout := writeFile(t, "board.yaml", linearLayout)

	out, _, err := runCLI(t, "snakes", "--layout", layout, "3", "2")
	require.NoError(t, err)
	assert.Equal(t, "Random Walk 1: [1] -> [2] -> [3] -> [4]\nRandom Walk 2: [1] -> [2] -> [3] -> [4]\n", out)
}

func TestSnakes_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "markov.yaml", `
snakes:
  max_length: 2
  board:
    size: 4
    dice_max: 1
`)

	out, _, err := runCLI(t, "--config", cfg, "snakes", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "Random Walk 1: [1] -> [2] -> \n", out)

	out, _, err = runCLI(t, "--config", cfg, "snakes", "--max-length", "60", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "Random Walk 1: [1] -> [2] -> [3] -> [4]\n", out)
}

func TestSnakes_DefaultBoard(t *testing.T) {
	out, stderr, err := runCLI(t, "snakes", "7", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		prefix := "Random Walk " + string(rune('1'+i)) + ": [1] -> "
		assert.True(t, strings.HasPrefix(line, prefix), line)
		assert.LessOrEqual(t, strings.Count(line, "["), 60)
	}
	assert.Contains(t, stderr, "board built")
	assert.Contains(t, stderr, "run_id=")
	assert.Contains(t, stderr, "cells=100")
}

func TestSnakes_Metrics(t *testing.T) {
	layout := writeFile(t, "board.yaml", linearLayout)

	_, stderr, err := runCLI(t, "--metrics", "--log-level", "error", "snakes", "--layout", layout, "1", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, `markov_walks_total{model="snakes",reason="terminal"} 2`)
	assert.Contains(t, stderr, `markov_visits_total{model="snakes"} 8`)
	assert.NotContains(t, stderr, "board built")
}

func TestSnakes_Errors(t *testing.T) {
	bad := writeFile(t, "board.yaml", "size: 1\ndice_max: 6\n")
	unknown := writeFile(t, "board2.yaml", "cells: 10\n")

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"arg count", []string{"snakes", "1"}, "accepts 2 arg(s)"},
		{"bad count", []string{"snakes", "1", "many"}, "invalid count"},
		{"bad layout", []string{"snakes", "--layout", bad, "1", "1"}, "at least two cells"},
		{"unknown key", []string{"snakes", "--layout", unknown, "1", "1"}, "invalid layout document"},
		{"bad max length", []string{"snakes", "--max-length", "0", "1", "1"}, "invalid max-length"},
		{"bad log level", []string{"--log-level", "loud", "snakes", "1", "1"}, "unknown level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "markov version dev")
}
