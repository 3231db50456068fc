package main

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gostack/internal/runner"
)

type scriptedPrompter struct {
	lines   []string
	prompts []string
	history []string

	// interrupt, if set, is called once the line at interruptAt is read.
	interrupt   func()
	interruptAt int
}

func (sp *scriptedPrompter) Prompt(prompt string) (string, error) {
	sp.prompts = append(sp.prompts, prompt)
	if len(sp.lines) == 0 {
		return "", io.EOF
	}
	line := sp.lines[0]
	sp.lines = sp.lines[1:]
	if sp.interrupt != nil && len(sp.prompts)-1 == sp.interruptAt {
		sp.interrupt()
	}
	return line, nil
}

func (sp *scriptedPrompter) AppendHistory(item string) {
	sp.history = append(sp.history, item)
}

func Test_repl(t *testing.T) {
	var out, errOut strings.Builder
	var warnings []string

	sp := &scriptedPrompter{lines: []string{
		":help",
		"4 5",
		"",
		"+",
		"   x   ",
		"pop pop",
		"1 0 /",
		"7",
		":reset",
		":quit",
		"8",
	}}
	errColor := color.New(color.FgRed)
	errColor.DisableColor()
	rl := repl{
		prompter: sp,
		runner: runner.New(
			runner.WithOutput(&out),
			runner.WithUnknownWords(runner.Skip),
			runner.WithWarnf(func(mess string, args ...interface{}) {
				warnings = append(warnings, mess)
			}),
		),
		prompt:   "> ",
		out:      &out,
		errOut:   &errOut,
		errColor: errColor,
	}
	require.NoError(t, rl.loop(context.Background()))

	assert.Equal(t, replHelp+lines(
		"4 5",
		"9",
		"9",
		"",
		"",
		"7",
		"",
	), out.String())
	assert.Equal(t, lines(
		`<stdin>:4: "pop": not enough values on the stack`,
		`<stdin>:5: "/": division by zero`,
	), errOut.String())
	assert.Equal(t, []string{"couldn't parse %q, ignoring"}, warnings)
	assert.Equal(t, []string{":help", "4 5", "+", "x", "pop pop", "1 0 /", "7", ":reset", ":quit"}, sp.history)
	assert.Equal(t, []string{"8"}, sp.lines, "expected :quit to stop reading")
	assert.Len(t, sp.prompts, 10)
}

func Test_repl_eof(t *testing.T) {
	var out strings.Builder
	sp := &scriptedPrompter{lines: []string{"2 3 *"}}
	rl := repl{
		prompter: sp,
		runner:   runner.New(runner.WithOutput(&out)),
		prompt:   ">>> ",
		out:      &out,
		errOut:   io.Discard,
		errColor: color.New(color.FgRed),
	}
	require.NoError(t, rl.loop(context.Background()))
	assert.Equal(t, "6\n", out.String())
	assert.Equal(t, []string{">>> ", ">>> "}, sp.prompts)
}

func Test_repl_canceled(t *testing.T) {
	newREPL := func(sp *scriptedPrompter, out, errOut io.Writer) repl {
		errColor := color.New(color.FgRed)
		errColor.DisableColor()
		return repl{
			prompter: sp,
			runner:   runner.New(runner.WithOutput(out)),
			prompt:   ">>> ",
			out:      out,
			errOut:   errOut,
			errColor: errColor,
		}
	}

	t.Run("before prompting", func(t *testing.T) {
		var out, errOut strings.Builder
		sp := &scriptedPrompter{lines: []string{"1", "2 +", "3"}}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, newREPL(sp, &out, &errOut).loop(ctx))
		assert.Empty(t, sp.prompts, "expected no prompt once interrupted")
		assert.Equal(t, []string{"1", "2 +", "3"}, sp.lines)
		assert.Equal(t, "", out.String())
		assert.Equal(t, "", errOut.String())
	})

	t.Run("while reading", func(t *testing.T) {
		var out, errOut strings.Builder
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sp := &scriptedPrompter{
			lines:       []string{"4 5", "+", "6"},
			interrupt:   cancel,
			interruptAt: 1,
		}

		require.NoError(t, newREPL(sp, &out, &errOut).loop(ctx))
		assert.Equal(t, "4 5\n", out.String(), "expected the interrupted line to not be echoed")
		assert.Equal(t, "", errOut.String(), "expected interruption to not be reported as an error")
		assert.Equal(t, []string{"6"}, sp.lines)
	})
}
