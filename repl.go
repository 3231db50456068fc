package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jcorbin/gostack/internal/runner"
)

func newREPLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate lines interactively",
		Long: `Repl evaluates each line entered against a single stack, printing the
stack after every line. Unknown words are skipped with a warning by default.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	cmd.Flags().String("transcript", "", "also write every printed stack to this file")
	return cmd
}

const replHelp = `Enter whitespace separated words: integers, + - * / and pop.
  :reset   clear the stack
  :help    show this help
  :quit    exit (also Ctrl-C or Ctrl-D)
`

func runREPL(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := []runner.Option{
		runner.WithOutput(cmd.OutOrStdout()),
		runner.WithTrace(st.Run.Debug),
		runner.WithUnknownWords(st.policy(runner.Skip)),
		runner.WithLogf(st.log.Leveledf("DEBUG")),
		runner.WithWarnf(st.log.Warnf),
	}
	if path, _ := cmd.Flags().GetString("transcript"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts = append(opts, runner.WithTee(f))
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// history is best-effort
	histPath := expandHome(st.REPL.History)
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	rl := repl{
		prompter: ln,
		runner:   runner.New(opts...),
		prompt:   st.REPL.Prompt,
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		errColor: color.New(color.FgRed),
	}
	if st.color {
		rl.errColor.EnableColor()
	} else {
		rl.errColor.DisableColor()
	}
	return rl.loop(cmd.Context())
}

type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type repl struct {
	prompter
	runner   *runner.Runner
	prompt   string
	out      io.Writer
	errOut   io.Writer
	errColor *color.Color
}

func (rl repl) loop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := rl.Prompt(rl.prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.AppendHistory(line)

		switch line {
		case ":quit", ":exit":
			return nil
		case ":help":
			fmt.Fprint(rl.out, replHelp)
			continue
		case ":reset":
			rl.runner.Stack().Reset()
		default:
			if err := rl.runner.EvalLine(ctx, line); ctx.Err() != nil {
				return nil
			} else if err != nil {
				fmt.Fprintln(rl.errOut, rl.errColor.Sprint(err))
			}
		}
		if err := rl.runner.WriteStack(); err != nil {
			return err
		}
	}
}
