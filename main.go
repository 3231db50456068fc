package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gostack [flags] [file...]",
		Short: "A postfix stack calculator",
		Long: `gostack evaluates postfix programs of whitespace separated words:
unsigned integers push themselves, while + - * / and pop act on the stack.

With file arguments it behaves like "gostack run"; otherwise it starts the
interactive "gostack repl".`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runREPL(cmd, args)
			}
			return runFiles(cmd, args)
		},
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newRunCmd(), newREPLCmd(), newVersionCmd())

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/"+defaultConfigName+")")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("debug", false, "log every token pushed and the resulting stack")
	flags.String("on-unknown", "", "unknown word policy (abort|skip); files abort and the repl skips by default")
	flags.Int("jobs", 1, "number of files to evaluate concurrently")
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}
