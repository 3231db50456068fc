package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/gostack/internal/panicerr"
	"github.com/jcorbin/gostack/internal/runner"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [flags] file...",
		Short: "Evaluate programs from files",
		Long: `Run evaluates each file on its own stack, printing the final stack.
Evaluation stops at the first word that fails or that nothing recognizes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFiles,
	}
}

type fileResult struct {
	path  string
	stack string
	logs  []logLine
	err   error
}

type logLine struct {
	level string
	mess  string
}

func runFiles(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	results := make([]fileResult, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(st.Run.Jobs, len(args)))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			results[i] = runFile(ctx, path, st)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	reportResults(cmd.OutOrStdout(), st, results)
	if code := st.log.ExitCode(); code != 0 {
		return exitCode(code)
	}
	return nil
}

func runFile(ctx context.Context, path string, st *settings) (res fileResult) {
	res.path = path

	f, err := os.Open(path)
	if err != nil {
		res.err = err
		return res
	}
	defer f.Close()

	logTo := func(level string) func(mess string, args ...interface{}) {
		return func(mess string, args ...interface{}) {
			res.logs = append(res.logs, logLine{level, fmt.Sprintf(mess, args...)})
		}
	}

	var out strings.Builder
	r := runner.New(
		runner.WithInput(f),
		runner.WithOutput(&out),
		runner.WithTrace(st.Run.Debug),
		runner.WithUnknownWords(st.policy(runner.Abort)),
		runner.WithLogf(logTo("DEBUG")),
		runner.WithWarnf(logTo("WARN")),
	)
	if res.err = r.Run(ctx); res.err == nil {
		res.err = r.WriteStack()
	}
	res.stack = strings.TrimSuffix(out.String(), "\n")
	return res
}

// reportResults writes each file's final stack to out in argument order,
// logging any trace lines and errors along the way. Panic stacks are only
// logged with debug enabled.
func reportResults(out io.Writer, st *settings, results []fileResult) {
	for _, res := range results {
		for _, line := range res.logs {
			st.log.Printf(line.level, "%v", line.mess)
		}
		if panicerr.IsPanic(res.err) {
			st.log.Errorf("%s: %v", res.path, res.err)
			if st.Run.Debug {
				st.log.Printf("DEBUG", "%s", panicerr.PanicStack(res.err))
			}
			continue
		}
		if res.err != nil {
			st.log.ErrorIf(res.err)
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "%v: %v\n", res.path, res.stack)
		} else {
			fmt.Fprintln(out, res.stack)
		}
	}
}

type exitCode int

func (code exitCode) Error() string { return fmt.Sprintf("exit status %d", int(code)) }
