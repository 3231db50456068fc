package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gostack/arith"
	"github.com/jcorbin/gostack/internal/fileinput"
	"github.com/jcorbin/gostack/internal/flushio"
	"github.com/jcorbin/gostack/internal/panicerr"
	"github.com/jcorbin/gostack/machine"
)

// Runner feeds words from its input through a recognizer onto a stack.
type Runner struct {
	in    fileinput.Input
	out   flushio.WriteFlusher
	reg   machine.Recognizer
	stack *machine.Stack

	logfn  func(mess string, args ...interface{})
	warnfn func(mess string, args ...interface{})

	trace   bool
	unknown Policy
	lines   int
}

// New creates a runner; unless configured otherwise it recognizes the
// arith vocabulary, aborts on unknown words, and discards output.
func New(opts ...Option) *Runner {
	var r Runner
	Options(opts...).apply(&r)
	if r.reg == nil {
		r.reg = arith.Vocabulary()
	}
	if r.stack == nil {
		r.stack = &machine.Stack{}
	}
	if r.out == nil {
		r.out = flushio.NewWriteFlusher(io.Discard)
	}
	return &r
}

// Stack returns the stack that the runner pushes onto.
func (r *Runner) Stack() *machine.Stack { return r.stack }

// Run evaluates every word of the runner's input, stopping at the first
// error. Returns nil once all input has been consumed.
func (r *Runner) Run(ctx context.Context) error {
	return panicerr.Recover("runner", func() error {
		return r.evalInput(ctx, &r.in)
	})
}

// EvalLine evaluates one line of input against the runner's stack. Words
// after a failed word are discarded.
func (r *Runner) EvalLine(ctx context.Context, line string) error {
	r.lines++
	in := fileinput.Input{Queue: []io.Reader{
		fileinput.NamedReaderAt("<stdin>", r.lines, strings.NewReader(line)),
	}}
	return panicerr.Recover("runner", func() error {
		return r.evalInput(ctx, &in)
	})
}

// WriteStack writes the rendered stack and a newline to the output, and
// flushes it.
func (r *Runner) WriteStack() error {
	if _, err := fmt.Fprintln(r.out, r.stack.String()); err != nil {
		return err
	}
	return r.out.Flush()
}

func (r *Runner) evalInput(ctx context.Context, in *fileinput.Input) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		word, err := in.ScanWord()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if err := r.eval(word); err != nil {
			return err
		}
	}
}

func (r *Runner) eval(word fileinput.Word) error {
	tok, ok := machine.Recognize(r.reg, word.Text)
	if !ok {
		if r.unknown == Skip {
			r.warnf("couldn't parse %q, ignoring", word.Text)
			return nil
		}
		return &WordError{word, ErrUnrecognized}
	}
	if err := r.stack.Push(tok); err != nil {
		return &WordError{word, err}
	}
	if r.trace {
		r.logf("push %+v -- s:[%v]", tok, r.stack)
	}
	return nil
}

func (r *Runner) logf(mess string, args ...interface{}) {
	if r.logfn != nil {
		r.logfn(mess, args...)
	}
}

func (r *Runner) warnf(mess string, args ...interface{}) {
	if r.warnfn != nil {
		r.warnfn(mess, args...)
	}
}
