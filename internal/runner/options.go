package runner

import (
	"io"

	"github.com/jcorbin/gostack/internal/flushio"
	"github.com/jcorbin/gostack/machine"
)

// Option configures a Runner.
type Option interface{ apply(r *Runner) }

// Options combines any number of options into one; nils are skipped.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(r *Runner) {
	for _, opt := range opts {
		opt.apply(r)
	}
}

// WithRegistry sets the recognizer used to turn words into tokens; any
// machine.Recognizer works, usually a *machine.Registry.
func WithRegistry(reg machine.Recognizer) Option { return registryOption{reg} }

// WithStack sets the stack that tokens are pushed onto.
func WithStack(stack *machine.Stack) Option { return stackOption{stack} }

// WithInput queues readers to be scanned by Run.
func WithInput(rs ...io.Reader) Option { return inputOption(rs) }

// WithOutput sets where WriteStack writes, replacing any prior output.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee adds an additional output stream, e.g. a transcript file.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithLogf sets the logging function used for trace output.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }

// WithWarnf sets the logging function used to report skipped words.
func WithWarnf(warnfn func(mess string, args ...interface{})) Option { return warnfnOption(warnfn) }

// WithTrace enables logging every pushed token and the resulting stack.
func WithTrace(trace bool) Option { return traceOption(trace) }

// WithUnknownWords sets the policy for words that nothing recognizes.
func WithUnknownWords(policy Policy) Option { return policy }

type registryOption struct{ machine.Recognizer }
type stackOption struct{ *machine.Stack }
type inputOption []io.Reader
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type logfnOption func(mess string, args ...interface{})
type warnfnOption func(mess string, args ...interface{})
type traceOption bool

func (o registryOption) apply(r *Runner) { r.reg = o.Recognizer }
func (o stackOption) apply(r *Runner)    { r.stack = o.Stack }
func (o inputOption) apply(r *Runner)    { r.in.Queue = append(r.in.Queue, o...) }
func (o logfnOption) apply(r *Runner)    { r.logfn = o }
func (o warnfnOption) apply(r *Runner)   { r.warnfn = o }
func (o traceOption) apply(r *Runner)    { r.trace = bool(o) }
func (p Policy) apply(r *Runner)         { r.unknown = p }

func (o outputOption) apply(r *Runner) {
	if r.out != nil {
		r.out.Flush()
	}
	r.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(r *Runner) {
	r.out = flushio.WriteFlushers(r.out, flushio.NewWriteFlusher(o.Writer))
}
