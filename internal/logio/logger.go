package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Logger implements a leveled logging facility around an output stream.
// It is safe to use from multiple goroutines.
type Logger struct {
	sync.Mutex
	output   io.Writer
	buf      bytes.Buffer
	color    bool
	exitCode int
}

var levelColors = map[string]*color.Color{
	"ERROR": color.New(color.FgRed, color.Bold),
	"WARN":  color.New(color.FgYellow),
	"DEBUG": color.New(color.FgBlue),
}

// New creates a logger writing to out.
func New(out io.Writer) *Logger {
	return &Logger{output: out}
}

// SetColor enables or disables colorizing level prefixes.
func (log *Logger) SetColor(on bool) {
	log.Lock()
	defer log.Unlock()
	log.color = on
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%+v", err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	log.printf("ERROR", mess, args...)
	log.exitCode = 1
}

// Warnf is `Printf("WARN", ...)`.
func (log *Logger) Warnf(mess string, args ...interface{}) {
	log.Printf("WARN", mess, args...)
}

// Printf prints a line to the output stream like "level: message...\n".
// An io error is retained as exit code 2.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil && log.exitCode == 0 {
		log.exitCode = 2
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		return nil
	}
	if level != "" {
		if c := levelColors[level]; c != nil && log.color {
			c.EnableColor()
			log.buf.WriteString(c.Sprint(level))
		} else {
			log.buf.WriteString(level)
		}
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	if err != nil {
		log.buf.Reset()
	}
	return err
}
