package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover calls f, converting any panic it raises into a non-nil error that
// names the recovering context and retains the panic stack.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = Error{Name: name, Value: e, stack: debug.Stack()}
		}
	}()
	return f()
}

// Error is a recovered panic.
type Error struct {
	Name  string
	Value interface{}
	stack []byte
}

func (pe Error) Error() string {
	return fmt.Sprint(pe)
}

// Format prints the panic stack after the message under %+v.
func (pe Error) Format(f fmt.State, c rune) {
	if pe.Name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.Value)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.Name, pe.Value)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

// Unwrap returns the panic value, if it was an error.
func (pe Error) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// IsPanic returns true if err indicates a recovered panic.
func IsPanic(err error) bool {
	var pe Error
	return errors.As(err, &pe)
}

// PanicStack returns a non-empty stacktrace string if err is a recovered
// panic.
func PanicStack(err error) string {
	var pe Error
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
