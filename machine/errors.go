package machine

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEnoughValues is returned by Pop, and so by any operator, when the
	// stack runs out of tokens.
	ErrNotEnoughValues = errors.New("not enough values on the stack")

	// ErrWrongType matches any *WrongTypeError under errors.Is.
	ErrWrongType = errors.New("token is not the expected type")

	// ErrEmptyToken is returned when pushing a Token that holds no Value.
	ErrEmptyToken = errors.New("empty token")
)

// WrongTypeError reports an operand that could not be downcast to the kind
// an operator expected. It carries the offending token so that callers may
// report what was found.
type WrongTypeError struct {
	Token Token
	Want  string
}

func (err *WrongTypeError) Error() string {
	if err.Want == "" {
		return fmt.Sprintf("%v: %+v", ErrWrongType, err.Token)
	}
	return fmt.Sprintf("%v: want %v, have %+v", ErrWrongType, err.Want, err.Token)
}

func (err *WrongTypeError) Is(target error) bool { return target == ErrWrongType }
