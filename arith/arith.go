// Package arith provides a vocabulary of signed 64-bit integer arithmetic.
package arith

import (
	"errors"
	"strconv"

	"github.com/jcorbin/gostack/machine"
)

// ErrDivisionByZero is returned by Div when its divisor is 0; both operands
// have been popped by then.
var ErrDivisionByZero = errors.New("division by zero")

// Integer is an operand.
type Integer int64

func (Integer) Apply(*machine.Stack) (machine.Outcome, error) { return machine.NotCallable, nil }

func (n Integer) String() string { return strconv.FormatInt(int64(n), 10) }

// Add pops b then a, pushing a + b.
type Add struct{}

// Sub pops b then a, pushing a - b.
type Sub struct{}

// Mul pops b then a, pushing a * b.
type Mul struct{}

// Div pops b then a, pushing a / b truncated toward zero.
type Div struct{}

// Drop pops and discards the top of the stack.
type Drop struct{}

func (Add) Apply(s *machine.Stack) (machine.Outcome, error) {
	return binary(s, func(a, b Integer) (Integer, error) { return a + b, nil })
}

func (Sub) Apply(s *machine.Stack) (machine.Outcome, error) {
	return binary(s, func(a, b Integer) (Integer, error) { return a - b, nil })
}

func (Mul) Apply(s *machine.Stack) (machine.Outcome, error) {
	return binary(s, func(a, b Integer) (Integer, error) { return a * b, nil })
}

func (Div) Apply(s *machine.Stack) (machine.Outcome, error) {
	return binary(s, func(a, b Integer) (Integer, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	})
}

func (Drop) Apply(s *machine.Stack) (machine.Outcome, error) {
	if _, err := s.Pop(); err != nil {
		return machine.Applied, err
	}
	return machine.Applied, nil
}

func (Add) String() string  { return "+" }
func (Sub) String() string  { return "-" }
func (Mul) String() string  { return "*" }
func (Div) String() string  { return "/" }
func (Drop) String() string { return "pop" }

func binary(s *machine.Stack, op func(a, b Integer) (Integer, error)) (machine.Outcome, error) {
	bt, err := s.Pop()
	if err != nil {
		return machine.Applied, err
	}
	at, err := s.Pop()
	if err != nil {
		return machine.Applied, err
	}
	a, err := machine.Cast[Integer](at)
	if err != nil {
		return machine.Applied, err
	}
	b, err := machine.Cast[Integer](bt)
	if err != nil {
		return machine.Applied, err
	}
	c, err := op(a, b)
	if err != nil {
		return machine.Applied, err
	}
	return machine.Applied, s.Push(machine.NewToken(c))
}
