package machine

import (
	"fmt"
	"reflect"
)

// Outcome reports what a Value did when applied to a Stack.
type Outcome uint8

const (
	// Applied means the value performed its effect on the stack, popping any
	// operands it needed and pushing any result.
	Applied Outcome = iota

	// NotCallable means the value is plain data: the stack must store the
	// token that carried it, unmodified.
	NotCallable
)

func (out Outcome) String() string {
	switch out {
	case Applied:
		return "applied"
	case NotCallable:
		return "not callable"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(out))
	}
}

// Value is anything that may live on a Stack.
//
// Apply gives the value a chance to act on the stack. Operands return
// NotCallable without touching the stack; they must not push themselves,
// since Stack.Push already stores them. Operators pop their operands, push
// their result, and return Applied.
type Value interface {
	Apply(s *Stack) (Outcome, error)
}

// Kinder may be implemented by a Value to name its kind; otherwise the
// dynamic Go type name is used.
type Kinder interface {
	Kind() string
}

// Token is a type-erased container for exactly one Value.
type Token struct {
	v Value
}

// NewToken wraps v in a Token.
func NewToken(v Value) Token { return Token{v} }

// Empty returns true if the token holds no value.
func (tok Token) Empty() bool { return tok.v == nil }

// Kind names the concrete kind of the held value.
func (tok Token) Kind() string {
	if tok.v == nil {
		return "<empty>"
	}
	return kindOf(tok.v)
}

func (tok Token) String() string {
	if tok.v == nil {
		return "<empty>"
	}
	return fmt.Sprint(tok.v)
}

// Format implements fmt.Formatter: %+v renders the kind alongside the value,
// as in "Integer(4)".
func (tok Token) Format(f fmt.State, c rune) {
	if c == 'v' && f.Flag('+') && tok.v != nil {
		fmt.Fprintf(f, "%v(%v)", tok.Kind(), tok.v)
		return
	}
	if c == 'q' {
		fmt.Fprintf(f, "%q", tok.String())
		return
	}
	fmt.Fprint(f, tok.String())
}

// Cast downcasts the token to the concrete kind T.
// The token should be considered consumed: on success its value is returned,
// otherwise a *WrongTypeError is returned that carries the original token.
func Cast[T Value](tok Token) (T, error) {
	if v, ok := tok.v.(T); ok {
		return v, nil
	}
	var zero T
	return zero, &WrongTypeError{Token: tok, Want: kindOfType[T]()}
}

// Peek reports whether the token holds a T, returning it if so, without
// consuming the token.
func Peek[T Value](tok Token) (T, bool) {
	v, ok := tok.v.(T)
	return v, ok
}

func kindOf(v Value) string {
	if k, ok := v.(Kinder); ok {
		return k.Kind()
	}
	return typeName(reflect.TypeOf(v))
}

func kindOfType[T Value]() string {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if k := typ.Kind(); k != reflect.Pointer && k != reflect.Interface {
		var zero T
		if kn, ok := any(zero).(Kinder); ok {
			return kn.Kind()
		}
	}
	return typeName(typ)
}

func typeName(typ reflect.Type) string {
	if name := typ.Name(); name != "" {
		return name
	}
	return typ.String()
}
