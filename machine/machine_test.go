package machine_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gostack/machine"
)

type num int

func (num) Apply(*machine.Stack) (machine.Outcome, error) { return machine.NotCallable, nil }

type name string

func (name) Apply(*machine.Stack) (machine.Outcome, error) { return machine.NotCallable, nil }
func (name) Kind() string                                 { return "Name" }

type ptr struct{ n int }

func (*ptr) Apply(*machine.Stack) (machine.Outcome, error) { return machine.NotCallable, nil }

// sum pops two nums and pushes their sum
type sum struct{}

func (sum) Apply(s *machine.Stack) (machine.Outcome, error) {
	bt, err := s.Pop()
	if err != nil {
		return machine.Applied, err
	}
	at, err := s.Pop()
	if err != nil {
		return machine.Applied, err
	}
	a, err := machine.Cast[num](at)
	if err != nil {
		return machine.Applied, err
	}
	b, err := machine.Cast[num](bt)
	if err != nil {
		return machine.Applied, err
	}
	return machine.Applied, s.Push(machine.NewToken(a + b))
}

func (sum) String() string { return "sum" }

func pushAll(t *testing.T, s *machine.Stack, vs ...machine.Value) {
	for _, v := range vs {
		require.NoError(t, s.Push(machine.NewToken(v)), "must push %v", v)
	}
}

func Test_Stack(t *testing.T) {
	t.Run("pop empty", func(t *testing.T) {
		var s machine.Stack
		_, err := s.Pop()
		assert.True(t, errors.Is(err, machine.ErrNotEnoughValues), "expected ErrNotEnoughValues, got %v", err)
	})

	t.Run("push empty token", func(t *testing.T) {
		var s machine.Stack
		assert.Equal(t, machine.ErrEmptyToken, s.Push(machine.Token{}))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("operands are stored", func(t *testing.T) {
		var s machine.Stack
		pushAll(t, &s, num(4), name("x"), num(5))
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, "4 x 5", s.String())

		tok, err := s.Pop()
		require.NoError(t, err)
		n, ok := machine.Peek[num](tok)
		assert.True(t, ok, "expected top to be a num")
		assert.Equal(t, num(5), n)
		assert.Equal(t, "4 x", s.String())
	})

	t.Run("operators apply", func(t *testing.T) {
		var s machine.Stack
		pushAll(t, &s, num(1), num(4), num(5), sum{})
		assert.Equal(t, "1 9", s.String(), "expected operators to never be resident")
		pushAll(t, &s, sum{})
		assert.Equal(t, "10", s.String())
	})

	t.Run("operand shortfall does not roll back", func(t *testing.T) {
		var s machine.Stack
		pushAll(t, &s, num(4))
		err := s.Push(machine.NewToken(sum{}))
		assert.True(t, errors.Is(err, machine.ErrNotEnoughValues), "expected ErrNotEnoughValues, got %v", err)
		assert.Equal(t, 0, s.Len(), "expected the popped operand to stay popped")
	})

	t.Run("wrong type", func(t *testing.T) {
		var s machine.Stack
		pushAll(t, &s, name("x"), num(5))
		err := s.Push(machine.NewToken(sum{}))
		var wte *machine.WrongTypeError
		require.True(t, errors.As(err, &wte), "expected a WrongTypeError, got %v", err)
		assert.True(t, errors.Is(err, machine.ErrWrongType), "expected to match ErrWrongType")
		assert.Equal(t, "Name", wte.Token.Kind(), "expected the offending token")
		assert.Equal(t, "num", wte.Want)
		assert.EqualError(t, err, "token is not the expected type: want num, have Name(x)")
	})

	t.Run("tokens and reset", func(t *testing.T) {
		var s machine.Stack
		pushAll(t, &s, num(1), num(2))
		tokens := s.Tokens()
		require.Len(t, tokens, 2)
		s.Reset()
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, "", s.String())
		assert.Equal(t, "1", tokens[0].String(), "expected Tokens to return a copy")
		pushAll(t, &s, num(3))
		assert.Equal(t, "3", s.String())
	})
}

func Test_Cast(t *testing.T) {
	n, err := machine.Cast[num](machine.NewToken(num(7)))
	require.NoError(t, err)
	assert.Equal(t, num(7), n, "expected an equal value")

	for _, tc := range []struct {
		name string
		tok  machine.Token
		want string
	}{
		{"other kind", machine.NewToken(name("seven")), "token is not the expected type: want num, have Name(seven)"},
		{"operator", machine.NewToken(sum{}), "token is not the expected type: want num, have sum(sum)"},
		{"pointer", machine.NewToken(&ptr{7}), "token is not the expected type: want num, have *machine_test.ptr(&{7})"},
		{"empty", machine.Token{}, "token is not the expected type: want num, have <empty>"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := machine.Cast[num](tc.tok)
				var wte *machine.WrongTypeError
				if assert.True(t, errors.As(err, &wte), "expected a WrongTypeError, got %v", err) {
					assert.Equal(t, tc.tok, wte.Token, "expected the original token back")
				}
				assert.EqualError(t, err, tc.want)
				_, ok := machine.Peek[num](tc.tok)
				assert.False(t, ok, "expected Peek to fail")
			})
		})
	}

	t.Run("kinds", func(t *testing.T) {
		_, err := machine.Cast[name](machine.NewToken(num(1)))
		assert.EqualError(t, err, "token is not the expected type: want Name, have num(1)")
		_, err = machine.Cast[*ptr](machine.NewToken(num(1)))
		assert.EqualError(t, err, "token is not the expected type: want *machine_test.ptr, have num(1)")
	})
}

func Test_Token_format(t *testing.T) {
	tok := machine.NewToken(name("x"))
	assert.Equal(t, "x", tok.String())
	assert.Equal(t, "x", fmt.Sprint(tok))
	assert.Equal(t, "Name(x)", fmt.Sprintf("%+v", tok))
	assert.Equal(t, `"x"`, fmt.Sprintf("%q", tok))
	assert.False(t, tok.Empty())

	var empty machine.Token
	assert.True(t, empty.Empty())
	assert.Equal(t, "<empty>", empty.Kind())
	assert.Equal(t, "<empty>", fmt.Sprintf("%+v", empty))
}

func Test_Outcome(t *testing.T) {
	assert.Equal(t, "applied", machine.Applied.String())
	assert.Equal(t, "not callable", machine.NotCallable.String())
	assert.Equal(t, "Outcome(9)", machine.Outcome(9).String())
}

func recognizeAll(r machine.Recognizer, words ...string) []string {
	res := make([]string, len(words))
	for i, word := range words {
		if tok, ok := machine.Recognize(r, word); ok {
			res[i] = fmt.Sprintf("%+v", tok)
		} else {
			res[i] = "-"
		}
	}
	return res
}

func digits(word string) machine.Value {
	n, err := strconv.Atoi(word)
	if err != nil {
		panic(err)
	}
	return num(n)
}

func Test_Registry(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var reg machine.Registry
		tok, ok := reg.Recognize("1")
		assert.False(t, ok)
		assert.True(t, tok.Empty())
		assert.False(t, reg.Match("1"))
	})

	t.Run("literal and pattern", func(t *testing.T) {
		reg := machine.NewRegistry(
			machine.Pattern(`[0-9]+`, digits),
			machine.Literal("sum", sum{}),
			nil,
		)
		assert.Equal(t, 2, reg.Len(), "expected nil recognizers to be ignored")
		assert.Equal(t,
			[]string{"num(12)", "sum(sum)", "-", "-", "-", "-"},
			recognizeAll(reg, "12", "sum", "12a", "a12", "SUM", ""))
	})

	t.Run("later recognizers override", func(t *testing.T) {
		reg := machine.NewRegistry(
			machine.Literal("x", name("first")),
			machine.Literal("x", name("second")),
		)
		assert.Equal(t, []string{"Name(second)"}, recognizeAll(reg, "x"))

		reg.Add(machine.Pattern(`.*`, func(word string) machine.Value { return name("any " + word) }))
		assert.Equal(t, []string{"Name(any x)", "Name(any y)"}, recognizeAll(reg, "x", "y"))
	})

	t.Run("registries compose", func(t *testing.T) {
		base := machine.NewRegistry(
			machine.Pattern(`[0-9]+`, digits),
			machine.Literal("sum", sum{}),
		)
		names := machine.NewRegistry(
			machine.Literal("one", num(1)),
			machine.Literal("sum", name("shadowed")),
		)
		reg := machine.NewRegistry(base, names)
		assert.True(t, reg.Match("one"))
		assert.Equal(t,
			[]string{"num(1)", "Name(shadowed)", "num(2)", "-"},
			recognizeAll(reg, "one", "sum", "2", "two"))

		var s machine.Stack
		for _, word := range []string{"one", "2", "3"} {
			require.NoError(t, s.Push(reg.Convert(word)))
		}
		assert.Equal(t, "1 2 3", s.String())
	})

	t.Run("convert without match panics", func(t *testing.T) {
		assert.PanicsWithError(t, `recognizer "sum" does not match "x"`, func() {
			machine.Literal("sum", sum{}).Convert("x")
		})
		assert.PanicsWithError(t, `recognizer /^(?:[0-9]+)$/ does not match "x"`, func() {
			machine.Pattern(`[0-9]+`, digits).Convert("x")
		})
		assert.PanicsWithError(t, `*machine.Registry does not match "x"`, func() {
			machine.NewRegistry().Convert("x")
		})
	})
}
