package arith

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"github.com/jcorbin/gostack/machine"
)

// Vocabulary returns a registry recognizing unsigned decimal integer literals,
// the operators + - * / and the word pop.
func Vocabulary() *machine.Registry {
	return machine.NewRegistry(
		Integers(),
		machine.Literal("+", Add{}),
		machine.Literal("-", Sub{}),
		machine.Literal("*", Mul{}),
		machine.Literal("/", Div{}),
		machine.Literal("pop", Drop{}),
	)
}

// Integers recognizes runs of decimal digits whose value fits in an Integer.
// Signs are not part of the literal grammar.
func Integers() machine.Recognizer { return integers{} }

type integers struct{}

func (integers) Match(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < '0' || c > '9' {
			return false
		}
	}
	_, err := parseInteger(word)
	return err == nil
}

func (integers) Convert(word string) machine.Token {
	n, err := parseInteger(word)
	if err != nil {
		panic(fmt.Errorf("integer literal %q: %w", word, err))
	}
	return machine.NewToken(n)
}

func (integers) String() string { return "integers" }

func parseInteger(word string) (Integer, error) {
	u, err := strconv.ParseUint(word, 10, 64)
	if err != nil {
		return 0, err
	}
	n, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, err
	}
	return Integer(n), nil
}
