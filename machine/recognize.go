package machine

import (
	"fmt"
	"regexp"
)

// Recognizer maps words of text to Tokens of some kind.
//
// Convert is only valid for words that Match; passing any other word is a
// programming error and panics.
type Recognizer interface {
	Match(word string) bool
	Convert(word string) Token
}

// Recognize converts word through r if r matches it.
func Recognize(r Recognizer, word string) (Token, bool) {
	if !r.Match(word) {
		return Token{}, false
	}
	return r.Convert(word), true
}

// Literal recognizes exactly text, producing tokens holding v.
func Literal(text string, v Value) Recognizer { return literal{text, v} }

type literal struct {
	text string
	v    Value
}

func (lit literal) Match(word string) bool { return word == lit.text }

func (lit literal) Convert(word string) Token {
	if word != lit.text {
		panic(mismatch{lit, word})
	}
	return Token{lit.v}
}

func (lit literal) String() string { return fmt.Sprintf("%q", lit.text) }

// Pattern recognizes words wholly matched by the regular expression expr,
// converting them with conv. Panics if expr does not compile.
func Pattern(expr string, conv func(word string) Value) Recognizer {
	return pattern{regexp.MustCompile(`^(?:` + expr + `)$`), conv}
}

type pattern struct {
	re   *regexp.Regexp
	conv func(word string) Value
}

func (pat pattern) Match(word string) bool { return pat.re.MatchString(word) }

func (pat pattern) Convert(word string) Token {
	if !pat.re.MatchString(word) {
		panic(mismatch{pat, word})
	}
	return Token{pat.conv(word)}
}

func (pat pattern) String() string { return "/" + pat.re.String() + "/" }

// Registry is an ordered collection of recognizers.
//
// Words are resolved by trying recognizers from the most recently added to
// the first; the first match wins, so later additions override earlier ones.
// A Registry is itself a Recognizer, so vocabularies may be layered.
type Registry struct {
	rs []Recognizer
}

// NewRegistry returns a registry holding rs, in order.
func NewRegistry(rs ...Recognizer) *Registry {
	var reg Registry
	reg.Add(rs...)
	return &reg
}

// Add appends recognizers; nils are ignored.
func (reg *Registry) Add(rs ...Recognizer) {
	for _, r := range rs {
		if r != nil {
			reg.rs = append(reg.rs, r)
		}
	}
}

// Len returns the number of recognizers added.
func (reg *Registry) Len() int { return len(reg.rs) }

func (reg *Registry) lookup(word string) Recognizer {
	for i := len(reg.rs) - 1; i >= 0; i-- {
		if r := reg.rs[i]; r.Match(word) {
			return r
		}
	}
	return nil
}

// Match returns true if any recognizer matches word.
func (reg *Registry) Match(word string) bool { return reg.lookup(word) != nil }

// Convert converts word through the winning recognizer.
func (reg *Registry) Convert(word string) Token {
	r := reg.lookup(word)
	if r == nil {
		panic(mismatch{reg, word})
	}
	return r.Convert(word)
}

// Recognize converts word through the winning recognizer, returning false if
// none match.
func (reg *Registry) Recognize(word string) (Token, bool) {
	if r := reg.lookup(word); r != nil {
		return r.Convert(word), true
	}
	return Token{}, false
}

type mismatch struct {
	r    Recognizer
	word string
}

func (mm mismatch) Error() string {
	if s, ok := mm.r.(fmt.Stringer); ok {
		return fmt.Sprintf("recognizer %v does not match %q", s, mm.word)
	}
	return fmt.Sprintf("%T does not match %q", mm.r, mm.word)
}
