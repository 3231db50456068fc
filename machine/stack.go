package machine

import "strings"

// Stack is a LIFO sequence of Tokens that evaluates tokens as they are pushed.
// The zero value is an empty stack ready for use.
//
// A Stack is not safe for concurrent use.
type Stack struct {
	tokens []Token
}

// Push applies the token's value to the stack. Operands report NotCallable and
// are stored as-is; operators perform their effect directly. Any error is
// returned without undoing pops the operator has already performed.
func (s *Stack) Push(tok Token) error {
	if tok.v == nil {
		return ErrEmptyToken
	}
	out, err := tok.v.Apply(s)
	if err != nil {
		return err
	}
	if out == NotCallable {
		s.tokens = append(s.tokens, tok)
	}
	return nil
}

// Pop removes and returns the last token, or ErrNotEnoughValues if the stack
// is empty.
func (s *Stack) Pop() (tok Token, err error) {
	i := len(s.tokens) - 1
	if i < 0 {
		return Token{}, ErrNotEnoughValues
	}
	tok, s.tokens[i] = s.tokens[i], Token{}
	s.tokens = s.tokens[:i]
	return tok, nil
}

// Len returns the number of resident tokens.
func (s *Stack) Len() int { return len(s.tokens) }

// Tokens returns a copy of the resident tokens, bottom first.
func (s *Stack) Tokens() []Token {
	return append([]Token(nil), s.tokens...)
}

// Reset discards all resident tokens.
func (s *Stack) Reset() {
	for i := range s.tokens {
		s.tokens[i] = Token{}
	}
	s.tokens = s.tokens[:0]
}

// String renders the resident tokens, bottom first, separated by spaces.
func (s *Stack) String() string {
	var sb strings.Builder
	for i, tok := range s.tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.String())
	}
	return sb.String()
}
