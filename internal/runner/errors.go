package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcorbin/gostack/internal/fileinput"
)

// ErrUnrecognized is wrapped by a WordError when nothing recognizes a word.
var ErrUnrecognized = errors.New("unrecognized word")

// WordError reports the word that failed, and where it was read from.
type WordError struct {
	fileinput.Word
	Err error
}

func (we *WordError) Error() string {
	return fmt.Sprintf("%v: %q: %v", we.Location, we.Text, we.Err)
}

func (we *WordError) Unwrap() error { return we.Err }

// Policy determines how a Runner treats words that nothing recognizes.
type Policy uint8

const (
	// Abort stops evaluation with an ErrUnrecognized WordError.
	Abort Policy = iota

	// Skip reports the word through the warning logger and continues.
	Skip
)

func (p Policy) String() string {
	switch p {
	case Abort:
		return "abort"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy parses "abort" or "skip".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "abort":
		return Abort, nil
	case "skip":
		return Skip, nil
	}
	return 0, fmt.Errorf("invalid unknown word policy %q, expected abort or skip", s)
}
