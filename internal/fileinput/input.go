package fileinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Word is a whitespace delimited word, along with where it started.
type Word struct {
	Location
	Text string
}

func (w Word) String() string { return fmt.Sprintf("%v %q", w.Location, w.Text) }

// Input scans words sequentially through a Queue of one or more input
// streams. Words never span streams. Streams that implement io.Closer are
// closed once exhausted.
type Input struct {
	Queue []io.Reader

	rr  io.RuneReader
	loc Location
}

// Location returns where the next rune will be read from.
func (in *Input) Location() Location { return in.loc }

var errNextIn = errors.New("next input")

// ScanWord skips any leading whitespace, then reads runes until the next
// whitespace or the end of the current stream. Returns io.EOF once all
// streams are exhausted.
func (in *Input) ScanWord() (word Word, err error) {
	var sb strings.Builder
	for {
		r, err := in.readRune()
		if err == errNextIn || err == io.EOF {
			if sb.Len() > 0 {
				break
			} else if err == io.EOF {
				return Word{}, err
			}
			continue
		} else if err != nil {
			return Word{}, err
		}

		if unicode.IsSpace(r) {
			if sb.Len() > 0 {
				break
			}
			continue
		}
		if sb.Len() == 0 {
			word.Location = in.loc
		}
		sb.WriteRune(r)
	}
	word.Text = sb.String()
	return word, nil
}

func (in *Input) readRune() (rune, error) {
	if in.rr == nil && !in.nextIn() {
		return 0, io.EOF
	}
	r, _, err := in.rr.ReadRune()
	if err == nil {
		if r == '\n' {
			in.loc.Line++
		}
		return r, nil
	}
	if cl, ok := in.rr.(io.Closer); ok {
		cl.Close()
	}
	in.rr = nil
	if err == io.EOF {
		err = errNextIn
	}
	return 0, err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	if rr, ok := r.(io.RuneReader); ok {
		in.rr = runeReadCloser{rr, r}
	} else {
		in.rr = runeReadCloser{bufio.NewReader(r), r}
	}
	in.loc = Location{Name: nameOf(r), Line: lineOf(r)}
	return true
}

type runeReadCloser struct {
	io.RuneReader
	under io.Reader
}

func (rrc runeReadCloser) Close() error {
	if cl, ok := rrc.under.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// NamedReader attaches a name to r, used to build Locations.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name, 1}
}

// NamedReaderAt is like NamedReader, but numbers r's first line as line
// rather than 1; useful when feeding a stream one line at a time.
func NamedReaderAt(name string, line int, r io.Reader) io.Reader {
	return namedReader{r, name, line}
}

type namedReader struct {
	io.Reader
	name string
	line int
}

func (nr namedReader) Name() string   { return nr.name }
func (nr namedReader) FirstLine() int { return nr.line }

func lineOf(obj interface{}) int {
	if fl, ok := obj.(interface{ FirstLine() int }); ok {
		return fl.FirstLine()
	}
	return 1
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
