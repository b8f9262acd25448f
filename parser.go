// Package gobble provides small composable parsers that work directly on
// byte slices. A parser consumes some prefix of its input and produces a
// typed value along with the input that remains; combinators in the match
// subpackage glue parsers together into bigger ones. Parsers are plain
// values with no state of their own, so they are freely reusable and safe to
// share between goroutines.
package gobble

import (
	"io"

	"github.com/zostay/gobble/fail"
)

// Input is the byte sequence a parser reads. It is an ordinary byte slice;
// parsers never modify it and never look outside the slice they are handed.
// Consuming input is nothing more than returning a shorter suffix of the
// same slice.
type Input = []byte

// Parser is implemented by anything that can try to match a prefix of its
// input.
//
// On success, Parse returns the value the match produced and the input that
// remains after it. The remaining input is always a suffix of in, sharing
// its backing array. It is possible for a match to match zero bytes.
//
// On failure, Parse returns the zero value of T, the input as the failing
// sub-parser left it, and a non-nil error, normally a fail.Reason. Apart
// from match.Maybe, combinators do not rewind input consumed before the
// failure; wrap the sub-expression in match.Maybe or match.Peek when
// rewinding is wanted.
type Parser[T any] interface {
	Parse(in Input) (T, Input, error)
}

// ParserFunc is the function form of Parser. The combinators in this module
// accept any Parser and hand back a ParserFunc.
type ParserFunc[T any] func(in Input) (T, Input, error)

// Parse calls f.
func (f ParserFunc[T]) Parse(in Input) (T, Input, error) {
	return f(in)
}

// Parse applies p to in and requires that it consume the whole input,
// returning the value p produced. A failure of p is returned as is; when p
// succeeds but leaves bytes behind, Parse fails with fail.TrailingInput.
func Parse[T any](p Parser[T], in Input) (T, error) {
	v, rest, err := p.Parse(in)
	if err != nil {
		var zero T
		return zero, err
	}

	if len(rest) > 0 {
		var zero T
		return zero, fail.TrailingInput
	}

	return v, nil
}

// ParseReader reads r to its end and then parses the collected bytes with
// Parse. The whole input is materialized in memory first; parsing never runs
// against a partially read stream.
func ParseReader[T any](p Parser[T], r io.Reader) (T, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		var zero T
		return zero, err
	}

	return Parse(p, in)
}
