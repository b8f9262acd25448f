package match

import (
	"bytes"

	"github.com/zostay/gobble"
	"github.com/zostay/gobble/fail"
)

// BytePredicate is a function that returns true if it matches a single byte
// or false if it does not.
type BytePredicate func(c byte) bool

// BytesInSet creates a BytePredicate from the set of bytes given.
func BytesInSet(cs ...byte) BytePredicate {
	return func(b byte) bool {
		for _, c := range cs {
			if c == b {
				return true
			}
		}
		return false
	}
}

// BytesInRange creates a BytePredicate that matches any byte in the given
// range. The match is inclusive so bytes equal to either end point are also
// matched.
func BytesInRange(cs, ce byte) BytePredicate {
	return func(b byte) bool {
		return b >= cs && b <= ce
	}
}

// AnyBytes creates a combined BytePredicate that matches a byte that matches
// any of the given predicates.
func AnyBytes(preds ...BytePredicate) BytePredicate {
	switch len(preds) {
	case 0:
		return func(byte) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(b byte) bool {
			for _, pred := range preds {
				if pred(b) {
					return true
				}
			}
			return false
		}
	}
}

// NotBytes creates a combined BytePredicate that matches a byte that does
// not match any of the given predicates.
func NotBytes(preds ...BytePredicate) BytePredicate {
	return func(b byte) bool {
		for _, pred := range preds {
			if pred(b) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThatBytes creates a combined BytePredicate that matches a byte
// that matches the first predicate, but does not match the second predicate.
func ThisButNotThatBytes(this, that BytePredicate) BytePredicate {
	return func(b byte) bool {
		if this(b) {
			if that(b) {
				return false
			}
			return true
		}
		return false
	}
}

// Byte returns a parser that matches exactly the given byte and produces it.
// It fails with fail.EmptyInput when no input remains and fail.WrongByte
// when the next byte differs.
func Byte(c byte) gobble.ParserFunc[byte] {
	return func(in gobble.Input) (byte, gobble.Input, error) {
		if len(in) == 0 {
			return 0, in, fail.EmptyInput
		}

		if in[0] != c {
			return 0, in, fail.WrongByte
		}

		return in[0], in[1:], nil
	}
}

// ByteFunc returns a parser that matches exactly one byte if the next byte
// in the input matches any of the given predicates, producing that byte.
func ByteFunc(preds ...BytePredicate) gobble.ParserFunc[byte] {
	pred := AnyBytes(preds...)
	return func(in gobble.Input) (byte, gobble.Input, error) {
		if len(in) == 0 {
			return 0, in, fail.EmptyInput
		}

		if !pred(in[0]) {
			return 0, in, fail.WrongByte
		}

		return in[0], in[1:], nil
	}
}

// Bytes returns a parser that matches when the given byte slice literally
// matches the next bytes in the input. The produced value is the matched
// prefix of the input. An empty literal matches without consuming anything,
// though never on empty input.
func Bytes(lit []byte) gobble.ParserFunc[gobble.Input] {
	return func(in gobble.Input) (gobble.Input, gobble.Input, error) {
		switch {
		case len(in) == 0:
			return nil, in, fail.EmptyInput
		case len(in) < len(lit):
			return nil, in, fail.ShortInput
		case !bytes.HasPrefix(in, lit):
			return nil, in, fail.WrongBytes
		}

		return in[:len(lit)], in[len(lit):], nil
	}
}

// Take returns a parser that consumes exactly cnt bytes of input, producing
// them as the value. Asking for zero or fewer bytes is always an error, as
// is asking for more bytes than remain.
func Take(cnt int) gobble.ParserFunc[gobble.Input] {
	return func(in gobble.Input) (gobble.Input, gobble.Input, error) {
		if cnt < 1 {
			return nil, in, fail.ZeroTake
		}

		if len(in) < cnt {
			return nil, in, fail.ShortInput
		}

		return in[:cnt], in[cnt:], nil
	}
}

// TakeWhile returns a parser that applies p at the front of the unconsumed
// input over and over, extending the match by however many bytes each
// success consumed, until p fails or the input runs out. The produced value
// is the consumed prefix, which may be empty when p never matched. Empty
// input is an error.
//
// The values p produces are thrown away; only its consumption matters. A p
// that succeeds without consuming will never fail and never reach the end,
// so the loop will not terminate. The same caution applies as with
// OneOrMore.
func TakeWhile[T any](p gobble.Parser[T]) gobble.ParserFunc[gobble.Input] {
	return func(in gobble.Input) (gobble.Input, gobble.Input, error) {
		if len(in) == 0 {
			return nil, in, fail.EmptyInput
		}

		i := 0
		for i < len(in) {
			avail := in[i:]
			_, rest, err := p.Parse(avail)
			if err != nil {
				break
			}
			i += len(avail) - len(rest)
		}

		return in[:i], in[i:], nil
	}
}

// TakeWhile1 is TakeWhile, except that a match of zero bytes becomes an
// error.
func TakeWhile1[T any](p gobble.Parser[T]) gobble.ParserFunc[gobble.Input] {
	tw := TakeWhile(p)
	return func(in gobble.Input) (gobble.Input, gobble.Input, error) {
		v, rest, err := tw.Parse(in)
		if err != nil {
			return nil, rest, err
		}

		if len(v) == 0 {
			return nil, in, fail.NothingConsumed
		}

		return v, rest, nil
	}
}

// TakeUntilByte returns a parser that consumes up to, but not including, the
// first byte that matches any of the given predicates. When no byte matches,
// the whole input is consumed. This parser cannot fail, and the produced
// prefix may be empty.
func TakeUntilByte(preds ...BytePredicate) gobble.ParserFunc[gobble.Input] {
	pred := AnyBytes(preds...)
	return func(in gobble.Input) (gobble.Input, gobble.Input, error) {
		for i, c := range in {
			if pred(c) {
				return in[:i], in[i:], nil
			}
		}

		return in, in[len(in):], nil
	}
}

// TakeUntilByte1 is TakeUntilByte, except that a match of zero bytes becomes
// an error.
func TakeUntilByte1(preds ...BytePredicate) gobble.ParserFunc[gobble.Input] {
	tub := TakeUntilByte(preds...)
	return func(in gobble.Input) (gobble.Input, gobble.Input, error) {
		v, rest, _ := tub.Parse(in)
		if len(v) == 0 {
			return nil, in, fail.NothingConsumed
		}

		return v, rest, nil
	}
}

// RTakeUntilByte is TakeUntilByte from the back of the input: it scans
// backward for the last byte that matches any of the given predicates and
// consumes everything before it, leaving that byte and what follows behind.
// When no byte matches, the whole input is consumed. This parser cannot
// fail, and the produced prefix may be empty.
func RTakeUntilByte(preds ...BytePredicate) gobble.ParserFunc[gobble.Input] {
	pred := AnyBytes(preds...)
	return func(in gobble.Input) (gobble.Input, gobble.Input, error) {
		for i := len(in) - 1; i >= 0; i-- {
			if pred(in[i]) {
				return in[:i], in[i:], nil
			}
		}

		return in, in[len(in):], nil
	}
}

// RTakeUntilByte1 is RTakeUntilByte, except that a match of zero bytes
// becomes an error.
func RTakeUntilByte1(preds ...BytePredicate) gobble.ParserFunc[gobble.Input] {
	rtub := RTakeUntilByte(preds...)
	return func(in gobble.Input) (gobble.Input, gobble.Input, error) {
		v, rest, _ := rtub.Parse(in)
		if len(v) == 0 {
			return nil, in, fail.NothingConsumed
		}

		return v, rest, nil
	}
}
