// Package match provides the parsers and combinators used to build byte
// slice grammars with gobble.
package match

import (
	"github.com/zostay/go-std/slices"

	"github.com/zostay/gobble"
	"github.com/zostay/gobble/fail"
)

// Empty matches only at the end of input. It consumes nothing and produces
// nothing; its use is to assert that no input remains.
var Empty gobble.ParserFunc[struct{}] = func(in gobble.Input) (struct{}, gobble.Input, error) {
	if len(in) > 0 {
		return struct{}{}, in, fail.NotEmpty
	}

	return struct{}{}, in, nil
}

// NotEmpty matches only when at least one byte of input remains. It consumes
// nothing.
var NotEmpty = Not(Empty)

// FullyConsumed returns a parser that applies p and then requires the end of
// input, producing p's value. Input left over after p fails the parse with
// fail.NotEmpty.
func FullyConsumed[T any](p gobble.Parser[T]) gobble.ParserFunc[T] {
	return func(in gobble.Input) (T, gobble.Input, error) {
		v, rest, err := p.Parse(in)
		if err != nil {
			return v, rest, err
		}

		if _, _, err := Empty.Parse(rest); err != nil {
			var zero T
			return zero, rest, err
		}

		return v, rest, nil
	}
}

// Map returns a parser that applies p and passes its value through f. A
// failure of p is returned untouched and f is never called.
func Map[T, U any](p gobble.Parser[T], f func(T) U) gobble.ParserFunc[U] {
	return func(in gobble.Input) (U, gobble.Input, error) {
		v, rest, err := p.Parse(in)
		if err != nil {
			var zero U
			return zero, rest, err
		}

		return f(v), rest, nil
	}
}

// Divided returns a parser that matches left, middle, and right in order,
// producing the values of left and right as a Pair and throwing away
// whatever middle matched. The first of the three to fail ends the parse,
// and input consumed before the failure stays consumed.
func Divided[L, M, R any](
	left gobble.Parser[L],
	middle gobble.Parser[M],
	right gobble.Parser[R],
) gobble.ParserFunc[gobble.Pair[L, R]] {
	return func(in gobble.Input) (gobble.Pair[L, R], gobble.Input, error) {
		lv, rest, err := left.Parse(in)
		if err != nil {
			return gobble.Pair[L, R]{}, rest, err
		}

		_, rest, err = middle.Parse(rest)
		if err != nil {
			return gobble.Pair[L, R]{}, rest, err
		}

		rv, rest, err := right.Parse(rest)
		if err != nil {
			return gobble.Pair[L, R]{}, rest, err
		}

		return gobble.Pair[L, R]{Left: lv, Right: rv}, rest, nil
	}
}

// Prefixed returns a parser that matches pre and then p, producing only p's
// value. Use it to skip leading input, such as a sigil or keyword, that has
// no meaning of its own.
func Prefixed[P, T any](pre gobble.Parser[P], p gobble.Parser[T]) gobble.ParserFunc[T] {
	return func(in gobble.Input) (T, gobble.Input, error) {
		_, rest, err := pre.Parse(in)
		if err != nil {
			var zero T
			return zero, rest, err
		}

		return p.Parse(rest)
	}
}

// Suffixed returns a parser that matches p and then suf, producing only p's
// value. Use it to drop trailing input, such as a terminator.
func Suffixed[T, S any](p gobble.Parser[T], suf gobble.Parser[S]) gobble.ParserFunc[T] {
	return func(in gobble.Input) (T, gobble.Input, error) {
		v, rest, err := p.Parse(in)
		if err != nil {
			var zero T
			return zero, rest, err
		}

		_, rest, err = suf.Parse(rest)
		if err != nil {
			var zero T
			return zero, rest, err
		}

		return v, rest, nil
	}
}

// Delimited returns a parser that matches left, then p, then right,
// producing only p's value. It is how brackets or quotes around a value are
// dropped.
func Delimited[L, T, R any](
	left gobble.Parser[L],
	p gobble.Parser[T],
	right gobble.Parser[R],
) gobble.ParserFunc[T] {
	return Prefixed(left, Suffixed(p, right))
}

// Maybe returns a parser that cannot fail. When p matches, its value comes
// back wrapped in Some; when p does not match, the failure is swallowed and
// None comes back with the input rewound to where it started. Maybe is the
// one combinator that rewinds consumed input, and only on failure.
func Maybe[T any](p gobble.Parser[T]) gobble.ParserFunc[gobble.Option[T]] {
	return func(in gobble.Input) (gobble.Option[T], gobble.Input, error) {
		v, rest, err := p.Parse(in)
		if err != nil {
			return gobble.None[T](), in, nil
		}

		return gobble.Some(v), rest, nil
	}
}

// Not returns a parser that inverts p: it matches only when p fails, and
// fails with fail.Succeeded when p matches. Either way the input comes back
// exactly as it was; Not never consumes anything. The value p produced is
// thrown away.
func Not[T any](p gobble.Parser[T]) gobble.ParserFunc[struct{}] {
	return func(in gobble.Input) (struct{}, gobble.Input, error) {
		if _, _, err := p.Parse(in); err == nil {
			return struct{}{}, in, fail.Succeeded
		}

		return struct{}{}, in, nil
	}
}

// Peek returns a parser that applies p and produces its value without
// consuming anything: whatever p matched, the original input comes back.
// When p fails, the failure also passes through with the original input.
func Peek[T any](p gobble.Parser[T]) gobble.ParserFunc[T] {
	return func(in gobble.Input) (T, gobble.Input, error) {
		v, _, err := p.Parse(in)
		return v, in, err
	}
}

// OneOrMore returns a parser that applies p over and over until it fails,
// collecting every value produced. The attempt that fails consumes nothing:
// input is left where the last success ended. Zero successes fail the whole
// parse with fail.NeverMatched.
//
// Be careful: a p that succeeds without consuming anything never reaches the
// failing attempt, and the loop will not terminate.
func OneOrMore[T any](p gobble.Parser[T]) gobble.ParserFunc[[]T] {
	return func(in gobble.Input) ([]T, gobble.Input, error) {
		var vs []T
		rest := in
		for {
			v, r, err := p.Parse(rest)
			if err != nil {
				break
			}

			vs = append(vs, v)
			rest = r
		}

		if len(vs) == 0 {
			return nil, in, fail.NeverMatched
		}

		return vs, rest, nil
	}
}

// ZeroOrMore is OneOrMore with the failure on zero matches taken out: it is
// Maybe(OneOrMore(p)) with None flattened into an empty sequence. It cannot
// fail and otherwise behaves as OneOrMore does, including the caution about
// parsers that succeed without consuming.
func ZeroOrMore[T any](p gobble.Parser[T]) gobble.ParserFunc[[]T] {
	some := Maybe(OneOrMore(p))
	return func(in gobble.Input) ([]T, gobble.Input, error) {
		vs, rest, _ := some.Parse(in)
		return vs.Or(nil), rest, nil
	}
}

// Times returns a parser that matches p exactly cnt times, producing all cnt
// values. A failure anywhere ends the parse, and input consumed by earlier
// repetitions stays consumed. When cnt is zero or less, the parser produces
// an empty sequence and consumes nothing.
func Times[T any](cnt int, p gobble.Parser[T]) gobble.ParserFunc[[]T] {
	return func(in gobble.Input) ([]T, gobble.Input, error) {
		vs := make([]T, 0, max(cnt, 0))
		rest := in
		for i := 0; i < cnt; i++ {
			v, r, err := p.Parse(rest)
			if err != nil {
				return nil, r, err
			}

			vs = append(vs, v)
			rest = r
		}

		return vs, rest, nil
	}
}

// SeparatedBy returns a parser that matches p one or more times with sep
// matching in between, producing the values of p in order. The values sep
// produces are thrown away. A trailing sep with no p after it is left
// unconsumed. Zero matches of p fail the parse the same as p alone would.
func SeparatedBy[T, S any](p gobble.Parser[T], sep gobble.Parser[S]) gobble.ParserFunc[[]T] {
	more := ZeroOrMore(Prefixed(sep, p))
	return func(in gobble.Input) ([]T, gobble.Input, error) {
		first, rest, err := p.Parse(in)
		if err != nil {
			return nil, rest, err
		}

		vs, rest, _ := more.Parse(rest)
		return append([]T{first}, vs...), rest, nil
	}
}

// First returns a parser that will try each parser against the input and
// immediately returns on the first one tried that succeeds. Every
// alternative starts from the same spot, so a failed alternative consumes
// nothing and the ones after the winner are never tried. Returns
// fail.NoneMatched if none succeed.
func First[T any](ps ...gobble.Parser[T]) gobble.ParserFunc[T] {
	return func(in gobble.Input) (T, gobble.Input, error) {
		for _, p := range ps {
			v, rest, err := p.Parse(in)
			if err == nil {
				return v, rest, nil
			}
		}

		var zero T
		return zero, in, fail.NoneMatched
	}
}

// outcome pairs what a parser produced with where it stopped, for weighing
// alternatives against each other.
type outcome[T any] struct {
	v    T
	rest gobble.Input
	err  error
}

// Longest returns a parser that tries all the given parsers against the
// current input. It will keep the match that consumed the most bytes and
// discard the rest, with ties going to the earliest of the winners. Returns
// fail.NoneMatched if none succeed.
func Longest[T any](ps ...gobble.Parser[T]) gobble.ParserFunc[T] {
	return func(in gobble.Input) (T, gobble.Input, error) {
		outs := slices.Map(ps, func(p gobble.Parser[T]) outcome[T] {
			v, rest, err := p.Parse(in)
			return outcome[T]{v: v, rest: rest, err: err}
		})

		best := -1
		for i, out := range outs {
			if out.err != nil {
				continue
			}

			if best == -1 || len(out.rest) < len(outs[best].rest) {
				best = i
			}
		}

		if best == -1 {
			var zero T
			return zero, in, fail.NoneMatched
		}

		return outs[best].v, outs[best].rest, nil
	}
}
