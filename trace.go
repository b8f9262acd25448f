package gobble

import (
	"fmt"
	"strings"
)

// Tracer is a function that is used to log or report parser traces. This
// function signature was chosen because it is commonly available, such as
// fmt.Print or log.Println, etc.
type Tracer func(v ...any)

const (
	stageTry = iota
	stageGot
	stageFail
)

// Traced returns a parser that reports every application of p to t, labeled
// with name. A TRY line is written before p runs, then a GOT line with the
// value produced or an ERR line with the failure reason. The outcome of p
// passes through untouched, so wrapping a parser in Traced never changes a
// parse. A nil Tracer turns the reporting off.
func Traced[T any](t Tracer, name string, p Parser[T]) ParserFunc[T] {
	return func(in Input) (T, Input, error) {
		trace(t, stageTry, name, in, nil, nil)

		v, rest, err := p.Parse(in)
		if err != nil {
			trace(t, stageFail, name, in, nil, err)
			return v, rest, err
		}

		trace(t, stageGot, name, in, v, nil)
		return v, rest, nil
	}
}

func trace(t Tracer, stage int, name string, in Input, v any, err error) {
	if t == nil {
		return
	}

	out := &strings.Builder{}
	switch stage {
	case stageFail:
		fmt.Fprint(out, "ERR ")
	case stageGot:
		fmt.Fprint(out, "GOT ")
	case stageTry:
		fmt.Fprint(out, "TRY ")
	}

	fmt.Fprint(out, name)
	fmt.Fprint(out, "(")

	bs := in
	if len(bs) > 10 {
		bs = bs[:10]
	}
	fmt.Fprint(out, string(bs))
	fmt.Fprint(out, "…")

	switch {
	case err != nil:
		fmt.Fprintf(out, "): %v", err)
	case stage == stageGot:
		fmt.Fprintf(out, ") = %v", v)
	default:
		fmt.Fprint(out, ")")
	}

	t(out.String())
}
