// Package fail defines the reasons parsers report when they do not match.
package fail

// Reason is a short static description of why a parser did not match. It
// implements error and carries no position information or other state, so a
// given Reason is always the same value and errors.Is can pick it out of a
// parse result directly.
type Reason string

// Error returns the reason text.
func (r Reason) Error() string {
	return string(r)
}

// The reasons reported by the built-in parsers. Parsers built on top of this
// module are free to declare their own Reason constants; there is no registry
// to conflict with.
const (
	// NotEmpty is reported by match.Empty when bytes remain on the input.
	NotEmpty Reason = "not empty"

	// Succeeded is reported by match.Not when the inverted parser matched.
	Succeeded Reason = "parser succeeded"

	// NoneMatched is reported by match.First and match.Longest when every
	// alternative failed.
	NoneMatched Reason = "no parser succeeded"

	// NeverMatched is reported by match.OneOrMore when the first repetition
	// already failed.
	NeverMatched Reason = "did not succeed once"

	// EmptyInput is reported by parsers that need at least one byte of
	// input, such as match.Byte and match.TakeWhile, when none remain.
	EmptyInput Reason = "empty input"

	// NothingConsumed is reported by match.TakeWhile1, match.TakeUntilByte1,
	// and match.RTakeUntilByte1 when the matched prefix turns out empty.
	NothingConsumed Reason = "consumed nothing"

	// ShortInput is reported by match.Take and match.Bytes when fewer bytes
	// remain than they need.
	ShortInput Reason = "not enough bytes"

	// ZeroTake is reported by match.Take when asked for zero or fewer bytes.
	ZeroTake Reason = "take of zero bytes"

	// WrongByte is reported by match.Byte and match.ByteFunc when the next
	// byte is not a wanted one.
	WrongByte Reason = "wrong byte"

	// WrongBytes is reported by match.Bytes when the next bytes differ from
	// the wanted literal.
	WrongBytes Reason = "wrong bytes"

	// TrailingInput is reported by gobble.Parse when the parser succeeded
	// but did not consume the whole input.
	TrailingInput Reason = "trailing input"
)
