package gobble_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/zostay/gobble"
	"github.com/zostay/gobble/fail"
	"github.com/zostay/gobble/match"
)

func TestParse(t *testing.T) {
	word := match.TakeWhile1(match.ByteFunc(match.BytesInRange('a', 'z')))

	v, err := gobble.Parse(word, []byte("hello"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !bytes.Equal(v, []byte("hello")) {
		t.Errorf("Parse = %q, want %q", v, "hello")
	}

	if _, err := gobble.Parse(word, []byte("hello!")); !errors.Is(err, fail.TrailingInput) {
		t.Errorf("err = %v, want %v", err, fail.TrailingInput)
	}

	if _, err := gobble.Parse(word, []byte("42")); !errors.Is(err, fail.NothingConsumed) {
		t.Errorf("err = %v, want %v", err, fail.NothingConsumed)
	}
}

func TestParseReader(t *testing.T) {
	word := match.TakeWhile1(match.ByteFunc(match.BytesInRange('a', 'z')))

	v, err := gobble.ParseReader(word, strings.NewReader("stream"))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if !bytes.Equal(v, []byte("stream")) {
		t.Errorf("ParseReader = %q, want %q", v, "stream")
	}

	boom := errors.New("boom")
	if _, err := gobble.ParseReader(word, iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestOption(t *testing.T) {
	some := gobble.Some(42)
	if v, ok := some.Get(); !ok || v != 42 {
		t.Errorf("Some(42).Get() = (%d, %v), want (42, true)", v, ok)
	}
	if v := some.Or(7); v != 42 {
		t.Errorf("Some(42).Or(7) = %d, want 42", v)
	}

	none := gobble.None[int]()
	if v, ok := none.Get(); ok || v != 0 {
		t.Errorf("None().Get() = (%d, %v), want (0, false)", v, ok)
	}
	if v := none.Or(7); v != 7 {
		t.Errorf("None().Or(7) = %d, want 7", v)
	}
}
