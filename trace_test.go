package gobble_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zostay/gobble"
	"github.com/zostay/gobble/match"
)

func TestTraced(t *testing.T) {
	var lines []string
	tr := func(v ...any) {
		lines = append(lines, fmt.Sprint(v...))
	}

	digit := match.ByteFunc(match.BytesInRange('0', '9'))
	p := gobble.Traced(tr, "digit", digit)

	v, rest, err := p.Parse([]byte("7!"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v != '7' {
		t.Errorf("v = %q, want %q", v, '7')
	}
	if string(rest) != "!" {
		t.Errorf("rest = %q, want %q", rest, "!")
	}

	want := []string{
		"TRY digit(7!…)",
		"GOT digit(7!…) = 55",
	}
	if len(lines) != len(want) {
		t.Fatalf("traced %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}

	lines = nil
	_, _, err = p.Parse([]byte("x"))
	if err == nil {
		t.Fatal("Parse succeeded, want failure")
	}
	if len(lines) != 2 {
		t.Fatalf("traced %d lines, want 2: %v", len(lines), lines)
	}
	if lines[1] != "ERR digit(x…): wrong byte" {
		t.Errorf("lines[1] = %q, want %q", lines[1], "ERR digit(x…): wrong byte")
	}

	lines = nil
	_, _, _ = p.Parse([]byte("0123456789abcdef"))
	if lines[0] != "TRY digit(0123456789…)" {
		t.Errorf("lines[0] = %q, want %q", lines[0], "TRY digit(0123456789…)")
	}
}

func TestTracedNil(t *testing.T) {
	digit := match.ByteFunc(match.BytesInRange('0', '9'))
	p := gobble.Traced(nil, "digit", digit)

	v, rest, err := p.Parse([]byte("7!"))
	if err != nil || v != '7' || string(rest) != "!" {
		t.Errorf("Parse = (%q, %q, %v), want ('7', \"!\", nil)", v, rest, err)
	}

	wv, wrest, werr := digit.Parse([]byte("x"))
	v, rest, err = p.Parse([]byte("x"))
	if v != wv || string(rest) != string(wrest) || !errors.Is(err, werr) {
		t.Errorf("Parse = (%q, %q, %v), want (%q, %q, %v)", v, rest, err, wv, wrest, werr)
	}
}
