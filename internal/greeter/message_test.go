package greeter

import (
	"bytes"
	"testing"
)

func TestMessageTerminatedOnce(t *testing.T) {
	if len(Message) == 0 || Message[len(Message)-1] != 0 {
		t.Fatalf("message not NUL-terminated: %q", Message)
	}
	if n := bytes.Count(Message, []byte{0}); n != 1 {
		t.Fatalf("expected exactly one NUL, got %d", n)
	}
}

func TestText(t *testing.T) {
	if got := Text(); got != "Hello Rust!" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestLine(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"message", Message, "Hello Rust!\n"},
		{"stops at first nul", []byte("ab\x00cd\x00"), "ab\n"},
		{"empty string", []byte{0}, "\n"},
		{"unterminated", []byte("abc"), "abc\n"},
		{"nil", nil, "\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := string(Line(tc.in)); got != tc.want {
				t.Fatalf("Line(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLineDoesNotAliasInput(t *testing.T) {
	in := []byte("xy\x00")
	out := Line(in)
	out[0] = 'z'
	if in[0] != 'x' {
		t.Fatalf("input modified: %q", in)
	}
}
