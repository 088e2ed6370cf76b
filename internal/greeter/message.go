// Package greeter prints the program's fixed greeting through the platform's
// line-printing routine. With cgo it calls libc puts directly; without cgo it
// reproduces the puts contract on os.Stdout.
package greeter

import "bytes"

// Message is the greeting as handed to puts. The trailing zero byte is the
// only length information the routine receives.
var Message = []byte("Hello Rust!\x00")

// Text returns the greeting without its terminator.
func Text() string {
	return string(Message[:len(Message)-1])
}

// Line returns what puts writes for b: the bytes before the first zero byte
// followed by a newline. An unterminated buffer is written whole.
func Line(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	out := make([]byte, 0, len(b)+1)
	out = append(out, b...)
	return append(out, '\n')
}
