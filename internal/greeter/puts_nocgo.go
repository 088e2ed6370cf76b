//go:build !cgo

package greeter

import "os"

// eof mirrors the C EOF value puts returns on a write error.
const eof = -1

// Greet writes Message to stdout with puts semantics and returns the number
// of bytes written, or -1 when the write fails.
func Greet() int {
	n, err := os.Stdout.Write(Line(Message))
	if err != nil {
		return eof
	}
	return n
}
