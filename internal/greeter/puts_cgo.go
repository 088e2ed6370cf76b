//go:build cgo

package greeter

/*
#include <stdio.h>

// The Go runtime exits without running libc's exit handlers, so stdout is
// flushed here or the line is lost when stdout is not a terminal.
static int greet_puts(const char *s) {
	int rc = puts(s);
	fflush(stdout);
	return rc;
}
*/
import "C"

import "unsafe"

// Greet passes Message to libc puts and returns its status unchanged.
func Greet() int {
	return int(C.greet_puts((*C.char)(unsafe.Pointer(&Message[0]))))
}
