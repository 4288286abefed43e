// Package stacktrace captures formatted caller stacks for borrow-site
// diagnostics in the memcache package.
//
// The formatted output is stable for identical call paths, which makes it
// usable as a map key when grouping outstanding borrows by source location.
package stacktrace

import (
	"runtime"
	"strconv"
	"strings"
)

// maxFrames bounds the number of frames captured per site. Leaked borrows are
// almost always identifiable from the top of the stack.
const maxFrames = 16

// Capture returns the formatted stack of the caller. skip is the number of
// frames to omit above the caller of Capture itself, so Capture(0) starts at
// the immediate caller.
func Capture(skip int) string {
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(skip+2, pc)
	frames := runtime.CallersFrames(pc[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			b.WriteString(frame.Function)
			b.WriteString("\n\t")
			b.WriteString(frame.File)
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(frame.Line))
			b.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return b.String()
}
