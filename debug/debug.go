// Package debug provides helpers to capture the synthesis call site when a
// circuit pass fails, so that errors point at circuit code rather than at the
// layouter internals.
package debug

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Stack returns the current call stack, trimmed to the frames a circuit
// author cares about.
func Stack() string {
	var sbb strings.Builder
	WriteStack(&sbb)
	return sbb.String()
}

// WriteStack writes the current call stack into sbb.
//
// Unless the debug build tag is set, frames belonging to the synthesis
// machinery are skipped and file paths are shortened to their base name; the
// walk stops once the circuit's Synthesize method is reached, as that is
// where user code starts.
func WriteStack(sbb *strings.Builder) {
	// derived from: https://golang.org/pkg/runtime/#example_Frames
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	if n == 0 {
		return
	}
	pc = pc[:n]
	frames := runtime.CallersFrames(pc)
	for {
		frame, more := frames.Next()
		fe := strings.Split(frame.Function, "/")
		function := fe[len(fe)-1]
		file := frame.File

		if !Debug {
			if strings.Contains(function, "runtime.gopanic") {
				continue
			}
			if strings.Contains(frame.File, "frontend/layouter.go") {
				continue
			}
			if strings.Contains(frame.File, "frontend/synthesize.go") {
				continue
			}
			file = filepath.Base(file)
		}

		sbb.WriteString(function)
		sbb.WriteByte('\n')
		sbb.WriteByte('\t')
		sbb.WriteString(file)
		sbb.WriteByte(':')
		sbb.WriteString(strconv.Itoa(frame.Line))
		sbb.WriteByte('\n')
		if !more {
			break
		}
		if strings.HasSuffix(function, "Synthesize") {
			break
		}
	}
}
