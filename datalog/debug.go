package datalog

import (
	"fmt"
	"runtime"
	"strings"
)

// DebugPrint writes "package.Function: message" and a newline to the terminal,
// tagged with the calling function.
func DebugPrint(format string, v ...any) {
	fmt.Fprintf(outTerminal, "%s: %s\n", callerName(2), fmt.Sprintf(format, v...))
}

// callerName returns "package.Function" for the caller at the given depth.
func callerName(depth int) string {
	pc, _, _, ok := runtime.Caller(depth)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	full := fn.Name()
	if i := strings.LastIndex(full, "/"); i >= 0 && i+1 < len(full) {
		full = full[i+1:]
	}
	return full
}
