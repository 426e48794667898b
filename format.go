// format.go — fmt.Formatter implementation for CodedError.
//
// Behavior:
//
//	%s, %v   → concise one-line text (Error()).
//	%+v      → verbose, structured multi-line format:
//	             code=<code> kind=<kind> msg="<message>"
//	             stack:
//	               funcA (file.go:123)
//	               funcB (other.go:45)
//	%q       → quoted Error().
package imerrors

import (
	"fmt"
	"io"
)

func (e *CodedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		e.formatConcise(s)
	case 's':
		e.formatConcise(s)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		e.formatConcise(s)
	}
}

func (e *CodedError) formatConcise(w io.Writer) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

func (e *CodedError) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "code=%s kind=%s msg=%q", e.code, e.kind.Name(), e.message)
	if len(e.stack) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stack {
			_, _ = fmt.Fprintf(w, "\n  %s (%s:%d)", fr.Function, fr.File, fr.Line)
		}
	}
}
