// trace.go — trimmed diagnostic traces for imerrors.
//
// Design goals:
//   - Interop & correctness: runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - Traces that start at caller code: machinery functions are marked
//     internal and elided from every captured trace.
//   - The retained-depth budget is a scoped resource: widened (or zeroed)
//     for one capture and restored on every exit path, including panics.
package imerrors

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// Frame represents a single call site in a captured trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const (
	// defaultTraceDepth is the steady-state retained-frame budget.
	defaultTraceDepth = 16
	// maxTraceDepth is "effectively unbounded": the widened budget used
	// while a trace is materialized.
	maxTraceDepth = 1 << 10
)

// The budget is global mutable state, like the origin platform's limit
// setting. The mutex IS the scoped acquisition: widen/zero take it, the
// returned restore releases it, so no other operation can observe the
// budget in its temporarily adjusted state.
var (
	traceMu     sync.Mutex
	traceDepth  = defaultTraceDepth
	traceFrozen bool
)

// TraceLimit returns the current steady-state retained-frame budget.
func TraceLimit() int {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceDepth
}

// SetTraceLimit adjusts the steady-state budget. Negative values clamp to
// zero. A frozen budget ignores the call (degraded-environment fallback).
func SetTraceLimit(n int) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if traceFrozen {
		return
	}
	if n < 0 {
		n = 0
	}
	traceDepth = n
}

// FreezeTraceLimit makes the budget read-only for the rest of the process.
// Capture still proceeds at whatever depth is current; nothing fails.
func FreezeTraceLimit() {
	traceMu.Lock()
	defer traceMu.Unlock()
	traceFrozen = true
}

// widenTraceLimit raises the budget to maxTraceDepth for one capture.
// The caller MUST invoke the returned restore (normally via defer) on
// every exit path. Frozen budgets are left untouched.
func widenTraceLimit() (restore func()) {
	traceMu.Lock()
	if traceFrozen {
		return func() { traceMu.Unlock() }
	}
	prev := traceDepth
	traceDepth = maxTraceDepth
	return func() {
		traceDepth = prev
		traceMu.Unlock()
	}
}

// zeroTraceLimit suppresses capture entirely for one scoped window, so
// base construction contributes no frames. Same restore discipline as
// widenTraceLimit; frozen budgets no-op.
func zeroTraceLimit() (restore func()) {
	traceMu.Lock()
	if traceFrozen {
		return func() { traceMu.Unlock() }
	}
	prev := traceDepth
	traceDepth = 0
	return func() {
		traceDepth = prev
		traceMu.Unlock()
	}
}

// ---------- internal-frame marking -------------------------------------------

var (
	internalMu    sync.RWMutex
	internalNames = make(map[string]struct{})
)

// markInternal records fn as factory machinery whose frames must never
// reach a visible trace. This is the explicit marker the capture routine
// checks; nothing relies on naming conventions.
func markInternal(fn any) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return
	}
	internalMu.Lock()
	internalNames[rf.Name()] = struct{}{}
	internalMu.Unlock()
}

func isInternalFrame(function string) bool {
	internalMu.RLock()
	_, ok := internalNames[function]
	internalMu.RUnlock()
	return ok
}

// ---------- capture ----------------------------------------------------------

// captureTrace captures up to maxDepth frames, skipping 'skip' frames
// beyond the capture machinery itself. Frames are resolved through
// CallersFrames so inlined calls come out right.
func captureTrace(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		return nil
	}

	// +2 skips runtime.Callers and captureTrace.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// captureCleanTrace finalizes e's trace and name. A stack already present
// on e (a provisional base capture) is filtered in place; otherwise a
// fresh capture runs with the frame budget widened for its duration.
// Marked internal frames are elided so the trace's top entry is caller
// code, the stack text is materialized under the code-qualified name,
// then the name is reset: restored in full for KindSystemError, cleared
// otherwise. Mutates and returns e.
func captureCleanTrace(e *CodedError) *CodedError {
	restore := widenTraceLimit()
	defer restore()

	raw := e.stack
	if raw == nil {
		raw = captureTrace(0, traceDepth)
	}
	stk := make(Stack, 0, len(raw))
	for _, fr := range raw {
		if isInternalFrame(fr.Function) {
			continue
		}
		stk = append(stk, fr)
	}
	e.stack = stk

	// The [CODE] suffix rides on the name only while the header line is
	// materialized, so the trace identifies the code.
	e.ownName = e.kind.Name() + " [" + string(e.code) + "]"
	e.stackText = renderStackText(e.ownName, e.message, stk)
	if e.kind == KindSystemError {
		e.ownName = e.kind.Name()
	} else {
		e.ownName = ""
	}
	return e
}

func renderStackText(header, message string, stk Stack) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(": ")
	b.WriteString(message)
	for _, fr := range stk {
		fmt.Fprintf(&b, "\n    at %s (%s:%d)", fr.Function, fr.File, fr.Line)
	}
	return b.String()
}
