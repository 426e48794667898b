// error.go — the constructed error artifact and its factory.
//
// Scope:
//   - CodedError: the runtime artifact with message, display name, code,
//     and a trace captured once at construction.
//   - construct/New: the factory sequence behind every Constructor.
//
// Construction never fails for a registered code called with correct
// arity; the only failure path is the arity assertion in resolve.go.
package imerrors

// CodedError is one raised instance of a registered error class.
// It is immutable after construction except for the message, which stays
// writable for compatibility with generic handlers that rewrite messages.
type CodedError struct {
	kind      Kind
	code      Code
	message   string
	ownName   string
	stack     Stack
	stackText string
}

var _ error = (*CodedError)(nil)

// New constructs the error registered under code, applying args to its
// message rule. Prefer the Constructor returned by Define at raise sites;
// New exists for tooling that works over codes generically.
func New(code Code, args ...any) *CodedError {
	return construct(code, args)
}

func construct(code Code, args []any) *CodedError {
	ent := lookup(code)

	// Base construction must contribute no frames: suppress capture for
	// exactly that window, restored even if allocation panics. The window
	// is its own function scope so the deferred restore runs before the
	// later budget acquisition in captureCleanTrace.
	var e *CodedError
	func() {
		restore := zeroTraceLimit()
		defer restore()
		e = newBase(ent.kind)
	}()

	e.code = code
	e.message = formatMessage(code, args, e)
	captureCleanTrace(e)
	return e
}

// newBase allocates the bare base-kind instance. A plain base capture
// honors the current frame budget; under the factory's zeroed budget it
// does nothing. Callers must hold the trace budget guard.
func newBase(kind Kind) *CodedError {
	e := &CodedError{kind: kind}
	if traceDepth > 0 {
		e.stack = captureTrace(0, traceDepth)
	}
	return e
}

func init() {
	markInternal(New)
	markInternal(construct)
	markInternal(captureCleanTrace)
	markInternal(newBase)
}

// Error returns "<name> [<code>]: <message>", the same text String and
// the first line of StackText carry.
func (e *CodedError) Error() string {
	return e.Name() + " [" + string(e.code) + "]: " + e.message
}

// String implements fmt.Stringer with the Error text.
func (e *CodedError) String() string { return e.Error() }

// Code returns the error's stable machine-readable code.
func (e *CodedError) Code() Code { return e.code }

// Kind returns the base category the code was declared against.
func (e *CodedError) Kind() Kind { return e.kind }

// Name returns the display name. After trace finalization the own name is
// empty for every kind except SystemError, and display falls back to the
// bare kind name — the origin platform's prototype lookup, preserved.
func (e *CodedError) Name() string {
	if e.ownName != "" {
		return e.ownName
	}
	return e.kind.Name()
}

// Message returns the resolved message.
func (e *CodedError) Message() string { return e.message }

// SetMessage overwrites the message. Permitted for interop with generic
// error-handling idioms that rewrite messages; discouraged otherwise.
// The captured stack text keeps the original message.
func (e *CodedError) SetMessage(msg string) { e.message = msg }

// Stack returns a defensive copy of the trimmed trace frames.
func (e *CodedError) Stack() Stack {
	out := make(Stack, len(e.stack))
	copy(out, e.stack)
	return out
}

// StackText returns the multi-line trace: the "<name> [<code>]: <message>"
// header followed by one "    at func (file:line)" entry per frame.
func (e *CodedError) StackText() string { return e.stackText }

// Is matches two coded errors by code, so errors.Is classifies raised
// instances against each other regardless of arguments.
func (e *CodedError) Is(target error) bool {
	other, ok := target.(*CodedError)
	return ok && other.code == e.code
}
