// doc.go — package documentation for imerrors
//
// Package imerrors is the coded-error construction core of the
// import-meta-resolve port. It maps symbolic ERR_* codes to message rules,
// and manufactures error values whose message, display name, and diagnostic
// trace are derived consistently from that registry. It is designed to be:
//   - Uniform at raise sites (one constructor per code, no duplicated text)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free (no retry/recovery classification, no serialization)
//
// # Codes and Rules
//
// Every error class is declared once, at startup, with Define:
//
//	var ErrExample = imerrors.Define(
//	    "ERR_EXAMPLE",
//	    imerrors.Template("saw %s while reading %s"),
//	    imerrors.KindTypeError,
//	)
//
// Define returns a reusable constructor bound to the code. A rule is either
// a fixed template with positional placeholders (%s %d %i %f %j %o %O, with
// %% as a literal escape) or a message function with a declared minimum
// arity; trailing parameters beyond the minimum are optional and take their
// defaults inside the function.
//
// # Contract Violations
//
// Supplying the wrong number of arguments, defining a code twice, or
// constructing an unregistered code is a defect in the calling code, not a
// runtime condition. These paths panic with a diagnostic naming the code
// and the count mismatch; they are never coerced into a malformed message.
//
// # Traces
//
// Construction captures one diagnostic trace per error. Frames belonging to
// this package's own machinery are marked internal and elided, so the first
// visible frame is the caller's raise site. While the trace is materialized
// the error's name carries a "[CODE]" suffix, so the first line of
// StackText reads:
//
//	TypeError [ERR_EXAMPLE]: saw "x" while reading "y"
//	    at main.load (/src/app/main.go:42)
//
// The retained frame budget is a scoped resource: it is widened for the
// duration of a single capture and restored on every exit path. A frozen
// budget (FreezeTraceLimit) degrades gracefully to the current depth.
//
// # Name Restoration
//
// After capture the error's own name is reset: restored in full for
// KindSystemError, cleared to the empty string for every other kind, in
// which case Name() falls back to the kind's bare name. The asymmetry is
// inherited compatibility behavior from the origin platform and is
// preserved deliberately.
//
// # Platform Variation
//
// Exactly one rule (ERR_UNSUPPORTED_ESM_URL_SCHEME) varies its text for
// Windows path semantics. The variation is an explicit configuration input,
// SetWindowsSemantics; the package never sniffs the host platform itself.
package imerrors
