// kind.go — base error categories for imerrors.
//
// Intent:
//   - Mirror the origin platform's base classes (Error, TypeError,
//     RangeError, SystemError) as a small closed enum.
//   - A code's kind fixes the error's fallback display name and its
//     classification by catch-all handlers; it never affects the message.
//
// Conventions (documented, not enforced here):
//   - SystemError is the one category whose own name survives trace
//     finalization in full; see trace.go for the restoration rules.
package imerrors

// Kind is the base category an error code is declared against.
type Kind uint8

const (
	// KindError is the generic base category.
	KindError Kind = iota
	// KindTypeError marks argument- and shape-contract violations.
	KindTypeError
	// KindRangeError marks out-of-range values.
	KindRangeError
	// KindSystemError marks failures surfaced from the host system.
	KindSystemError
)

// kindNames is indexed by Kind. Order must match the const block above.
var kindNames = [...]string{
	KindError:       "Error",
	KindTypeError:   "TypeError",
	KindRangeError:  "RangeError",
	KindSystemError: "SystemError",
}

// allKinds is the ordered set of declarable kinds. Unexported to avoid
// exposing mutable slice identity to callers.
var allKinds = []Kind{KindError, KindTypeError, KindRangeError, KindSystemError}

// Name returns the kind's display name ("Error", "TypeError", ...).
// Unknown kinds render as "Error" so a corrupted value still displays.
func (k Kind) Name() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindError]
}

// Valid reports whether k is one of the declarable base kinds.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// Kinds returns a defensive copy of the declarable kinds in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}
