// predicates.go — stdlib-aligned classification helpers.
//
// Scope:
//   - Zero-policy helpers answering "which code/kind is this error?".
//   - Interop-first: errors.As traverses both Unwrap() error and
//     Unwrap() []error chains, so wrapped coded errors still classify.
package imerrors

import "errors"

// IsCoded reports whether err is (or wraps) a registry-constructed error.
func IsCoded(err error) bool {
	if err == nil {
		return false
	}
	var ce *CodedError
	return errors.As(err, &ce)
}

// CodeOf returns the first code discovered along err's chain, or "" when
// no coded error is present.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// HasCode reports whether any error in err's chain carries code.
func HasCode(err error, code Code) bool {
	return code != "" && CodeOf(err) == code
}

// KindOf returns the base kind of the first coded error in the chain.
func KindOf(err error) (Kind, bool) {
	if err == nil {
		return KindError, false
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Kind(), true
	}
	return KindError, false
}
