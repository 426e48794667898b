// template.go — message rules for imerrors.
//
// A rule is a tagged variant: either a fixed template whose positional
// placeholders are parsed once at registration, or a message function with
// a declared minimum arity. Resolution (resolve.go) branches on the tag;
// no runtime type inspection is involved.
package imerrors

import "fmt"

type ruleTag uint8

const (
	ruleTemplate ruleTag = iota
	ruleFunc
)

// MessageFn renders a message from an ordered argument list. The
// in-progress error is passed as receiver context; rules rarely need it,
// but some inspect the partially built value. Arguments beyond the rule's
// declared minimum are optional; the function supplies their defaults.
type MessageFn func(e *CodedError, args []any) string

// MessageRule is the registered recipe for rendering one code's message.
// Construct values with Template or MessageFunc; the zero value is invalid.
type MessageRule struct {
	tag      ruleTag
	text     string
	verbs    []byte // placeholder kinds in order, parsed at registration
	required int
	fn       MessageFn
}

// placeholder verbs recognized inside templates. %% is a literal escape and
// is not part of this set: it consumes no argument.
const templateVerbs = "difjoOs"

// Template declares a fixed-template rule. Placeholders are counted here,
// once; the count becomes the rule's exact arity. A stray '%' followed by
// anything other than a verb or another '%' is left verbatim.
func Template(text string) MessageRule {
	return MessageRule{
		tag:   ruleTemplate,
		text:  text,
		verbs: parsePlaceholders(text),
	}
}

// MessageFunc declares a function rule with the given minimum argument
// count. Panics on a nil fn or negative arity: rules are registered at
// startup, so a bad declaration is a defect, not a condition to report.
func MessageFunc(required int, fn MessageFn) MessageRule {
	if fn == nil {
		panic("imerrors: MessageFunc requires a non-nil render function")
	}
	if required < 0 {
		panic(fmt.Sprintf("imerrors: MessageFunc requires a non-negative arity, got %d", required))
	}
	return MessageRule{tag: ruleFunc, required: required, fn: fn}
}

// Arity returns the rule's required argument count: the placeholder count
// for templates, the declared minimum for function rules.
func (r MessageRule) Arity() int {
	if r.tag == ruleFunc {
		return r.required
	}
	return len(r.verbs)
}

// IsFunc reports whether the rule is a message function (as opposed to a
// fixed template).
func (r MessageRule) IsFunc() bool { return r.tag == ruleFunc }

func parsePlaceholders(text string) []byte {
	var verbs []byte
	for i := 0; i+1 < len(text); i++ {
		if text[i] != '%' {
			continue
		}
		next := text[i+1]
		if next == '%' {
			i++ // escape, consumes no argument
			continue
		}
		if isTemplateVerb(next) {
			verbs = append(verbs, next)
			i++
		}
	}
	return verbs
}

func isTemplateVerb(c byte) bool {
	for i := 0; i < len(templateVerbs); i++ {
		if templateVerbs[i] == c {
			return true
		}
	}
	return false
}
