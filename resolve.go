// resolve.go — message resolution for imerrors.
//
// Resolution turns (code, args) into the final message string. Arity is
// validated against the registered rule before any formatting happens:
// a mismatch panics with a diagnostic naming the code and both counts.
// Silent coercion (padding, truncating) is never performed — the message
// text is only correct when the arity contract holds.
package imerrors

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	json "github.com/goccy/go-json"
)

// inspectMax bounds rendered diagnostic values embedded in messages.
const inspectMax = 128

// spewShallow renders %O placeholders and general diagnostics: a compact,
// human-readable dump cut off at a conservative depth.
var spewShallow = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                2,
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// spewDeep renders %o placeholders, which ask for more structure.
var spewDeep = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                4,
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// formatMessage resolves the message for code from args, with self as the
// in-progress error passed to function rules as receiver context.
func formatMessage(code Code, args []any, self *CodedError) string {
	ent := lookup(code)

	if ent.rule.IsFunc() {
		if len(args) < ent.rule.required {
			panic(fmt.Sprintf(
				"imerrors: wrong number of arguments for %s: got %d, want at least %d",
				code, len(args), ent.rule.required))
		}
		return ent.rule.fn(self, args)
	}

	want := len(ent.rule.verbs)
	if len(args) != want {
		panic(fmt.Sprintf(
			"imerrors: wrong number of arguments for %s: got %d, want exactly %d",
			code, len(args), want))
	}
	if want == 0 {
		return ent.rule.text
	}
	return substitute(ent.rule.text, args)
}

// substitute replaces placeholders left-to-right. The arity check has
// already run, so args and placeholders are known to line up.
func substitute(text string, args []any) string {
	var b strings.Builder
	b.Grow(len(text) + 16*len(args))
	next := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '%' || i+1 >= len(text) {
			b.WriteByte(c)
			continue
		}
		verb := text[i+1]
		switch {
		case verb == '%':
			b.WriteByte('%')
			i++
		case isTemplateVerb(verb):
			b.WriteString(formatArg(verb, args[next]))
			next++
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func formatArg(verb byte, v any) string {
	switch verb {
	case 'd':
		return formatDecimal(v)
	case 'i':
		return formatInteger(v)
	case 'f':
		return formatFloat(v)
	case 'j':
		return jsonify(v)
	case 'o':
		return strings.TrimRight(spewDeep.Sdump(v), "\n")
	case 'O':
		return strings.TrimRight(spewShallow.Sdump(v), "\n")
	default: // 's'
		return stringify(v)
	}
}

// stringify is the %s rendering: strings pass through, everything else
// takes its natural fmt form.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

func formatDecimal(v any) string {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", n)
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return fmt.Sprintf("%d", n)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return inspect(v)
	}
}

// formatInteger renders the integer part of a numeric value.
func formatInteger(v any) string {
	switch n := v.(type) {
	case float32:
		return strconv.FormatInt(int64(n), 10)
	case float64:
		return strconv.FormatInt(int64(n), 10)
	default:
		return formatDecimal(v)
	}
}

func formatFloat(v any) string {
	switch n := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", n)
	default:
		return inspect(v)
	}
}

// jsonify applies structural stringification (the %j kind). Unserializable
// values fall back to the bounded inspect rendering.
func jsonify(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return inspect(v)
	}
	return string(b)
}

// inspect renders v for diagnostic display, truncating anything longer
// than inspectMax characters and appending an ellipsis marker so messages
// stay bounded regardless of caller input.
func inspect(v any) string {
	s := renderValue(v)
	if len(s) > inspectMax {
		s = s[:truncationBoundary(s, inspectMax)] + "..."
	}
	return s
}

// inspectTight is the short-form rendering used inside received-type
// diagnostics; it cuts much earlier than inspect.
func inspectTight(v any) string {
	s := renderValue(v)
	if len(s) > 28 {
		s = s[:truncationBoundary(s, 25)] + "..."
	}
	return s
}

// truncationBoundary backs cut off to the nearest rune start so a
// truncation never splits a multi-byte rune.
func truncationBoundary(s string, cut int) int {
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return cut
}

func renderValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return "'" + x + "'"
	case bool:
		return strconv.FormatBool(x)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return fmt.Sprint(x)
	case float32, float64:
		return fmt.Sprint(x)
	case error:
		return x.Error()
	default:
		return strings.TrimRight(spewShallow.Sdump(v), "\n")
	}
}
