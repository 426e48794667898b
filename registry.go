// registry.go — the process-wide code registry for imerrors.
//
// The registry maps each ERR_* code to its message rule and base kind. It
// is populated during startup via Define and read-only afterward from the
// resolver's perspective; the registration API is distinct from lookup so
// the write phase cannot leak into steady state. A RWMutex guards the map
// so late registration (tests, embedding programs) stays safe.
//
// Contract violations — duplicate registration, lookup of an unregistered
// code — panic with a diagnostic naming the code. They are defects in the
// calling code, never recoverable conditions.
package imerrors

import (
	"fmt"
	"sort"
	"sync"
)

// Code is the immutable symbolic identifier of one error class, e.g.
// "ERR_MODULE_NOT_FOUND". A code is registered exactly once and is never
// reused for a different message rule.
type Code string

// Constructor builds a fully formed error for one registered code. Every
// invocation resolves the message, captures a trimmed trace, and attaches
// the code; it never fails for a correct-arity call.
type Constructor func(args ...any) *CodedError

type regEntry struct {
	rule MessageRule
	kind Kind
}

var (
	regMu    sync.RWMutex
	registry = make(map[Code]regEntry)
)

// Define registers code exactly once and returns its constructor.
// Re-registration is not supported and panics: last-write-wins would let
// two call sites disagree about a code's message shape.
func Define(code Code, rule MessageRule, kind Kind) Constructor {
	if code == "" {
		panic("imerrors: Define requires a non-empty code")
	}
	if !kind.Valid() {
		panic(fmt.Sprintf("imerrors: Define %s: invalid base kind %d", code, kind))
	}
	if rule.tag == ruleFunc && rule.fn == nil {
		panic(fmt.Sprintf("imerrors: Define %s: zero-value MessageRule", code))
	}

	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := registry[code]; dup {
		panic(fmt.Sprintf("imerrors: code %s registered twice", code))
	}
	registry[code] = regEntry{rule: rule, kind: kind}

	ctor := func(args ...any) *CodedError {
		return construct(code, args)
	}
	markInternal(ctor)
	return ctor
}

// lookup fails fatally for unregistered codes; by the time messages are
// resolved the registry is complete, so a miss is a defect upstream.
func lookup(code Code) regEntry {
	regMu.RLock()
	ent, ok := registry[code]
	regMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("imerrors: unknown error code %s", code))
	}
	return ent
}

// Registered reports whether code has been defined.
func Registered(code Code) bool {
	regMu.RLock()
	defer regMu.RUnlock()
	_, ok := registry[code]
	return ok
}

// Codes returns every registered code in sorted order (defensive copy).
func Codes() []Code {
	regMu.RLock()
	out := make([]Code, 0, len(registry))
	for c := range registry {
		out = append(out, c)
	}
	regMu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Descriptor is a flat, tooling-friendly view of one registry entry.
type Descriptor struct {
	Code     Code   `json:"code" yaml:"code"`
	Kind     string `json:"kind" yaml:"kind"`
	Rule     string `json:"rule" yaml:"rule"` // "template" or "function"
	Arity    int    `json:"arity" yaml:"arity"`
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
}

// Describe returns the descriptor for code, and whether it is registered.
func Describe(code Code) (Descriptor, bool) {
	regMu.RLock()
	ent, ok := registry[code]
	regMu.RUnlock()
	if !ok {
		return Descriptor{}, false
	}
	return describeEntry(code, ent), true
}

// Descriptors returns descriptors for every registered code, sorted by code.
func Descriptors() []Descriptor {
	codes := Codes()
	out := make([]Descriptor, 0, len(codes))
	for _, c := range codes {
		if d, ok := Describe(c); ok {
			out = append(out, d)
		}
	}
	return out
}

func describeEntry(code Code, ent regEntry) Descriptor {
	d := Descriptor{
		Code:  code,
		Kind:  ent.kind.Name(),
		Arity: ent.rule.Arity(),
	}
	if ent.rule.IsFunc() {
		d.Rule = "function"
	} else {
		d.Rule = "template"
		d.Template = ent.rule.text
	}
	return d
}
