// codes.go — the builtin ERR_* catalog of the module resolver.
//
// Every code the resolver raises is declared here, once, at package init.
// Message texts reproduce the origin resolver verbatim; raise sites call
// the exported constructors and never carry message text themselves.
//
// Exactly one rule is environment-sensitive: ERR_UNSUPPORTED_ESM_URL_SCHEME
// appends a Windows path hint. That variation is a configuration input
// (SetWindowsSemantics), not platform detection.
package imerrors

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync/atomic"
	"unicode"
)

var windowsSemantics atomic.Bool

// SetWindowsSemantics selects the Windows variant of the URL-scheme
// message. Callers seed it from their own configuration; the default is
// the non-Windows text.
func SetWindowsSemantics(enabled bool) { windowsSemantics.Store(enabled) }

// WindowsSemantics reports the currently configured variant.
func WindowsSemantics() bool { return windowsSemantics.Load() }

// Builtin constructors, one per registered code.
var (
	// ErrInvalidArgType: (name string, expected string|[]string, actual any).
	ErrInvalidArgType = Define("ERR_INVALID_ARG_TYPE",
		MessageFunc(3, invalidArgTypeMessage), KindTypeError)

	// ErrInvalidArgValue: (name string, value any[, reason string = "is invalid"]).
	ErrInvalidArgValue = Define("ERR_INVALID_ARG_VALUE",
		MessageFunc(2, invalidArgValueMessage), KindTypeError)

	// ErrInvalidModuleSpecifier: (request, reason string[, base string]).
	ErrInvalidModuleSpecifier = Define("ERR_INVALID_MODULE_SPECIFIER",
		MessageFunc(2, invalidModuleSpecifierMessage), KindTypeError)

	// ErrInvalidPackageConfig: (path string[, base string, message string]).
	ErrInvalidPackageConfig = Define("ERR_INVALID_PACKAGE_CONFIG",
		MessageFunc(1, invalidPackageConfigMessage), KindError)

	// ErrInvalidPackageTarget: (pkgPath, key string, target any[, isImport bool, base string]).
	ErrInvalidPackageTarget = Define("ERR_INVALID_PACKAGE_TARGET",
		MessageFunc(3, invalidPackageTargetMessage), KindError)

	// ErrModuleNotFound: (path, base string[, exactURL bool]).
	ErrModuleNotFound = Define("ERR_MODULE_NOT_FOUND",
		MessageFunc(2, moduleNotFoundMessage), KindError)

	// ErrNetworkImportDisallowed: (specifier, base, reason).
	ErrNetworkImportDisallowed = Define("ERR_NETWORK_IMPORT_DISALLOWED",
		Template("import of '%s' by %s is not supported: %s"), KindError)

	// ErrPackageImportNotDefined: (specifier, packagePath, base string).
	// packagePath may be empty when no enclosing package.json exists.
	ErrPackageImportNotDefined = Define("ERR_PACKAGE_IMPORT_NOT_DEFINED",
		MessageFunc(3, packageImportNotDefinedMessage), KindTypeError)

	// ErrPackagePathNotExported: (pkgPath, subpath string[, base string]).
	ErrPackagePathNotExported = Define("ERR_PACKAGE_PATH_NOT_EXPORTED",
		MessageFunc(2, packagePathNotExportedMessage), KindError)

	// ErrUnsupportedDirImport: (path, base).
	ErrUnsupportedDirImport = Define("ERR_UNSUPPORTED_DIR_IMPORT",
		Template("Directory import '%s' is not supported resolving ES modules imported from %s"), KindError)

	// ErrUnknownFileExtension: (extension, path).
	ErrUnknownFileExtension = Define("ERR_UNKNOWN_FILE_EXTENSION",
		Template(`Unknown file extension "%s" for %s`), KindTypeError)

	// ErrUnsupportedESMURLScheme: (protocol string, supported []string).
	// The protocol keeps its trailing colon ("file:"); a two-character
	// protocol under Windows semantics is a drive letter.
	ErrUnsupportedESMURLScheme = Define("ERR_UNSUPPORTED_ESM_URL_SCHEME",
		MessageFunc(2, unsupportedESMURLSchemeMessage), KindError)
)

// ---------- message functions ------------------------------------------------

func invalidModuleSpecifierMessage(_ *CodedError, args []any) string {
	request, reason := str(args[0]), str(args[1])
	msg := fmt.Sprintf("Invalid module \"%s\" %s", request, reason)
	if base := optStr(args, 2); base != "" {
		msg += " imported from " + base
	}
	return msg
}

func invalidPackageConfigMessage(_ *CodedError, args []any) string {
	msg := "Invalid package config " + str(args[0])
	if base := optStr(args, 1); base != "" {
		msg += " while importing " + base
	}
	if detail := optStr(args, 2); detail != "" {
		msg += ". " + detail
	}
	return msg
}

func invalidPackageTargetMessage(_ *CodedError, args []any) string {
	pkgPath, key := str(args[0]), str(args[1])
	target := args[2]
	isImport := optBool(args, 3)
	base := optStr(args, 4)

	relError := false
	if s, ok := target.(string); ok && !isImport && len(s) > 0 && !strings.HasPrefix(s, "./") {
		relError = true
	}

	var msg string
	if key == "." {
		msg = fmt.Sprintf("Invalid \"exports\" main target %s defined in the package config %spackage.json",
			jsonify(target), pkgPath)
	} else {
		field := "exports"
		if isImport {
			field = "imports"
		}
		msg = fmt.Sprintf("Invalid \"%s\" target %s defined for '%s' in the package config %spackage.json",
			field, jsonify(target), key, pkgPath)
	}
	if base != "" {
		msg += " imported from " + base
	}
	if relError {
		msg += `; targets must start with "./"`
	}
	return msg
}

func moduleNotFoundMessage(_ *CodedError, args []any) string {
	what := "package"
	if optBool(args, 2) {
		what = "module"
	}
	return fmt.Sprintf("Cannot find %s '%s' imported from %s", what, str(args[0]), str(args[1]))
}

func packageImportNotDefinedMessage(_ *CodedError, args []any) string {
	msg := fmt.Sprintf("Package import specifier \"%s\" is not defined", str(args[0]))
	if pkgPath := str(args[1]); pkgPath != "" {
		msg += " in package " + pkgPath + "package.json"
	}
	return msg + " imported from " + str(args[2])
}

func packagePathNotExportedMessage(_ *CodedError, args []any) string {
	pkgPath, subpath := str(args[0]), str(args[1])
	var msg string
	if subpath == "." {
		msg = fmt.Sprintf("No \"exports\" main defined in %spackage.json", pkgPath)
	} else {
		msg = fmt.Sprintf("Package subpath '%s' is not defined by \"exports\" in %spackage.json", subpath, pkgPath)
	}
	if base := optStr(args, 2); base != "" {
		msg += " imported from " + base
	}
	return msg
}

func invalidArgValueMessage(_ *CodedError, args []any) string {
	name := str(args[0])
	reason := optStrDefault(args, 2, "is invalid")
	what := "argument"
	if strings.Contains(name, ".") {
		what = "property"
	}
	return fmt.Sprintf("The %s '%s' %s. Received %s", what, name, reason, inspect(args[1]))
}

func unsupportedESMURLSchemeMessage(_ *CodedError, args []any) string {
	protocol := str(args[0])
	supported := toStrings(args[1])
	msg := "Only URLs with a scheme in: " + formatList(supported, "and") +
		" are supported by the default ESM loader"
	if WindowsSemantics() && len(protocol) == 2 {
		msg += ". On Windows, absolute paths must be valid file:// URLs"
	}
	return msg + fmt.Sprintf(". Received protocol '%s'", protocol)
}

// expectedTypeNames are the primitive type words recognized in an
// ERR_INVALID_ARG_TYPE expectation list; anything else capitalized is
// treated as a class name.
var expectedTypeNames = map[string]struct{}{
	"string": {}, "function": {}, "number": {}, "object": {},
	"boolean": {}, "bigint": {}, "symbol": {},
	"Function": {}, "Object": {},
}

func invalidArgTypeMessage(_ *CodedError, args []any) string {
	name := str(args[0])
	expected := toStrings(args[1])

	msg := "The "
	if strings.HasSuffix(name, " argument") {
		msg += name + " "
	} else {
		what := "argument"
		if strings.Contains(name, ".") {
			what = "property"
		}
		msg += fmt.Sprintf("\"%s\" %s ", name, what)
	}
	msg += "must be "

	var types, instances, other []string
	for _, exp := range expected {
		if _, ok := expectedTypeNames[exp]; ok {
			types = append(types, strings.ToLower(exp))
		} else if isClassName(exp) {
			instances = append(instances, exp)
		} else {
			other = append(other, exp)
		}
	}

	if len(types) > 0 {
		switch {
		case len(types) > 2:
			last := types[len(types)-1]
			msg += "one of type " + strings.Join(types[:len(types)-1], ", ") + ", or " + last
		case len(types) == 2:
			msg += "one of type " + types[0] + " or " + types[1]
		default:
			msg += "of type " + types[0]
		}
		if len(instances) > 0 || len(other) > 0 {
			msg += " or "
		}
	}
	if len(instances) > 0 {
		msg += "an instance of " + formatList(instances, "or")
		if len(other) > 0 {
			msg += " or "
		}
	}
	if len(other) > 0 {
		if len(other) > 1 {
			msg += "one of " + formatList(other, "or")
		} else {
			if strings.ToLower(other[0]) != other[0] {
				msg += "an "
			}
			msg += other[0]
		}
	}

	return msg + ". Received " + determineSpecificType(args[2])
}

// determineSpecificType renders the received value for the arg-type
// diagnostic: "null", "function name", "an instance of T", or
// "type kind ('short rendering')".
func determineSpecificType(v any) string {
	if v == nil {
		return "null"
	}
	rv := reflectValue(v)
	switch rv.kind {
	case "func":
		if rv.name != "" {
			return "function " + rv.name
		}
		return "function"
	case "instance":
		return "an instance of " + rv.name
	default:
		return fmt.Sprintf("type %s (%s)", rv.kind, inspectTight(v))
	}
}

// isClassName reports whether s looks like a class identifier: capitalized
// alphanumeric words, e.g. "URL" or "ArrayBuffer".
func isClassName(s string) bool {
	if s == "" || !unicode.IsUpper(rune(s[0])) {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// formatList joins items with an Oxford-comma conjunction:
// "a", "a and b", "a, b, and c".
func formatList(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", " + conj + " " + items[len(items)-1]
	}
}

// ---------- argument coercion helpers ----------------------------------------

func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return stringify(v)
}

func optStr(args []any, i int) string {
	if i >= len(args) || args[i] == nil {
		return ""
	}
	return str(args[i])
}

func optStrDefault(args []any, i int, def string) string {
	if i >= len(args) || args[i] == nil {
		return def
	}
	return str(args[i])
}

func optBool(args []any, i int) bool {
	if i >= len(args) {
		return false
	}
	b, _ := args[i].(bool)
	return b
}

func toStrings(v any) []string {
	switch x := v.(type) {
	case []string:
		return x
	case string:
		return []string{x}
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			out = append(out, str(item))
		}
		return out
	default:
		return []string{str(v)}
	}
}

// reflectedValue is the small slice of reflection detail
// determineSpecificType needs.
type reflectedValue struct {
	kind string
	name string
}

func reflectValue(v any) reflectedValue {
	switch v.(type) {
	case string:
		return reflectedValue{kind: "string"}
	case bool:
		return reflectedValue{kind: "boolean"}
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return reflectedValue{kind: "number"}
	}
	return reflectStructured(v)
}

func reflectStructured(v any) reflectedValue {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		name := ""
		if rf := runtime.FuncForPC(rv.Pointer()); rf != nil {
			name = shortFuncName(rf.Name())
		}
		return reflectedValue{kind: "func", name: name}
	case reflect.Pointer:
		if rv.IsNil() {
			return reflectedValue{kind: "instance", name: rv.Type().String()}
		}
		return reflectedValue{kind: "instance", name: rv.Elem().Type().String()}
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Chan:
		return reflectedValue{kind: "instance", name: rv.Type().String()}
	default:
		return reflectedValue{kind: rv.Kind().String()}
	}
}

func shortFuncName(full string) string {
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.IndexByte(full, '.'); i >= 0 {
		full = full[i+1:]
	}
	return full
}
