// resolve_test.go — verification of message resolution and formatting kinds.
package imerrors

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// Test-only rules, declared once at init like production codes.
var (
	resolveVerbatim = Define("ERR_TEST_VERBATIM",
		Template("fixed text, 100%% static"), KindError)

	resolveMixed = Define("ERR_TEST_MIXED",
		Template("n=%d i=%i f=%f j=%j s=%s done %%"), KindError)

	resolveOptional = Define("ERR_TEST_OPTIONAL",
		MessageFunc(1, func(_ *CodedError, args []any) string {
			return str(args[0]) + " / " + optStrDefault(args, 1, "fallback")
		}), KindError)

	resolveInspect = Define("ERR_TEST_INSPECT",
		Template("saw %O"), KindError)
)

func TestResolve_ZeroPlaceholderTemplateIsVerbatim(t *testing.T) {
	t.Parallel()

	e := resolveVerbatim()
	require.Equal(t, "fixed text, 100% static", e.Message())
}

func TestResolve_SubstitutesLeftToRight(t *testing.T) {
	t.Parallel()

	e := resolveMixed(7, 3.9, 2.5, map[string]int{"a": 1}, "tail")
	require.Equal(t, `n=7 i=3 f=2.5 j={"a":1} s=tail done %`, e.Message())
}

func TestResolve_DecimalAcceptsAllNumericWidths(t *testing.T) {
	t.Parallel()

	e := resolveMixed(int64(-2), float32(1), uint8(255), []int{1, 2}, 42)
	require.Equal(t, `n=-2 i=1 f=255 j=[1,2] s=42 done %`, e.Message())
}

func TestResolve_FunctionRuleOptionalDefault(t *testing.T) {
	t.Parallel()

	t.Run("omitted", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "a / fallback", resolveOptional("a").Message())
	})
	t.Run("supplied", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "a / b", resolveOptional("a", "b").Message())
	})
}

func TestResolve_TemplateArityIsExact(t *testing.T) {
	t.Parallel()

	t.Run("one_fewer", func(t *testing.T) {
		t.Parallel()
		require.PanicsWithValue(t,
			"imerrors: wrong number of arguments for ERR_TEST_MIXED: got 4, want exactly 5",
			func() { resolveMixed(1, 2, 3, "x") })
	})
	t.Run("one_more", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { resolveMixed(1, 2, 3, "x", "y", "z") })
	})
	t.Run("zero_placeholder_rejects_args", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { resolveVerbatim("unexpected") })
	})
}

func TestResolve_FunctionArityIsMinimum(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t,
		"imerrors: wrong number of arguments for ERR_TEST_OPTIONAL: got 0, want at least 1",
		func() { resolveOptional() })
}

func TestResolve_ObjectInspectRendersFields(t *testing.T) {
	t.Parallel()

	type pkgConfig struct {
		Name string
		Main string
	}
	e := resolveInspect(pkgConfig{Name: "dep", Main: "index.js"})
	require.Contains(t, e.Message(), "dep")
	require.Contains(t, e.Message(), "index.js")
}

func TestInspect_TruncatesAt128(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 500)
	got := inspect(long)
	require.Len(t, got, inspectMax+len("..."))
	require.True(t, strings.HasSuffix(got, "..."))
	require.True(t, strings.HasPrefix(got, "'aaa"))
}

func TestInspect_TruncationKeepsRuneBoundary(t *testing.T) {
	t.Parallel()

	got := inspect(strings.Repeat("é", 300))
	require.True(t, utf8.ValidString(got), "truncation split a multi-byte rune: %q", got)
	require.True(t, strings.HasSuffix(got, "..."))
	require.LessOrEqual(t, len(got), inspectMax+len("..."))

	tight := inspectTight(strings.Repeat("界", 40))
	require.True(t, utf8.ValidString(tight), "tight truncation split a multi-byte rune: %q", tight)
	require.True(t, strings.HasSuffix(tight, "..."))
}

func TestInspect_ShortValuesUntouched(t *testing.T) {
	t.Parallel()

	require.Equal(t, "'abc'", inspect("abc"))
	require.Equal(t, "42", inspect(42))
	require.Equal(t, "true", inspect(true))
	require.Equal(t, "null", inspect(nil))
}

func TestJsonify_FallsBackOnUnserializable(t *testing.T) {
	t.Parallel()

	require.Equal(t, `{"a":1}`, jsonify(map[string]int{"a": 1}))
	// channels cannot be marshaled; the bounded inspect rendering steps in
	require.NotEmpty(t, jsonify(make(chan int)))
}
