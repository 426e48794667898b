// registry_test.go — verification of the process-wide code registry.
package imerrors

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefine_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	Define("ERR_TEST_DUP", Template("once"), KindError)
	require.PanicsWithValue(t,
		"imerrors: code ERR_TEST_DUP registered twice",
		func() { Define("ERR_TEST_DUP", Template("twice"), KindError) })
}

func TestDefine_DeclarationDefects(t *testing.T) {
	t.Parallel()

	t.Run("empty_code", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { Define("", Template("x"), KindError) })
	})
	t.Run("invalid_kind", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { Define("ERR_TEST_BAD_KIND", Template("x"), Kind(99)) })
	})
	t.Run("zero_value_rule", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { Define("ERR_TEST_ZERO_RULE", MessageRule{tag: ruleFunc}, KindError) })
	})
}

func TestLookup_UnknownCodeIsFatal(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t,
		"imerrors: unknown error code ERR_TEST_NEVER_REGISTERED",
		func() { New("ERR_TEST_NEVER_REGISTERED") })
}

func TestRegistered(t *testing.T) {
	t.Parallel()

	require.True(t, Registered("ERR_MODULE_NOT_FOUND"))
	require.False(t, Registered("ERR_TEST_ABSENT"))
}

func TestCodes_SortedAndContainsBuiltins(t *testing.T) {
	t.Parallel()

	codes := Codes()
	require.True(t, sort.SliceIsSorted(codes, func(i, j int) bool { return codes[i] < codes[j] }))

	set := make(map[Code]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	for _, c := range []Code{
		"ERR_INVALID_ARG_TYPE",
		"ERR_INVALID_ARG_VALUE",
		"ERR_INVALID_MODULE_SPECIFIER",
		"ERR_INVALID_PACKAGE_CONFIG",
		"ERR_INVALID_PACKAGE_TARGET",
		"ERR_MODULE_NOT_FOUND",
		"ERR_NETWORK_IMPORT_DISALLOWED",
		"ERR_PACKAGE_IMPORT_NOT_DEFINED",
		"ERR_PACKAGE_PATH_NOT_EXPORTED",
		"ERR_UNSUPPORTED_DIR_IMPORT",
		"ERR_UNKNOWN_FILE_EXTENSION",
		"ERR_UNSUPPORTED_ESM_URL_SCHEME",
	} {
		require.Contains(t, set, c)
	}
}

func TestDescribe_TemplateEntry(t *testing.T) {
	t.Parallel()

	d, ok := Describe("ERR_UNKNOWN_FILE_EXTENSION")
	require.True(t, ok)
	require.Equal(t, Descriptor{
		Code:     "ERR_UNKNOWN_FILE_EXTENSION",
		Kind:     "TypeError",
		Rule:     "template",
		Arity:    2,
		Template: `Unknown file extension "%s" for %s`,
	}, d)
}

func TestDescribe_FunctionEntry(t *testing.T) {
	t.Parallel()

	d, ok := Describe("ERR_MODULE_NOT_FOUND")
	require.True(t, ok)
	require.Equal(t, "function", d.Rule)
	require.Equal(t, "Error", d.Kind)
	require.Equal(t, 2, d.Arity)
	require.Empty(t, d.Template)
}

func TestDescribe_Unregistered(t *testing.T) {
	t.Parallel()

	_, ok := Describe("ERR_TEST_ABSENT")
	require.False(t, ok)
}

func TestDescriptors_SortedByCode(t *testing.T) {
	t.Parallel()

	ds := Descriptors()
	require.NotEmpty(t, ds)
	require.True(t, sort.SliceIsSorted(ds, func(i, j int) bool { return ds[i].Code < ds[j].Code }))
}
