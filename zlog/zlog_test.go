package zlog

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	imerrors "github.com/btakita/import-meta-resolve"
)

func logLine(t *testing.T, emit func(logger zerolog.Logger)) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	emit(logger)

	fields := make(map[string]any)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	return fields
}

func TestAttach_CodedErrorFields(t *testing.T) {
	t.Parallel()

	e := imerrors.ErrUnknownFileExtension(".xyz", "/a/b.xyz")
	fields := logLine(t, func(logger zerolog.Logger) {
		Attach(logger.Error(), e).Msg("resolution failed")
	})

	require.Equal(t, "ERR_UNKNOWN_FILE_EXTENSION", fields["error_code"])
	require.Equal(t, "TypeError", fields["error_kind"])
	require.Equal(t, `Unknown file extension ".xyz" for /a/b.xyz`, fields["error_message"])
	require.Contains(t, fields["error_stack"], "TypeError [ERR_UNKNOWN_FILE_EXTENSION]: ")
	require.Equal(t, "resolution failed", fields["message"])
}

func TestAttach_WrappedCodedError(t *testing.T) {
	t.Parallel()

	e := fmt.Errorf("resolving: %w", imerrors.ErrModuleNotFound("dep", "/app/main.js"))
	fields := logLine(t, func(logger zerolog.Logger) {
		Attach(logger.Error(), e).Msg("")
	})
	require.Equal(t, "ERR_MODULE_NOT_FOUND", fields["error_code"])
}

func TestAttach_ForeignErrorDegrades(t *testing.T) {
	t.Parallel()

	fields := logLine(t, func(logger zerolog.Logger) {
		Attach(logger.Error(), errors.New("plain failure")).Msg("")
	})
	require.Equal(t, "plain failure", fields["error"])
	require.NotContains(t, fields, "error_code")
}

func TestErr_LogsAtErrorLevel(t *testing.T) {
	t.Parallel()

	fields := logLine(t, func(logger zerolog.Logger) {
		Err(logger, imerrors.ErrUnsupportedDirImport("/app/lib", "/app/main.js")).Msg("")
	})
	require.Equal(t, "error", fields["level"])
	require.Equal(t, "ERR_UNSUPPORTED_DIR_IMPORT", fields["error_code"])
}

func TestAttach_NilSafe(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ev := Attach(logger.Error(), nil)
	require.NotNil(t, ev)
	ev.Msg("no error attached")
	require.Contains(t, buf.String(), "no error attached")
}
