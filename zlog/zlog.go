// Package zlog attaches coded errors to zerolog events.
//
// The core library stays log-free; programs that log coded errors use
// this adapter so every raise site emits the same structured fields:
// error_code, error_kind, error_message, and the trimmed stack.
package zlog

import (
	"errors"

	"github.com/rs/zerolog"

	imerrors "github.com/btakita/import-meta-resolve"
)

// Attach adds a coded error's fields to ev and returns it for chaining.
// Non-coded errors degrade to the standard zerolog error field.
func Attach(ev *zerolog.Event, err error) *zerolog.Event {
	if ev == nil || err == nil {
		return ev
	}
	var ce *imerrors.CodedError
	if !errors.As(err, &ce) {
		return ev.Err(err)
	}
	return ev.
		Str("error_code", string(ce.Code())).
		Str("error_kind", ce.Kind().Name()).
		Str("error_message", ce.Message()).
		Str("error_stack", ce.StackText())
}

// Err logs err at error level on logger with the coded fields attached.
func Err(logger zerolog.Logger, err error) *zerolog.Event {
	return Attach(logger.Error(), err)
}
