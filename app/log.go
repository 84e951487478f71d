package app

import (
	"bytes"
	"log/slog"

	"renderdemon/hal"
)

// lineWriter adapts a hal.Logger to io.Writer. Each Write is one record
// from slog's text handler.
type lineWriter struct {
	l hal.Logger
}

func (w lineWriter) Write(p []byte) (int, error) {
	w.l.WriteLineBytes(bytes.TrimRight(p, "\n"))
	return len(p), nil
}

func newLogger(l hal.Logger, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(lineWriter{l: l}, &slog.HandlerOptions{Level: level}))
}
