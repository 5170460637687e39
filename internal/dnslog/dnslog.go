// Package dnslog is the small, injectable logger this module's command-line
// tools use. The decoder core never logs — it is a pure function of its
// input buffer — so this interface only matters to cmd/dnsdump.
package dnslog

import (
	"log/slog"
	"os"
)

// Logger is the structured-logging contract dnsdump depends on.
type Logger interface {
	Debug(fields map[string]any, msg string)
	Error(fields map[string]any, msg string)
}

// slogLogger is the default Logger, backed by a *slog.Logger writing text
// lines to stderr at Debug level and above.
type slogLogger struct {
	l *slog.Logger
}

// New returns the default stderr-backed Logger.
func New() Logger {
	return &slogLogger{l: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))}
}

func (s *slogLogger) Debug(fields map[string]any, msg string) {
	s.l.Debug(msg, toArgs(fields)...)
}

func (s *slogLogger) Error(fields map[string]any, msg string) {
	s.l.Error(msg, toArgs(fields)...)
}

func toArgs(fields map[string]any) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
