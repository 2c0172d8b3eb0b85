package logger

import (
	"context"
	"log/slog"
	"reflect"
	"runtime"
	"strings"
)

// sourceHandler attaches the caller's file and line to records at or above
// minLevel. The caller is the first frame outside log/slog and this
// package's wrappers, so Infow/Warnw report the call site, not interface.go.
type sourceHandler struct {
	handler  slog.Handler
	minLevel slog.Leveler
}

var wrapperPrefix = reflect.TypeOf(sourceHandler{}).PkgPath() + "."

func newSourceHandler(handler slog.Handler, minLevel slog.Leveler) slog.Handler {
	return &sourceHandler{handler: handler, minLevel: minLevel}
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel.Level() {
		if src, ok := callerSource(); ok {
			r.AddAttrs(slog.Any(slog.SourceKey, src))
		}
	}
	return h.handler.Handle(ctx, r)
}

func callerSource() (*slog.Source, bool) {
	var pcs [16]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !isWrapperFrame(f) {
			return &slog.Source{Function: f.Function, File: f.File, Line: f.Line}, true
		}
		if !more {
			return nil, false
		}
	}
}

func isWrapperFrame(f runtime.Frame) bool {
	if strings.HasPrefix(f.Function, "log/slog.") {
		return true
	}
	return strings.HasPrefix(f.Function, wrapperPrefix) && !strings.HasSuffix(f.File, "_test.go")
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{handler: h.handler.WithAttrs(attrs), minLevel: h.minLevel}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{handler: h.handler.WithGroup(name), minLevel: h.minLevel}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
