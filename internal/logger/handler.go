package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// CLIHandler is a slog.Handler for human-facing output. Warnings and errors
// carry distinct markers so automation wrapping this tool can tell a
// best-effort failure from a fatal one.
type CLIHandler struct {
	opts  *slog.HandlerOptions
	w     io.Writer
	attrs []slog.Attr
	group string
}

func NewCLIHandler(w io.Writer, opts *slog.HandlerOptions) *CLIHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &CLIHandler{opts: opts, w: w}
}

func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelWarn
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	buf.WriteString(h.badge(r.Level))
	buf.WriteString(" ")
	buf.WriteString(r.Message)

	attrs := make([]string, 0)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.formatAttr(a))
		return true
	})
	for _, a := range h.attrs {
		attrs = append(attrs, h.formatAttr(a))
	}

	if len(attrs) > 0 {
		buf.WriteString(" ")
		buf.WriteString(strings.Join(attrs, " "))
	}

	buf.WriteString("\n")
	_, err := h.w.Write([]byte(buf.String()))
	return err
}

func (h *CLIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(merged, h.attrs)
	copy(merged[len(h.attrs):], attrs)
	return &CLIHandler{opts: h.opts, w: h.w, attrs: merged, group: h.group}
}

func (h *CLIHandler) WithGroup(name string) slog.Handler {
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &CLIHandler{opts: h.opts, w: h.w, attrs: h.attrs, group: group}
}

func (h *CLIHandler) badge(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return color.HiBlackString("[debug]")
	case slog.LevelInfo:
		return color.CyanString("ℹ️")
	case slog.LevelWarn:
		return color.YellowString("⚠️ Warning:")
	case slog.LevelError:
		return color.RedString("❌ Error:")
	default:
		return fmt.Sprintf("[%s]", level.String())
	}
}

func (h *CLIHandler) formatAttr(a slog.Attr) string {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	val := a.Value.String()

	switch key {
	case "error", "err", "stderr":
		return color.RedString("%s=%q", key, val)
	default:
		return color.HiBlackString("%s=%s", key, val)
	}
}
