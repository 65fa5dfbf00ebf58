package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/stylo/internal/ui/style"
)

// PrettyHandler is a slog.Handler that prints one colored line per record.
// Attributes follow the message as key=value pairs; groups prefix their keys.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// bound holds the attributes added with WithAttrs, already rendered.
	bound  string
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{out: style.NewOutput(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	mark := style.ForLevel(r.Level)

	var b strings.Builder
	b.WriteString(mark.Label(r.Message))
	b.WriteString(h.bound)
	r.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&b, h.prefix, attr)
		return true
	})

	_, err := h.out.WriteString(mark.Render(h.out, b.String()) + "\n")
	return err
}

// WithAttrs returns a handler that prints attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.bound)
	for _, attr := range attrs {
		h.appendAttr(&b, h.prefix, attr)
	}

	next := *h
	next.bound = b.String()
	return &next
}

// WithGroup returns a handler that qualifies the keys of later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func (h *PrettyHandler) appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			h.appendAttr(b, prefix, a)
		}
		return
	}
	b.WriteString(" " + prefix + attr.Key + "=" + attr.Value.String())
}
