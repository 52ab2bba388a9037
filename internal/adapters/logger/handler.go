package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/depcache/internal/ui/output"
	"go.trai.ch/depcache/internal/ui/style"
)

// levelStyle is the icon and color a record is rendered with.
type levelStyle struct {
	icon  string
	color lipgloss.Color
}

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return levelStyle{icon: style.Cross, color: style.Red}
	case level >= slog.LevelWarn:
		return levelStyle{icon: style.Warning, color: style.Yellow}
	default:
		return levelStyle{color: style.Slate}
	}
}

// PrettyHandler is a slog.Handler writing one colored line per record: an optional level icon,
// the message, then key=value attributes.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	attrs  []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	st := styleFor(r.Level)

	var sb strings.Builder
	if st.icon != "" {
		sb.WriteString(st.icon)
		sb.WriteByte(' ')
	}
	sb.WriteString(r.Message)
	for _, attr := range h.attrs {
		sb.WriteByte(' ')
		sb.WriteString(attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		sb.WriteByte(' ')
		sb.WriteString(h.render(attr))
		return true
	})

	line := h.out.String(sb.String()).Foreground(h.out.Color(string(st.color)))
	_, err := io.WriteString(h.out, line.String()+"\n")
	return err
}

// WithAttrs returns a handler that renders attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]string, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, attr := range attrs {
		next.attrs = append(next.attrs, h.render(attr))
	}
	return &next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func (h *PrettyHandler) render(attr slog.Attr) string {
	return h.prefix + attr.Key + "=" + attr.Value.String()
}
