package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/ui/output"
	"go.trai.ch/atlas/internal/ui/style"
)

// CategoryKey is the attribute rendered as a leading overlay tag instead of key=value.
const CategoryKey = "category"

// yearKeys hold plain integers that are rendered as calendar years.
var yearKeys = map[string]bool{"year": true, "bucket": true, "start": true, "end": true}

// PrettyHandler is a slog.Handler writing one colored line per record:
//
//	<level glyph> [<category glyph> <category>] message key=value ...
//
// Years, lookup keys, points and durations are rendered in their display form.
type PrettyHandler struct {
	out      *termenv.Output
	level    slog.Leveler
	prefix   string
	attrs    []string
	category domain.Category
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	category := h.category
	parts := append([]string(nil), h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		if c, ok := categoryOf(h.prefix, a); ok {
			category = c
			return true
		}
		parts = appendAttr(parts, h.prefix, a)
		return true
	})

	glyph, color := levelStyle(r.Level)
	var b strings.Builder
	if glyph != "" {
		b.WriteString(glyph + " ")
	}
	if category != "" {
		tag := h.out.String("[" + style.Glyph(category) + " " + string(category) + "]").
			Foreground(termenv.RGBColor(string(style.Gold)))
		b.WriteString(tag.String() + " ")
	}
	b.WriteString(r.Message)
	for _, p := range parts {
		b.WriteString(" " + p)
	}

	line := h.out.String(b.String()).Foreground(color)
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

// WithAttrs implements slog.Handler. Attributes are rendered once, under the current group.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		if c, ok := categoryOf(h.prefix, a); ok {
			next.category = c
			continue
		}
		next.attrs = appendAttr(next.attrs, h.prefix, a)
	}
	return &next
}

// WithGroup implements slog.Handler. Groups nest as dotted key prefixes.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	case level < slog.LevelInfo:
		return style.Circle, termenv.RGBColor(string(style.Slate))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// categoryOf reports whether a is an ungrouped category attribute naming a known category.
func categoryOf(prefix string, a slog.Attr) (domain.Category, bool) {
	if prefix != "" || a.Key != CategoryKey {
		return "", false
	}
	var raw string
	switch v := a.Value.Resolve().Any().(type) {
	case domain.Category:
		raw = string(v)
	case string:
		raw = v
	default:
		return "", false
	}
	c, err := domain.ParseCategory(raw)
	if err != nil {
		return "", false
	}
	return c, true
}

// appendAttr flattens groups into dotted keys and drops empty attributes.
func appendAttr(parts []string, prefix string, a slog.Attr) []string {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner += a.Key + "."
		}
		for _, g := range v.Group() {
			parts = appendAttr(parts, inner, g)
		}
		return parts
	}
	if a.Equal(slog.Attr{}) {
		return parts
	}
	s := formatValue(a.Key, v)
	if s == "" || strings.ContainsAny(s, " =\"") {
		s = strconv.Quote(s)
	}
	return append(parts, prefix+a.Key+"="+s)
}

// formatValue renders v in display form. key selects year rendering for plain integers.
func formatValue(key string, v slog.Value) string {
	switch v.Kind() {
	case slog.KindInt64:
		if yearKeys[key] {
			return domain.FormatYear(domain.Year(v.Int64()))
		}
	case slog.KindDuration:
		return v.Duration().Round(time.Millisecond).String()
	case slog.KindAny:
		return formatAny(key, v.Any())
	}
	return v.String()
}

func formatAny(key string, v any) string {
	switch x := v.(type) {
	case domain.Year:
		return domain.FormatYear(x)
	case *domain.Year:
		if x == nil {
			return "none"
		}
		return domain.FormatYear(*x)
	case domain.QueryKey:
		return x.String()
	case domain.GeoPoint:
		return fmt.Sprintf("%.4f,%.4f", x.Lat, x.Lng)
	case domain.Range:
		return domain.FormatYear(x.Start) + ".." + domain.FormatYear(x.End)
	case domain.Category:
		return string(x)
	case int:
		if yearKeys[key] {
			return domain.FormatYear(domain.Year(x))
		}
	case time.Duration:
		return x.Round(time.Millisecond).String()
	case error:
		return x.Error()
	}
	return fmt.Sprint(v)
}
