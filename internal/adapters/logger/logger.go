// Package logger implements ports.Logger on log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// messager is implemented by zerr errors, which report their own message without the chain.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr errors carrying structured metadata.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger. Errors are rendered as an indented cause chain
// in pretty mode and as a single attribute in JSON mode.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	jsonMode bool
	output   io.Writer
}

// New creates a pretty Logger writing to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput changes the destination, keeping the current mode. A nil writer means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON lines and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jsonMode = enable
	l.rebuild()
}

func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Slog returns the underlying slog logger.
func (l *Logger) Slog() *slog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain. Nil errors are ignored.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", slog.String("error", err.Error()))
		return
	}
	entries := collectErrorEntries(err)
	var attrs []any
	if c, ok := liftCategory(entries); ok {
		attrs = append(attrs, slog.Any(CategoryKey, c))
	}
	l.logger.Error(formatErrorEntries(entries), attrs...)
}

// liftCategory removes the outermost category metadata from entries so the handler
// can show it as the line's tag.
func liftCategory(entries []ErrorEntry) (domain.Category, bool) {
	for i, e := range entries {
		raw, ok := e.Metadata[CategoryKey]
		if !ok {
			continue
		}
		c, err := domain.ParseCategory(fmt.Sprint(raw))
		if err != nil {
			return "", false
		}
		// The map may belong to the error itself.
		meta := maps.Clone(e.Metadata)
		delete(meta, CategoryKey)
		entries[i].Metadata = meta
		return c, true
	}
	return "", false
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain. zerr links contribute their own message and
// metadata; the first standard error ends the walk with its full text.
// Message-less zerr links only carry metadata, which is merged into the previous
// entry, or into the next one at the head of the chain.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any
	add := func(e ErrorEntry) {
		if len(pending) > 0 {
			if e.Metadata == nil {
				e.Metadata = map[string]any{}
			}
			maps.Copy(e.Metadata, pending)
			pending = nil
		}
		entries = append(entries, e)
	}

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			add(ErrorEntry{Message: current.Error()})
			break
		}
		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}
		switch {
		case m.Message() != "":
			add(ErrorEntry{Message: m.Message(), Metadata: meta})
		case len(entries) > 0:
			last := &entries[len(entries)-1]
			if last.Metadata == nil {
				last.Metadata = map[string]any{}
			}
			maps.Copy(last.Metadata, meta)
		default:
			if pending == nil {
				pending = map[string]any{}
			}
			maps.Copy(pending, meta)
		}
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders the chain as
//
//	Error: outer
//	       key: value
//
//	  Caused by:
//	    → inner
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string
	for i, e := range entries {
		msgLines := strings.Split(e.Message, "\n")
		prefix, indent := "    → ", "      "
		if i == 0 {
			prefix, indent = "Error: ", "       "
		} else if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, prefix+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, k := range slices.Sorted(maps.Keys(e.Metadata)) {
			lines = append(lines, indent+k+": "+formatAny(k, e.Metadata[k]))
		}
	}
	return strings.Join(lines, "\n")
}
