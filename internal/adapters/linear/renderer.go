// Package linear provides a synchronous, line-oriented renderer for pipes and CI.
package linear

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/atlas/internal/ui/output"
	"go.trai.ch/atlas/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Format selects how frames are written.
type Format string

const (
	// FormatText prints the summaries of each frame.
	FormatText Format = "text"
	// FormatJSON prints one JSON document per frame, draw commands included.
	FormatJSON Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return f, nil
	default:
		return "", zerr.With(zerr.New("unknown output format"), "format", s)
	}
}

// Renderer implements ports.Renderer for non-interactive output.
// Frames and narratives go to stdout, lookup progress goes to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output
	format Format

	mu   sync.Mutex
	last domain.LookupState
	err  error
}

// NewRenderer creates a Renderer. Nil writers default to stdout and stderr.
func NewRenderer(stdout, stderr io.Writer, format Format) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	if format == "" {
		format = FormatText
	}
	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stdout, output.ColorProfileANSI),
		format: format,
	}
}

// Start is a no-op for the linear renderer.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop returns the first write error, if any.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Wait is a no-op for the linear renderer.
func (r *Renderer) Wait() error {
	return nil
}

// OnFrame prints the frame.
func (r *Renderer) OnFrame(frame domain.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.format == FormatJSON {
		enc := json.NewEncoder(r.stdout)
		enc.SetIndent("", "  ")
		r.keep(enc.Encode(frame))
		return
	}

	var b strings.Builder
	b.WriteString(r.output.String("── " + frame.Label + " ──").Bold().String())
	b.WriteString("\n")
	if len(frame.Summaries) == 0 {
		b.WriteString(r.output.String("  no overlays visible").Faint().String())
		b.WriteString("\n")
	}
	for _, s := range frame.Summaries {
		fmt.Fprintf(&b, "%s %s: %s\n", style.Glyph(s.Category), s.Category, s.Headline)
		for _, d := range s.Details {
			fmt.Fprintf(&b, "    %s\n", d)
		}
	}
	if n := len(frame.Commands); n > 0 {
		b.WriteString(r.output.String(fmt.Sprintf("  %d draw commands", n)).Faint().String())
		b.WriteString("\n")
	}
	r.write(r.stdout, b.String())
}

// OnLookup prints state transitions. Repeated updates with the same state are skipped.
func (r *Renderer) OnLookup(update domain.LookupUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if update.State == r.last && update.State != domain.LookupResolved {
		return
	}
	r.last = update.State

	switch update.State {
	case domain.LookupIdle:
	case domain.LookupPendingDebounce, domain.LookupInFlight:
		r.write(r.stderr, r.output.String(fmt.Sprintf("… %s %s", update.State, update.Key)).Faint().String()+"\n")
	case domain.LookupResolved:
		if r.format == FormatJSON {
			r.keep(json.NewEncoder(r.stdout).Encode(update))
			return
		}
		title := r.output.String(update.Label()).Bold().String()
		r.write(r.stdout, fmt.Sprintf("%s\n%s\n", title, strings.TrimSpace(update.Entry.Narrative)))
	case domain.LookupFailed:
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		msg := "lookup failed"
		if update.Err != nil {
			msg = update.Err.Error()
		}
		r.write(r.stderr, fmt.Sprintf("%s %s: %s\n", symbol, update.Key, msg))
	}
}

func (r *Renderer) write(w io.Writer, s string) {
	_, err := io.WriteString(w, s)
	r.keep(err)
}

func (r *Renderer) keep(err error) {
	if err != nil && r.err == nil {
		r.err = zerr.Wrap(err, "failed to write output")
	}
}
