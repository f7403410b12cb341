package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/atlas/internal/adapters/telemetry"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Renderer   = (*Renderer)(nil)
	_ telemetry.Sender = (*Renderer)(nil)
)

// Renderer runs the explorer as a Bubble Tea program.
type Renderer struct {
	program *tea.Program
	done    chan struct{}

	mu  sync.Mutex
	err error
}

// NewRenderer creates a Renderer for model. Options are passed to tea.NewProgram.
//
//nolint:gocritic // hugeParam ignored
func NewRenderer(model Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		done:    make(chan struct{}),
	}
}

// Start runs the program in the background. Cancelling ctx quits it.
func (r *Renderer) Start(ctx context.Context) error {
	go func() {
		defer close(r.done)
		_, err := r.program.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			r.mu.Lock()
			r.err = zerr.Wrap(err, "explorer failed")
			r.mu.Unlock()
		}
	}()
	go func() {
		select {
		case <-ctx.Done():
			r.program.Quit()
		case <-r.done:
		}
	}()
	return nil
}

// Stop asks the program to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program has exited and restored the terminal.
func (r *Renderer) Wait() error {
	<-r.done
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Done is closed once the program has exited, including when the user quits.
func (r *Renderer) Done() <-chan struct{} {
	return r.done
}

// Send forwards msg to the program. It lets the renderer serve as a telemetry.Sender.
func (r *Renderer) Send(msg tea.Msg) {
	select {
	case <-r.done:
	default:
		r.program.Send(msg)
	}
}

// OnFrame replaces the displayed frame.
func (r *Renderer) OnFrame(frame domain.Frame) {
	r.Send(MsgFrame{Frame: frame})
}

// OnLookup shows a lookup session update.
func (r *Renderer) OnLookup(update domain.LookupUpdate) {
	r.Send(MsgLookup{Update: update})
}
