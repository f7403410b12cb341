package telemetry

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// MsgSpanStart reports that a traced operation began.
type MsgSpanStart struct {
	SpanID    string
	Name      string
	StartTime time.Time
}

// MsgSpanEnd reports that a traced operation finished.
type MsgSpanEnd struct {
	SpanID   string
	Name     string
	Duration time.Duration
	Err      error
}

// Sender delivers messages to a Bubble Tea program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

var _ sdktrace.SpanProcessor = (*TUIBridge)(nil)

// TUIBridge implements sdktrace.SpanProcessor to forward spans to the explorer as messages.
type TUIBridge struct {
	program Sender
}

// NewTUIBridge returns a new TUIBridge. A nil program drops every span.
func NewTUIBridge(program Sender) *TUIBridge {
	return &TUIBridge{program: program}
}

// OnStart is called when a span starts.
func (b *TUIBridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.program == nil || !s.SpanContext().IsValid() {
		return
	}
	b.program.Send(MsgSpanStart{
		SpanID:    s.SpanContext().SpanID().String(),
		Name:      s.Name(),
		StartTime: s.StartTime(),
	})
}

// OnEnd is called when a span ends.
func (b *TUIBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.program == nil || !s.SpanContext().IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = s.Name() + " failed"
		}
		err = errors.New(desc)
	}

	b.program.Send(MsgSpanEnd{
		SpanID:   s.SpanContext().SpanID().String(),
		Name:     s.Name(),
		Duration: s.EndTime().Sub(s.StartTime()),
		Err:      err,
	})
}

// ForceFlush does nothing.
func (b *TUIBridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *TUIBridge) Shutdown(context.Context) error {
	return nil
}
