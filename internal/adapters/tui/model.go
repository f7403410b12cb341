package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/atlas/internal/adapters/telemetry"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/lookup"
	"go.trai.ch/atlas/internal/engine/overlay"
)

const (
	defaultZoom   = 5
	defaultStep   = 10
	bigStepFactor = 10
	minZoom       = 1
	maxZoom       = 18
	maxLatitude   = 85
	maxActivity   = 5

	layerPaneWidth = 26
	panelChrome    = 4
)

// Coordinator is the overlay state the explorer drives. *overlay.Coordinator satisfies it.
type Coordinator interface {
	Current() domain.Frame
	Year() domain.Year
	JumpTo(y domain.Year) domain.Year
	Toggle(c domain.Category) (bool, error)
	States() []overlay.State
}

// MsgFrame replaces the displayed frame, e.g. after a dataset reload.
type MsgFrame struct {
	Frame domain.Frame
}

// MsgLookup carries a lookup session update.
type MsgLookup struct {
	Update domain.LookupUpdate
}

type telemetrySpan struct {
	name  string
	start time.Time
}

// Model is the explorer state.
type Model struct {
	coord   Coordinator
	trigger func(lookup.Trigger)

	Frame     domain.Frame
	States    []overlay.State
	Lookup    domain.LookupUpdate
	Center    domain.GeoPoint
	Zoom      int
	Threshold int
	Step      int
	Status    string

	Spans    map[string]telemetrySpan
	Activity []string

	Viewport viewport.Model
	Spinner  spinner.Model
	Width    int
	Height   int
}

// Init starts the spinner and announces the initial view.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, m.triggerCmd())
}

// Update handles incoming messages and updates the model state.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Viewport.Width = max(msg.Width-panelChrome, 0)
		m.Viewport.Height = max(msg.Height/3, 3)
		m.Viewport.SetContent(m.narrative())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case MsgFrame:
		m.Frame = msg.Frame
		if m.coord != nil {
			m.States = m.coord.States()
		}

	case MsgLookup:
		m.Lookup = msg.Update
		m.Viewport.SetContent(m.narrative())
		m.Viewport.GotoTop()

	case telemetry.MsgSpanStart:
		m.Spans[msg.SpanID] = telemetrySpan{name: msg.Name, start: msg.StartTime}

	case telemetry.MsgSpanEnd:
		delete(m.Spans, msg.SpanID)
		line := okStyle.Render("✓") + " " + msg.Name + " " + msg.Duration.Round(time.Millisecond).String()
		if msg.Err != nil {
			line = errorStyle.Render("✗") + " " + msg.Name + ": " + msg.Err.Error()
		}
		m.Activity = append(m.Activity, line)
		if len(m.Activity) > maxActivity {
			m.Activity = m.Activity[len(m.Activity)-maxActivity:]
		}
	}

	return m, nil
}

//nolint:cyclop,gocritic // one case per key binding
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		return m.moveYear(-m.Step)
	case "right", "l":
		return m.moveYear(m.Step)
	case "H", "shift+left":
		return m.moveYear(-m.Step * bigStepFactor)
	case "L", "shift+right":
		return m.moveYear(m.Step * bigStepFactor)
	case "w", "up":
		return m.pan(1, 0)
	case "s", "down":
		return m.pan(-1, 0)
	case "a":
		return m.pan(0, -1)
	case "d":
		return m.pan(0, 1)
	case "+", "=":
		return m.zoomBy(1)
	case "-":
		return m.zoomBy(-1)
	case "pgup", "pgdown", "j", "k":
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			return m.toggle(int(key[0] - '1'))
		}
	}
	return m, nil
}

//nolint:gocritic // hugeParam ignored
func (m Model) moveYear(delta int) (tea.Model, tea.Cmd) {
	if m.coord == nil {
		return m, nil
	}
	m.coord.JumpTo(m.coord.Year() + domain.Year(delta))
	m.Frame = m.coord.Current()
	m.Status = ""
	return m, m.triggerCmd()
}

//nolint:gocritic // hugeParam ignored
func (m Model) toggle(i int) (tea.Model, tea.Cmd) {
	cats := domain.OverlayCategories()
	if m.coord == nil || i >= len(cats) {
		return m, nil
	}
	if _, err := m.coord.Toggle(cats[i]); err != nil {
		m.Status = err.Error()
		return m, nil
	}
	m.States = m.coord.States()
	m.Frame = m.coord.Current()
	m.Status = ""
	return m, nil
}

//nolint:gocritic // hugeParam ignored
func (m Model) pan(dLat, dLng float64) (tea.Model, tea.Cmd) {
	step := panDegrees(m.Zoom)
	m.Center.Lat = math.Max(-maxLatitude, math.Min(maxLatitude, m.Center.Lat+dLat*step))
	m.Center.Lng = wrapLongitude(m.Center.Lng + dLng*step)
	return m, m.triggerCmd()
}

//nolint:gocritic // hugeParam ignored
func (m Model) zoomBy(delta int) (tea.Model, tea.Cmd) {
	m.Zoom = clampZoom(m.Zoom + delta)
	return m, m.triggerCmd()
}

// triggerCmd hands the current view to the lookup session off the update loop.
//
//nolint:gocritic // hugeParam ignored
func (m Model) triggerCmd() tea.Cmd {
	if m.trigger == nil {
		return nil
	}
	t := lookup.Trigger{Center: m.Center, Zoom: m.Zoom, Year: m.Frame.Year}
	if m.coord != nil {
		t.Year = m.coord.Year()
	}
	trigger := m.trigger
	return func() tea.Msg {
		trigger(t)
		return nil
	}
}

// panDegrees is the distance one pan key moves at zoom z.
func panDegrees(z int) float64 {
	return 1440 / math.Pow(2, float64(z))
}

func wrapLongitude(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}

func clampZoom(z int) int {
	return max(minZoom, min(maxZoom, z))
}
