package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/ui/style"
)

const helpText = "←/→ year  H/L century  1-8 layers  wasd pan  +/- zoom  q quit"

// View renders the explorer.
//
//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	if m.Width == 0 {
		return "Initializing..."
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.layerList(),
		m.summaries(),
	)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		body,
		m.lookupPanel(),
		m.footer(),
	)
}

//nolint:gocritic // hugeParam ignored
func (m Model) header() string {
	view := fmt.Sprintf("%s  zoom %d", m.Center.String(), m.Zoom)
	return titleStyle.Render("ATLAS") + " " + yearStyle.Render(m.Frame.Label) + "  " + faintStyle.Render(view) + "\n"
}

//nolint:gocritic // hugeParam ignored
func (m Model) layerList() string {
	var s strings.Builder
	for i, st := range m.States {
		mark, lineStyle := style.Circle, layerOffStyle
		if st.Visible {
			mark, lineStyle = style.Dot, layerOnStyle
		}
		fmt.Fprintf(&s, "%s\n", lineStyle.Render(fmt.Sprintf("%d %s %s %s", i+1, mark, style.Glyph(st.Category), st.Category)))
	}
	return layerStyle.Width(layerPaneWidth).Render(strings.TrimSuffix(s.String(), "\n"))
}

//nolint:gocritic // hugeParam ignored
func (m Model) summaries() string {
	if len(m.Frame.Summaries) == 0 {
		return summaryStyle.Render(faintStyle.Render("No overlays visible. Press 1-8 to toggle layers."))
	}
	width := max(m.Width-layerPaneWidth-panelChrome, 0)
	var s strings.Builder
	for _, sum := range m.Frame.Summaries {
		fmt.Fprintf(&s, "%s %s\n", style.Glyph(sum.Category), lipgloss.NewStyle().Bold(true).Render(sum.Headline))
		for _, d := range sum.Details {
			fmt.Fprintf(&s, "  %s\n", WrapText(d, width-2))
		}
	}
	return summaryStyle.Render(strings.TrimSuffix(s.String(), "\n"))
}

//nolint:gocritic // hugeParam ignored
func (m Model) lookupPanel() string {
	var content string
	switch m.Lookup.State {
	case domain.LookupIdle:
		if m.Zoom < m.Threshold {
			content = faintStyle.Render(fmt.Sprintf("Zoom to %d to explore local history (now %d).", m.Threshold, m.Zoom))
		} else {
			content = faintStyle.Render("Waiting for the map to settle...")
		}
	case domain.LookupPendingDebounce:
		content = faintStyle.Render("Waiting for the map to settle...")
	case domain.LookupInFlight:
		content = m.Spinner.View() + " Looking up " + m.Lookup.Key.String()
	case domain.LookupResolved:
		content = yearStyle.Render(m.Lookup.Label()) + "\n" + m.Viewport.View()
	case domain.LookupFailed:
		msg := "lookup failed"
		if m.Lookup.Err != nil {
			msg = m.Lookup.Err.Error()
		}
		content = errorStyle.Render(style.Cross + " " + msg)
	}
	return panelStyle.Width(max(m.Width-2, 0)).Render(content)
}

//nolint:gocritic // hugeParam ignored
func (m Model) footer() string {
	lines := make([]string, 0, len(m.Activity)+len(m.Spans)+2)
	lines = append(lines, m.Activity...)

	running := make([]string, 0, len(m.Spans))
	for _, sp := range m.Spans {
		running = append(running, sp.name)
	}
	sort.Strings(running)
	for _, name := range running {
		lines = append(lines, m.Spinner.View()+" "+name)
	}

	if m.Status != "" {
		lines = append(lines, errorStyle.Render(m.Status))
	}
	lines = append(lines, faintStyle.Render(helpText))
	return strings.Join(lines, "\n")
}

// narrative is the viewport content for a resolved lookup.
//
//nolint:gocritic // hugeParam ignored
func (m Model) narrative() string {
	if m.Lookup.State != domain.LookupResolved {
		return ""
	}
	return WrapText(strings.TrimSpace(m.Lookup.Entry.Narrative), m.Viewport.Width)
}

// WrapText wraps s at width columns. A width below one leaves s unchanged.
func WrapText(s string, width int) string {
	if width < 1 || s == "" {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
