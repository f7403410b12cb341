package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/overlay"
)

func TestPlagues_ActiveOutbreakPulses(t *testing.T) {
	p := overlay.NewPlagues(plagues())

	cmds := p.Draw(1350)
	require.Len(t, cmds, 5)

	marker := cmds[0]
	assert.Equal(t, domain.PrimitiveMarker, marker.Primitive)
	assert.Equal(t, "💀 Black Death (ACTIVE)", marker.Tooltip)
	assert.Equal(t, "plague-marker active", marker.Style.ClassName)
	assert.Equal(t, "☠️ PANDEMIC ACTIVE", marker.Popup["status"])
	assert.Equal(t, "1346 CE – 1353 CE", marker.Popup["period"])

	spread := cmds[1]
	assert.InDelta(t, 300_000, spread.Radius, 0)
	assert.InDelta(t, 0.4, spread.Style.FillOpacity, 1e-9)
	assert.Equal(t, "💀 Black Death · Italy: 50%", spread.Tooltip)

	pulse := cmds[3]
	assert.InDelta(t, 400_000, pulse.Radius, 0)
	assert.Equal(t, "plague-pulse", pulse.Style.ClassName)
}

func TestPlagues_PastOutbreakStaysFaint(t *testing.T) {
	p := overlay.NewPlagues(plagues())

	cmds := p.Draw(1400)
	require.Len(t, cmds, 3)
	assert.Equal(t, "💀 Black Death", cmds[0].Tooltip)
	assert.Equal(t, "📜 Historical", cmds[0].Popup["status"])
	assert.InDelta(t, 150_000, cmds[1].Radius, 0)
	assert.InDelta(t, 0.15, cmds[1].Style.FillOpacity, 1e-9)
	assert.InDelta(t, 0.3, cmds[1].Style.Opacity, 1e-9)
}

func TestPlagues_OngoingOutbreakHasOpenEnd(t *testing.T) {
	p := overlay.NewPlagues(plagues())

	assert.Empty(t, p.Draw(1300))

	cmds := p.Draw(2024)
	require.Len(t, cmds, 6)
	assert.Equal(t, "1981 CE – Ongoing", cmds[3].Popup["period"])

	active := p.Active(2024)
	require.Len(t, active, 1)
	assert.Equal(t, "hiv", active[0].ID)
}

func TestPlagues_Summary(t *testing.T) {
	p := overlay.NewPlagues(plagues())

	assert.Equal(t, "1 active pandemic", p.Summary(1350).Headline)
	assert.Equal(t, []string{"💀 Black Death (75-200 million)"}, p.Summary(1350).Details)
	assert.Equal(t, "No active pandemics", p.Summary(1400).Headline)
	assert.Equal(t, overlay.NoDataHeadline, overlay.NewPlagues(nil).Summary(1350).Headline)
}
