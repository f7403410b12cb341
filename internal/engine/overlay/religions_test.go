package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/overlay"
)

func TestReligions_SpreadFadesWithTime(t *testing.T) {
	r := overlay.NewReligions(religions())

	cmds := r.Draw(0)
	require.Len(t, cmds, 3)

	origin := cmds[0]
	assert.Equal(t, domain.PrimitiveMarker, origin.Primitive)
	assert.Equal(t, "religion-marker", origin.Style.ClassName)
	assert.Equal(t, "528 years old (in 0 CE)", origin.Popup["age"])
	assert.Equal(t, []string{"250 BCE: Sri Lanka - Mission of Mahinda"}, origin.Popup["spread"])

	line := cmds[1]
	assert.Equal(t, domain.PrimitivePolyline, line.Primitive)
	assert.Equal(t, []domain.GeoPoint{{Lat: 24.7, Lng: 84.99}, {Lat: 7.9, Lng: 80.8}}, line.Points)
	assert.InDelta(t, 0.33, line.Style.Opacity, 1e-9)
	assert.Equal(t, "5, 5", line.Style.DashArray)
	assert.Equal(t, "☸️ Buddhism → Sri Lanka (250 BCE)", line.Tooltip)

	dot := cmds[2]
	assert.InDelta(t, 0.55, dot.Style.FillOpacity, 1e-9)
	assert.InDelta(t, 8, dot.Radius, 0)
	assert.Equal(t, "☸️ Sri Lanka · Mission of Mahinda", dot.Tooltip)

	old := r.Draw(5000)
	require.Len(t, old, 5)
	assert.InDelta(t, domain.ReligionFade.Floor, old[2].Style.Opacity, 1e-9)
}

func TestReligions_NewAndUnfounded(t *testing.T) {
	r := overlay.NewReligions(religions())

	assert.Empty(t, r.Draw(-600))

	young := r.Draw(-400)
	require.Len(t, young, 1)
	assert.Equal(t, "religion-marker new", young[0].Style.ClassName)
}

func TestReligions_Summary(t *testing.T) {
	r := overlay.NewReligions(religions())

	s := r.Summary(100)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, "1 religions founded", s.Headline)
	assert.Equal(t, []string{"☸️ Buddhism: 2 regions"}, s.Details)
	assert.Equal(t, "0 religions founded", r.Summary(-1000).Headline)
}

func TestReligions_DrawMatchesActiveSpreads(t *testing.T) {
	r := overlay.NewReligions(religions())
	d := religions()[0].Diffusion()

	for _, y := range []domain.Year{-528, -250, 0, 64, 65, 1000} {
		active := domain.ActiveSpreads(d, y)
		cmds := r.Draw(y)
		require.Len(t, cmds, 1+2*len(active), "year %d", y)
		for i, s := range active {
			assert.Equal(t, []domain.GeoPoint{s.Point}, cmds[2+2*i].Points)
		}
	}
}
