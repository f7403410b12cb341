package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/overlay"
)

func TestTrade_PeakRouteMarksItsEnds(t *testing.T) {
	tr := overlay.NewTrade([]domain.TradeRoute{domain.SilkRoad()})

	cmds := tr.Draw(150)
	require.Len(t, cmds, 3)

	line := cmds[0]
	assert.Equal(t, domain.PrimitivePolyline, line.Primitive)
	assert.InDelta(t, 5, line.Style.Weight, 0)
	assert.InDelta(t, 0.9, line.Style.Opacity, 0)
	assert.Empty(t, line.Style.DashArray)
	assert.Equal(t, "📈 PEAK PERIOD", line.Popup["status"])
	assert.Equal(t, "🐪 Land Route", line.Popup["type"])
	assert.Equal(t, "100 CE – 250 CE", line.Popup["peak"])

	assert.Equal(t, "Chang'an", cmds[1].Tooltip)
	assert.Equal(t, domain.GeoPoint{Lat: 34.27, Lng: 108.95}, cmds[1].Points[0])
	assert.Equal(t, "Constantinople", cmds[2].Tooltip)
	assert.InDelta(t, 0.72, cmds[2].Style.FillOpacity, 1e-9)
}

func TestTrade_OffPeakRoute(t *testing.T) {
	tr := overlay.NewTrade([]domain.TradeRoute{domain.SilkRoad(), maritimeRoute()})

	cmds := tr.Draw(1200)
	require.Len(t, cmds, 2)
	assert.InDelta(t, 4, cmds[0].Style.Weight, 0)
	assert.InDelta(t, 0.5, cmds[0].Style.Opacity, 0)
	assert.Equal(t, "Active", cmds[0].Popup["status"])

	sea := cmds[1]
	assert.Equal(t, "10, 5", sea.Style.DashArray)
	assert.Equal(t, "#2980b9", sea.Style.Color)
	assert.Equal(t, "⛵ Maritime Route", sea.Popup["type"])
	assert.Equal(t, "N/A", sea.Popup["cities"])

	assert.Empty(t, tr.Draw(1600))
}

func TestTrade_Network(t *testing.T) {
	tr := overlay.NewTrade([]domain.TradeRoute{domain.SilkRoad(), maritimeRoute()})

	n := tr.Network(150)
	assert.Equal(t, 2, n.Total)
	assert.Equal(t, 1, n.PeakCount)
	assert.Equal(t, 1, n.LandCount)
	assert.Equal(t, 1, n.MaritimeCount)
	assert.Equal(t, []string{"Silk", "Spices", "Gold", "Jade", "Horses", "Paper", "Gunpowder", "Silk Cloth"}, n.AllGoods)
	require.Len(t, n.Routes, 2)
	assert.True(t, n.Routes[0].IsPeak)
	assert.False(t, n.Routes[1].IsPeak)

	empty := tr.Network(-500)
	assert.Zero(t, empty.Total)
	assert.NotNil(t, empty.AllGoods)
	assert.NotNil(t, empty.Routes)
}

func TestTrade_Summary(t *testing.T) {
	tr := overlay.NewTrade([]domain.TradeRoute{domain.SilkRoad(), maritimeRoute()})

	s := tr.Summary(150)
	assert.Equal(t, "2 active routes (1 at peak)", s.Headline)
	assert.Equal(t, "1 land, 1 maritime", s.Details[0])

	assert.Nil(t, tr.Summary(-500).Details)
	assert.Equal(t, overlay.NoDataHeadline, overlay.NewTrade(nil).Summary(150).Headline)
}

func TestTrade_Lookups(t *testing.T) {
	tr := overlay.NewTrade([]domain.TradeRoute{domain.SilkRoad(), maritimeRoute()})

	assert.Len(t, tr.FindByGoods("SILK"), 2)
	spice := tr.FindByGoods("spice")
	assert.Len(t, spice, 2)
	assert.Empty(t, tr.FindByGoods("tea"))

	sea := tr.ByType(domain.RouteMaritime)
	require.Len(t, sea, 1)
	assert.Equal(t, "indian-ocean", sea[0].ID)
}

func TestRouteHelpers(t *testing.T) {
	assert.Equal(t, "silk-road--east-", domain.RouteID("Silk Road (East)"))
	assert.Equal(t, "#e74c3c", domain.RouteColor(domain.RouteLand, 3))
	assert.Equal(t, "#1f618d", domain.RouteColor(domain.RouteMaritime, -2))
	assert.Equal(t, "#c0392b", domain.RouteColor("river", 1))
	assert.InDelta(t, 3, domain.RouteWidth(domain.RouteMaritime), 0)
	assert.InDelta(t, 4, domain.RouteWidth(domain.RouteLand), 0)
}
