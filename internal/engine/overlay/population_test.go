package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/overlay"
)

func TestPopulation_DrawUsesNearestSnapshot(t *testing.T) {
	p := overlay.NewPopulation(populationSnapshots())

	// 1700 is equidistant from 1500 and 1900; the earlier snapshot wins.
	cmds := p.Draw(1700)
	require.Len(t, cmds, 4)

	china, glow, iceland, europe := cmds[0], cmds[1], cmds[2], cmds[3]
	assert.InDelta(t, 30, china.Radius, 1e-9)
	assert.InDelta(t, 0.9, china.Style.Opacity, 1e-9)
	assert.InDelta(t, 0.7, china.Style.FillOpacity, 1e-9)
	assert.Equal(t, "#e74c3c", china.Style.FillColor)
	assert.Equal(t, "China · 👥 16.0 million · 📊 4.0% of world · 📈 Density: high", china.Tooltip)
	assert.Equal(t, "1500 CE", china.Popup["year"])

	assert.InDelta(t, 38, glow.Radius, 1e-9)
	assert.InDelta(t, 0.15, glow.Style.FillOpacity, 1e-9)

	assert.InDelta(t, domain.PopulationRadius.Min, iceland.Radius, 1e-9)
	assert.Equal(t, "#3498db", iceland.Style.FillColor)
	assert.InDelta(t, domain.PopulationRadius.Max, europe.Radius, 1e-9)
}

func TestPopulation_Empty(t *testing.T) {
	p := overlay.NewPopulation(nil)
	assert.Empty(t, p.Draw(1500))
	assert.Equal(t, overlay.NoDataHeadline, p.Summary(1500).Headline)
	assert.Nil(t, p.TopRegions(1500, 3))
}

func TestPopulation_Summary(t *testing.T) {
	p := overlay.NewPopulation(populationSnapshots())

	s := p.Summary(1700)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "World population 400.0 million (1500 CE)", s.Headline)
	assert.Equal(t, []string{
		"Recovery after the Black Death",
		"Europe: 80.0 million (20.0%)",
		"China: 16.0 million (4.0%)",
		"Iceland: 100 thousand (0.0%)",
	}, s.Details)
}

func TestPopulation_GrowthRate(t *testing.T) {
	p := overlay.NewPopulation(populationSnapshots())

	g, ok := p.GrowthRate(1000, 1900)
	require.True(t, ok)
	assert.Equal(t, overlay.Growth{
		From:        1000,
		To:          1900,
		StartPop:    300_000,
		EndPop:      1_600_000,
		TotalGrowth: "433.3%",
		AnnualRate:  "0.186%",
	}, g)

	_, ok = p.GrowthRate(1000, 1100)
	assert.False(t, ok, "same snapshot on both ends")
}

func TestPopulation_TopRegions(t *testing.T) {
	p := overlay.NewPopulation(populationSnapshots())

	top := p.TopRegions(1500, 2)
	assert.Equal(t, []overlay.RegionRank{
		{Name: "Europe", Population: "80.0 million", Percent: "20.0%"},
		{Name: "China", Population: "16.0 million", Percent: "4.0%"},
	}, top)
}

func TestFormatPopulation(t *testing.T) {
	tests := []struct {
		thousands float64
		want      string
	}{
		{1_500_000, "1.50 billion"},
		{1_000_000, "1.00 billion"},
		{2_500, "2.5 million"},
		{999, "999 thousand"},
		{0.5, "0.5 thousand"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, overlay.FormatPopulation(tt.thousands))
	}
}
