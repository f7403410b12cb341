package overlay_test

import (
	"go.trai.ch/atlas/internal/core/domain"
)

func yearPtr(y domain.Year) *domain.Year { return &y }

func climatePeriods() []domain.ClimatePeriod {
	return []domain.ClimatePeriod{
		{
			ID: "little-ice-age", Name: "Little Ice Age", Type: "cooling",
			Start: 1300, End: 1850, Severity: domain.SeverityModerate,
			Impacts: []string{"Norse Greenland settlements abandoned"},
			AffectedRegions: []domain.AffectedRegion{
				{Name: "Europe", Lat: 50, Lng: 10, Intensity: 1},
				{Name: "North America", Lat: 45, Lng: -75, Intensity: 0.5},
			},
		},
		{
			ID: "maya-drought", Name: "Terminal Classic Drought", Type: "drought",
			Start: 1000, End: 1100, Severity: domain.SeveritySevere,
			Impacts: []string{"Classic Maya collapse accelerated", "Trade declined"},
			AffectedRegions: []domain.AffectedRegion{
				{Name: "Yucatan", Lat: 20, Lng: -90, Intensity: 0.8},
			},
		},
		{
			ID: "eruption", Name: "Volcanic Winter", Type: "volcanic",
			Start: 1040, End: 1060, Severity: domain.SeverityExtreme,
			Impacts: []string{"Harvests destroyed across the north"},
			AffectedRegions: []domain.AffectedRegion{
				{Name: "Iceland", Lat: 64, Lng: -19, Intensity: 1},
			},
		},
	}
}

func populationSnapshots() []domain.PopulationSnapshot {
	return []domain.PopulationSnapshot{
		{Year: 1000, Total: 300_000, Regions: []domain.PopulationRegion{
			{Name: "China", Lat: 34, Lng: 108, Population: 60_000, Density: "high"},
		}},
		{Year: 1500, Total: 400_000, Notes: "Recovery after the Black Death", Regions: []domain.PopulationRegion{
			{Name: "China", Lat: 34, Lng: 108, Population: 16_000, Density: "high"},
			{Name: "Iceland", Lat: 64, Lng: -19, Population: 100, Density: "low"},
			{Name: "Europe", Lat: 48, Lng: 10, Population: 80_000, Density: "medium"},
		}},
		{Year: 1900, Total: 1_600_000, Regions: []domain.PopulationRegion{
			{Name: "Europe", Lat: 48, Lng: 10, Population: 400_000, Density: "high"},
		}},
	}
}

func plagues() []domain.Plague {
	return []domain.Plague{
		{
			ID: "black-death", Name: "Black Death", Icon: "💀", Color: "#2c3e50",
			Start: 1346, End: yearPtr(1353), Deaths: "75-200 million",
			Origin: domain.PlagueOrigin{Lat: 45, Lng: 35, Region: "Crimea"},
			SpreadRegions: []domain.PlagueRegion{
				{Region: "Italy", Lat: 43, Lng: 12, Deaths: "50%"},
				{Region: "England", Lat: 52, Lng: -1, Deaths: "40%"},
			},
		},
		{
			ID: "hiv", Name: "HIV/AIDS", Icon: "🎗️", Color: "#c0392b",
			Start: 1981, Deaths: "40 million",
			Origin:        domain.PlagueOrigin{Lat: -4, Lng: 15, Region: "Kinshasa"},
			SpreadRegions: []domain.PlagueRegion{{Region: "Southern Africa", Lat: -26, Lng: 28, Deaths: "millions"}},
		},
	}
}

func religions() []domain.Religion {
	return []domain.Religion{{
		ID: "buddhism", Name: "Buddhism", Icon: "☸️", Color: "#f1c40f",
		Origin: domain.ReligionOrigin{Lat: 24.7, Lng: 84.99, Date: -528, Region: "Bodh Gaya"},
		Spread: []domain.ReligionSpread{
			{Region: "Sri Lanka", Lat: 7.9, Lng: 80.8, Year: -250, Event: "Mission of Mahinda"},
			{Region: "China", Lat: 34.6, Lng: 112.4, Year: 65, Event: "White Horse Temple"},
		},
	}}
}

func technologies() []domain.TechNode {
	return []domain.TechNode{
		{
			ID: "writing", Name: "Writing", Category: "communication",
			Origin:  domain.TechOrigin{Lat: 31.3, Lng: 45.6, Region: "Sumer", Date: -3200},
			Enables: []string{"paper"},
		},
		{
			ID: "paper", Name: "Paper", Category: "crafts",
			Origin:   domain.TechOrigin{Lat: 34.3, Lng: 108.9, Region: "China", Date: 105},
			Requires: []string{"writing"},
			Enables:  []string{"printing", "banknotes"},
			Spread:   []domain.TechSpread{{Region: "Baghdad", Lat: 33.3, Lng: 44.4, Date: 751}},
			IndependentInventions: []domain.Invention{
				{Region: "China", Date: 105, Inventor: "Cai Lun"},
				{Region: "Mesoamerica", Date: 500},
			},
		},
		{
			ID: "printing", Name: "Movable Type", Category: "communication",
			Origin:   domain.TechOrigin{Lat: 30.3, Lng: 120.2, Region: "China", Date: 1040},
			Requires: []string{"paper"},
		},
	}
}

func maritimeRoute() domain.TradeRoute {
	return domain.TradeRoute{
		ID: "indian-ocean", Name: "Indian Ocean", Type: domain.RouteMaritime,
		Window: domain.PeakWindow{
			Active: domain.Range{Start: -100, End: 1500},
			Peak:   domain.Range{Start: 800, End: 1000},
		},
		Color: domain.RouteColor(domain.RouteMaritime, 1),
		Width: domain.RouteWidth(domain.RouteMaritime),
		Goods: []string{"Spices", "Silk Cloth"},
		Path:  []domain.GeoPoint{{Lat: 12.8, Lng: 45}, {Lat: 11, Lng: 79}},
	}
}

func wars() []domain.War {
	return []domain.War{{
		ID: "hundred-years", Name: "Hundred Years' War", Start: 1337, End: 1453,
		Location:     domain.GeoPoint{Lat: 48.8, Lng: 2.3},
		Belligerents: []string{"England", "France"},
		Victor:       "France",
	}}
}

func wonders() []domain.Wonder {
	return []domain.Wonder{
		{ID: "colossus", Name: "Colossus of Rhodes", Icon: "🗿", Category: "ancient", Lat: 36.45, Lng: 28.23, Built: yearPtr(-280), Destroyed: yearPtr(-226)},
		{ID: "grand-canyon", Name: "Grand Canyon", Icon: "🏜️", Category: "natural", Lat: 36.1, Lng: -112.1},
	}
}

func catalog() *domain.Catalog {
	return &domain.Catalog{
		Climate:      climatePeriods(),
		Population:   populationSnapshots(),
		Plagues:      plagues(),
		Religions:    religions(),
		Technologies: technologies(),
		TradeRoutes:  []domain.TradeRoute{domain.SilkRoad(), maritimeRoute()},
		Wars:         wars(),
		Wonders:      wonders(),
		Rulers: []domain.RulerRegion{{
			Region:  "Byzantine Empire",
			Aliases: []string{"Constantinople", "Istanbul"},
			Periods: []domain.RulerPeriod{
				{Ruler: "Justinian I", Government: "Empire", Start: 527, End: 565},
				{Ruler: "Constantine XI", Government: "Empire", Start: 1449, End: 1453},
			},
		}},
	}
}

func countPrimitive(cmds []domain.DrawCommand, p domain.Primitive) int {
	n := 0
	for _, c := range cmds {
		if c.Primitive == p {
			n++
		}
	}
	return n
}
