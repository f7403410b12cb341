package daylife_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/daylife"
	"go.trai.ch/zerr"
)

func seeded(t *testing.T) *daylife.Almanac {
	t.Helper()
	a, err := daylife.Seed()
	require.NoError(t, err)
	return a
}

func TestSeed_Regions(t *testing.T) {
	assert.Equal(t,
		[]string{"Egypt", "Roman Empire", "Mongol Empire", "Medieval Europe", "China"},
		seeded(t).Regions())
}

func TestAlmanac_Life(t *testing.T) {
	a := seeded(t)

	tests := []struct {
		name       string
		region     string
		year       domain.Year
		wantRegion string
		wantYear   domain.Year
		wantRoles  []string
	}{
		{"old kingdom", "Ancient Egypt", -2500, "Egypt", -3000, []string{"farmer", "noble"}},
		{"new kingdom", "egypt", -1000, "Egypt", -1500, []string{"farmer"}},
		{"before every period", "Egypt", -5000, "Egypt", -3000, []string{"farmer", "noble"}},
		{"rome alias", "Rome", 300, "Roman Empire", 100, []string{"farmer", "citizen", "slave"}},
		{"holy roman matches rome first", "Holy Roman Empire", 1200, "Roman Empire", 100, []string{"farmer", "citizen", "slave"}},
		{"france", "Kingdom of France", 1300, "Medieval Europe", 1200, []string{"serf", "knight", "monk"}},
		{"ming", "Ming Dynasty", 1500, "China", 1400, []string{"farmer"}},
		{"han", "Han", 900, "China", 100, []string{"farmer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			life, err := a.Life(tt.region, tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRegion, life.Region)
			assert.Equal(t, tt.wantYear, life.Year)
			roles := make([]string, len(life.Roles))
			for i, r := range life.Roles {
				roles[i] = r.Role
			}
			assert.Equal(t, tt.wantRoles, roles)
		})
	}
}

func TestAlmanac_LifeDetails(t *testing.T) {
	life, err := seeded(t).Life("Mongolia", 1300)
	require.NoError(t, err)

	assert.Equal(t, "Life around 1250 CE", life.Label)
	warrior := life.Roles[1]
	assert.Equal(t, "Mongol Warrior", warrior.Title)
	assert.NotEmpty(t, warrior.Wake)
	assert.NotEmpty(t, warrior.Evening)
	assert.Equal(t, "35 years (combat)", warrior.LifeExpectancy)
}

func TestAlmanac_UnknownRegion(t *testing.T) {
	_, err := seeded(t).Life("Atlantis", 0)
	require.ErrorIs(t, err, domain.ErrRegionNotFound)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "Atlantis", zErr.Metadata()["region"])
}

func TestAlmanac_RegionWithoutPeriods(t *testing.T) {
	a := daylife.New([]domain.LifeRegion{
		{Region: "Lost", Aliases: []string{"lost"}},
		{Region: "Found", Aliases: []string{"lost"}, Periods: []domain.LifePeriod{{Year: 0}}},
	})

	_, err := a.Life("lost city", 10)
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)
}

func TestRoleIcon(t *testing.T) {
	assert.Equal(t, "🛡️", daylife.RoleIcon("knight"))
	assert.Equal(t, daylife.DefaultRoleIcon, daylife.RoleIcon("astronaut"))
}
