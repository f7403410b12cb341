package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/cmd/atlas/commands"
	"go.trai.ch/atlas/internal/app"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T, cat *domain.Catalog) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	configs := mocks.NewMockConfigLoader(ctrl)
	datasets := mocks.NewMockDatasetLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	configs.EXPECT().Load(".").Return(domain.DefaultConfig(), nil).AnyTimes()
	if cat != nil {
		datasets.EXPECT().Load(gomock.Any(), gomock.Any()).Return(cat, nil).AnyTimes()
	}

	var out bytes.Buffer
	a := app.New(logger, configs, datasets, nil, nil, nil).WithOutput(&out, &out)
	return commands.New(a), &out
}

func TestRender_ParsesFlags(t *testing.T) {
	cli, out := newCLI(t, &domain.Catalog{Wars: []domain.War{{
		ID: "hundred-years", Name: "Hundred Years' War", Start: 1337, End: 1453,
	}}})

	cli.SetArgs([]string{"render", "--year", "1400 AD", "--show", "wars"})
	require.NoError(t, cli.Execute(t.Context()))

	assert.Contains(t, out.String(), "1400 CE")
	assert.Contains(t, out.String(), "1 ongoing war")
}

func TestRender_BCEYear(t *testing.T) {
	cli, out := newCLI(t, &domain.Catalog{})

	cli.SetArgs([]string{"render", "-y", "500 BCE", "-f", "json"})
	require.NoError(t, cli.Execute(t.Context()))
	assert.Contains(t, out.String(), `"label": "500 BCE"`)
}

func TestRender_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"year", []string{"render", "--year", "later"}, domain.ErrInvalidYear},
		{"overlay", []string{"render", "--show", "wars,weather"}, domain.ErrUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := newCLI(t, nil)
			cli.SetArgs(tt.args)
			assert.ErrorIs(t, cli.Execute(t.Context()), tt.want)
		})
	}

	cli, _ := newCLI(t, nil)
	cli.SetArgs([]string{"render", "--format", "yaml"})
	assert.Error(t, cli.Execute(t.Context()))
}

func TestTech_RequiresID(t *testing.T) {
	cli, _ := newCLI(t, nil)
	cli.SetArgs([]string{"tech"})
	assert.Error(t, cli.Execute(t.Context()))
}

func TestRuler_JoinsArgs(t *testing.T) {
	cli, out := newCLI(t, &domain.Catalog{Rulers: []domain.RulerRegion{{
		Region:  "Holy Roman Empire",
		Periods: []domain.RulerPeriod{{Ruler: "Charles IV", Start: 1355, End: 1378}},
	}}})

	cli.SetArgs([]string{"ruler", "holy", "roman", "--year", "1360"})
	require.NoError(t, cli.Execute(t.Context()))
	assert.Contains(t, out.String(), "Charles IV")
}

func TestLookup_RequiresCoordinates(t *testing.T) {
	cli, _ := newCLI(t, nil)
	cli.SetArgs([]string{"lookup", "--year", "1400"})
	assert.Error(t, cli.Execute(t.Context()))
}

func TestLookup_WithoutAPIKey(t *testing.T) {
	cli, _ := newCLI(t, nil)
	cli.SetArgs([]string{"lookup", "--lat", "48.85", "--lng", "2.35", "--year", "1400"})
	assert.ErrorIs(t, cli.Execute(t.Context()), domain.ErrMissingCredentials)
}

func TestVersion(t *testing.T) {
	cli, _ := newCLI(t, nil)
	cli.SetArgs([]string{"version"})
	assert.NoError(t, cli.Execute(t.Context()))
}

func TestLife_JoinsArgs(t *testing.T) {
	cli, out := newCLI(t, nil)

	cli.SetArgs([]string{"life", "roman", "empire", "--year", "150"})
	require.NoError(t, cli.Execute(t.Context()))
	assert.Contains(t, out.String(), "Roman Empire · Life around 100 CE")
	assert.Contains(t, out.String(), "Roman Citizen (Urban)")
}

func TestLife_RequiresRegion(t *testing.T) {
	cli, _ := newCLI(t, nil)
	cli.SetArgs([]string{"life"})
	assert.Error(t, cli.Execute(t.Context()))
}

func TestHole_SeedTopic(t *testing.T) {
	cli, out := newCLI(t, nil)

	cli.SetArgs([]string{"hole", "pyramids", "of", "giza"})
	require.NoError(t, cli.Execute(t.Context()))
	assert.Contains(t, out.String(), "Pyramids of Giza")
	assert.Contains(t, out.String(), "Ancient Engineering (engineering)")
}
