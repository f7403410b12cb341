package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := domain.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.DefaultDebounce, cfg.Lookup.Debounce)
	assert.Equal(t, 8, cfg.Lookup.ZoomThreshold)
	assert.Equal(t, 50, cfg.Lookup.Bucket)
}

func TestConfig_Validate(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Lookup.Bucket = 0

	err := cfg.Validate()
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "lookup.bucket", zErr.Metadata()["field"])

	cfg = domain.DefaultConfig()
	cfg.Narrator.Provider = "oracle"
	assert.ErrorIs(t, cfg.Validate(), domain.ErrUnknownProvider)
}

func TestConfig_Paths(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Root = "/srv/atlas"

	assert.Equal(t, filepath.Join("/srv/atlas", "data"), cfg.DataDir())
	assert.Equal(t, filepath.Join("/srv/atlas", "web"), cfg.WebDir())

	cfg.Data.Dir = "/var/lib/atlas"
	assert.Equal(t, "/var/lib/atlas", cfg.DataDir())
}
