package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/adapters/logger"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLogger_Pretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("listening on :8080")
	l.Warn("no narrator key")
	l.Error(zerr.With(zerr.Wrap(domain.ErrDatasetNotFound, "missing dataset file"), "path", "wars.json"))
	l.Error(nil)

	want := "listening on :8080\n" +
		"! no narrator key\n" +
		"✗ Error: missing dataset file\n" +
		"       path: wars.json\n\n" +
		"  Caused by:\n" +
		"    → dataset not found\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetJSON(true)
	l.SetOutput(&buf)

	l.Error(zerr.Wrap(domain.ErrNetwork, "narrate"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "operation failed", rec["msg"])
	assert.Equal(t, "narrate: network error", rec["error"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetJSON(true)

	l.Info("ready")
	assert.Contains(t, buf.String(), `"msg":"ready"`)

	l.SetJSON(false)
	buf.Reset()
	l.Slog().Info("plain")
	assert.Contains(t, buf.String(), "plain")
	assert.NotContains(t, buf.String(), `"msg"`)
}

func TestLogger_CategoryTag(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	err := zerr.With(zerr.Wrap(domain.ErrDatasetParse, "climate.json"), "category", "climate")
	l.Error(err)

	want := "✗ [🌡️ climate] Error: climate.json\n\n" +
		"  Caused by:\n" +
		"    → failed to parse dataset\n"
	assert.Equal(t, want, buf.String())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "climate", zErr.Metadata()["category"], "logging leaves the error intact")
}

func TestLogger_ErrorMetadataYears(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(zerr.With(zerr.Wrap(domain.ErrInvalidYear, "no ruler"), "year", domain.Year(-44)))

	assert.Contains(t, buf.String(), "       year: 44 BCE\n")
}
