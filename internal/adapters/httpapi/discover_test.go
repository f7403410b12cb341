package httpapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/adapters/httpapi"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports/mocks"
	"go.trai.ch/atlas/internal/engine/daylife"
	"go.trai.ch/atlas/internal/engine/rabbithole"
	"go.uber.org/mock/gomock"
)

type exploreBody struct {
	Topic *domain.Topic `json:"topic"`
	Trail []string      `json:"trail"`
}

func seededAlmanac(t *testing.T) httpapi.Option {
	t.Helper()
	a, err := daylife.Seed()
	require.NoError(t, err)
	return httpapi.WithAlmanac(a)
}

func seededExplorer(t *testing.T, opts ...rabbithole.Option) httpapi.Option {
	t.Helper()
	e, err := rabbithole.Seed(opts...)
	require.NoError(t, err)
	return httpapi.WithExplorer(e)
}

func TestDayLife(t *testing.T) {
	h, _ := newServer(t, catalog(), seededAlmanac(t))

	rec := do(t, h, http.MethodGet, "/api/daylife?region=Rome&year=150", "")
	require.Equal(t, http.StatusOK, rec.Code)
	life := decode[domain.DailyLife](t, rec)
	assert.Equal(t, "Roman Empire", life.Region)
	assert.Equal(t, domain.Year(100), life.Year)
	assert.Equal(t, "Life around 100 CE", life.Label)
	require.Len(t, life.Roles, 3)
	assert.Equal(t, "Roman Citizen (Urban)", life.Roles[1].Title)
}

func TestDayLife_DefaultsToCursorYear(t *testing.T) {
	h, _ := newServer(t, catalog(), seededAlmanac(t))

	// The coordinator cursor is 1400, which selects the Ming period.
	life := decode[domain.DailyLife](t, do(t, h, http.MethodGet, "/api/daylife?region=China", ""))
	assert.Equal(t, domain.Year(1400), life.Year)
}

func TestDayLife_Errors(t *testing.T) {
	h, _ := newServer(t, catalog(), seededAlmanac(t))

	rec := do(t, h, http.MethodGet, "/api/daylife?year=100", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing region parameter", errorOf(t, rec))

	rec = do(t, h, http.MethodGet, "/api/daylife?region=Atlantis&year=100", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/daylife?region=Egypt&year=2147483648", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	bare, bareDeps := newServer(t, catalog())
	bareDeps.logger.EXPECT().Error(gomock.Any()).Times(1)
	rec = do(t, bare, http.MethodGet, "/api/daylife?region=Egypt", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestExplore_SeedTopicExtendsTrail(t *testing.T) {
	h, _ := newServer(t, catalog(), seededExplorer(t))

	rec := do(t, h, http.MethodGet, "/api/explore?topic=Roman+Concrete&trail=Roman+Empire&trail=Ancient+Engineering", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[exploreBody](t, rec)
	require.NotNil(t, body.Topic)
	assert.True(t, body.Topic.Fallback, "Roman Concrete is not in the seed graph")
	assert.Equal(t, []string{"Roman Empire", "Ancient Engineering"}, body.Trail)

	rec = do(t, h, http.MethodGet, "/api/explore?topic=mongol+empire&trail=Roman+Empire", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode[exploreBody](t, rec)
	require.NotNil(t, body.Topic)
	assert.Equal(t, "Mongol Empire", body.Topic.Name)
	assert.Len(t, body.Topic.Connections, 6)
	assert.Equal(t, []string{"Roman Empire", "Mongol Empire"}, body.Trail)
}

func TestExplore_NarratedTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	narrator := mocks.NewMockNarrator(ctrl)
	narrator.EXPECT().Narrate(gomock.Any(), rabbithole.Prompt("Roman Roads")).
		Return(`{"summary":"Paved highways.","connections":[{"topic":"Via Appia","type":"engineering","question":"Why is it still there?"}]}`, nil).
		Times(1)

	h, _ := newServer(t, catalog(), seededExplorer(t, rabbithole.WithNarrator(narrator)))

	for range 2 {
		body := decode[exploreBody](t, do(t, h, http.MethodGet, "/api/explore?topic=Roman+Roads", ""))
		require.NotNil(t, body.Topic)
		assert.True(t, body.Topic.Generated)
		assert.Equal(t, []string{"Roman Roads"}, body.Trail)
	}
}

func TestExplore_Back(t *testing.T) {
	h, _ := newServer(t, catalog(), seededExplorer(t))

	rec := do(t, h, http.MethodGet, "/api/explore/back?trail=Pyramids+of+Giza&trail=Ancient+Engineering", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[exploreBody](t, rec)
	require.NotNil(t, body.Topic)
	assert.Equal(t, "Pyramids of Giza", body.Topic.Name)
	assert.Equal(t, []string{"Pyramids of Giza"}, body.Trail)

	rec = do(t, h, http.MethodGet, "/api/explore/back?trail=Pyramids+of+Giza", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode[exploreBody](t, rec)
	assert.Nil(t, body.Topic)
	assert.Equal(t, []string{"Pyramids of Giza"}, body.Trail)

	body = decode[exploreBody](t, do(t, h, http.MethodGet, "/api/explore/back", ""))
	assert.Nil(t, body.Topic)
	assert.Equal(t, []string{}, body.Trail)
}

func TestExplore_Errors(t *testing.T) {
	h, _ := newServer(t, catalog(), seededExplorer(t))

	rec := do(t, h, http.MethodGet, "/api/explore?topic=++", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing topic parameter", errorOf(t, rec))

	bare, bareDeps := newServer(t, catalog())
	bareDeps.logger.EXPECT().Error(gomock.Any()).Times(2)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, bare, http.MethodGet, "/api/explore?topic=Rome", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, bare, http.MethodGet, "/api/explore/back", "").Code)
}
