package redisstore_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/adapters/redisstore"
	"go.trai.ch/atlas/internal/core/domain"
)

var (
	istanbul = domain.NewQueryKey(domain.GeoPoint{Lat: 41.0082, Lng: 28.9784}, 1453, 50)
	entry    = domain.LookupEntry{PlaceName: "Istanbul, Turkey", Narrative: "The city falls.", Year: 1453}
)

const (
	entryKey  = "test:41.01,28.98,1450"
	entryJSON = `{"placeName":"Istanbul, Turkey","narrative":"The city falls.","year":1453}`
)

func newStore(t *testing.T) (*redisstore.Store, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return redisstore.New(db, redisstore.WithPrefix("test:"), redisstore.WithTTL(time.Hour)), mock
}

func TestStore_Get(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectGet(entryKey).SetVal(entryJSON)

	got, err := s.Get(t.Context(), istanbul)
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestStore_GetMiss(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectGet(entryKey).RedisNil()

	_, err := s.Get(t.Context(), istanbul)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestStore_GetCorruptEntryIsMiss(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectGet(entryKey).SetVal("{")

	_, err := s.Get(t.Context(), istanbul)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestStore_GetError(t *testing.T) {
	s, mock := newStore(t)
	boom := errors.New("connection reset")
	mock.ExpectGet(entryKey).SetErr(boom)

	_, err := s.Get(t.Context(), istanbul)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrCacheMiss)
}

func TestStore_Put(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectSet(entryKey, entryJSON, time.Hour).SetVal("OK")

	require.NoError(t, s.Put(t.Context(), istanbul, entry))
}

func TestStore_PutError(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectSet(entryKey, entryJSON, time.Hour).SetErr(errors.New("READONLY"))

	assert.Error(t, s.Put(t.Context(), istanbul, entry))
}

func TestStore_Clear(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectScan(0, "test:*", 100).SetVal([]string{"test:a", "test:b"}, 7)
	mock.ExpectDel("test:a", "test:b").SetVal(2)
	mock.ExpectScan(7, "test:*", 100).SetVal(nil, 0)

	require.NoError(t, s.Clear(t.Context()))
}

func TestStore_ClearScanError(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectScan(0, "test:*", 100).SetErr(errors.New("timeout"))

	assert.Error(t, s.Clear(t.Context()))
}

func TestStore_DefaultPrefix(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectGet(redisstore.DefaultPrefix + "41.01,28.98,1450").RedisNil()

	_, err := redisstore.New(db).Get(t.Context(), istanbul)
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}
