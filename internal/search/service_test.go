package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"flightbooking/internal/model"
	"flightbooking/internal/store"
	"flightbooking/pkg/logger"
)

// fakeCache is a map-backed cache double; TTLs are ignored.
type fakeCache struct {
	entries map[string]string
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (c *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.entries[key] = value
	c.sets++
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return c.entries[key], nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func newTestService(t *testing.T, flights ...*model.Flight) (*Service, *fakeCache) {
	t.Helper()
	records := store.NewMemory()
	for _, f := range flights {
		assert.NoError(t, records.SaveFlight(context.Background(), f))
	}
	cache := newFakeCache()
	return NewService(records, cache, 5, logger.NewZeroLog("test")), cache
}

func TestSearch_OneWay(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	direct := buildFlight(1, oslo, newYork, start.Add(2*time.Hour), false)
	otherDay := buildFlight(2, oslo, newYork, start.Add(30*time.Hour), false)
	eligible := buildFlight(3, oslo, newYork, start.Add(2*time.Hour), true)

	svc, _ := newTestService(t, direct, otherDay, eligible)

	resp, err := svc.Search(context.Background(), Request{
		From: "OSL", To: "JFK", Start: start,
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Flights, 1)
	assert.Equal(t, int64(1), resp.Flights[0].FlightID)
	assert.Nil(t, resp.RoundTrips)
	assert.Equal(t, uint32(1), resp.Metadata.TotalResults)
	assert.False(t, resp.Metadata.CacheHit)
}

func TestSearch_RoundTrip(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(7 * 24 * time.Hour)

	outbound := buildFlight(1, oslo, newYork, start.Add(time.Hour), true)
	ret := buildFlight(2, newYork, oslo, end.Add(3*time.Hour), true)
	unrelated := buildFlight(3, london, oslo, start, true)

	svc, _ := newTestService(t, outbound, ret, unrelated)

	resp, err := svc.Search(context.Background(), Request{
		From: "OSL", To: "JFK", Start: start, End: &end, RoundTrip: true,
	})

	assert.NoError(t, err)
	assert.Len(t, resp.RoundTrips, 1)
	assert.Equal(t, int64(1), resp.RoundTrips[0].Outbound.FlightID)
	assert.Equal(t, int64(2), resp.RoundTrips[0].Return.FlightID)
	assert.Nil(t, resp.Flights)
}

func TestSearch_UnknownRouteYieldsEmpty(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, buildFlight(1, oslo, newYork, start, false))

	resp, err := svc.Search(context.Background(), Request{
		From: "ZZZ", To: "QQQ", Start: start,
	})

	assert.NoError(t, err)
	assert.Empty(t, resp.Flights)
	assert.Equal(t, uint32(0), resp.Metadata.TotalResults)
}

func TestSearch_SecondCallHitsCache(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	svc, cache := newTestService(t, buildFlight(1, oslo, newYork, start, false))

	req := Request{From: "OSL", To: "JFK", Start: start}

	first, err := svc.Search(context.Background(), req)
	assert.NoError(t, err)
	assert.False(t, first.Metadata.CacheHit)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.Search(context.Background(), req)
	assert.NoError(t, err)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, first.Metadata.TotalResults, second.Metadata.TotalResults)
	assert.Len(t, second.Flights, 1)
}

func TestSearch_CacheKeyVariesWithParameters(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t)

	base := Request{From: "OSL", To: "JFK", Start: start}
	variants := []Request{
		{From: "OSL", To: "LHR", Start: start},
		{From: "OSL", To: "JFK", Start: start.Add(time.Hour)},
		{From: "OSL", To: "JFK", Start: start, RoundTrip: true},
	}

	baseKey := svc.cacheKey(base, "0")
	for _, v := range variants {
		assert.NotEqual(t, baseKey, svc.cacheKey(v, "0"))
	}
	assert.Equal(t, baseKey, svc.cacheKey(base, "0"))
	assert.NotEqual(t, baseKey, svc.cacheKey(base, "1"))
}

func TestSearch_InvalidationBypassesStaleEntries(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, buildFlight(1, oslo, newYork, start, false))

	req := Request{From: "OSL", To: "JFK", Start: start}

	first, err := svc.Search(context.Background(), req)
	assert.NoError(t, err)
	assert.False(t, first.Metadata.CacheHit)

	assert.NoError(t, svc.InvalidateCatalog(context.Background()))

	// the stale entry is orphaned under the old version, so this recomputes
	second, err := svc.Search(context.Background(), req)
	assert.NoError(t, err)
	assert.False(t, second.Metadata.CacheHit)
	assert.NotEqual(t, first.Metadata.CacheKey, second.Metadata.CacheKey)
}

func TestListOneWay(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	plain := buildFlight(1, oslo, newYork, start, false)
	eligible := buildFlight(2, newYork, oslo, start, true)
	cancelled := buildFlight(3, london, oslo, start, false)
	cancelled.Status = model.StatusCancelled

	svc, _ := newTestService(t, plain, eligible, cancelled)

	got, err := svc.ListOneWay(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].FlightID)
}

func TestListRoundTrips(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	out := buildFlight(1, oslo, newYork, start, true)
	ret := buildFlight(2, newYork, oslo, start.Add(48*time.Hour), true)

	svc, _ := newTestService(t, out, ret)

	pairs, err := svc.ListRoundTrips(context.Background())

	assert.NoError(t, err)
	assert.Len(t, pairs, 1)
	assert.Equal(t, int64(1), pairs[0].Outbound.FlightID)
	assert.Equal(t, int64(2), pairs[0].Return.FlightID)
}
