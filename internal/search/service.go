package search

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"flightbooking/internal/model"
	"flightbooking/internal/store"
	"flightbooking/pkg/cache"
	"flightbooking/pkg/logger"
)

// Request carries the search parameters. End is optional and only
// constrains the return leg of a round-trip search.
type Request struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end,omitempty"`
	RoundTrip bool       `json:"roundTrip"`
}

type Criteria struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end,omitempty"`
	RoundTrip bool       `json:"roundTrip"`
}

type Metadata struct {
	TotalResults uint32 `json:"totalResults"`
	SearchTimeMs uint32 `json:"searchTimeMs,omitempty"`
	CacheHit     bool   `json:"cacheHit"`
	CacheKey     string `json:"cacheKey,omitempty"`
}

// Response holds either Flights (one-way) or RoundTrips, never both.
type Response struct {
	Criteria   Criteria        `json:"searchCriteria"`
	Metadata   Metadata        `json:"metadata"`
	Flights    []*model.Flight `json:"flights,omitempty"`
	RoundTrips []RoundTrip     `json:"roundTrips,omitempty"`
}

type Service struct {
	flights store.FlightStore
	cache   cache.Cache
	ttl     time.Duration
	logger  logger.Client
}

func NewService(flights store.FlightStore, cache cache.Cache, ttlMinutes int, logger logger.Client) *Service {
	return &Service{
		flights: flights,
		cache:   cache,
		ttl:     time.Duration(ttlMinutes) * time.Minute,
		logger:  logger,
	}
}

// versionKey holds a catalog generation marker. Bumping it orphans every
// cached search result at once instead of tracking individual keys.
const versionKey = "flight:catalog:version"

// cacheKey creates a deterministic key from the search parameters and the
// current catalog version.
func (s *Service) cacheKey(req Request, version string) string {
	end := ""
	if req.End != nil {
		end = req.End.UTC().Format(time.RFC3339)
	}
	key := fmt.Sprintf("flight:%s:%s:%s:%s:%t:%s",
		req.From,
		req.To,
		req.Start.UTC().Format(time.RFC3339),
		end,
		req.RoundTrip,
		version,
	)

	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("flight:search:%x", hash[:16])
}

func (s *Service) catalogVersion(ctx context.Context) string {
	version, err := s.cache.Get(ctx, versionKey)
	if err != nil || version == "" {
		return "0"
	}
	return version
}

// InvalidateCatalog bumps the catalog version so cached search results from
// before the mutation are never served again. Orphaned entries age out via
// their TTL.
func (s *Service) InvalidateCatalog(ctx context.Context) error {
	version := fmt.Sprintf("%d", time.Now().UnixNano())
	if err := s.cache.Set(ctx, versionKey, version, 0); err != nil {
		return fmt.Errorf("failed to bump catalog version: %w", err)
	}
	return nil
}

// Search runs the one-way or round-trip search over a snapshot of the flight
// catalog. Malformed input never fails the search; it yields empty results.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	cacheKey := s.cacheKey(req, s.catalogVersion(ctx))

	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var response Response
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			response.Metadata.CacheHit = true
			response.Metadata.CacheKey = cacheKey
			return &response, nil
		}
		s.logger.Error("failed to unmarshal cached search", logger.Err(err))
	}

	startTime := time.Now()
	flights, err := s.flights.ListFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight catalog: %w", err)
	}

	response := s.run(flights, req)
	response.Metadata.SearchTimeMs = uint32(time.Since(startTime).Milliseconds())
	response.Metadata.CacheHit = false
	response.Metadata.CacheKey = cacheKey

	responseBytes, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("failed to marshal search response", logger.Err(err))
		return response, nil // return the result even if caching fails
	}
	if err := s.cache.Set(ctx, cacheKey, string(responseBytes), s.ttl); err != nil {
		s.logger.Error("failed to cache search response", logger.Err(err),
			logger.Field{Key: "cache_key", Value: cacheKey})
	}

	return response, nil
}

// run dispatches to the right mode over an in-memory catalog snapshot.
func (s *Service) run(flights []*model.Flight, req Request) *Response {
	response := &Response{
		Criteria: Criteria{
			From:      req.From,
			To:        req.To,
			Start:     req.Start,
			End:       req.End,
			RoundTrip: req.RoundTrip,
		},
	}

	if !req.RoundTrip {
		response.Flights = OneWay(flights, req.From, req.To, req.Start)
		response.Metadata.TotalResults = uint32(len(response.Flights))
		return response
	}

	outbounds := Outbound(flights, req.From, req.To, req.Start)
	// The return pool is the entire non-cancelled catalog, not just the
	// outbound-filtered subset.
	pool := NotCancelled(flights)
	response.RoundTrips = PairRoundTrips(outbounds, pool, req.From, req.To, req.End)
	response.Metadata.TotalResults = uint32(len(response.RoundTrips))
	return response
}

// ListOneWay returns every non-cancelled flight not flagged for round-trip
// pairing, regardless of route or date.
func (s *Service) ListOneWay(ctx context.Context) ([]*model.Flight, error) {
	flights, err := s.flights.ListFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight catalog: %w", err)
	}

	oneWay := make([]*model.Flight, 0, len(flights))
	for _, f := range flights {
		if f.Status == model.StatusCancelled {
			continue
		}
		if !f.RoundTripEligible {
			oneWay = append(oneWay, f)
		}
	}
	return oneWay, nil
}

// ListRoundTrips pairs the whole catalog independent of search parameters.
func (s *Service) ListRoundTrips(ctx context.Context) ([]RoundTrip, error) {
	flights, err := s.flights.ListFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight catalog: %w", err)
	}
	return CatalogRoundTrips(flights), nil
}
