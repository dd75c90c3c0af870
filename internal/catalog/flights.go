package catalog

import (
	"context"
	"errors"
	"fmt"

	"flightbooking/internal/apperr"
	"flightbooking/internal/model"
	"flightbooking/internal/store"
	"flightbooking/pkg/idgen"
	"flightbooking/pkg/logger"
)

// SearchCacheInvalidator drops cached search results after a catalog
// mutation. Nil disables invalidation (tests, tooling).
type SearchCacheInvalidator interface {
	InvalidateCatalog(ctx context.Context) error
}

// FlightService owns flight records and the flight<->price relation.
type FlightService struct {
	store    store.Store
	ids      idgen.Generator
	searches SearchCacheInvalidator
	logger   logger.Client
}

func NewFlightService(s store.Store, ids idgen.Generator, searches SearchCacheInvalidator, logger logger.Client) *FlightService {
	return &FlightService{store: s, ids: ids, searches: searches, logger: logger}
}

// invalidateSearches is best effort; a stale cache entry expires via TTL
// anyway, so a failed bump is logged and swallowed.
func (s *FlightService) invalidateSearches(ctx context.Context) {
	if s.searches == nil {
		return
	}
	if err := s.searches.InvalidateCatalog(ctx); err != nil {
		s.logger.Warn("failed to invalidate search cache", logger.Err(err))
	}
}

func (s *FlightService) List(ctx context.Context) ([]*model.Flight, error) {
	return s.store.ListFlights(ctx)
}

func (s *FlightService) Get(ctx context.Context, id int64) (*model.Flight, error) {
	flight, err := s.store.GetFlight(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("no flight with id %d found", id)
	}
	return flight, err
}

// Add persists a new flight. A nil price list is initialized to an empty
// collection so later attach-price operations never hit a nil slice.
func (s *FlightService) Add(ctx context.Context, flight *model.Flight) error {
	if flight == nil {
		return apperr.Validation("flight cannot be nil")
	}
	if err := flight.Validate(); err != nil {
		return apperr.Validation("invalid flight: %s", err.Error())
	}

	if flight.FlightID != 0 {
		exists, err := s.store.FlightExists(ctx, flight.FlightID)
		if err != nil {
			return fmt.Errorf("failed to check flight existence: %w", err)
		}
		if exists {
			return apperr.IllegalState("flight with id %d already exists", flight.FlightID)
		}
	} else {
		flight.FlightID = s.ids.NextID()
	}

	if flight.Prices == nil {
		flight.Prices = []*model.Price{}
	}

	if err := s.store.SaveFlight(ctx, flight); err != nil {
		return fmt.Errorf("failed to save flight: %w", err)
	}

	s.invalidateSearches(ctx)
	s.logger.Info("flight created",
		logger.Field{Key: "flight_id", Value: flight.FlightID},
		logger.Field{Key: "flight_number", Value: flight.FlightNumber},
	)
	return nil
}

// AttachPrices links the given prices to an existing flight, updating both
// relation ends inside one transaction. Prices without an id are persisted
// first. Returns the updated flight.
func (s *FlightService) AttachPrices(ctx context.Context, flightID int64, prices []*model.Price) (*model.Flight, error) {
	var flight *model.Flight

	err := s.store.Atomically(ctx, func(ctx context.Context, tx store.Store) error {
		var err error
		flight, err = tx.GetFlight(ctx, flightID)
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("no flight found with id %d", flightID)
		}
		if err != nil {
			return fmt.Errorf("failed to load flight %d: %w", flightID, err)
		}

		for _, price := range prices {
			if price == nil {
				return apperr.Validation("flight %d: price cannot be nil", flightID)
			}
			if price.PriceID == 0 {
				price.PriceID = s.ids.NextID()
			}
			model.LinkFlightPrice(flight, price)
			if err := tx.SavePrice(ctx, price); err != nil {
				return fmt.Errorf("failed to save price for flight %d: %w", flightID, err)
			}
		}

		if err := tx.SaveFlight(ctx, flight); err != nil {
			return fmt.Errorf("failed to save flight %d: %w", flightID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSearches(ctx)
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, flightID int64, flight *model.Flight) error {
	if flight == nil {
		return apperr.Validation("flight cannot be nil")
	}

	exists, err := s.store.FlightExists(ctx, flightID)
	if err != nil {
		return fmt.Errorf("failed to check flight existence: %w", err)
	}
	if !exists {
		return apperr.NotFound("no flight with id %d found", flightID)
	}

	if err := flight.Validate(); err != nil {
		return apperr.Validation("invalid flight: %s", err.Error())
	}

	flight.FlightID = flightID
	if err := s.store.SaveFlight(ctx, flight); err != nil {
		return err
	}
	s.invalidateSearches(ctx)
	return nil
}

func (s *FlightService) Remove(ctx context.Context, flightID int64) error {
	err := s.store.DeleteFlight(ctx, flightID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("no flight with id %d found", flightID)
	}
	if err == nil {
		s.invalidateSearches(ctx)
	}
	return err
}

func (s *FlightService) Exists(ctx context.Context, flightID int64) (bool, error) {
	return s.store.FlightExists(ctx, flightID)
}
