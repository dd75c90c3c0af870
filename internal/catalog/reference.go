package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flightbooking/internal/apperr"
	"flightbooking/internal/model"
	"flightbooking/internal/store"
	"flightbooking/pkg/idgen"
)

// AirportService manages airport reference data. Airports are immutable
// after creation apart from full replacement by id.
type AirportService struct {
	store store.Store
	ids   idgen.Generator
}

func NewAirportService(s store.Store, ids idgen.Generator) *AirportService {
	return &AirportService{store: s, ids: ids}
}

func (s *AirportService) List(ctx context.Context) ([]*model.Airport, error) {
	return s.store.ListAirports(ctx)
}

func (s *AirportService) Get(ctx context.Context, id int64) (*model.Airport, error) {
	airport, err := s.store.GetAirport(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("no airport with id %d found", id)
	}
	return airport, err
}

func (s *AirportService) Add(ctx context.Context, airport *model.Airport) error {
	if airport == nil {
		return apperr.Validation("airport cannot be nil")
	}
	if airport.Code == "" {
		return apperr.Validation("airport code is required")
	}

	if airport.AirportID != 0 {
		exists, err := s.store.AirportExists(ctx, airport.AirportID)
		if err != nil {
			return fmt.Errorf("failed to check airport existence: %w", err)
		}
		if exists {
			return apperr.IllegalState("airport with id %d already exists", airport.AirportID)
		}
	} else {
		airport.AirportID = s.ids.NextID()
	}

	if err := s.checkCodeUnique(ctx, airport); err != nil {
		return err
	}
	return s.store.SaveAirport(ctx, airport)
}

func (s *AirportService) Remove(ctx context.Context, id int64) error {
	err := s.store.DeleteAirport(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("no airport with id %d found", id)
	}
	return err
}

func (s *AirportService) checkCodeUnique(ctx context.Context, airport *model.Airport) error {
	all, err := s.store.ListAirports(ctx)
	if err != nil {
		return fmt.Errorf("failed to list airports: %w", err)
	}
	for _, a := range all {
		if a.AirportID != airport.AirportID && strings.EqualFold(a.Code, airport.Code) {
			return apperr.Validation("airport code %s is already in use", airport.Code)
		}
	}
	return nil
}

type AirlineService struct {
	store store.Store
	ids   idgen.Generator
}

func NewAirlineService(s store.Store, ids idgen.Generator) *AirlineService {
	return &AirlineService{store: s, ids: ids}
}

func (s *AirlineService) List(ctx context.Context) ([]*model.Airline, error) {
	return s.store.ListAirlines(ctx)
}

func (s *AirlineService) Get(ctx context.Context, id int64) (*model.Airline, error) {
	airline, err := s.store.GetAirline(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("no airline with id %d found", id)
	}
	return airline, err
}

func (s *AirlineService) Add(ctx context.Context, airline *model.Airline) error {
	if airline == nil {
		return apperr.Validation("airline cannot be nil")
	}
	if airline.Code == "" {
		return apperr.Validation("airline code is required")
	}

	if airline.AirlineID != 0 {
		exists, err := s.store.AirlineExists(ctx, airline.AirlineID)
		if err != nil {
			return fmt.Errorf("failed to check airline existence: %w", err)
		}
		if exists {
			return apperr.IllegalState("airline with id %d already exists", airline.AirlineID)
		}
	} else {
		airline.AirlineID = s.ids.NextID()
	}
	return s.store.SaveAirline(ctx, airline)
}

func (s *AirlineService) Update(ctx context.Context, id int64, airline *model.Airline) error {
	if airline == nil {
		return apperr.Validation("airline cannot be nil")
	}
	exists, err := s.store.AirlineExists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check airline existence: %w", err)
	}
	if !exists {
		return apperr.NotFound("no airline with id %d found", id)
	}
	airline.AirlineID = id
	return s.store.SaveAirline(ctx, airline)
}

func (s *AirlineService) Remove(ctx context.Context, id int64) error {
	err := s.store.DeleteAirline(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("no airline with id %d found", id)
	}
	return err
}
