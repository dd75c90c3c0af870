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

type PriceService struct {
	store  store.Store
	ids    idgen.Generator
	logger logger.Client
}

func NewPriceService(s store.Store, ids idgen.Generator, logger logger.Client) *PriceService {
	return &PriceService{store: s, ids: ids, logger: logger}
}

func (s *PriceService) List(ctx context.Context) ([]*model.Price, error) {
	return s.store.ListPrices(ctx)
}

func (s *PriceService) Get(ctx context.Context, id int64) (*model.Price, error) {
	price, err := s.store.GetPrice(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("no price with id %d found", id)
	}
	return price, err
}

// Add persists a new price. Every flight already associated with the price
// must exist in the store.
func (s *PriceService) Add(ctx context.Context, price *model.Price) error {
	if price == nil {
		return apperr.Validation("price cannot be nil")
	}

	if price.PriceID != 0 {
		exists, err := s.store.PriceExists(ctx, price.PriceID)
		if err != nil {
			return fmt.Errorf("failed to check price existence: %w", err)
		}
		if exists {
			return apperr.IllegalState("price with id %d already exists", price.PriceID)
		}
	} else {
		price.PriceID = s.ids.NextID()
	}

	if err := s.checkFlightsExist(ctx, price); err != nil {
		return err
	}

	return s.store.SavePrice(ctx, price)
}

func (s *PriceService) Update(ctx context.Context, priceID int64, price *model.Price) error {
	if price == nil {
		return apperr.Validation("no price provided")
	}
	if price.PriceID != priceID {
		return apperr.Validation("price id %d does not match id %d in request body", priceID, price.PriceID)
	}

	exists, err := s.store.PriceExists(ctx, priceID)
	if err != nil {
		return fmt.Errorf("failed to check price existence: %w", err)
	}
	if !exists {
		return apperr.NotFound("no price with id %d found", priceID)
	}

	if err := s.checkFlightsExist(ctx, price); err != nil {
		return err
	}

	return s.store.SavePrice(ctx, price)
}

func (s *PriceService) Remove(ctx context.Context, priceID int64) error {
	err := s.store.DeletePrice(ctx, priceID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("no price with id %d found", priceID)
	}
	return err
}

func (s *PriceService) Count(ctx context.Context) (int64, error) {
	return s.store.CountPrices(ctx)
}

func (s *PriceService) checkFlightsExist(ctx context.Context, price *model.Price) error {
	for _, f := range price.Flights {
		exists, err := s.store.FlightExists(ctx, f.FlightID)
		if err != nil {
			return fmt.Errorf("failed to check flight existence: %w", err)
		}
		if !exists {
			return apperr.Validation("flight with id %d does not exist", f.FlightID)
		}
	}
	return nil
}
