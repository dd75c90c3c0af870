package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"flightbooking/internal/apperr"
	"flightbooking/internal/model"
	"flightbooking/internal/store"
	"flightbooking/pkg/logger"
)

type stubIDs struct {
	next int64
}

func (s *stubIDs) NextID() int64 {
	s.next++
	return s.next
}

// spyInvalidator counts cache-invalidation calls.
type spyInvalidator struct {
	calls int
}

func (s *spyInvalidator) InvalidateCatalog(ctx context.Context) error {
	s.calls++
	return nil
}

func newFlightService() (*FlightService, *store.Memory) {
	svc, records, _ := newFlightServiceWithSpy()
	return svc, records
}

func newFlightServiceWithSpy() (*FlightService, *store.Memory, *spyInvalidator) {
	records := store.NewMemory()
	spy := &spyInvalidator{}
	return NewFlightService(records, &stubIDs{next: 1000}, spy, logger.NewZeroLog("test")), records, spy
}

func validFlight(id int64) *model.Flight {
	dep := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	return &model.Flight{
		FlightID:         id,
		Airline:          &model.Airline{AirlineID: 1, Code: "DY"},
		FlightNumber:     "DY100",
		DepartureAirport: &model.Airport{AirportID: 1, Code: "OSL"},
		ArrivalAirport:   &model.Airport{AirportID: 2, Code: "JFK"},
		DepartureTime:    dep,
		ArrivalTime:      dep.Add(2 * time.Hour),
		Status:           model.StatusScheduled,
	}
}

func assertCode(t *testing.T, err error, code apperr.ErrorCode) {
	t.Helper()
	var appErr *apperr.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestFlightAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("valid flight gets an id and empty price list", func(t *testing.T) {
		svc, _ := newFlightService()
		flight := validFlight(0)
		assert.NoError(t, svc.Add(ctx, flight))
		assert.NotZero(t, flight.FlightID)
		assert.NotNil(t, flight.Prices)
	})

	t.Run("invalid flight is rejected", func(t *testing.T) {
		svc, _ := newFlightService()
		flight := validFlight(0)
		flight.ArrivalTime = flight.DepartureTime
		assertCode(t, svc.Add(ctx, flight), apperr.ErrorCodeValidation)
	})

	t.Run("duplicate id is an illegal state", func(t *testing.T) {
		svc, _ := newFlightService()
		assert.NoError(t, svc.Add(ctx, validFlight(3)))
		assertCode(t, svc.Add(ctx, validFlight(3)), apperr.ErrorCodeIllegalState)
	})

	t.Run("mutations invalidate the search cache", func(t *testing.T) {
		svc, _, spy := newFlightServiceWithSpy()
		assert.NoError(t, svc.Add(ctx, validFlight(1)))
		assert.Equal(t, 1, spy.calls)

		updated := validFlight(1)
		updated.Status = model.StatusDelayed
		assert.NoError(t, svc.Update(ctx, 1, updated))
		assert.NoError(t, svc.Remove(ctx, 1))
		assert.Equal(t, 3, spy.calls)
	})
}

func TestAttachPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("missing flight", func(t *testing.T) {
		svc, _ := newFlightService()
		_, err := svc.AttachPrices(ctx, 999, []*model.Price{{Amount: 150}})
		assertCode(t, err, apperr.ErrorCodeNotFound)
	})

	t.Run("links both relation ends and persists new prices", func(t *testing.T) {
		svc, records := newFlightService()
		assert.NoError(t, svc.Add(ctx, validFlight(1)))

		price := &model.Price{ClassType: "Economy", Amount: 150, Currency: "USD", Provider: "SkyScanner"}
		updated, err := svc.AttachPrices(ctx, 1, []*model.Price{price})

		assert.NoError(t, err)
		assert.NotZero(t, price.PriceID)
		assert.Len(t, updated.Prices, 1)
		assert.Len(t, price.Flights, 1)
		assert.Equal(t, int64(1), price.Flights[0].FlightID)

		saved, err := records.GetPrice(ctx, price.PriceID)
		assert.NoError(t, err)
		assert.Equal(t, price, saved)
	})

	t.Run("attaching the same price twice is idempotent", func(t *testing.T) {
		svc, _ := newFlightService()
		assert.NoError(t, svc.Add(ctx, validFlight(1)))

		price := &model.Price{PriceID: 50, ClassType: "Economy", Amount: 150}
		_, err := svc.AttachPrices(ctx, 1, []*model.Price{price})
		assert.NoError(t, err)
		updated, err := svc.AttachPrices(ctx, 1, []*model.Price{price})
		assert.NoError(t, err)

		assert.Len(t, updated.Prices, 1)
		assert.Len(t, price.Flights, 1)
	})
}

func TestFlightUpdate(t *testing.T) {
	svc, _ := newFlightService()
	ctx := context.Background()

	assert.NoError(t, svc.Add(ctx, validFlight(1)))

	t.Run("missing flight", func(t *testing.T) {
		err := svc.Update(ctx, 99, validFlight(99))
		assertCode(t, err, apperr.ErrorCodeNotFound)
	})

	t.Run("status change is persisted", func(t *testing.T) {
		updated := validFlight(1)
		updated.Status = model.StatusDelayed
		assert.NoError(t, svc.Update(ctx, 1, updated))

		got, err := svc.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusDelayed, got.Status)
	})
}

func TestFlightRemove(t *testing.T) {
	svc, records := newFlightService()
	ctx := context.Background()

	flight := validFlight(1)
	assert.NoError(t, svc.Add(ctx, flight))

	price := &model.Price{ClassType: "Economy", Amount: 150}
	_, err := svc.AttachPrices(ctx, 1, []*model.Price{price})
	assert.NoError(t, err)

	assert.NoError(t, svc.Remove(ctx, 1))

	// the shared price record survives the flight deletion
	kept, err := records.GetPrice(ctx, price.PriceID)
	assert.NoError(t, err)
	assert.Empty(t, kept.Flights)

	assertCode(t, svc.Remove(ctx, 1), apperr.ErrorCodeNotFound)
}
