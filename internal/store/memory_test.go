package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"flightbooking/internal/model"
)

func testFlight(id int64) *model.Flight {
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
		Prices:           []*model.Price{},
	}
}

func TestMemory_GetReturnsErrNotFound(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.GetFlight(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.GetBooking(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, m.DeleteUser(ctx, 42), ErrNotFound)
}

func TestMemory_SaveIsUpsert(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	f := testFlight(1)
	assert.NoError(t, m.SaveFlight(ctx, f))

	updated := testFlight(1)
	updated.Status = model.StatusDelayed
	assert.NoError(t, m.SaveFlight(ctx, updated))

	flights, err := m.ListFlights(ctx)
	assert.NoError(t, err)
	assert.Len(t, flights, 1)
	assert.Equal(t, model.StatusDelayed, flights[0].Status)
}

func TestMemory_ListPreservesInsertionOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, id := range []int64{3, 1, 2} {
		assert.NoError(t, m.SaveFlight(ctx, testFlight(id)))
	}

	flights, err := m.ListFlights(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), flights[0].FlightID)
	assert.Equal(t, int64(1), flights[1].FlightID)
	assert.Equal(t, int64(2), flights[2].FlightID)
}

func TestMemory_DeleteBookingCascadesPassengersOnly(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	flight := testFlight(1)
	assert.NoError(t, m.SaveFlight(ctx, flight))

	booking := &model.Booking{BookingID: 10, BookingDate: time.Now()}
	model.LinkBookingFlight(booking, flight)
	assert.NoError(t, m.SaveBooking(ctx, booking))

	assert.NoError(t, m.SavePassenger(ctx, &model.Passenger{
		PassengerID: 100, BookingID: 10, FirstName: "Dave", PassportNumber: "A123",
	}))
	assert.NoError(t, m.SavePassenger(ctx, &model.Passenger{
		PassengerID: 101, BookingID: 11, FirstName: "Eve", PassportNumber: "B456",
	}))

	assert.NoError(t, m.DeleteBooking(ctx, 10))

	// owned passengers are gone, the unrelated one survives
	passengers, err := m.ListPassengers(ctx)
	assert.NoError(t, err)
	assert.Len(t, passengers, 1)
	assert.Equal(t, int64(101), passengers[0].PassengerID)

	// the shared flight survives with the back-reference removed
	kept, err := m.GetFlight(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, kept.Bookings)
}

func TestMemory_DeleteFlightUnlinksSharedPrices(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	price := &model.Price{PriceID: 5, ClassType: "Economy", Amount: 150, Currency: "USD"}
	assert.NoError(t, m.SavePrice(ctx, price))

	f1 := testFlight(1)
	f2 := testFlight(2)
	model.LinkFlightPrice(f1, price)
	model.LinkFlightPrice(f2, price)
	assert.NoError(t, m.SaveFlight(ctx, f1))
	assert.NoError(t, m.SaveFlight(ctx, f2))

	assert.NoError(t, m.DeleteFlight(ctx, 1))

	// price record survives, still linked to the other flight
	kept, err := m.GetPrice(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, kept.Flights, 1)
	assert.Equal(t, int64(2), kept.Flights[0].FlightID)
}

func TestMemory_DeleteUserCascadesBookings(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	user := &model.User{UserID: 1, Email: "dave@gmail.com", Role: model.RoleUser}
	assert.NoError(t, m.SaveUser(ctx, user))

	booking := &model.Booking{BookingID: 10, BookingDate: time.Now(), User: user}
	assert.NoError(t, m.SaveBooking(ctx, booking))
	assert.NoError(t, m.SavePassenger(ctx, &model.Passenger{
		PassengerID: 100, BookingID: 10, PassportNumber: "A123",
	}))

	assert.NoError(t, m.DeleteUser(ctx, 1))

	bookings, err := m.ListBookings(ctx)
	assert.NoError(t, err)
	assert.Empty(t, bookings)

	passengers, err := m.ListPassengers(ctx)
	assert.NoError(t, err)
	assert.Empty(t, passengers)
}

func TestMemory_GetUserByEmailIsCaseInsensitive(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	assert.NoError(t, m.SaveUser(ctx, &model.User{UserID: 1, Email: "Dave@Gmail.com"}))

	user, err := m.GetUserByEmail(ctx, "dave@gmail.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)

	_, err = m.GetUserByEmail(ctx, "unknown@gmail.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Atomically(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	err := m.Atomically(ctx, func(ctx context.Context, s Store) error {
		if err := s.SaveFlight(ctx, testFlight(1)); err != nil {
			return err
		}
		return s.SaveFlight(ctx, testFlight(2))
	})
	assert.NoError(t, err)

	flights, err := m.ListFlights(ctx)
	assert.NoError(t, err)
	assert.Len(t, flights, 2)

	t.Run("fn errors are propagated", func(t *testing.T) {
		boom := errors.New("boom")
		err := m.Atomically(ctx, func(ctx context.Context, s Store) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestMemory_CountBookingsAndPrices(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	count, err := m.CountBookings(ctx)
	assert.NoError(t, err)
	assert.Zero(t, count)

	assert.NoError(t, m.SaveBooking(ctx, &model.Booking{BookingID: 1}))
	assert.NoError(t, m.SavePrice(ctx, &model.Price{PriceID: 1}))
	assert.NoError(t, m.SavePrice(ctx, &model.Price{PriceID: 2}))

	count, err = m.CountBookings(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = m.CountPrices(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
