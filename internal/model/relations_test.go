package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLinkFlightPrice(t *testing.T) {
	flight := &Flight{FlightID: 1}
	price := &Price{PriceID: 10}

	LinkFlightPrice(flight, price)

	assert.Equal(t, []*Price{price}, flight.Prices)
	assert.Equal(t, []*Flight{flight}, price.Flights)

	t.Run("linking twice is a no-op", func(t *testing.T) {
		LinkFlightPrice(flight, price)
		assert.Len(t, flight.Prices, 1)
		assert.Len(t, price.Flights, 1)
	})

	t.Run("nil arguments are ignored", func(t *testing.T) {
		LinkFlightPrice(nil, price)
		LinkFlightPrice(flight, nil)
		assert.Len(t, flight.Prices, 1)
		assert.Len(t, price.Flights, 1)
	})
}

func TestUnlinkFlightPrice_SharedPriceKeepsOtherLinks(t *testing.T) {
	a := &Flight{FlightID: 1}
	b := &Flight{FlightID: 2}
	shared := &Price{PriceID: 10}

	LinkFlightPrice(a, shared)
	LinkFlightPrice(b, shared)

	UnlinkFlightPrice(a, shared)

	assert.Empty(t, a.Prices)
	assert.Equal(t, []*Flight{b}, shared.Flights)
	assert.Equal(t, []*Price{shared}, b.Prices)
}

func TestLinkBookingFlight_BothSidesStaySymmetric(t *testing.T) {
	booking := &Booking{BookingID: 1, BookingDate: time.Now()}
	flight := &Flight{FlightID: 5}

	LinkBookingFlight(booking, flight)

	assert.Equal(t, []*Flight{flight}, booking.Flights)
	assert.Equal(t, []*Booking{booking}, flight.Bookings)

	LinkBookingFlight(booking, flight)
	assert.Len(t, booking.Flights, 1)
	assert.Len(t, flight.Bookings, 1)

	UnlinkBookingFlight(booking, flight)
	assert.Empty(t, booking.Flights)
	assert.Empty(t, flight.Bookings)
}

func TestUnlinkBookingFlight_OnlyTargetRemoved(t *testing.T) {
	booking := &Booking{BookingID: 1}
	f1 := &Flight{FlightID: 1}
	f2 := &Flight{FlightID: 2}

	LinkBookingFlight(booking, f1)
	LinkBookingFlight(booking, f2)

	UnlinkBookingFlight(booking, f1)

	assert.Equal(t, []*Flight{f2}, booking.Flights)
	assert.Empty(t, f1.Bookings)
	assert.Equal(t, []*Booking{booking}, f2.Bookings)
}

func TestFlightValidate(t *testing.T) {
	base := func() *Flight {
		dep := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
		return &Flight{
			Airline:          &Airline{AirlineID: 1},
			DepartureAirport: &Airport{AirportID: 1, Code: "OSL"},
			ArrivalAirport:   &Airport{AirportID: 2, Code: "JFK"},
			DepartureTime:    dep,
			ArrivalTime:      dep.Add(2 * time.Hour),
			Status:           StatusScheduled,
		}
	}

	t.Run("valid flight passes", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing airline", func(t *testing.T) {
		f := base()
		f.Airline = nil
		assert.Error(t, f.Validate())
	})

	t.Run("same departure and arrival airport", func(t *testing.T) {
		f := base()
		f.ArrivalAirport = f.DepartureAirport
		assert.Error(t, f.Validate())
	})

	t.Run("arrival not after departure", func(t *testing.T) {
		f := base()
		f.ArrivalTime = f.DepartureTime
		assert.Error(t, f.Validate())
	})

	t.Run("unknown status", func(t *testing.T) {
		f := base()
		f.Status = "BOARDING"
		assert.Error(t, f.Validate())
	})
}

func TestFeedbackValidate(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, (&Feedback{Rating: rating}).Validate())
	}
	assert.Error(t, (&Feedback{Rating: 0}).Validate())
	assert.Error(t, (&Feedback{Rating: 6}).Validate())
}
