package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"flightbooking/internal/model"
)

func TestPairRoundTrips_FirstMatchWins(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	outbound := buildFlight(1, oslo, newYork, start, true)
	early := buildFlight(2, newYork, oslo, outbound.ArrivalTime.Add(time.Hour), true)
	later := buildFlight(3, newYork, oslo, outbound.ArrivalTime.Add(48*time.Hour), true)

	// later appears first in the pool, so it wins despite departing later
	pairs := PairRoundTrips([]*model.Flight{outbound},
		[]*model.Flight{later, early}, "OSL", "JFK", nil)

	assert.Len(t, pairs, 1)
	assert.Equal(t, int64(1), pairs[0].Outbound.FlightID)
	assert.Equal(t, int64(3), pairs[0].Return.FlightID)
}

func TestPairRoundTrips_ReturnPredicate(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	outbound := buildFlight(1, oslo, newYork, start, true)

	t.Run("return departing before outbound arrival is rejected", func(t *testing.T) {
		ret := buildFlight(2, newYork, oslo, outbound.ArrivalTime.Add(-time.Minute), true)
		pairs := PairRoundTrips([]*model.Flight{outbound}, []*model.Flight{ret}, "OSL", "JFK", nil)
		assert.Empty(t, pairs)
	})

	t.Run("return departing exactly at outbound arrival is accepted", func(t *testing.T) {
		ret := buildFlight(2, newYork, oslo, outbound.ArrivalTime, true)
		pairs := PairRoundTrips([]*model.Flight{outbound}, []*model.Flight{ret}, "OSL", "JFK", nil)
		assert.Len(t, pairs, 1)
	})

	t.Run("cancelled return is rejected", func(t *testing.T) {
		ret := buildFlight(2, newYork, oslo, outbound.ArrivalTime.Add(time.Hour), true)
		ret.Status = model.StatusCancelled
		pairs := PairRoundTrips([]*model.Flight{outbound}, []*model.Flight{ret}, "OSL", "JFK", nil)
		assert.Empty(t, pairs)
	})

	t.Run("non-eligible return is rejected", func(t *testing.T) {
		ret := buildFlight(2, newYork, oslo, outbound.ArrivalTime.Add(time.Hour), false)
		pairs := PairRoundTrips([]*model.Flight{outbound}, []*model.Flight{ret}, "OSL", "JFK", nil)
		assert.Empty(t, pairs)
	})

	t.Run("wrong route return is rejected", func(t *testing.T) {
		ret := buildFlight(2, london, oslo, outbound.ArrivalTime.Add(time.Hour), true)
		pairs := PairRoundTrips([]*model.Flight{outbound}, []*model.Flight{ret}, "OSL", "JFK", nil)
		assert.Empty(t, pairs)
	})

	t.Run("end date constrains the return window", func(t *testing.T) {
		end := start.Add(7 * 24 * time.Hour)
		tooEarly := buildFlight(2, newYork, oslo, end.Add(-time.Hour), true)
		tooLate := buildFlight(3, newYork, oslo, end.Add(24*time.Hour), true)
		inWindow := buildFlight(4, newYork, oslo, end.Add(6*time.Hour), true)

		pairs := PairRoundTrips([]*model.Flight{outbound},
			[]*model.Flight{tooEarly, tooLate, inWindow}, "OSL", "JFK", &end)

		assert.Len(t, pairs, 1)
		assert.Equal(t, int64(4), pairs[0].Return.FlightID)
	})
}

func TestPairRoundTrips_AtMostOnePairPerOutbound(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	outbound := buildFlight(1, oslo, newYork, start, true)
	ret1 := buildFlight(2, newYork, oslo, outbound.ArrivalTime.Add(time.Hour), true)
	ret2 := buildFlight(3, newYork, oslo, outbound.ArrivalTime.Add(2*time.Hour), true)

	pairs := PairRoundTrips([]*model.Flight{outbound},
		[]*model.Flight{ret1, ret2}, "OSL", "JFK", nil)

	assert.Len(t, pairs, 1)
	assert.Equal(t, int64(2), pairs[0].Return.FlightID)
}

func TestPairRoundTrips_PreservesOutboundOrder(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	o1 := buildFlight(1, oslo, newYork, start, true)
	o2 := buildFlight(2, oslo, newYork, start.Add(time.Hour), true)
	ret := buildFlight(3, newYork, oslo, start.Add(12*time.Hour), true)

	pairs := PairRoundTrips([]*model.Flight{o2, o1}, []*model.Flight{ret}, "OSL", "JFK", nil)

	assert.Len(t, pairs, 2)
	assert.Equal(t, int64(2), pairs[0].Outbound.FlightID)
	assert.Equal(t, int64(1), pairs[1].Outbound.FlightID)
}

func TestCatalogRoundTrips(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	otherLine := &model.Airline{AirlineID: 2, Code: "BA"}

	t.Run("pairs reversed eligible flights on the same airline", func(t *testing.T) {
		out := buildFlight(1, oslo, newYork, start, true)
		ret := buildFlight(2, newYork, oslo, start.Add(48*time.Hour), true)

		pairs := CatalogRoundTrips([]*model.Flight{out, ret})

		assert.Len(t, pairs, 1)
		assert.Equal(t, int64(1), pairs[0].Outbound.FlightID)
		assert.Equal(t, int64(2), pairs[0].Return.FlightID)
	})

	t.Run("requires the same airline", func(t *testing.T) {
		out := buildFlight(1, oslo, newYork, start, true)
		ret := buildFlight(2, newYork, oslo, start.Add(48*time.Hour), true)
		ret.Airline = otherLine

		assert.Empty(t, CatalogRoundTrips([]*model.Flight{out, ret}))
	})

	t.Run("requires strictly later return departure", func(t *testing.T) {
		out := buildFlight(1, oslo, newYork, start, true)
		ret := buildFlight(2, newYork, oslo, out.ArrivalTime, true)

		assert.Empty(t, CatalogRoundTrips([]*model.Flight{out, ret}))
	})

	t.Run("never pairs a flight with itself", func(t *testing.T) {
		// departure and arrival reversed relative to nothing: a single flight
		// cannot reverse its own route, but identity is checked first anyway
		out := buildFlight(1, oslo, newYork, start, true)

		assert.Empty(t, CatalogRoundTrips([]*model.Flight{out}))
	})

	t.Run("ignores cancelled and non-eligible flights", func(t *testing.T) {
		out := buildFlight(1, oslo, newYork, start, true)
		ret := buildFlight(2, newYork, oslo, start.Add(48*time.Hour), true)
		ret.Status = model.StatusCancelled
		oneWay := buildFlight(3, newYork, oslo, start.Add(48*time.Hour), false)

		assert.Empty(t, CatalogRoundTrips([]*model.Flight{out, ret, oneWay}))
	})
}
