package search

import (
	"time"

	"flightbooking/internal/model"
)

// RoundTrip pairs an outbound flight with its matched return leg.
type RoundTrip struct {
	Outbound *model.Flight `json:"outbound"`
	Return   *model.Flight `json:"return"`
}

// pairReturn picks the first flight in pool order that can serve as the
// return leg for outbound. The predicate:
//
//  1. not cancelled
//  2. round-trip eligible
//  3. exact reversal of the outbound route (to -> from)
//  4. departs at or after the outbound arrival
//  5. when end is set, departs inside [end, end+24h)
//
// First match wins; this is tie-break-by-encounter-order, not cheapest or
// earliest. Note the predicate does not exclude the outbound flight itself:
// a flight whose route is its own reverse can self-pair. See DESIGN.md.
func pairReturn(outbound *model.Flight, pool []*model.Flight, from, to string, end *time.Time) (*model.Flight, bool) {
	for _, r := range pool {
		if r.Status == model.StatusCancelled {
			continue
		}
		if !r.RoundTripEligible {
			continue
		}
		if !routeMatches(r, to, from) {
			continue
		}
		if r.DepartureTime.Before(outbound.ArrivalTime) {
			continue
		}
		if end != nil && !withinDay(r.DepartureTime, *end) {
			continue
		}
		return r, true
	}
	return nil, false
}

// PairRoundTrips matches each outbound candidate against the pool, producing
// at most one pair per outbound. Unmatched outbounds are dropped; outbound
// encounter order is preserved.
func PairRoundTrips(outbounds, pool []*model.Flight, from, to string, end *time.Time) []RoundTrip {
	pairs := make([]RoundTrip, 0, len(outbounds))
	for _, outbound := range outbounds {
		if ret, ok := pairReturn(outbound, pool, from, to, end); ok {
			pairs = append(pairs, RoundTrip{Outbound: outbound, Return: ret})
		}
	}
	return pairs
}

// CatalogRoundTrips pairs every round-trip eligible flight in the catalog
// against the same eligible set, with no route or date parameters. Unlike the
// search pairing this variant requires the same airline on both legs, a
// return departing strictly after the outbound arrival, and never pairs a
// flight with itself.
func CatalogRoundTrips(flights []*model.Flight) []RoundTrip {
	eligible := make([]*model.Flight, 0, len(flights))
	for _, f := range flights {
		if f.Status != model.StatusCancelled && f.RoundTripEligible {
			eligible = append(eligible, f)
		}
	}

	pairs := make([]RoundTrip, 0, len(eligible))
	for _, outbound := range eligible {
		for _, ret := range eligible {
			if ret == outbound {
				continue
			}
			if !reverses(outbound, ret) {
				continue
			}
			if !ret.DepartureTime.After(outbound.ArrivalTime) {
				continue
			}
			if !sameAirline(outbound, ret) {
				continue
			}
			pairs = append(pairs, RoundTrip{Outbound: outbound, Return: ret})
			break
		}
	}
	return pairs
}

func reverses(outbound, ret *model.Flight) bool {
	if outbound.DepartureAirport == nil || outbound.ArrivalAirport == nil ||
		ret.DepartureAirport == nil || ret.ArrivalAirport == nil {
		return false
	}
	return outbound.DepartureAirport.AirportID == ret.ArrivalAirport.AirportID &&
		outbound.ArrivalAirport.AirportID == ret.DepartureAirport.AirportID
}

func sameAirline(a, b *model.Flight) bool {
	return a.Airline != nil && b.Airline != nil && a.Airline.AirlineID == b.Airline.AirlineID
}
