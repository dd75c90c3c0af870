package search

import (
	"strings"
	"time"

	"flightbooking/internal/model"
)

const dayWindow = 24 * time.Hour

// withinDay reports whether t falls inside the half-open 24-hour window
// anchored at the given instant: [anchor, anchor+24h). This is deliberately
// not a calendar-day match; changing it would alter results at day boundaries.
func withinDay(t, anchor time.Time) bool {
	return !t.Before(anchor) && t.Before(anchor.Add(dayWindow))
}

func routeMatches(f *model.Flight, from, to string) bool {
	if f.DepartureAirport == nil || f.ArrivalAirport == nil {
		return false
	}
	return strings.EqualFold(f.DepartureAirport.Code, from) &&
		strings.EqualFold(f.ArrivalAirport.Code, to)
}

// NotCancelled returns the subset of flights whose status is not CANCELLED,
// preserving order. Cancelled flights never appear in any search output.
func NotCancelled(flights []*model.Flight) []*model.Flight {
	kept := make([]*model.Flight, 0, len(flights))
	for _, f := range flights {
		if f.Status != model.StatusCancelled {
			kept = append(kept, f)
		}
	}
	return kept
}

// OneWay filters candidates for a one-way search: route match (codes compared
// case-insensitively), not round-trip eligible, departure inside the day
// window at start. Unknown airport codes simply match nothing.
func OneWay(flights []*model.Flight, from, to string, start time.Time) []*model.Flight {
	matched := make([]*model.Flight, 0, len(flights))
	for _, f := range flights {
		if f.Status == model.StatusCancelled {
			continue
		}
		if f.RoundTripEligible {
			continue
		}
		if !routeMatches(f, from, to) {
			continue
		}
		if !withinDay(f.DepartureTime, start) {
			continue
		}
		matched = append(matched, f)
	}
	return matched
}

// Outbound filters candidates for the outbound leg of a round-trip search.
// Same predicates as OneWay except the flight must be round-trip eligible.
func Outbound(flights []*model.Flight, from, to string, start time.Time) []*model.Flight {
	matched := make([]*model.Flight, 0, len(flights))
	for _, f := range flights {
		if f.Status == model.StatusCancelled {
			continue
		}
		if !f.RoundTripEligible {
			continue
		}
		if !routeMatches(f, from, to) {
			continue
		}
		if !withinDay(f.DepartureTime, start) {
			continue
		}
		matched = append(matched, f)
	}
	return matched
}
