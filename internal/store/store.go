package store

import (
	"context"
	"errors"

	"flightbooking/internal/model"
)

// ErrNotFound is returned when a referenced id is absent from the store.
var ErrNotFound = errors.New("record not found")

type AirportStore interface {
	ListAirports(ctx context.Context) ([]*model.Airport, error)
	GetAirport(ctx context.Context, id int64) (*model.Airport, error)
	SaveAirport(ctx context.Context, airport *model.Airport) error
	DeleteAirport(ctx context.Context, id int64) error
	AirportExists(ctx context.Context, id int64) (bool, error)
}

type AirlineStore interface {
	ListAirlines(ctx context.Context) ([]*model.Airline, error)
	GetAirline(ctx context.Context, id int64) (*model.Airline, error)
	SaveAirline(ctx context.Context, airline *model.Airline) error
	DeleteAirline(ctx context.Context, id int64) error
	AirlineExists(ctx context.Context, id int64) (bool, error)
}

type FlightStore interface {
	ListFlights(ctx context.Context) ([]*model.Flight, error)
	GetFlight(ctx context.Context, id int64) (*model.Flight, error)
	SaveFlight(ctx context.Context, flight *model.Flight) error
	DeleteFlight(ctx context.Context, id int64) error
	FlightExists(ctx context.Context, id int64) (bool, error)
}

type PriceStore interface {
	ListPrices(ctx context.Context) ([]*model.Price, error)
	GetPrice(ctx context.Context, id int64) (*model.Price, error)
	SavePrice(ctx context.Context, price *model.Price) error
	DeletePrice(ctx context.Context, id int64) error
	PriceExists(ctx context.Context, id int64) (bool, error)
	CountPrices(ctx context.Context) (int64, error)
}

type BookingStore interface {
	ListBookings(ctx context.Context) ([]*model.Booking, error)
	GetBooking(ctx context.Context, id int64) (*model.Booking, error)
	SaveBooking(ctx context.Context, booking *model.Booking) error
	// DeleteBooking removes the booking and cascades to its passengers.
	// Flights and prices referenced by the booking are shared entities and
	// stay untouched.
	DeleteBooking(ctx context.Context, id int64) error
	BookingExists(ctx context.Context, id int64) (bool, error)
	CountBookings(ctx context.Context) (int64, error)
}

type PassengerStore interface {
	ListPassengers(ctx context.Context) ([]*model.Passenger, error)
	GetPassenger(ctx context.Context, id int64) (*model.Passenger, error)
	SavePassenger(ctx context.Context, passenger *model.Passenger) error
	DeletePassenger(ctx context.Context, id int64) error
}

type UserStore interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	SaveUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type FeedbackStore interface {
	ListFeedback(ctx context.Context) ([]*model.Feedback, error)
	GetFeedback(ctx context.Context, id int64) (*model.Feedback, error)
	SaveFeedback(ctx context.Context, feedback *model.Feedback) error
	DeleteFeedback(ctx context.Context, id int64) error
}

// Store is the record-store collaborator the services depend on. Atomically
// is the transaction boundary for multi-step relationship updates: either
// every write inside fn becomes visible or none does.
type Store interface {
	AirportStore
	AirlineStore
	FlightStore
	PriceStore
	BookingStore
	PassengerStore
	UserStore
	FeedbackStore

	Atomically(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
