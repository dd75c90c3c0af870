package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"flightbooking/internal/apperr"
	"flightbooking/internal/model"
	"flightbooking/internal/store"
	"flightbooking/pkg/idgen"
	"flightbooking/pkg/logger"
)

// Service owns booking lifecycle and the booking<->flight relation. Relation
// mutations run inside the store's transaction boundary so a partial update
// is never visible to concurrent readers.
type Service struct {
	store  store.Store
	ids    idgen.Generator
	logger logger.Client
}

func NewService(s store.Store, ids idgen.Generator, logger logger.Client) *Service {
	return &Service{store: s, ids: ids, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]*model.Booking, error) {
	return s.store.ListBookings(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Booking, error) {
	booking, err := s.store.GetBooking(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("no booking with id %d found", id)
	}
	return booking, err
}

// Add persists a new booking. A nil flight list is initialized to an empty
// collection so later add-flight operations never hit a nil slice.
func (s *Service) Add(ctx context.Context, booking *model.Booking) error {
	if booking == nil {
		return apperr.Validation("booking cannot be nil")
	}

	if booking.BookingID != 0 {
		exists, err := s.store.BookingExists(ctx, booking.BookingID)
		if err != nil {
			return fmt.Errorf("failed to check booking existence: %w", err)
		}
		if exists {
			return apperr.IllegalState("booking with id %d already exists", booking.BookingID)
		}
	} else {
		booking.BookingID = s.ids.NextID()
	}

	if booking.Flights == nil {
		booking.Flights = []*model.Flight{}
	}
	if booking.BookingDate.IsZero() {
		booking.BookingDate = time.Now().UTC()
	}

	if err := s.store.SaveBooking(ctx, booking); err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	s.logger.Info("booking created", logger.Field{Key: "booking_id", Value: booking.BookingID})
	return nil
}

// AddFlights links flights to an existing booking, keeping both relation ends
// in sync. Flights without an id are persisted first.
func (s *Service) AddFlights(ctx context.Context, bookingID int64, flights []*model.Flight) error {
	return s.store.Atomically(ctx, func(ctx context.Context, tx store.Store) error {
		booking, err := tx.GetBooking(ctx, bookingID)
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("no booking with id %d found", bookingID)
		}
		if err != nil {
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}

		for _, flight := range flights {
			if flight == nil {
				return apperr.Validation("booking %d: flight cannot be nil", bookingID)
			}
			if flight.FlightID == 0 {
				flight.FlightID = s.ids.NextID()
				if err := tx.SaveFlight(ctx, flight); err != nil {
					return fmt.Errorf("failed to save flight for booking %d: %w", bookingID, err)
				}
			}
			model.LinkBookingFlight(booking, flight)
		}

		if err := tx.SaveBooking(ctx, booking); err != nil {
			return fmt.Errorf("failed to save booking %d: %w", bookingID, err)
		}
		return nil
	})
}

// Update applies partial booking changes. The id in the path must match the
// id in the body.
func (s *Service) Update(ctx context.Context, bookingID int64, booking *model.Booking) error {
	if booking == nil {
		return apperr.Validation("no booking data provided")
	}
	if booking.BookingID != bookingID {
		return apperr.Validation("booking id %d does not match id %d in request body", bookingID, booking.BookingID)
	}

	existing, err := s.store.GetBooking(ctx, bookingID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("no booking with id %d found", bookingID)
	}
	if err != nil {
		return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}

	if !booking.BookingDate.IsZero() {
		existing.BookingDate = booking.BookingDate
	}
	return s.store.SaveBooking(ctx, existing)
}

// Remove deletes a booking. The store cascades the delete to the booking's
// passengers; referenced flights and prices are shared and stay in place.
func (s *Service) Remove(ctx context.Context, bookingID int64) error {
	err := s.store.DeleteBooking(ctx, bookingID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("no booking with id %d found", bookingID)
	}
	return err
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.store.CountBookings(ctx)
}

// --- passengers ---

func (s *Service) ListPassengers(ctx context.Context) ([]*model.Passenger, error) {
	return s.store.ListPassengers(ctx)
}

func (s *Service) GetPassenger(ctx context.Context, id int64) (*model.Passenger, error) {
	passenger, err := s.store.GetPassenger(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("no passenger with id %d found", id)
	}
	return passenger, err
}

// AddPassenger registers a passenger on an existing booking. The same
// passport number cannot appear twice on one booking.
func (s *Service) AddPassenger(ctx context.Context, passenger *model.Passenger) error {
	if passenger == nil {
		return apperr.Validation("passenger cannot be nil")
	}

	exists, err := s.store.BookingExists(ctx, passenger.BookingID)
	if err != nil {
		return fmt.Errorf("failed to check booking existence: %w", err)
	}
	if !exists {
		return apperr.NotFound("no booking with id %d found", passenger.BookingID)
	}

	if err := s.checkPassportUnique(ctx, passenger); err != nil {
		return err
	}

	if passenger.PassengerID == 0 {
		passenger.PassengerID = s.ids.NextID()
	}
	return s.store.SavePassenger(ctx, passenger)
}

func (s *Service) RemovePassenger(ctx context.Context, id int64) error {
	err := s.store.DeletePassenger(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("no passenger with id %d found", id)
	}
	return err
}

func (s *Service) checkPassportUnique(ctx context.Context, passenger *model.Passenger) error {
	all, err := s.store.ListPassengers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list passengers: %w", err)
	}
	for _, p := range all {
		if p.PassengerID == passenger.PassengerID {
			continue
		}
		if p.BookingID == passenger.BookingID &&
			strings.EqualFold(p.PassportNumber, passenger.PassportNumber) {
			return apperr.Validation(
				"passport number %s is already registered on booking %d",
				passenger.PassportNumber, passenger.BookingID,
			)
		}
	}
	return nil
}
