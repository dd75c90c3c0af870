package store

import (
	"context"
	"strings"
	"sync"

	"flightbooking/internal/model"
)

// Memory is an in-process Store used by tests and local development. It keeps
// insertion order so "first match" search policies stay deterministic, and it
// shares the object graph with callers rather than copying.
//
// Atomically serializes transactions against each other; it cannot roll back,
// so callers are expected to validate before mutating. The Postgres store is
// the implementation that enforces real transaction semantics.
type Memory struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	airports   []*model.Airport
	airlines   []*model.Airline
	flights    []*model.Flight
	prices     []*model.Price
	bookings   []*model.Booking
	passengers []*model.Passenger
	users      []*model.User
	feedback   []*model.Feedback
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Atomically(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, m)
}

// --- airports ---

func (m *Memory) ListAirports(ctx context.Context) ([]*model.Airport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Airport, len(m.airports))
	copy(out, m.airports)
	return out, nil
}

func (m *Memory) GetAirport(ctx context.Context, id int64) (*model.Airport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.airports {
		if a.AirportID == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SaveAirport(ctx context.Context, airport *model.Airport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.airports {
		if a.AirportID == airport.AirportID {
			m.airports[i] = airport
			return nil
		}
	}
	m.airports = append(m.airports, airport)
	return nil
}

func (m *Memory) DeleteAirport(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.airports {
		if a.AirportID == id {
			m.airports = append(m.airports[:i], m.airports[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) AirportExists(ctx context.Context, id int64) (bool, error) {
	_, err := m.GetAirport(ctx, id)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

// --- airlines ---

func (m *Memory) ListAirlines(ctx context.Context) ([]*model.Airline, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Airline, len(m.airlines))
	copy(out, m.airlines)
	return out, nil
}

func (m *Memory) GetAirline(ctx context.Context, id int64) (*model.Airline, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.airlines {
		if a.AirlineID == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SaveAirline(ctx context.Context, airline *model.Airline) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.airlines {
		if a.AirlineID == airline.AirlineID {
			m.airlines[i] = airline
			return nil
		}
	}
	m.airlines = append(m.airlines, airline)
	return nil
}

func (m *Memory) DeleteAirline(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.airlines {
		if a.AirlineID == id {
			m.airlines = append(m.airlines[:i], m.airlines[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) AirlineExists(ctx context.Context, id int64) (bool, error) {
	_, err := m.GetAirline(ctx, id)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

// --- flights ---

func (m *Memory) ListFlights(ctx context.Context) ([]*model.Flight, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Flight, len(m.flights))
	copy(out, m.flights)
	return out, nil
}

func (m *Memory) GetFlight(ctx context.Context, id int64) (*model.Flight, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, f := range m.flights {
		if f.FlightID == id {
			return f, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SaveFlight(ctx context.Context, flight *model.Flight) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.flights {
		if f.FlightID == flight.FlightID {
			m.flights[i] = flight
			return nil
		}
	}
	m.flights = append(m.flights, flight)
	return nil
}

func (m *Memory) DeleteFlight(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.flights {
		if f.FlightID == id {
			// detach shared relations from both sides before dropping
			for _, p := range append([]*model.Price(nil), f.Prices...) {
				model.UnlinkFlightPrice(f, p)
			}
			for _, b := range append([]*model.Booking(nil), f.Bookings...) {
				model.UnlinkBookingFlight(b, f)
			}
			m.flights = append(m.flights[:i], m.flights[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) FlightExists(ctx context.Context, id int64) (bool, error) {
	_, err := m.GetFlight(ctx, id)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

// --- prices ---

func (m *Memory) ListPrices(ctx context.Context) ([]*model.Price, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Price, len(m.prices))
	copy(out, m.prices)
	return out, nil
}

func (m *Memory) GetPrice(ctx context.Context, id int64) (*model.Price, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.prices {
		if p.PriceID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SavePrice(ctx context.Context, price *model.Price) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.prices {
		if p.PriceID == price.PriceID {
			m.prices[i] = price
			return nil
		}
	}
	m.prices = append(m.prices, price)
	return nil
}

func (m *Memory) DeletePrice(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.prices {
		if p.PriceID == id {
			for _, f := range append([]*model.Flight(nil), p.Flights...) {
				model.UnlinkFlightPrice(f, p)
			}
			m.prices = append(m.prices[:i], m.prices[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) PriceExists(ctx context.Context, id int64) (bool, error) {
	_, err := m.GetPrice(ctx, id)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (m *Memory) CountPrices(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.prices)), nil
}

// --- bookings ---

func (m *Memory) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}

func (m *Memory) GetBooking(ctx context.Context, id int64) (*model.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.BookingID == id {
			return b, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SaveBooking(ctx context.Context, booking *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.bookings {
		if b.BookingID == booking.BookingID {
			m.bookings[i] = booking
			return nil
		}
	}
	m.bookings = append(m.bookings, booking)
	return nil
}

func (m *Memory) DeleteBooking(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.bookings {
		if b.BookingID == id {
			// owned passengers are cascaded; shared flights only get unlinked
			kept := m.passengers[:0]
			for _, p := range m.passengers {
				if p.BookingID != id {
					kept = append(kept, p)
				}
			}
			m.passengers = kept

			for _, f := range append([]*model.Flight(nil), b.Flights...) {
				model.UnlinkBookingFlight(b, f)
			}
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) BookingExists(ctx context.Context, id int64) (bool, error) {
	_, err := m.GetBooking(ctx, id)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (m *Memory) CountBookings(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.bookings)), nil
}

// --- passengers ---

func (m *Memory) ListPassengers(ctx context.Context) ([]*model.Passenger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Passenger, len(m.passengers))
	copy(out, m.passengers)
	return out, nil
}

func (m *Memory) GetPassenger(ctx context.Context, id int64) (*model.Passenger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.passengers {
		if p.PassengerID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SavePassenger(ctx context.Context, passenger *model.Passenger) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.passengers {
		if p.PassengerID == passenger.PassengerID {
			m.passengers[i] = passenger
			return nil
		}
	}
	m.passengers = append(m.passengers, passenger)
	return nil
}

func (m *Memory) DeletePassenger(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.passengers {
		if p.PassengerID == id {
			m.passengers = append(m.passengers[:i], m.passengers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// --- users ---

func (m *Memory) ListUsers(ctx context.Context) ([]*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *Memory) GetUser(ctx context.Context, id int64) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.UserID == id {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SaveUser(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.UserID == user.UserID {
			m.users[i] = user
			return nil
		}
	}
	m.users = append(m.users, user)
	return nil
}

func (m *Memory) DeleteUser(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.UserID == id {
			// bookings owned by the user are cascaded
			keptBookings := m.bookings[:0]
			for _, b := range m.bookings {
				if b.User != nil && b.User.UserID == id {
					keptPassengers := m.passengers[:0]
					for _, p := range m.passengers {
						if p.BookingID != b.BookingID {
							keptPassengers = append(keptPassengers, p)
						}
					}
					m.passengers = keptPassengers
					continue
				}
				keptBookings = append(keptBookings, b)
			}
			m.bookings = keptBookings
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// --- feedback ---

func (m *Memory) ListFeedback(ctx context.Context) ([]*model.Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Feedback, len(m.feedback))
	copy(out, m.feedback)
	return out, nil
}

func (m *Memory) GetFeedback(ctx context.Context, id int64) (*model.Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, f := range m.feedback {
		if f.FeedbackID == id {
			return f, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SaveFeedback(ctx context.Context, feedback *model.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.feedback {
		if f.FeedbackID == feedback.FeedbackID {
			m.feedback[i] = feedback
			return nil
		}
	}
	m.feedback = append(m.feedback, feedback)
	return nil
}

func (m *Memory) DeleteFeedback(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.feedback {
		if f.FeedbackID == id {
			m.feedback = append(m.feedback[:i], m.feedback[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
