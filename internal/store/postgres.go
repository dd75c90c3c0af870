package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"flightbooking/internal/model"
	"flightbooking/pkg/db"
)

// Postgres implements Store on top of a SQL executor. The same type serves
// both the pooled client and, inside Atomically, a transaction-scoped
// executor, so every method works unchanged in both modes.
type Postgres struct {
	exec db.SQLExecutor
}

func NewPostgres(exec db.SQLExecutor) *Postgres {
	return &Postgres{exec: exec}
}

// Atomically runs fn against a transaction-backed store. Read committed is
// enough here: the writes are guarded by application-level checks and the
// join-table syncs are idempotent.
func (p *Postgres) Atomically(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return p.exec.WithTransaction(ctx, sql.LevelReadCommitted, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, NewPostgres(txExecutor{tx: tx}))
	})
}

// txExecutor adapts *sql.Tx to db.SQLExecutor. Nested Atomically calls join
// the enclosing transaction instead of opening a new one.
type txExecutor struct {
	tx *sql.Tx
}

func (e txExecutor) WithTransaction(ctx context.Context, _ sql.IsolationLevel, fn db.TxFunc) error {
	return fn(ctx, e.tx)
}

func (e txExecutor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return e.tx.ExecContext(ctx, query, args...)
}

func (e txExecutor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return e.tx.QueryContext(ctx, query, args...)
}

func (e txExecutor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return e.tx.QueryRowContext(ctx, query, args...)
}

// --- airports ---

func (p *Postgres) ListAirports(ctx context.Context) ([]*model.Airport, error) {
	rows, err := p.exec.QueryContext(ctx,
		`SELECT airport_id, name, code, city, country FROM airports ORDER BY airport_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list airports: %w", err)
	}
	defer rows.Close()

	var airports []*model.Airport
	for rows.Next() {
		var a model.Airport
		if err := rows.Scan(&a.AirportID, &a.Name, &a.Code, &a.City, &a.Country); err != nil {
			return nil, fmt.Errorf("failed to scan airport: %w", err)
		}
		airports = append(airports, &a)
	}
	return airports, rows.Err()
}

func (p *Postgres) GetAirport(ctx context.Context, id int64) (*model.Airport, error) {
	var a model.Airport
	err := p.exec.QueryRowContext(ctx,
		`SELECT airport_id, name, code, city, country FROM airports WHERE airport_id = $1`, id).
		Scan(&a.AirportID, &a.Name, &a.Code, &a.City, &a.Country)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get airport %d: %w", id, err)
	}
	return &a, nil
}

func (p *Postgres) SaveAirport(ctx context.Context, airport *model.Airport) error {
	_, err := p.exec.ExecContext(ctx, `
		INSERT INTO airports (airport_id, name, code, city, country)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (airport_id) DO UPDATE
		SET name = EXCLUDED.name, code = EXCLUDED.code,
		    city = EXCLUDED.city, country = EXCLUDED.country`,
		airport.AirportID, airport.Name, airport.Code, airport.City, airport.Country)
	if err != nil {
		return fmt.Errorf("failed to save airport %d: %w", airport.AirportID, err)
	}
	return nil
}

func (p *Postgres) DeleteAirport(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "airports", "airport_id", id)
}

func (p *Postgres) AirportExists(ctx context.Context, id int64) (bool, error) {
	return p.existsByID(ctx, "airports", "airport_id", id)
}

// --- airlines ---

func (p *Postgres) ListAirlines(ctx context.Context) ([]*model.Airline, error) {
	rows, err := p.exec.QueryContext(ctx,
		`SELECT airline_id, name, code, country, logo_url FROM airlines ORDER BY airline_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list airlines: %w", err)
	}
	defer rows.Close()

	var airlines []*model.Airline
	for rows.Next() {
		var a model.Airline
		if err := rows.Scan(&a.AirlineID, &a.Name, &a.Code, &a.Country, &a.LogoURL); err != nil {
			return nil, fmt.Errorf("failed to scan airline: %w", err)
		}
		airlines = append(airlines, &a)
	}
	return airlines, rows.Err()
}

func (p *Postgres) GetAirline(ctx context.Context, id int64) (*model.Airline, error) {
	var a model.Airline
	err := p.exec.QueryRowContext(ctx,
		`SELECT airline_id, name, code, country, logo_url FROM airlines WHERE airline_id = $1`, id).
		Scan(&a.AirlineID, &a.Name, &a.Code, &a.Country, &a.LogoURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get airline %d: %w", id, err)
	}
	return &a, nil
}

func (p *Postgres) SaveAirline(ctx context.Context, airline *model.Airline) error {
	_, err := p.exec.ExecContext(ctx, `
		INSERT INTO airlines (airline_id, name, code, country, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (airline_id) DO UPDATE
		SET name = EXCLUDED.name, code = EXCLUDED.code,
		    country = EXCLUDED.country, logo_url = EXCLUDED.logo_url`,
		airline.AirlineID, airline.Name, airline.Code, airline.Country, airline.LogoURL)
	if err != nil {
		return fmt.Errorf("failed to save airline %d: %w", airline.AirlineID, err)
	}
	return nil
}

func (p *Postgres) DeleteAirline(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "airlines", "airline_id", id)
}

func (p *Postgres) AirlineExists(ctx context.Context, id int64) (bool, error) {
	return p.existsByID(ctx, "airlines", "airline_id", id)
}

// --- flights ---

const flightSelect = `
	SELECT f.flight_id, f.flight_number, f.departure_time, f.arrival_time,
	       f.round_trip_eligible, f.status, f.extra_features, f.available_classes,
	       al.airline_id, al.name, al.code, al.country, al.logo_url,
	       dep.airport_id, dep.name, dep.code, dep.city, dep.country,
	       arr.airport_id, arr.name, arr.code, arr.city, arr.country
	FROM flights f
	JOIN airlines al ON al.airline_id = f.airline_id
	JOIN airports dep ON dep.airport_id = f.departure_airport_id
	JOIN airports arr ON arr.airport_id = f.arrival_airport_id`

func scanFlight(scan func(dest ...any) error) (*model.Flight, error) {
	f := model.Flight{
		Airline:          &model.Airline{},
		DepartureAirport: &model.Airport{},
		ArrivalAirport:   &model.Airport{},
	}
	err := scan(
		&f.FlightID, &f.FlightNumber, &f.DepartureTime, &f.ArrivalTime,
		&f.RoundTripEligible, &f.Status, &f.ExtraFeatures, &f.AvailableClasses,
		&f.Airline.AirlineID, &f.Airline.Name, &f.Airline.Code, &f.Airline.Country, &f.Airline.LogoURL,
		&f.DepartureAirport.AirportID, &f.DepartureAirport.Name, &f.DepartureAirport.Code,
		&f.DepartureAirport.City, &f.DepartureAirport.Country,
		&f.ArrivalAirport.AirportID, &f.ArrivalAirport.Name, &f.ArrivalAirport.Code,
		&f.ArrivalAirport.City, &f.ArrivalAirport.Country,
	)
	if err != nil {
		return nil, err
	}
	f.Prices = []*model.Price{}
	return &f, nil
}

func (p *Postgres) ListFlights(ctx context.Context) ([]*model.Flight, error) {
	rows, err := p.exec.QueryContext(ctx, flightSelect+` ORDER BY f.flight_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	defer rows.Close()

	var flights []*model.Flight
	byID := make(map[int64]*model.Flight)
	for rows.Next() {
		f, err := scanFlight(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		flights = append(flights, f)
		byID[f.FlightID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := p.attachPrices(ctx, byID); err != nil {
		return nil, err
	}
	return flights, nil
}

func (p *Postgres) GetFlight(ctx context.Context, id int64) (*model.Flight, error) {
	row := p.exec.QueryRowContext(ctx, flightSelect+` WHERE f.flight_id = $1`, id)
	f, err := scanFlight(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get flight %d: %w", id, err)
	}
	if err := p.attachPrices(ctx, map[int64]*model.Flight{f.FlightID: f}); err != nil {
		return nil, err
	}
	return f, nil
}

// attachPrices loads the flight_price links for the given flights in a single
// query and hangs the prices off their flights in link order.
func (p *Postgres) attachPrices(ctx context.Context, flights map[int64]*model.Flight) error {
	if len(flights) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(flights))
	for id := range flights {
		ids = append(ids, id)
	}

	rows, err := p.exec.QueryContext(ctx, `
		SELECT fp.flight_id, pr.price_id, pr.class_type, pr.amount, pr.currency, pr.provider
		FROM flight_price fp
		JOIN prices pr ON pr.price_id = fp.price_id
		WHERE fp.flight_id = ANY($1)
		ORDER BY fp.flight_id, fp.position`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load flight prices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var flightID int64
		var price model.Price
		if err := rows.Scan(&flightID, &price.PriceID, &price.ClassType,
			&price.Amount, &price.Currency, &price.Provider); err != nil {
			return fmt.Errorf("failed to scan flight price: %w", err)
		}
		if f, ok := flights[flightID]; ok {
			f.Prices = append(f.Prices, &price)
		}
	}
	return rows.Err()
}

func (p *Postgres) SaveFlight(ctx context.Context, flight *model.Flight) error {
	_, err := p.exec.ExecContext(ctx, `
		INSERT INTO flights (flight_id, airline_id, flight_number,
		                     departure_airport_id, arrival_airport_id,
		                     departure_time, arrival_time, round_trip_eligible,
		                     status, extra_features, available_classes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (flight_id) DO UPDATE
		SET airline_id = EXCLUDED.airline_id,
		    flight_number = EXCLUDED.flight_number,
		    departure_airport_id = EXCLUDED.departure_airport_id,
		    arrival_airport_id = EXCLUDED.arrival_airport_id,
		    departure_time = EXCLUDED.departure_time,
		    arrival_time = EXCLUDED.arrival_time,
		    round_trip_eligible = EXCLUDED.round_trip_eligible,
		    status = EXCLUDED.status,
		    extra_features = EXCLUDED.extra_features,
		    available_classes = EXCLUDED.available_classes`,
		flight.FlightID, flight.Airline.AirlineID, flight.FlightNumber,
		flight.DepartureAirport.AirportID, flight.ArrivalAirport.AirportID,
		flight.DepartureTime, flight.ArrivalTime, flight.RoundTripEligible,
		flight.Status, flight.ExtraFeatures, flight.AvailableClasses)
	if err != nil {
		return fmt.Errorf("failed to save flight %d: %w", flight.FlightID, err)
	}
	return p.syncFlightPrices(ctx, flight)
}

// syncFlightPrices makes the flight_price rows match flight.Prices exactly.
func (p *Postgres) syncFlightPrices(ctx context.Context, flight *model.Flight) error {
	if _, err := p.exec.ExecContext(ctx,
		`DELETE FROM flight_price WHERE flight_id = $1`, flight.FlightID); err != nil {
		return fmt.Errorf("failed to clear flight prices for %d: %w", flight.FlightID, err)
	}
	for i, price := range flight.Prices {
		if _, err := p.exec.ExecContext(ctx, `
			INSERT INTO flight_price (flight_id, price_id, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (flight_id, price_id) DO UPDATE SET position = EXCLUDED.position`,
			flight.FlightID, price.PriceID, i); err != nil {
			return fmt.Errorf("failed to link price %d to flight %d: %w",
				price.PriceID, flight.FlightID, err)
		}
	}
	return nil
}

func (p *Postgres) DeleteFlight(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "flights", "flight_id", id)
}

func (p *Postgres) FlightExists(ctx context.Context, id int64) (bool, error) {
	return p.existsByID(ctx, "flights", "flight_id", id)
}

// --- prices ---

func (p *Postgres) ListPrices(ctx context.Context) ([]*model.Price, error) {
	rows, err := p.exec.QueryContext(ctx,
		`SELECT price_id, class_type, amount, currency, provider FROM prices ORDER BY price_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	defer rows.Close()

	var prices []*model.Price
	for rows.Next() {
		var pr model.Price
		if err := rows.Scan(&pr.PriceID, &pr.ClassType, &pr.Amount, &pr.Currency, &pr.Provider); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		prices = append(prices, &pr)
	}
	return prices, rows.Err()
}

func (p *Postgres) GetPrice(ctx context.Context, id int64) (*model.Price, error) {
	var pr model.Price
	err := p.exec.QueryRowContext(ctx,
		`SELECT price_id, class_type, amount, currency, provider FROM prices WHERE price_id = $1`, id).
		Scan(&pr.PriceID, &pr.ClassType, &pr.Amount, &pr.Currency, &pr.Provider)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get price %d: %w", id, err)
	}
	return &pr, nil
}

func (p *Postgres) SavePrice(ctx context.Context, price *model.Price) error {
	_, err := p.exec.ExecContext(ctx, `
		INSERT INTO prices (price_id, class_type, amount, currency, provider)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (price_id) DO UPDATE
		SET class_type = EXCLUDED.class_type, amount = EXCLUDED.amount,
		    currency = EXCLUDED.currency, provider = EXCLUDED.provider`,
		price.PriceID, price.ClassType, price.Amount, price.Currency, price.Provider)
	if err != nil {
		return fmt.Errorf("failed to save price %d: %w", price.PriceID, err)
	}
	return nil
}

func (p *Postgres) DeletePrice(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "prices", "price_id", id)
}

func (p *Postgres) PriceExists(ctx context.Context, id int64) (bool, error) {
	return p.existsByID(ctx, "prices", "price_id", id)
}

func (p *Postgres) CountPrices(ctx context.Context) (int64, error) {
	return p.countRows(ctx, "prices")
}

// --- bookings ---

func (p *Postgres) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	rows, err := p.exec.QueryContext(ctx,
		`SELECT booking_id FROM bookings ORDER BY booking_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	ids, err := collectIDs(rows)
	if err != nil {
		return nil, err
	}

	bookings := make([]*model.Booking, 0, len(ids))
	for _, id := range ids {
		booking, err := p.GetBooking(ctx, id)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (p *Postgres) GetBooking(ctx context.Context, id int64) (*model.Booking, error) {
	var booking model.Booking
	var userID sql.NullInt64
	err := p.exec.QueryRowContext(ctx,
		`SELECT booking_id, booking_date, user_id FROM bookings WHERE booking_id = $1`, id).
		Scan(&booking.BookingID, &booking.BookingDate, &userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking %d: %w", id, err)
	}

	if userID.Valid {
		user, err := p.GetUser(ctx, userID.Int64)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		booking.User = user
	}

	booking.Flights = []*model.Flight{}
	rows, err := p.exec.QueryContext(ctx,
		`SELECT flight_id FROM booking_flight WHERE booking_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking flights: %w", err)
	}
	flightIDs, err := collectIDs(rows)
	if err != nil {
		return nil, err
	}
	for _, flightID := range flightIDs {
		flight, err := p.GetFlight(ctx, flightID)
		if err != nil {
			return nil, err
		}
		booking.Flights = append(booking.Flights, flight)
	}
	return &booking, nil
}

func (p *Postgres) SaveBooking(ctx context.Context, booking *model.Booking) error {
	var userID sql.NullInt64
	if booking.User != nil {
		userID = sql.NullInt64{Int64: booking.User.UserID, Valid: true}
	}

	_, err := p.exec.ExecContext(ctx, `
		INSERT INTO bookings (booking_id, booking_date, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (booking_id) DO UPDATE
		SET booking_date = EXCLUDED.booking_date, user_id = EXCLUDED.user_id`,
		booking.BookingID, booking.BookingDate, userID)
	if err != nil {
		return fmt.Errorf("failed to save booking %d: %w", booking.BookingID, err)
	}

	if _, err := p.exec.ExecContext(ctx,
		`DELETE FROM booking_flight WHERE booking_id = $1`, booking.BookingID); err != nil {
		return fmt.Errorf("failed to clear booking flights for %d: %w", booking.BookingID, err)
	}
	for i, flight := range booking.Flights {
		if _, err := p.exec.ExecContext(ctx, `
			INSERT INTO booking_flight (booking_id, flight_id, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (booking_id, flight_id) DO UPDATE SET position = EXCLUDED.position`,
			booking.BookingID, flight.FlightID, i); err != nil {
			return fmt.Errorf("failed to link flight %d to booking %d: %w",
				flight.FlightID, booking.BookingID, err)
		}
	}
	return nil
}

func (p *Postgres) DeleteBooking(ctx context.Context, id int64) error {
	// Passengers and booking_flight rows go with the booking via ON DELETE
	// CASCADE; flights and prices are shared and stay.
	return p.deleteByID(ctx, "bookings", "booking_id", id)
}

func (p *Postgres) BookingExists(ctx context.Context, id int64) (bool, error) {
	return p.existsByID(ctx, "bookings", "booking_id", id)
}

func (p *Postgres) CountBookings(ctx context.Context) (int64, error) {
	return p.countRows(ctx, "bookings")
}

// --- passengers ---

func (p *Postgres) ListPassengers(ctx context.Context) ([]*model.Passenger, error) {
	rows, err := p.exec.QueryContext(ctx, `
		SELECT passenger_id, booking_id, first_name, last_name, date_of_birth, passport_number
		FROM passengers ORDER BY passenger_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list passengers: %w", err)
	}
	defer rows.Close()

	var passengers []*model.Passenger
	for rows.Next() {
		var pa model.Passenger
		if err := rows.Scan(&pa.PassengerID, &pa.BookingID, &pa.FirstName,
			&pa.LastName, &pa.DateOfBirth, &pa.PassportNumber); err != nil {
			return nil, fmt.Errorf("failed to scan passenger: %w", err)
		}
		passengers = append(passengers, &pa)
	}
	return passengers, rows.Err()
}

func (p *Postgres) GetPassenger(ctx context.Context, id int64) (*model.Passenger, error) {
	var pa model.Passenger
	err := p.exec.QueryRowContext(ctx, `
		SELECT passenger_id, booking_id, first_name, last_name, date_of_birth, passport_number
		FROM passengers WHERE passenger_id = $1`, id).
		Scan(&pa.PassengerID, &pa.BookingID, &pa.FirstName, &pa.LastName,
			&pa.DateOfBirth, &pa.PassportNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get passenger %d: %w", id, err)
	}
	return &pa, nil
}

func (p *Postgres) SavePassenger(ctx context.Context, passenger *model.Passenger) error {
	_, err := p.exec.ExecContext(ctx, `
		INSERT INTO passengers (passenger_id, booking_id, first_name, last_name,
		                        date_of_birth, passport_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (passenger_id) DO UPDATE
		SET booking_id = EXCLUDED.booking_id, first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name, date_of_birth = EXCLUDED.date_of_birth,
		    passport_number = EXCLUDED.passport_number`,
		passenger.PassengerID, passenger.BookingID, passenger.FirstName,
		passenger.LastName, passenger.DateOfBirth, passenger.PassportNumber)
	if err != nil {
		return fmt.Errorf("failed to save passenger %d: %w", passenger.PassengerID, err)
	}
	return nil
}

func (p *Postgres) DeletePassenger(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "passengers", "passenger_id", id)
}

// --- users ---

const userSelect = `
	SELECT user_id, email, phone, password_hash, first_name, last_name, role, created_at
	FROM users`

func (p *Postgres) ListUsers(ctx context.Context) ([]*model.User, error) {
	rows, err := p.exec.QueryContext(ctx, userSelect+` ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Email, &u.Phone, &u.Password,
			&u.FirstName, &u.LastName, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (p *Postgres) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return p.getUser(ctx, userSelect+` WHERE user_id = $1`, id)
}

func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return p.getUser(ctx, userSelect+` WHERE lower(email) = lower($1)`, email)
}

func (p *Postgres) getUser(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := p.exec.QueryRowContext(ctx, query, arg).
		Scan(&u.UserID, &u.Email, &u.Phone, &u.Password,
			&u.FirstName, &u.LastName, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (p *Postgres) SaveUser(ctx context.Context, user *model.User) error {
	_, err := p.exec.ExecContext(ctx, `
		INSERT INTO users (user_id, email, phone, password_hash, first_name,
		                   last_name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE
		SET email = EXCLUDED.email, phone = EXCLUDED.phone,
		    password_hash = EXCLUDED.password_hash,
		    first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
		    role = EXCLUDED.role`,
		user.UserID, user.Email, user.Phone, user.Password,
		user.FirstName, user.LastName, user.Role, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save user %d: %w", user.UserID, err)
	}
	return nil
}

func (p *Postgres) DeleteUser(ctx context.Context, id int64) error {
	// Bookings cascade on user deletion, and passengers cascade with them.
	return p.deleteByID(ctx, "users", "user_id", id)
}

// --- feedback ---

func (p *Postgres) ListFeedback(ctx context.Context) ([]*model.Feedback, error) {
	rows, err := p.exec.QueryContext(ctx, `
		SELECT feedback_id, user_id, rating, comment, created_at
		FROM feedback ORDER BY feedback_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var feedback []*model.Feedback
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.FeedbackID, &f.UserID, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		feedback = append(feedback, &f)
	}
	return feedback, rows.Err()
}

func (p *Postgres) GetFeedback(ctx context.Context, id int64) (*model.Feedback, error) {
	var f model.Feedback
	err := p.exec.QueryRowContext(ctx, `
		SELECT feedback_id, user_id, rating, comment, created_at
		FROM feedback WHERE feedback_id = $1`, id).
		Scan(&f.FeedbackID, &f.UserID, &f.Rating, &f.Comment, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback %d: %w", id, err)
	}
	return &f, nil
}

func (p *Postgres) SaveFeedback(ctx context.Context, feedback *model.Feedback) error {
	_, err := p.exec.ExecContext(ctx, `
		INSERT INTO feedback (feedback_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (feedback_id) DO UPDATE
		SET rating = EXCLUDED.rating, comment = EXCLUDED.comment`,
		feedback.FeedbackID, feedback.UserID, feedback.Rating,
		feedback.Comment, feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save feedback %d: %w", feedback.FeedbackID, err)
	}
	return nil
}

func (p *Postgres) DeleteFeedback(ctx context.Context, id int64) error {
	return p.deleteByID(ctx, "feedback", "feedback_id", id)
}

// --- helpers ---

func (p *Postgres) deleteByID(ctx context.Context, table, column string, id int64) error {
	res, err := p.exec.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, column), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) existsByID(ctx context.Context, table, column string, id int64) (bool, error) {
	var exists bool
	err := p.exec.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, column), id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return exists, nil
}

func (p *Postgres) countRows(ctx context.Context, table string) (int64, error) {
	var count int64
	err := p.exec.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

func collectIDs(rows *sql.Rows) ([]int64, error) {
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
