package model

import (
	"errors"
	"time"
)

type FlightStatus string

const (
	StatusScheduled FlightStatus = "SCHEDULED"
	StatusDelayed   FlightStatus = "DELAYED"
	StatusCancelled FlightStatus = "CANCELLED"
)

func (s FlightStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusDelayed, StatusCancelled:
		return true
	}
	return false
}

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Airport is immutable reference data; identity is the IATA code.
type Airport struct {
	AirportID int64  `json:"airportId"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

type Airline struct {
	AirlineID int64  `json:"airlineId"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Country   string `json:"country"`
	LogoURL   string `json:"logoUrl"`
}

type Flight struct {
	FlightID          int64        `json:"flightId"`
	Airline           *Airline     `json:"airline"`
	FlightNumber      string       `json:"flightNumber"`
	DepartureAirport  *Airport     `json:"departureAirport"`
	ArrivalAirport    *Airport     `json:"arrivalAirport"`
	DepartureTime     time.Time    `json:"departureTime"`
	ArrivalTime       time.Time    `json:"arrivalTime"`
	RoundTripEligible bool         `json:"isRoundTripEligible"`
	Status            FlightStatus `json:"status"`
	ExtraFeatures     string       `json:"extraFeatures"`
	AvailableClasses  string       `json:"availableClasses"`

	Prices []*Price `json:"prices"`
	// Bookings is the inverse side of the booking_flight relation and is kept
	// out of the JSON payload to avoid reference cycles.
	Bookings []*Booking `json:"-"`
}

// Validate checks the structural invariants of a flight record.
func (f *Flight) Validate() error {
	if f.Airline == nil {
		return errors.New("flight requires an airline")
	}
	if f.DepartureAirport == nil || f.ArrivalAirport == nil {
		return errors.New("flight requires departure and arrival airports")
	}
	if f.DepartureAirport.Code == f.ArrivalAirport.Code {
		return errors.New("departure and arrival airports must differ")
	}
	if !f.ArrivalTime.After(f.DepartureTime) {
		return errors.New("arrival time must be after departure time")
	}
	if !f.Status.Valid() {
		return errors.New("unknown flight status: " + string(f.Status))
	}
	return nil
}

type Price struct {
	PriceID   int64   `json:"priceId"`
	ClassType string  `json:"classType"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Provider  string  `json:"provider"`

	// Flights is the inverse side of the flight_price relation.
	Flights []*Flight `json:"-"`
}

type Booking struct {
	BookingID   int64     `json:"bookingId"`
	BookingDate time.Time `json:"bookingDate"`
	User        *User     `json:"user,omitempty"`
	Flights     []*Flight `json:"flights"`
}

type Passenger struct {
	PassengerID    int64  `json:"passengerId"`
	BookingID      int64  `json:"bookingId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	PassportNumber string `json:"passportNumber"`
}

type User struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Feedback struct {
	FeedbackID int64     `json:"feedbackId"`
	UserID     int64     `json:"userId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate rejects ratings outside the 1-5 range.
func (f *Feedback) Validate() error {
	if f.Rating < 1 || f.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}
