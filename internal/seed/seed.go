package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"flightbooking/internal/model"
	"flightbooking/internal/store"
	"flightbooking/pkg/idgen"
	"flightbooking/pkg/logger"
)

// Initializer loads reference data into an empty store on boot. Every step is
// idempotent: records are matched by their natural key (airport code, airline
// code, email, amount+provider) and skipped when already present, so restarts
// never duplicate rows.
type Initializer struct {
	store  store.Store
	ids    idgen.Generator
	logger logger.Client
}

func NewInitializer(s store.Store, ids idgen.Generator, log logger.Client) *Initializer {
	return &Initializer{store: s, ids: ids, logger: log}
}

func (i *Initializer) Run(ctx context.Context) error {
	users, err := i.seedUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	airlines, err := i.seedAirlines(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed airlines: %w", err)
	}
	airports, err := i.seedAirports(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed airports: %w", err)
	}
	prices, err := i.seedPrices(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed prices: %w", err)
	}
	if err := i.seedFlights(ctx, airlines, airports, prices); err != nil {
		return fmt.Errorf("failed to seed flights: %w", err)
	}
	if err := i.seedFeedback(ctx, users); err != nil {
		return fmt.Errorf("failed to seed feedback: %w", err)
	}
	i.logger.Info("seed data loaded")
	return nil
}

type userSeed struct {
	email     string
	password  string
	phone     string
	firstName string
	lastName  string
	role      model.Role
}

func (i *Initializer) seedUsers(ctx context.Context) ([]*model.User, error) {
	seeds := []userSeed{
		{"chuck@gmail.com", "Nunchucks2024", "+4799887766", "Chuck", "Norris", model.RoleAdmin},
		{"dave@gmail.com", "Dangerous2024", "+4798765432", "Dave", "Norman", model.RoleUser},
		{"johndoe@hotmail.com", "johniscool11", "+4798765222", "John", "Doe", model.RoleUser},
		{"bob.n@yahoo.com", "qwerty123", "+4798674221", "Bob", "Normann", model.RoleUser},
		{"sarah.nypd@gmail.com", "BrooklynNine9", "+189067534", "Sarah", "Nydalen", model.RoleUser},
	}

	existing, err := i.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	byEmail := make(map[string]*model.User, len(existing))
	for _, u := range existing {
		byEmail[strings.ToLower(u.Email)] = u
	}

	users := make([]*model.User, 0, len(seeds))
	for _, s := range seeds {
		if u, ok := byEmail[strings.ToLower(s.email)]; ok {
			users = append(users, u)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u := &model.User{
			UserID:    i.ids.NextID(),
			Email:     s.email,
			Phone:     s.phone,
			Password:  string(hash),
			FirstName: s.firstName,
			LastName:  s.lastName,
			Role:      s.role,
			CreatedAt: time.Now().UTC(),
		}
		if err := i.store.SaveUser(ctx, u); err != nil {
			return nil, err
		}
		i.logger.Info("seeded user", logger.Field{Key: "email", Value: s.email})
		users = append(users, u)
	}
	return users, nil
}

func (i *Initializer) seedAirlines(ctx context.Context) (map[string]*model.Airline, error) {
	seeds := []model.Airline{
		{Name: "Delta Airlines", Code: "DL", Country: "United States", LogoURL: "delta"},
		{Name: "Norwegian Air Shuttle", Code: "DY", Country: "Norway", LogoURL: "norwegian"},
		{Name: "KLM Royal Dutch Airlines", Code: "KL", Country: "Netherlands", LogoURL: "klm"},
		{Name: "British Airways", Code: "BA", Country: "United Kingdom", LogoURL: "british_airways"},
		{Name: "Swiss International Air Lines", Code: "LX", Country: "Switzerland", LogoURL: "swiss"},
		{Name: "ITA Airways", Code: "AZ", Country: "Italy", LogoURL: "ita_airways"},
		{Name: "American Airlines", Code: "AA", Country: "United States", LogoURL: "american_airlines"},
		{Name: "Lufthansa", Code: "LH", Country: "Germany", LogoURL: "lufthansa"},
		{Name: "Air France", Code: "AF", Country: "France", LogoURL: "air_france"},
		{Name: "Emirates", Code: "EK", Country: "United Arab Emirates", LogoURL: "emirates"},
		{Name: "Qatar Airways", Code: "QR", Country: "Qatar", LogoURL: "qatar_airways"},
		{Name: "Singapore Airlines", Code: "SQ", Country: "Singapore", LogoURL: "singapore_airlines"},
		{Name: "Turkish Airlines", Code: "TK", Country: "Turkey", LogoURL: "turkish_airlines"},
		{Name: "United Airlines", Code: "UA", Country: "United States", LogoURL: "united_airlines"},
	}

	existing, err := i.store.ListAirlines(ctx)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]*model.Airline, len(existing))
	for _, a := range existing {
		byCode[a.Code] = a
	}

	for _, s := range seeds {
		if _, ok := byCode[s.Code]; ok {
			continue
		}
		airline := s
		airline.AirlineID = i.ids.NextID()
		if err := i.store.SaveAirline(ctx, &airline); err != nil {
			return nil, err
		}
		byCode[airline.Code] = &airline
	}
	return byCode, nil
}

func (i *Initializer) seedAirports(ctx context.Context) (map[string]*model.Airport, error) {
	seeds := []model.Airport{
		{Name: "John F. Kennedy International Airport", Code: "JFK", City: "New York", Country: "United States"},
		{Name: "Los Angeles International Airport", Code: "LAX", City: "Los Angeles", Country: "United States"},
		{Name: "Oslo Gardermoen Airport", Code: "OSL", City: "Oslo", Country: "Norway"},
		{Name: "Ålesund Airport", Code: "AES", City: "Ålesund", Country: "Norway"},
		{Name: "Amsterdam Schiphol Airport", Code: "AMS", City: "Amsterdam", Country: "Netherlands"},
		{Name: "London Heathrow Airport", Code: "LHR", City: "London", Country: "United Kingdom"},
		{Name: "Zurich Airport", Code: "ZRH", City: "Zurich", Country: "Switzerland"},
		{Name: "Leonardo da Vinci-Fiumicino Airport", Code: "FCO", City: "Rome", Country: "Italy"},
		{Name: "Charles de Gaulle Airport", Code: "CDG", City: "Paris", Country: "France"},
		{Name: "Dallas/Fort Worth International Airport", Code: "DFW", City: "Dallas", Country: "United States"},
		{Name: "O'Hare International Airport", Code: "ORD", City: "Chicago", Country: "United States"},
		{Name: "Frankfurt Airport", Code: "FRA", City: "Frankfurt", Country: "Germany"},
		{Name: "Haneda Airport", Code: "HND", City: "Tokyo", Country: "Japan"},
		{Name: "Dubai International Airport", Code: "DXB", City: "Dubai", Country: "United Arab Emirates"},
		{Name: "Hamad International Airport", Code: "DOH", City: "Doha", Country: "Qatar"},
		{Name: "Sydney Kingsford Smith Airport", Code: "SYD", City: "Sydney", Country: "Australia"},
		{Name: "Singapore Changi Airport", Code: "SIN", City: "Singapore", Country: "Singapore"},
	}

	existing, err := i.store.ListAirports(ctx)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]*model.Airport, len(existing))
	for _, a := range existing {
		byCode[a.Code] = a
	}

	for _, s := range seeds {
		if _, ok := byCode[s.Code]; ok {
			continue
		}
		airport := s
		airport.AirportID = i.ids.NextID()
		if err := i.store.SaveAirport(ctx, &airport); err != nil {
			return nil, err
		}
		byCode[airport.Code] = &airport
	}
	return byCode, nil
}

type priceKey struct {
	amount   float64
	provider string
}

func (i *Initializer) seedPrices(ctx context.Context) (map[priceKey]*model.Price, error) {
	seeds := []model.Price{
		{ClassType: "Economy", Amount: 150, Provider: "SkyScanner", Currency: "USD"},
		{ClassType: "Economy", Amount: 175, Provider: "Expedia", Currency: "USD"},
		{ClassType: "Economy Flex", Amount: 1200, Provider: "Momondo", Currency: "NOK"},
		{ClassType: "Economy Flex", Amount: 1400, Provider: "Kayak", Currency: "NOK"},
		{ClassType: "Economy", Amount: 90, Provider: "Orbitz", Currency: "EUR"},
		{ClassType: "Economy", Amount: 110, Provider: "CheapOair", Currency: "EUR"},
		{ClassType: "Premium Economy", Amount: 350, Provider: "OneTravel", Currency: "GBP"},
		{ClassType: "Premium Economy", Amount: 400, Provider: "Travelocity", Currency: "GBP"},
		{ClassType: "Economy", Amount: 120, Provider: "Google Flights", Currency: "EUR"},
		{ClassType: "Economy", Amount: 140, Provider: "JustFly", Currency: "EUR"},
		{ClassType: "Main Cabin", Amount: 300, Provider: "American Airlines Website", Currency: "USD"},
		{ClassType: "Main Cabin", Amount: 320, Provider: "Orbitz", Currency: "USD"},
		{ClassType: "Economy", Amount: 450, Provider: "Lufthansa Website", Currency: "EUR"},
		{ClassType: "Economy", Amount: 470, Provider: "Kayak", Currency: "EUR"},
		{ClassType: "Economy", Amount: 800, Provider: "Air France Website", Currency: "EUR"},
		{ClassType: "Economy", Amount: 820, Provider: "Expedia", Currency: "EUR"},
		{ClassType: "Economy", Amount: 1000, Provider: "Emirates Website", Currency: "USD"},
		{ClassType: "Economy", Amount: 1025, Provider: "SkyScanner", Currency: "USD"},
		{ClassType: "Economy", Amount: 1500, Provider: "Qatar Airways Website", Currency: "USD"},
		{ClassType: "Economy", Amount: 1520, Provider: "CheapOair", Currency: "USD"},
		{ClassType: "Economy", Amount: 2000, Provider: "Singapore Airlines Website", Currency: "USD"},
		{ClassType: "Economy", Amount: 2050, Provider: "Google Flights", Currency: "SGD"},
	}

	existing, err := i.store.ListPrices(ctx)
	if err != nil {
		return nil, err
	}
	byKey := make(map[priceKey]*model.Price, len(existing))
	for _, p := range existing {
		byKey[priceKey{p.Amount, p.Provider}] = p
	}

	for _, s := range seeds {
		key := priceKey{s.Amount, s.Provider}
		if _, ok := byKey[key]; ok {
			continue
		}
		price := s
		price.PriceID = i.ids.NextID()
		if err := i.store.SavePrice(ctx, &price); err != nil {
			return nil, err
		}
		byKey[key] = &price
	}
	return byKey, nil
}

type flightSeed struct {
	number      string
	airline     string
	from, to    string
	departure   time.Time
	arrival     time.Time
	roundTrip   bool
	features    string
	classes     string
	priceAmount []float64
	priceProv   []string
}

func (i *Initializer) seedFlights(ctx context.Context, airlines map[string]*model.Airline,
	airports map[string]*model.Airport, prices map[priceKey]*model.Price) error {

	d := func(month time.Month, day, hour, min int) time.Time {
		return time.Date(2026, month, day, hour, min, 0, 0, time.UTC)
	}

	seeds := []flightSeed{
		{"DL425", "DL", "JFK", "LAX", d(time.August, 15, 8, 0), d(time.August, 15, 11, 30), false,
			"Complimentary Wi-Fi, Seat-back Screens, Free Snacks", "Economy",
			[]float64{150, 175}, []string{"SkyScanner", "Expedia"}},
		{"DY708", "DY", "OSL", "AES", d(time.September, 5, 9, 0), d(time.September, 5, 10, 0), true,
			"Free Breakfast, Seat Reservation, Fast Track", "Economy Flex",
			[]float64{1200, 1400}, []string{"Momondo", "Kayak"}},
		{"DY709", "DY", "AES", "OSL", d(time.September, 12, 11, 0), d(time.September, 12, 12, 0), true,
			"Free Breakfast, Seat Reservation, Fast Track", "Economy Flex",
			[]float64{1200, 1400}, []string{"Momondo", "Kayak"}},
		{"KL605", "KL", "AMS", "LHR", d(time.July, 21, 7, 0), d(time.July, 21, 8, 0), false,
			"In-flight Magazine, Complimentary Meals, Extra Legroom", "Economy, Business",
			[]float64{90, 110}, []string{"Orbitz", "CheapOair"}},
		{"BA116", "BA", "LHR", "JFK", d(time.October, 10, 10, 0), d(time.October, 10, 13, 0), true,
			"Lounge Access, Priority Boarding, Enhanced Entertainment System", "Premium Economy, Business",
			[]float64{350, 400}, []string{"OneTravel", "Travelocity"}},
		{"BA117", "BA", "JFK", "LHR", d(time.October, 17, 15, 0), d(time.October, 17, 18, 0), true,
			"Lounge Access, Priority Boarding, Enhanced Entertainment System", "Premium Economy, Business",
			[]float64{350, 400}, []string{"OneTravel", "Travelocity"}},
		{"AA220", "AA", "DFW", "ORD", d(time.June, 15, 7, 0), d(time.June, 15, 9, 30), true,
			"Wi-Fi, Extra legroom, Complimentary Snacks", "Main Cabin, Main Cabin Extra",
			[]float64{300, 320}, []string{"American Airlines Website", "Orbitz"}},
		{"AA221", "AA", "ORD", "DFW", d(time.June, 20, 10, 30), d(time.June, 20, 13, 0), true,
			"Wi-Fi, Extra legroom, Complimentary Snacks", "Main Cabin, Main Cabin Extra",
			[]float64{300, 320}, []string{"American Airlines Website", "Orbitz"}},
		{"LH445", "LH", "FRA", "JFK", d(time.July, 1, 8, 45), d(time.July, 1, 15, 0), false,
			"On-demand Video, Gourmet Meals, Lounge Access", "Economy, Premium Economy, Business",
			[]float64{450, 470}, []string{"Lufthansa Website", "Kayak"}},
		{"AF123", "AF", "CDG", "HND", d(time.May, 10, 10, 0), d(time.May, 10, 23, 30), true,
			"Michelin-starred Menus, Flat-bed Seats, Personal Coat Service", "Economy, Premium Economy, La Première",
			[]float64{800, 820}, []string{"Air France Website", "Expedia"}},
		{"AF124", "AF", "HND", "CDG", d(time.May, 24, 14, 0), d(time.May, 24, 19, 30), true,
			"Michelin-starred Menus, Flat-bed Seats, Personal Coat Service", "Economy, Premium Economy, La Première",
			[]float64{800, 820}, []string{"Air France Website", "Expedia"}},
		{"EK204", "EK", "DXB", "LHR", d(time.August, 15, 8, 0), d(time.August, 15, 12, 0), false,
			"Shower Spas, Onboard Lounge, Private Suites", "Economy, Business, First Class",
			[]float64{1000, 1025}, []string{"Emirates Website", "SkyScanner"}},
		{"QR905", "QR", "DOH", "SYD", d(time.September, 1, 2, 0), d(time.September, 1, 20, 0), true,
			"Award-winning Cuisine, 4000 Entertainment Options, Fully Lie-flat Beds", "Economy, Business Class, Qsuite",
			[]float64{1500, 1520}, []string{"Qatar Airways Website", "CheapOair"}},
		{"QR906", "QR", "SYD", "DOH", d(time.September, 15, 6, 0), d(time.September, 15, 14, 0), true,
			"Award-winning Cuisine, 4000 Entertainment Options, Fully Lie-flat Beds", "Economy, Business Class, Qsuite",
			[]float64{1500, 1520}, []string{"Qatar Airways Website", "CheapOair"}},
		{"SQ26", "SQ", "SIN", "JFK", d(time.October, 20, 9, 0), d(time.October, 20, 21, 0), true,
			"Book the Cook Service, Standalone Beds, Givenchy Amenities", "Economy, Premium Economy, Suites",
			[]float64{2000, 2050}, []string{"Singapore Airlines Website", "Google Flights"}},
		{"SQ27", "SQ", "JFK", "SIN", d(time.October, 30, 11, 0), d(time.October, 30, 23, 0), true,
			"Book the Cook Service, Standalone Beds, Givenchy Amenities", "Economy, Premium Economy, Suites",
			[]float64{2000, 2050}, []string{"Singapore Airlines Website", "Google Flights"}},
	}

	existing, err := i.store.ListFlights(ctx)
	if err != nil {
		return err
	}
	byNumber := make(map[string]bool, len(existing))
	for _, f := range existing {
		byNumber[f.FlightNumber] = true
	}

	for _, s := range seeds {
		if byNumber[s.number] {
			continue
		}
		airline := airlines[s.airline]
		dep := airports[s.from]
		arr := airports[s.to]
		if airline == nil || dep == nil || arr == nil {
			i.logger.Warn("skipping flight seed with missing references",
				logger.Field{Key: "flight_number", Value: s.number})
			continue
		}

		flight := &model.Flight{
			FlightID:          i.ids.NextID(),
			Airline:           airline,
			FlightNumber:      s.number,
			DepartureAirport:  dep,
			ArrivalAirport:    arr,
			DepartureTime:     s.departure,
			ArrivalTime:       s.arrival,
			RoundTripEligible: s.roundTrip,
			Status:            model.StatusScheduled,
			ExtraFeatures:     s.features,
			AvailableClasses:  s.classes,
			Prices:            []*model.Price{},
		}
		for n := range s.priceAmount {
			if price, ok := prices[priceKey{s.priceAmount[n], s.priceProv[n]}]; ok {
				model.LinkFlightPrice(flight, price)
			}
		}
		if err := i.store.SaveFlight(ctx, flight); err != nil {
			return err
		}
	}
	return nil
}

func (i *Initializer) seedFeedback(ctx context.Context, users []*model.User) error {
	existing, err := i.store.ListFeedback(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 || len(users) < 5 {
		return nil
	}

	comments := []struct {
		user    *model.User
		rating  int
		comment string
	}{
		{users[1], 5, "Great experience! Easy to use and book flights."},
		{users[2], 4, "Good service, but could improve."},
		{users[3], 3, "Average experience. Nothing special, but okay."},
		{users[4], 2, "Not satisfied with the service."},
	}

	for _, c := range comments {
		feedback := &model.Feedback{
			FeedbackID: i.ids.NextID(),
			UserID:     c.user.UserID,
			Rating:     c.rating,
			Comment:    c.comment,
			CreatedAt:  time.Now().UTC(),
		}
		if err := i.store.SaveFeedback(ctx, feedback); err != nil {
			return err
		}
	}
	return nil
}
