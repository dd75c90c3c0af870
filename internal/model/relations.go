package model

// The flight/price and booking/flight relations are many-to-many with no
// single owner, so both collection ends must stay symmetric. The helpers
// below update both sides in one call; callers never touch the slices
// directly when linking or unlinking.

// LinkFlightPrice registers p on f and f on p. Linking twice is a no-op.
func LinkFlightPrice(f *Flight, p *Price) {
	if f == nil || p == nil {
		return
	}
	if !priceLinked(f, p) {
		f.Prices = append(f.Prices, p)
	}
	if !flightListed(p.Flights, f) {
		p.Flights = append(p.Flights, f)
	}
}

// UnlinkFlightPrice removes the association from both sides. Other flights
// sharing the price keep their link.
func UnlinkFlightPrice(f *Flight, p *Price) {
	if f == nil || p == nil {
		return
	}
	f.Prices = removePrice(f.Prices, p)
	p.Flights = removeFlight(p.Flights, f)
}

// LinkBookingFlight registers f on b and b on f. Linking twice is a no-op.
func LinkBookingFlight(b *Booking, f *Flight) {
	if b == nil || f == nil {
		return
	}
	if !flightListed(b.Flights, f) {
		b.Flights = append(b.Flights, f)
	}
	if !bookingLinked(f, b) {
		f.Bookings = append(f.Bookings, b)
	}
}

// UnlinkBookingFlight removes the association from both sides. The flight
// itself is shared reference data and is never deleted here.
func UnlinkBookingFlight(b *Booking, f *Flight) {
	if b == nil || f == nil {
		return
	}
	b.Flights = removeFlight(b.Flights, f)
	f.Bookings = removeBooking(f.Bookings, b)
}

func priceLinked(f *Flight, p *Price) bool {
	for _, existing := range f.Prices {
		if existing == p {
			return true
		}
	}
	return false
}

func flightListed(flights []*Flight, f *Flight) bool {
	for _, existing := range flights {
		if existing == f {
			return true
		}
	}
	return false
}

func bookingLinked(f *Flight, b *Booking) bool {
	for _, existing := range f.Bookings {
		if existing == b {
			return true
		}
	}
	return false
}

func removePrice(prices []*Price, p *Price) []*Price {
	out := prices[:0]
	for _, existing := range prices {
		if existing != p {
			out = append(out, existing)
		}
	}
	return out
}

func removeFlight(flights []*Flight, f *Flight) []*Flight {
	out := flights[:0]
	for _, existing := range flights {
		if existing != f {
			out = append(out, existing)
		}
	}
	return out
}

func removeBooking(bookings []*Booking, b *Booking) []*Booking {
	out := bookings[:0]
	for _, existing := range bookings {
		if existing != b {
			out = append(out, existing)
		}
	}
	return out
}
