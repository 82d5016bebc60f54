package models

// Traveler is a single passenger on the flight search. Only the age matters
// for pricing.
type Traveler struct {
	Age int `json:"age" validate:"gte=0,lte=120"`
}

// FlightSearchInput carries the flight criteria collected by the search form.
// A nil or empty ReturnDate means a one-way trip.
type FlightSearchInput struct {
	From          string     `json:"from" validate:"required"`
	To            string     `json:"to" validate:"required"`
	DepartureDate string     `json:"departureDate" validate:"required,datetime=2006-01-02"`
	ReturnDate    *string    `json:"returnDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Travelers     []Traveler `json:"travelers" validate:"min=1,dive"`
	CabinClass    string     `json:"cabinClass" validate:"required,oneof='Economy' 'Premium Economy' 'Business' 'First'"`
	DirectOnly    bool       `json:"directOnly"`
	Currency      string     `json:"currency" validate:"required,iso4217"`
}

// OneWay reports whether the input describes a one-way trip.
func (in FlightSearchInput) OneWay() bool {
	return in.ReturnDate == nil || *in.ReturnDate == ""
}

// FlightResult is one generated flight option. The json names are the wire
// contract with the generation service and must not change.
type FlightResult struct {
	Airline        string  `json:"airline"`
	FlightNumber   string  `json:"flightNumber"`
	Departure      string  `json:"departure"`
	Arrival        string  `json:"arrival"`
	Stops          int     `json:"stops"`
	Duration       string  `json:"duration"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	BookingURL     string  `json:"bookingUrl"`
	AirlineLogoURL string  `json:"airlineLogoUrl"`

	// PriceDisplay is filled in by the API layer, never by the generator.
	PriceDisplay string `json:"priceDisplay,omitempty"`
}

// SameFlight reports whether two results refer to the same flight for
// selection purposes. The generator does not mint stable IDs, so the
// (flightNumber, departure) pair is the identity key.
func (f FlightResult) SameFlight(other FlightResult) bool {
	return f.FlightNumber == other.FlightNumber && f.Departure == other.Departure
}

// AiSuggestions are the advisory extras returned alongside flight results.
type AiSuggestions struct {
	AlternativeDates []string `json:"alternativeDates"`
	NearbyAirports   []string `json:"nearbyAirports"`
	PriceTrend       string   `json:"priceTrend"`
}

// FlightData is the complete payload of one flight generation call.
type FlightData struct {
	Results       []FlightResult `json:"results"`
	AiSuggestions AiSuggestions  `json:"aiSuggestions"`
}
