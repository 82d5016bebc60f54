package models

// Room describes the occupancy of one requested hotel room.
type Room struct {
	Adults   int `json:"adults" validate:"gte=0"`
	Children int `json:"children" validate:"gte=0"`
}

// HotelSearchInput carries the hotel criteria collected by the search form.
// Empty Stars and Amenities slices mean no filter.
type HotelSearchInput struct {
	City         string   `json:"city" validate:"required"`
	CheckInDate  string   `json:"checkInDate" validate:"required,datetime=2006-01-02"`
	CheckOutDate string   `json:"checkOutDate" validate:"required,datetime=2006-01-02"`
	Rooms        []Room   `json:"rooms" validate:"min=1,dive"`
	Stars        []int    `json:"stars" validate:"dive,gte=1,lte=5"`
	Amenities    []string `json:"amenities" validate:"dive,required"`
	Currency     string   `json:"currency" validate:"required,iso4217"`
}

// HotelResult is one generated hotel option. The json names are the wire
// contract with the generation service and must not change.
type HotelResult struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Stars         int      `json:"stars"`
	Amenities     []string `json:"amenities"`
	RoomType      string   `json:"roomType"`
	PricePerNight float64  `json:"pricePerNight"`
	TotalPrice    float64  `json:"totalPrice"`
	Currency      string   `json:"currency"`
	BookingURL    string   `json:"bookingUrl"`
	ImageURL      string   `json:"imageUrl"`

	// PriceDisplay is filled in by the API layer, never by the generator.
	PriceDisplay string `json:"priceDisplay,omitempty"`
}

// SameHotel reports whether two results refer to the same hotel for selection
// purposes, keyed on the (name, address) pair.
func (h HotelResult) SameHotel(other HotelResult) bool {
	return h.Name == other.Name && h.Address == other.Address
}

// HotelAiSuggestions are the advisory extras returned alongside hotel results.
type HotelAiSuggestions struct {
	AlternativeHotels []string `json:"alternativeHotels"`
	PriceAlert        string   `json:"priceAlert"`
}

// HotelData is the complete payload of one hotel generation call.
type HotelData struct {
	Results       []HotelResult      `json:"results"`
	AiSuggestions HotelAiSuggestions `json:"aiSuggestions"`
}
