package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"github.com/dharmasatrya/tripplanner/internal/models"
)

const hotelTemperature = 0.8

// HotelGenerator builds hotel search prompts and parses the generated
// results. randInt supplies the image cache-buster and defaults to the global
// math/rand source; tests inject a deterministic one.
type HotelGenerator struct {
	gen     TextGenerator
	model   string
	randInt func(n int) int
}

func NewHotelGenerator(gen TextGenerator, model string) *HotelGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &HotelGenerator{
		gen:     gen,
		model:   model,
		randInt: rand.Intn,
	}
}

func (g *HotelGenerator) Name() string {
	return "hotels"
}

func (g *HotelGenerator) Search(ctx context.Context, input models.HotelSearchInput) (*models.HotelData, error) {
	raw, err := g.gen.Generate(ctx, Request{
		Model:       g.model,
		Prompt:      buildHotelPrompt(input),
		Schema:      hotelResponseSchema(),
		Temperature: hotelTemperature,
	})
	if err != nil {
		return nil, NewTransportError(g.Name(), err)
	}

	data, err := parseHotelData(raw)
	if err != nil {
		return nil, NewSchemaError(g.Name(), err)
	}

	// The model can't produce randomness, so the cache-busting seed on each
	// image URL is appended after parsing.
	city := normalizeCity(input.City)
	for i := range data.Results {
		data.Results[i].ImageURL = "https://place.hotellook.com/640/480/" + city + ".jpg?seed=" + strconv.Itoa(g.randInt(1000))
	}

	return data, nil
}

func buildHotelPrompt(input models.HotelSearchInput) string {
	roomDetails := make([]string, len(input.Rooms))
	for i, r := range input.Rooms {
		roomDetails[i] = fmt.Sprintf("Room %d: %d adults, %d children", i+1, r.Adults, r.Children)
	}

	starFilter := "No star rating filter."
	if len(input.Stars) > 0 {
		stars := make([]string, len(input.Stars))
		for i, s := range input.Stars {
			stars[i] = strconv.Itoa(s)
		}
		starFilter = fmt.Sprintf("Only show hotels with star ratings in [%s].", strings.Join(stars, ", "))
	}

	amenityFilter := "No specific amenities required."
	if len(input.Amenities) > 0 {
		amenityFilter = fmt.Sprintf("Must include amenities: %s.", strings.Join(input.Amenities, ", "))
	}

	return fmt.Sprintf(`You are a hotel booking API. Generate a realistic but fictional list of hotel options based on the following criteria.
Ensure the data is varied and plausible for a real-world scenario.
Return the data in the exact JSON format specified by the schema.

Search Criteria:
- City: %s
- Check-in Date: %s
- Check-out Date: %s
- Rooms & Guests: %d room(s) (%s)
- Filters:
  - %s
  - %s
- Currency: %s

Mandatory Instructions:
1. Generate between 5 and 10 hotel results that match the criteria.
2. Prices must be realistic for the specified city, dates, star rating, and currency (%s).
3. Calculate 'totalPrice' correctly based on 'pricePerNight', number of nights, and number of rooms.
4. Provide helpful AI suggestions, including 2 alternative hotels and a concise price alert.
5. The 'bookingUrl' should be a fake but valid-looking URL to a booking website.
6. The 'imageUrl' should use the format 'https://place.hotellook.com/640/480/%s.jpg' to get a relevant image.`,
		input.City,
		input.CheckInDate,
		input.CheckOutDate,
		len(input.Rooms),
		strings.Join(roomDetails, "; "),
		starFilter,
		amenityFilter,
		input.Currency,
		input.Currency,
		normalizeCity(input.City),
	)
}

func hotelResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"results": {
				Type:        genai.TypeArray,
				Description: "A list of hotel search results.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":          {Type: genai.TypeString, Description: "Hotel name, e.g., 'Grand Hyatt', 'Marriott'."},
						"address":       {Type: genai.TypeString, Description: "Full hotel address."},
						"stars":         {Type: genai.TypeInteger, Description: "Star rating from 1 to 5."},
						"amenities":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "List of key amenities available."},
						"roomType":      {Type: genai.TypeString, Description: "Type of room, e.g., 'Deluxe King', 'Standard Double'."},
						"pricePerNight": {Type: genai.TypeNumber, Description: "Price per night in the specified currency."},
						"totalPrice":    {Type: genai.TypeNumber, Description: "Total price for the entire stay for all rooms."},
						"currency":      {Type: genai.TypeString, Description: "Currency code, e.g., 'USD', 'EUR'."},
						"bookingUrl":    {Type: genai.TypeString, Description: "A plausible but fake booking URL."},
						"imageUrl":      {Type: genai.TypeString, Description: "A URL to a plausible hotel image."},
					},
					Required: []string{"name", "address", "stars", "amenities", "roomType", "pricePerNight", "totalPrice", "currency", "bookingUrl", "imageUrl"},
				},
			},
			"aiSuggestions": {
				Type:        genai.TypeObject,
				Description: "AI-powered suggestions for the hotel search.",
				Properties: map[string]*genai.Schema{
					"alternativeHotels": {
						Type:        genai.TypeArray,
						Description: "A list of alternative hotel names that might offer better value.",
						Items:       &genai.Schema{Type: genai.TypeString},
					},
					"priceAlert": {
						Type:        genai.TypeString,
						Description: "A short tip about price trends or booking advice for this city.",
					},
				},
				Required: []string{"alternativeHotels", "priceAlert"},
			},
		},
		Required: []string{"results", "aiSuggestions"},
	}
}

func parseHotelData(raw string) (*models.HotelData, error) {
	var data models.HotelData
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if n := len(data.Results); n < minResults || n > maxResults {
		return nil, fmt.Errorf("expected between %d and %d results, got %d", minResults, maxResults, n)
	}

	return &data, nil
}

// normalizeCity lowercases the city name and strips whitespace, commas and
// periods so it can be embedded in an image URL path segment.
func normalizeCity(city string) string {
	lowered := strings.ToLower(city)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', ',', '.':
			return -1
		}
		return r
	}, lowered)
}
