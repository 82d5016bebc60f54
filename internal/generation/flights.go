package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/dharmasatrya/tripplanner/internal/models"
)

const flightTemperature = 0.7

// FlightGenerator builds flight search prompts and parses the generated
// results.
type FlightGenerator struct {
	gen   TextGenerator
	model string
}

func NewFlightGenerator(gen TextGenerator, model string) *FlightGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &FlightGenerator{gen: gen, model: model}
}

func (g *FlightGenerator) Name() string {
	return "flights"
}

func (g *FlightGenerator) Search(ctx context.Context, input models.FlightSearchInput) (*models.FlightData, error) {
	raw, err := g.gen.Generate(ctx, Request{
		Model:       g.model,
		Prompt:      buildFlightPrompt(input),
		Schema:      flightResponseSchema(),
		Temperature: flightTemperature,
	})
	if err != nil {
		return nil, NewTransportError(g.Name(), err)
	}

	data, err := parseFlightData(raw)
	if err != nil {
		return nil, NewSchemaError(g.Name(), err)
	}

	return data, nil
}

func buildFlightPrompt(input models.FlightSearchInput) string {
	ages := make([]string, len(input.Travelers))
	for i, t := range input.Travelers {
		ages[i] = fmt.Sprintf("%d years old", t.Age)
	}

	returnInfo := "one-way trip"
	if !input.OneWay() {
		returnInfo = "returning on " + *input.ReturnDate
	}

	directInfo := "Include flights with stops."
	if input.DirectOnly {
		directInfo = "Only show direct flights."
	}

	return fmt.Sprintf(`You are a flight search API. Generate a realistic but fictional list of flight options based on the following criteria.
Ensure the data is varied and plausible for a real-world scenario.
Return the data in the exact JSON format specified by the schema.

Search Criteria:
- From: %s
- To: %s
- Departure Date: %s
- Return Date: %s
- Travelers: %d (%s)
- Cabin Class: %s
- Currency: %s
- %s

Mandatory Instructions:
1. Generate between 5 and 10 flight results.
2. Prices should be realistic for the specified route, cabin class, number of travelers, and currency (%s).
3. Flight numbers and times should be plausible.
4. Provide helpful and relevant AI suggestions, including 2 alternative dates, 2 nearby airports (if applicable), and a concise price trend analysis.
5. The 'bookingUrl' should be a fake but valid-looking URL to the airline's website.
6. The 'airlineLogoUrl' should use the format 'https://logo.clearbit.com/{lowercase_airline_name}.com', for example 'https://logo.clearbit.com/emirates.com'.`,
		input.From,
		input.To,
		input.DepartureDate,
		returnInfo,
		len(input.Travelers),
		strings.Join(ages, ", "),
		input.CabinClass,
		input.Currency,
		directInfo,
		input.Currency,
	)
}

func flightResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"results": {
				Type:        genai.TypeArray,
				Description: "A list of flight search results.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"airline":        {Type: genai.TypeString, Description: "Airline name, e.g., 'Emirates', 'Lufthansa'."},
						"flightNumber":   {Type: genai.TypeString, Description: "Flight number, e.g., 'EK856'."},
						"departure":      {Type: genai.TypeString, Description: "Departure date and time in ISO 8601 format."},
						"arrival":        {Type: genai.TypeString, Description: "Arrival date and time in ISO 8601 format."},
						"stops":          {Type: genai.TypeInteger, Description: "Number of stops. 0 for direct."},
						"duration":       {Type: genai.TypeString, Description: "Total flight duration, e.g., '2h 15m'."},
						"price":          {Type: genai.TypeNumber, Description: "Total price for all travelers."},
						"currency":       {Type: genai.TypeString, Description: "Currency code, e.g., 'USD', 'EUR'."},
						"bookingUrl":     {Type: genai.TypeString, Description: "A plausible but fake booking URL."},
						"airlineLogoUrl": {Type: genai.TypeString, Description: "A URL to a plausible airline logo image. Use `https://logo.clearbit.com/{airlinename}.com`"},
					},
					Required: []string{"airline", "flightNumber", "departure", "arrival", "stops", "duration", "price", "currency", "bookingUrl", "airlineLogoUrl"},
				},
			},
			"aiSuggestions": {
				Type:        genai.TypeObject,
				Description: "AI-powered suggestions to help the user find better deals.",
				Properties: map[string]*genai.Schema{
					"alternativeDates": {
						Type:        genai.TypeArray,
						Description: "A list of nearby dates that might have cheaper fares.",
						Items:       &genai.Schema{Type: genai.TypeString},
					},
					"nearbyAirports": {
						Type:        genai.TypeArray,
						Description: "A list of nearby airport codes that might be cheaper.",
						Items:       &genai.Schema{Type: genai.TypeString},
					},
					"priceTrend": {
						Type:        genai.TypeString,
						Description: "A short, insightful tip about price trends for this route.",
					},
				},
				Required: []string{"alternativeDates", "nearbyAirports", "priceTrend"},
			},
		},
		Required: []string{"results", "aiSuggestions"},
	}
}

func parseFlightData(raw string) (*models.FlightData, error) {
	var data models.FlightData
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if n := len(data.Results); n < minResults || n > maxResults {
		return nil, fmt.Errorf("expected between %d and %d results, got %d", minResults, maxResults, n)
	}

	return &data, nil
}
