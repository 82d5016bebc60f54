package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dharmasatrya/tripplanner/internal/models"
)

type stubGenerator struct {
	response string
	err      error
	lastReq  Request
}

func (s *stubGenerator) Generate(_ context.Context, req Request) (string, error) {
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func flightJSON(t *testing.T, n int) string {
	t.Helper()

	data := models.FlightData{
		AiSuggestions: models.AiSuggestions{
			AlternativeDates: []string{"2025-12-09", "2025-12-11"},
			NearbyAirports:   []string{"SHJ", "AUH"},
			PriceTrend:       "Fares on this route tend to rise closer to departure.",
		},
	}
	for i := 0; i < n; i++ {
		data.Results = append(data.Results, models.FlightResult{
			Airline:        "Emirates",
			FlightNumber:   fmt.Sprintf("EK%03d", 850+i),
			Departure:      fmt.Sprintf("2025-12-10T%02d:15:00", 6+i),
			Arrival:        fmt.Sprintf("2025-12-10T%02d:30:00", 8+i),
			Stops:          i % 2,
			Duration:       "2h 15m",
			Price:          320.5 + float64(i)*10,
			Currency:       "KWD",
			BookingURL:     "https://www.emirates.com/book",
			AirlineLogoURL: "https://logo.clearbit.com/emirates.com",
		})
	}

	b, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(b)
}

func flightInput() models.FlightSearchInput {
	return models.FlightSearchInput{
		From:          "KWI",
		To:            "DXB",
		DepartureDate: "2025-12-10",
		Travelers:     []models.Traveler{{Age: 30}, {Age: 8}},
		CabinClass:    "Economy",
		Currency:      "KWD",
	}
}

func TestFlightSearch_ParsesGeneratedResults(t *testing.T) {
	stub := &stubGenerator{response: flightJSON(t, 6)}
	gen := NewFlightGenerator(stub, "")

	data, err := gen.Search(context.Background(), flightInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Results) != 6 {
		t.Fatalf("expected 6 results, got %d", len(data.Results))
	}
	if data.AiSuggestions.PriceTrend == "" {
		t.Fatal("expected aiSuggestions to be populated")
	}

	if stub.lastReq.Model != DefaultModel {
		t.Fatalf("expected default model, got %q", stub.lastReq.Model)
	}
	if stub.lastReq.Temperature != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", stub.lastReq.Temperature)
	}
	if stub.lastReq.Schema == nil {
		t.Fatal("expected a response schema on the request")
	}
}

func TestFlightSearch_TrimsSurroundingWhitespace(t *testing.T) {
	stub := &stubGenerator{response: "\n  " + flightJSON(t, 5) + "  \n"}
	gen := NewFlightGenerator(stub, "")

	if _, err := gen.Search(context.Background(), flightInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFlightPrompt_OneWayVersusReturn(t *testing.T) {
	input := flightInput()

	prompt := buildFlightPrompt(input)
	if !strings.Contains(prompt, "one-way trip") {
		t.Error("one-way input must produce the one-way clause")
	}
	if !strings.Contains(prompt, "Travelers: 2 (30 years old, 8 years old)") {
		t.Errorf("traveler clause missing from prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Include flights with stops.") {
		t.Error("expected the with-stops clause by default")
	}

	ret := "2025-12-15"
	input.ReturnDate = &ret
	input.DirectOnly = true
	prompt = buildFlightPrompt(input)
	if !strings.Contains(prompt, "returning on 2025-12-15") {
		t.Error("return date must produce the returning-on clause")
	}
	if strings.Contains(prompt, "one-way trip") {
		t.Error("round trip must not carry the one-way clause")
	}
	if !strings.Contains(prompt, "Only show direct flights.") {
		t.Error("directOnly must produce the direct-only clause")
	}
}

func TestFlightSearch_CardinalityViolations(t *testing.T) {
	for _, n := range []int{0, 4, 11} {
		stub := &stubGenerator{response: flightJSON(t, n)}
		gen := NewFlightGenerator(stub, "")

		_, err := gen.Search(context.Background(), flightInput())
		if err == nil {
			t.Fatalf("expected error for %d results", n)
		}
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("expected SchemaError for %d results, got %T: %v", n, err, err)
		}
	}
}

func TestFlightSearch_MalformedJSON(t *testing.T) {
	stub := &stubGenerator{response: "sorry, I cannot help with that"}
	gen := NewFlightGenerator(stub, "")

	_, err := gen.Search(context.Background(), flightInput())
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T: %v", err, err)
	}
}

func TestFlightSearch_TransportFailure(t *testing.T) {
	cause := errors.New("connection reset")
	stub := &stubGenerator{err: cause}
	gen := NewFlightGenerator(stub, "")

	_, err := gen.Search(context.Background(), flightInput())
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("transport error must wrap the underlying cause")
	}
}
