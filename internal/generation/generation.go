// Package generation turns structured search inputs into schema-constrained
// calls against a text-generation service and parses the JSON replies into
// domain types. Each call is a single request/response: no retries, no
// caching, no pagination.
package generation

import (
	"context"

	"google.golang.org/genai"

	"github.com/dharmasatrya/tripplanner/internal/models"
)

// Request is one schema-constrained generation call.
type Request struct {
	Model       string
	Prompt      string
	Schema      *genai.Schema
	Temperature float32
}

// TextGenerator abstracts the external generation service. Implementations
// must return the raw response text of a single call.
type TextGenerator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// FlightSearcher produces flight data for one search input.
type FlightSearcher interface {
	Name() string
	Search(ctx context.Context, input models.FlightSearchInput) (*models.FlightData, error)
}

// HotelSearcher produces hotel data for one search input.
type HotelSearcher interface {
	Name() string
	Search(ctx context.Context, input models.HotelSearchInput) (*models.HotelData, error)
}

// Every response must carry between minResults and maxResults entries.
// Anything outside that range is a contract violation by the service.
const (
	minResults = 5
	maxResults = 10
)

// TransportError reports that the generation call itself failed: network
// trouble, rate limiting, or a service-side error.
type TransportError struct {
	Branch string
	Err    error
}

func (e *TransportError) Error() string {
	return e.Branch + ": generation call failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransportError(branch string, err error) *TransportError {
	return &TransportError{Branch: branch, Err: err}
}

// SchemaError reports that the service answered, but with text that is not
// valid JSON or does not honor the declared output schema.
type SchemaError struct {
	Branch string
	Err    error
}

func (e *SchemaError) Error() string {
	return e.Branch + ": malformed generation response: " + e.Err.Error()
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func NewSchemaError(branch string, err error) *SchemaError {
	return &SchemaError{Branch: branch, Err: err}
}
