package models

// BranchStatus tells the consumer how one branch of the trip search settled.
type BranchStatus string

const (
	BranchOK     BranchStatus = "ok"
	BranchFailed BranchStatus = "failed"
)

// FlightBranch is the settled flight side of a trip search response.
type FlightBranch struct {
	Status BranchStatus `json:"status"`
	Data   *FlightData  `json:"data,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// HotelBranch is the settled hotel side of a trip search response.
type HotelBranch struct {
	Status BranchStatus `json:"status"`
	Data   *HotelData   `json:"data,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// SearchMetadata describes one trip search attempt.
type SearchMetadata struct {
	SearchID          string `json:"search_id"`
	Sequence          uint64 `json:"sequence"`
	SearchTimeMs      int64  `json:"search_time_ms"`
	FlightResultCount int    `json:"flight_result_count"`
	HotelResultCount  int    `json:"hotel_result_count"`
}

// TripSearchResponse is returned whenever at least one branch succeeded.
type TripSearchResponse struct {
	Metadata SearchMetadata `json:"metadata"`
	Flights  FlightBranch   `json:"flights"`
	Hotels   HotelBranch    `json:"hotels"`
}

// TripSearchError is returned when both branches failed.
type TripSearchError struct {
	Error       string `json:"error"`
	FlightError string `json:"flight_error"`
	HotelError  string `json:"hotel_error"`
	Code        int    `json:"code"`
}

// ErrorResponse is the generic API error shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
