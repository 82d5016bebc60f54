package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/tripplanner/internal/models"
	"github.com/dharmasatrya/tripplanner/internal/orchestrator"
	"github.com/dharmasatrya/tripplanner/internal/ranking"
	"github.com/dharmasatrya/tripplanner/pkg/currency"
)

type SearchHandler struct {
	orchestrator *orchestrator.Orchestrator
}

func NewSearchHandler(orch *orchestrator.Orchestrator) *SearchHandler {
	return &SearchHandler{
		orchestrator: orch,
	}
}

// Search runs a combined flight+hotel search. Both branches are fetched
// concurrently; one branch failing still returns the other branch's results.
// Only when both fail does the request itself fail.
func (h *SearchHandler) Search(c echo.Context) error {
	var req models.TripSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	// Supersession is scoped to the calling client, keyed by its address, so
	// rapid re-searches by one client never disturb anyone else's search.
	result := h.orchestrator.Search(c.Request().Context(), c.RealIP(), req)

	if result.Superseded {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "search_superseded",
			Message: "A newer search was started while this one was in flight.",
			Code:    http.StatusConflict,
		})
	}

	if !result.Flight.OK() && !result.Hotel.OK() {
		return c.JSON(http.StatusBadGateway, models.TripSearchError{
			Error:       "trip_search_failed",
			FlightError: result.Flight.Err,
			HotelError:  result.Hotel.Err,
			Code:        http.StatusBadGateway,
		})
	}

	resp := models.TripSearchResponse{
		Metadata: models.SearchMetadata{
			SearchID:     result.SearchID,
			Sequence:     result.Sequence,
			SearchTimeMs: result.Elapsed.Milliseconds(),
		},
	}

	if result.Flight.OK() {
		data := *result.Flight.Data
		data.Results = ranking.SortFlights(data.Results, req.FlightSort)
		for i := range data.Results {
			data.Results[i].PriceDisplay = currency.Format(data.Results[i].Currency, data.Results[i].Price)
		}
		resp.Flights = models.FlightBranch{Status: models.BranchOK, Data: &data}
		resp.Metadata.FlightResultCount = len(data.Results)
	} else {
		resp.Flights = models.FlightBranch{Status: models.BranchFailed, Error: result.Flight.Err}
	}

	if result.Hotel.OK() {
		data := *result.Hotel.Data
		data.Results = ranking.SortHotels(data.Results, req.HotelSort)
		for i := range data.Results {
			data.Results[i].PriceDisplay = currency.Format(data.Results[i].Currency, data.Results[i].TotalPrice)
		}
		resp.Hotels = models.HotelBranch{Status: models.BranchOK, Data: &data}
		resp.Metadata.HotelResultCount = len(data.Results)
	} else {
		resp.Hotels = models.HotelBranch{Status: models.BranchFailed, Error: result.Hotel.Err}
	}

	return c.JSON(http.StatusOK, resp)
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
