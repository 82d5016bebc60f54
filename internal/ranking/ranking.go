// Package ranking reorders result lists for display. Sorts are stable, work
// on copies, and are idempotent; the generated order is the fallback for
// unknown keys and for ties.
package ranking

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dharmasatrya/tripplanner/internal/models"
)

// Flight sort keys.
const (
	FlightSortPrice     = "price"
	FlightSortDuration  = "duration"
	FlightSortDeparture = "departure"
)

// Hotel sort keys.
const (
	HotelSortPrice  = "price"
	HotelSortRating = "rating"
)

var durationPattern = regexp.MustCompile(`(\d+)h\s*(\d+)m`)

// DurationMinutes parses a duration string of the form "<H>h <M>m" into total
// minutes. The match is lenient about whitespace between the components, so
// "2h30m" parses too. Strings with no hours/minutes pair count as zero
// minutes, which pushes malformed entries to the front of an ascending
// duration sort while keeping their relative order.
func DurationMinutes(s string) int {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}

var departureFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// departureTime parses a generated timestamp leniently. The zero time is
// returned for unparseable values so they sort first.
func departureTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, format := range departureFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortFlights returns a freshly ordered copy of flights. An empty or unknown
// key returns the copy in its original order.
func SortFlights(flights []models.FlightResult, sortBy string) []models.FlightResult {
	sorted := make([]models.FlightResult, len(flights))
	copy(sorted, flights)

	switch strings.ToLower(sortBy) {
	case FlightSortPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})

	case FlightSortDuration:
		sort.SliceStable(sorted, func(i, j int) bool {
			return DurationMinutes(sorted[i].Duration) < DurationMinutes(sorted[j].Duration)
		})

	case FlightSortDeparture:
		sort.SliceStable(sorted, func(i, j int) bool {
			return departureTime(sorted[i].Departure).Before(departureTime(sorted[j].Departure))
		})
	}

	return sorted
}

// SortHotels returns a freshly ordered copy of hotels: "price" ascends by
// total stay price, "rating" descends by stars. An empty or unknown key
// returns the copy in its original order.
func SortHotels(hotels []models.HotelResult, sortBy string) []models.HotelResult {
	sorted := make([]models.HotelResult, len(hotels))
	copy(sorted, hotels)

	switch strings.ToLower(sortBy) {
	case HotelSortPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalPrice < sorted[j].TotalPrice
		})

	case HotelSortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Stars > sorted[j].Stars
		})
	}

	return sorted
}
