package ranking

import (
	"reflect"
	"sort"
	"testing"

	"github.com/dharmasatrya/tripplanner/internal/models"
)

func TestDurationMinutes(t *testing.T) {
	cases := map[string]int{
		"2h 30m":      150,
		"1h 00m":      60,
		"0h 45m":      45,
		"12h 5m":      725,
		"garbage":     0,
		"":            0,
		"2h30m":       150,
		"90m":         0,
		" 1h 10m":     70,
		"about 3h 5m": 185,
	}
	for in, want := range cases {
		if got := DurationMinutes(in); got != want {
			t.Errorf("DurationMinutes(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestSortFlights_MalformedDurationSortsAsZero(t *testing.T) {
	flights := []models.FlightResult{
		{FlightNumber: "A", Duration: "2h 30m"},
		{FlightNumber: "B", Duration: "garbage"},
		{FlightNumber: "C", Duration: "1h 00m"},
	}

	sorted := SortFlights(flights, "duration")

	got := []string{sorted[0].FlightNumber, sorted[1].FlightNumber, sorted[2].FlightNumber}
	want := []string{"B", "C", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("duration order = %v, want %v", got, want)
	}
}

func TestSortFlights_PriceAscending(t *testing.T) {
	flights := []models.FlightResult{
		{FlightNumber: "A", Price: 300},
		{FlightNumber: "B", Price: 120},
		{FlightNumber: "C", Price: 220},
	}

	sorted := SortFlights(flights, "price")

	if !sort.SliceIsSorted(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price }) {
		t.Fatalf("not sorted by price: %+v", sorted)
	}
}

func TestSortFlights_DepartureChronological(t *testing.T) {
	flights := []models.FlightResult{
		{FlightNumber: "A", Departure: "2025-12-10T18:00:00"},
		{FlightNumber: "B", Departure: "2025-12-10T06:15:00Z"},
		{FlightNumber: "C", Departure: "not-a-timestamp"},
		{FlightNumber: "D", Departure: "2025-12-10T09:30:00"},
	}

	sorted := SortFlights(flights, "departure")

	got := []string{sorted[0].FlightNumber, sorted[1].FlightNumber, sorted[2].FlightNumber, sorted[3].FlightNumber}
	// Unparseable timestamps sort first.
	want := []string{"C", "B", "D", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("departure order = %v, want %v", got, want)
	}
}

func TestSortFlights_IsStableAndIdempotent(t *testing.T) {
	flights := []models.FlightResult{
		{FlightNumber: "A", Price: 100, Duration: "2h 00m"},
		{FlightNumber: "B", Price: 100, Duration: "1h 00m"},
		{FlightNumber: "C", Price: 100, Duration: "3h 00m"},
	}

	once := SortFlights(flights, "price")
	twice := SortFlights(once, "price")

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("sorting twice changed the order:\nonce:  %+v\ntwice: %+v", once, twice)
	}

	// All prices tie, so the input order must survive.
	got := []string{once[0].FlightNumber, once[1].FlightNumber, once[2].FlightNumber}
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("tied entries reordered: %v", got)
	}
}

func TestSortFlights_DoesNotMutateInputAndPreservesMultiset(t *testing.T) {
	flights := []models.FlightResult{
		{FlightNumber: "A", Price: 300},
		{FlightNumber: "B", Price: 120},
		{FlightNumber: "C", Price: 220},
	}
	original := make([]models.FlightResult, len(flights))
	copy(original, flights)

	sorted := SortFlights(flights, "price")

	if !reflect.DeepEqual(flights, original) {
		t.Fatal("input slice was mutated")
	}
	if len(sorted) != len(flights) {
		t.Fatalf("element count changed: %d -> %d", len(flights), len(sorted))
	}

	seen := make(map[string]int)
	for _, f := range flights {
		seen[f.FlightNumber]++
	}
	for _, f := range sorted {
		seen[f.FlightNumber]--
	}
	for num, count := range seen {
		if count != 0 {
			t.Fatalf("multiset not preserved for %q (delta %d)", num, count)
		}
	}
}

func TestSortFlights_UnknownKeyKeepsOrder(t *testing.T) {
	flights := []models.FlightResult{
		{FlightNumber: "A", Price: 300},
		{FlightNumber: "B", Price: 120},
	}

	sorted := SortFlights(flights, "")
	if sorted[0].FlightNumber != "A" || sorted[1].FlightNumber != "B" {
		t.Fatalf("empty key must keep the generated order, got %+v", sorted)
	}
}

func TestSortHotels_PriceAscendingRatingDescending(t *testing.T) {
	hotels := []models.HotelResult{
		{Name: "A", TotalPrice: 900, Stars: 3},
		{Name: "B", TotalPrice: 500, Stars: 5},
		{Name: "C", TotalPrice: 700, Stars: 4},
	}

	byPrice := SortHotels(hotels, "price")
	if byPrice[0].Name != "B" || byPrice[1].Name != "C" || byPrice[2].Name != "A" {
		t.Fatalf("price order wrong: %+v", byPrice)
	}

	byRating := SortHotels(hotels, "rating")
	if byRating[0].Stars != 5 || byRating[1].Stars != 4 || byRating[2].Stars != 3 {
		t.Fatalf("rating order wrong: %+v", byRating)
	}

	// Source list untouched by either sort.
	if hotels[0].Name != "A" || hotels[1].Name != "B" || hotels[2].Name != "C" {
		t.Fatalf("input slice was mutated: %+v", hotels)
	}
}

func TestSortHotels_RatingTiesKeepOrder(t *testing.T) {
	hotels := []models.HotelResult{
		{Name: "A", Stars: 4},
		{Name: "B", Stars: 4},
		{Name: "C", Stars: 5},
	}

	sorted := SortHotels(hotels, "rating")
	if sorted[0].Name != "C" || sorted[1].Name != "A" || sorted[2].Name != "B" {
		t.Fatalf("tied ratings must keep input order, got %+v", sorted)
	}
}
