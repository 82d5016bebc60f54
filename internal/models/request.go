package models

import "time"

// TripSearchRequest is the combined flight+hotel search accepted by the API.
// Sort keys are optional; an empty key leaves the generated order untouched.
type TripSearchRequest struct {
	Flight     FlightSearchInput `json:"flight" validate:"required"`
	Hotel      HotelSearchInput  `json:"hotel" validate:"required"`
	FlightSort string            `json:"flightSort,omitempty" validate:"omitempty,oneof=price duration departure"`
	HotelSort  string            `json:"hotelSort,omitempty" validate:"omitempty,oneof=price rating"`
}

const dateLayout = "2006-01-02"

// Validate enforces the date-ordering rules that struct tags cannot express:
// a present return date must not precede the departure date, and check-out
// must fall strictly after check-in.
func (r *TripSearchRequest) Validate() error {
	dep, err := time.Parse(dateLayout, r.Flight.DepartureDate)
	if err != nil {
		return ErrInvalidDepartureDate
	}

	if !r.Flight.OneWay() {
		ret, err := time.Parse(dateLayout, *r.Flight.ReturnDate)
		if err != nil {
			return ErrInvalidReturnDate
		}
		if ret.Before(dep) {
			return ErrReturnBeforeDeparture
		}
	}

	checkIn, err := time.Parse(dateLayout, r.Hotel.CheckInDate)
	if err != nil {
		return ErrInvalidCheckInDate
	}
	checkOut, err := time.Parse(dateLayout, r.Hotel.CheckOutDate)
	if err != nil {
		return ErrInvalidCheckOutDate
	}
	if !checkOut.After(checkIn) {
		return ErrCheckOutNotAfterCheckIn
	}

	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrInvalidDepartureDate    ValidationError = "departureDate must use the YYYY-MM-DD format"
	ErrInvalidReturnDate       ValidationError = "returnDate must use the YYYY-MM-DD format"
	ErrReturnBeforeDeparture   ValidationError = "returnDate must be on or after departureDate"
	ErrInvalidCheckInDate      ValidationError = "checkInDate must use the YYYY-MM-DD format"
	ErrInvalidCheckOutDate     ValidationError = "checkOutDate must use the YYYY-MM-DD format"
	ErrCheckOutNotAfterCheckIn ValidationError = "checkOutDate must be after checkInDate"
)
