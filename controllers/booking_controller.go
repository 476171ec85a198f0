package controllers

import (
	"net/http"

	"github.com/Furqanhalari/travel-goals/applications/auth"
	"github.com/Furqanhalari/travel-goals/applications/booking"

	"github.com/labstack/echo/v4"
)

func sessionUserID(c echo.Context) int {
	claims, _ := auth.ClaimsFrom(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}

// CreateBookingController books a package for the logged-in user. The
// total is computed server-side from the package's stored prices.
func CreateBookingController(c echo.Context) error {
	var p booking.CreateParams
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}

	result, err := booking.Create(sessionUserID(c), p)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusCreated, envelope{
		"message":           "Booking created successfully",
		"booking_id":        result.BookingID,
		"booking_reference": result.BookingReference,
		"total_price":       result.TotalPrice,
		"package_name":      result.PackageName,
	})
}

// MyBookingsController lists the user's bookings, newest first.
func MyBookingsController(c echo.Context) error {
	bookings, err := booking.ListForUser(sessionUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"bookings": bookings})
}
