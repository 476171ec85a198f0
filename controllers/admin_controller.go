package controllers

import (
	"net/http"
	"strconv"

	"github.com/Furqanhalari/travel-goals/applications/auth"
	"github.com/Furqanhalari/travel-goals/applications/booking"
	"github.com/Furqanhalari/travel-goals/applications/destination"
	"github.com/Furqanhalari/travel-goals/applications/travelpackage"
	"github.com/Furqanhalari/travel-goals/applications/vendor"

	"github.com/labstack/echo/v4"
)

func adminID(c echo.Context) int {
	claims, _ := auth.ClaimsFrom(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}

func pathID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	return id, err == nil && id > 0
}

// PendingVendorsController lists unverified vendor accounts.
func PendingVendorsController(c echo.Context) error {
	vendors, err := vendor.PendingVendors()
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"vendors": vendors})
}

// ApproveVendorController verifies a vendor and activates their account.
func ApproveVendorController(c echo.Context) error {
	id, valid := pathID(c, "vendorID")
	if !valid {
		return fail(c, http.StatusBadRequest, "Invalid vendor ID")
	}
	if err := vendor.ApproveVendor(id); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "Vendor approved successfully"})
}

// RejectVendorController removes a pending vendor and their account.
func RejectVendorController(c echo.Context) error {
	id, valid := pathID(c, "vendorID")
	if !valid {
		return fail(c, http.StatusBadRequest, "Invalid vendor ID")
	}
	if err := vendor.RejectVendor(id); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "Vendor application rejected"})
}

// PendingDestinationsController lists destination submissions awaiting review.
func PendingDestinationsController(c echo.Context) error {
	pending, err := destination.PendingForReview()
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"destinations": pending})
}

// ApproveDestinationController publishes a submitted destination.
func ApproveDestinationController(c echo.Context) error {
	id, valid := pathID(c, "pendingID")
	if !valid {
		return fail(c, http.StatusBadRequest, "Invalid submission ID")
	}
	if err := destination.Approve(id, adminID(c)); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "Destination approved and published"})
}

// RejectDestinationController declines a submitted destination.
func RejectDestinationController(c echo.Context) error {
	id, valid := pathID(c, "pendingID")
	if !valid {
		return fail(c, http.StatusBadRequest, "Invalid submission ID")
	}
	if err := destination.Reject(id, adminID(c)); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "Destination submission rejected"})
}

// PendingPackagesController lists package submissions awaiting review.
func PendingPackagesController(c echo.Context) error {
	pending, err := travelpackage.PendingForReview()
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"packages": pending})
}

// ApprovePackageController publishes a submitted package.
func ApprovePackageController(c echo.Context) error {
	id, valid := pathID(c, "pendingID")
	if !valid {
		return fail(c, http.StatusBadRequest, "Invalid submission ID")
	}
	if err := travelpackage.Approve(id, adminID(c)); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "Package approved and live"})
}

// RejectPackageController declines a submitted package.
func RejectPackageController(c echo.Context) error {
	id, valid := pathID(c, "pendingID")
	if !valid {
		return fail(c, http.StatusBadRequest, "Invalid submission ID")
	}
	if err := travelpackage.Reject(id, adminID(c)); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "Package submission rejected"})
}

// AllBookingsController lists every booking on the platform.
func AllBookingsController(c echo.Context) error {
	bookings, err := booking.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"bookings": bookings})
}

// AdminUpdateBookingController moves any booking through the workflow,
// bypassing the vendor ownership check.
func AdminUpdateBookingController(c echo.Context) error {
	bookingID, valid := pathID(c, "bookingID")
	if !valid {
		return fail(c, http.StatusBadRequest, "Invalid booking ID")
	}

	var p booking.UpdateStatusParams
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}
	if err := booking.UpdateStatus(bookingID, 0, true, p); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": booking.StatusMessage(p.Status)})
}
