package controllers

import (
	"net/http"
	"strconv"

	"github.com/Furqanhalari/travel-goals/applications/auth"
	"github.com/Furqanhalari/travel-goals/applications/booking"
	"github.com/Furqanhalari/travel-goals/applications/destination"
	"github.com/Furqanhalari/travel-goals/applications/travelpackage"

	"github.com/labstack/echo/v4"
)

func vendorID(c echo.Context) int {
	claims, _ := auth.ClaimsFrom(c)
	if claims == nil {
		return 0
	}
	return claims.VendorID
}

// SubmitDestinationController queues a vendor's destination for review.
func SubmitDestinationController(c echo.Context) error {
	var p destination.SubmitParams
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}
	if err := destination.Submit(vendorID(c), p); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusCreated, envelope{
		"message": "Destination submitted for review. It will appear once approved.",
	})
}

// MyDestinationsController lists the vendor's own submissions, all statuses.
func MyDestinationsController(c echo.Context) error {
	submissions, err := destination.PendingForVendor(vendorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"destinations": submissions})
}

// SubmitPackageController queues a vendor's package for review.
func SubmitPackageController(c echo.Context) error {
	var p travelpackage.SubmitParams
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}
	if err := travelpackage.Submit(vendorID(c), p); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusCreated, envelope{
		"message": "Package submitted for review. It will be live once approved.",
	})
}

// MyPendingPackagesController lists the vendor's package submissions.
func MyPendingPackagesController(c echo.Context) error {
	submissions, err := travelpackage.PendingForVendor(vendorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"packages": submissions})
}

// MyPackagesController lists the vendor's live packages.
func MyPackagesController(c echo.Context) error {
	packages, err := travelpackage.ListForVendor(vendorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"packages": packages})
}

// UpdatePackageController edits one of the vendor's live packages.
func UpdatePackageController(c echo.Context) error {
	packageID, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid package ID")
	}

	var p travelpackage.SubmitParams
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}
	if err := travelpackage.Update(packageID, vendorID(c), p); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "Package updated successfully"})
}

// DeletePackageController retires a package. The row is kept and
// deactivated so past bookings stay intact.
func DeletePackageController(c echo.Context) error {
	packageID, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid package ID")
	}
	if err := travelpackage.Disable(packageID, vendorID(c)); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "Package removed from listings"})
}

// TogglePackageController flips a package's visibility.
func TogglePackageController(c echo.Context) error {
	packageID, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid package ID")
	}

	active, err := travelpackage.Toggle(packageID, vendorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"is_active": active})
}

// VendorBookingsController lists bookings on the vendor's packages.
func VendorBookingsController(c echo.Context) error {
	bookings, err := booking.ListForVendor(vendorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"bookings": bookings})
}

// VendorUpdateBookingController moves one of the vendor's bookings
// through the status workflow.
func VendorUpdateBookingController(c echo.Context) error {
	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid booking ID")
	}

	var p booking.UpdateStatusParams
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}
	if err := booking.UpdateStatus(bookingID, vendorID(c), false, p); err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": booking.StatusMessage(p.Status)})
}
