package controllers

import (
	"net/http"
	"strconv"

	"github.com/Furqanhalari/travel-goals/applications/destination"
	"github.com/Furqanhalari/travel-goals/applications/travelpackage"
	"github.com/Furqanhalari/travel-goals/applications/vendor"

	"github.com/labstack/echo/v4"
)

// DestinationsController lists the public destination catalog.
func DestinationsController(c echo.Context) error {
	destinations, err := destination.ListDestinations()
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"destinations": destinations})
}

// HighlightsController returns the short featured-destinations strip.
func HighlightsController(c echo.Context) error {
	highlights, err := destination.Highlights()
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"destinations": highlights})
}

// PackagesController lists active packages, optionally filtered by
// ?destination_id=N.
func PackagesController(c echo.Context) error {
	destinationID := 0
	if raw := c.QueryParam("destination_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return fail(c, http.StatusBadRequest, "Invalid destination ID")
		}
		destinationID = id
	}

	packages, err := travelpackage.ListActive(destinationID)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"packages": packages})
}

// PackageController returns one active package by id.
func PackageController(c echo.Context) error {
	packageID, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid package ID")
	}

	pkg, err := travelpackage.GetActive(packageID)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"package": pkg})
}

// VendorsController lists verified vendors for the public vendors page.
func VendorsController(c echo.Context) error {
	vendors, err := vendor.ListVendors()
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"vendors": vendors})
}
