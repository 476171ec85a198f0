package controllers

import (
	"net/http"
	"strconv"

	"github.com/Furqanhalari/travel-goals/applications/auth"
	"github.com/Furqanhalari/travel-goals/applications/review"

	"github.com/labstack/echo/v4"
)

// ReviewsController lists a package's reviews with the average rating.
func ReviewsController(c echo.Context) error {
	packageID, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid package ID")
	}

	result, err := review.ListForPackage(packageID)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{
		"reviews":        result.Reviews,
		"average_rating": result.AverageRating,
		"count":          result.Count,
	})
}

// SubmitReviewController stores a review. Works for guests; a session,
// when present, attaches the user to the review.
func SubmitReviewController(c echo.Context) error {
	packageID, err := strconv.Atoi(c.Param("packageID"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid package ID")
	}

	var p review.SubmitParams
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}
	p.PackageID = packageID

	var userID *int
	if claims := auth.OptionalClaims(c); claims != nil {
		userID = &claims.UserID
	}

	reviewID, err := review.Submit(userID, p)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusCreated, envelope{
		"message":   "Thank you for your review!",
		"review_id": reviewID,
	})
}
