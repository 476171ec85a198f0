package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Furqanhalari/travel-goals/apperr"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform JSON response shape.
type envelope map[string]interface{}

func ok(c echo.Context, status int, fields envelope) error {
	body := envelope{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(status, body)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{"success": false, "message": message})
}

// respondError maps domain errors onto HTTP statuses. Unknown errors
// become a generic 500; internals are logged, never sent to the client.
func respondError(c echo.Context, err error) error {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return fail(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		return fail(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, apperr.ErrForbidden):
		return fail(c, http.StatusForbidden, errMessage(err, "Access denied"))
	case errors.Is(err, apperr.ErrNotFound):
		return fail(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, apperr.ErrAlreadyProcessed):
		return fail(c, http.StatusConflict, "This item has already been processed")
	default:
		slog.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		return fail(c, http.StatusInternalServerError, "An internal error occurred. Please try again.")
	}
}

// errMessage surfaces a ForbiddenError's own text, falling back to a
// generic message for bare sentinels.
func errMessage(err error, fallback string) string {
	var fe *apperr.ForbiddenError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return fallback
}

func bindJSON(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return apperr.Invalid("Invalid request payload")
	}
	return nil
}
