package controllers

import (
	"errors"
	"net/http"

	"github.com/Furqanhalari/travel-goals/applications/auth"
	"github.com/Furqanhalari/travel-goals/applications/user"

	"github.com/labstack/echo/v4"
)

// RegisterController creates a customer or vendor account.
func RegisterController(c echo.Context) error {
	var p auth.RegisterParams
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}

	message, err := auth.Register(p)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusCreated, envelope{"message": message})
}

// LoginController authenticates and opens a session.
func LoginController(c echo.Context) error {
	var p auth.LoginParams
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}

	result, err := auth.Login(p)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return fail(c, http.StatusUnauthorized, "Invalid username or password")
	}
	if err != nil {
		return respondError(c, err)
	}

	auth.SetSessionCookie(c, result.Token)
	return ok(c, http.StatusOK, envelope{
		"message":  "Login successful",
		"token":    result.Token,
		"redirect": result.Redirect,
		"user": envelope{
			"user_id":   result.UserID,
			"username":  result.Username,
			"email":     result.Email,
			"full_name": result.FullName,
			"role":      result.Role,
			"vendor_id": result.VendorID,
		},
	})
}

// LogoutController clears the session cookie. Always succeeds.
func LogoutController(c echo.Context) error {
	auth.ClearSessionCookie(c)
	return ok(c, http.StatusOK, envelope{"message": "Logged out successfully"})
}

// ProfileController returns the full account row for the signed-in user.
func ProfileController(c echo.Context) error {
	claims, found := auth.ClaimsFrom(c)
	if !found {
		return fail(c, http.StatusUnauthorized, "Authentication required")
	}

	u, err := user.GetByID(claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{
		"profile": envelope{
			"user_id":    u.UserID,
			"username":   u.Username,
			"email":      u.Email,
			"full_name":  u.FullName,
			"phone":      u.Phone,
			"role":       u.Role,
			"created_at": u.CreatedAt,
		},
	})
}

// SessionController reports the authenticated user for page bootstrapping.
func SessionController(c echo.Context) error {
	claims, found := auth.ClaimsFrom(c)
	if !found {
		return fail(c, http.StatusUnauthorized, "Authentication required")
	}

	u, err := user.GetByID(claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{
		"user": envelope{
			"user_id":   u.UserID,
			"username":  u.Username,
			"email":     u.Email,
			"full_name": u.FullName,
			"role":      u.Role,
			"vendor_id": claims.VendorID,
		},
	})
}
