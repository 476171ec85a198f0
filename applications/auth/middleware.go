package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Furqanhalari/travel-goals/logger"

	"github.com/labstack/echo/v4"
)

// tokenFromRequest pulls the session token from the Authorization header or,
// failing that, from the session cookie the login endpoint sets.
func tokenFromRequest(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	cookie, err := c.Cookie(SessionCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// LoginRequired validates the session token and stores the claims on the
// request context for downstream handlers.
func LoginRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			logger.Log.Warn("[auth] Session check failed: no token in header or cookie.")
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"success": false, "message": "Login required",
			})
		}

		claims, err := ParseJWT(tokenString)
		if err != nil {
			logger.Log.Warn(fmt.Sprintf("[auth] Invalid or expired session token: %v", err))
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"success": false, "message": "Login required",
			})
		}

		c.Set("claims", claims)
		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("vendorID", claims.VendorID)

		return next(c)
	}
}

// VendorRequired checks the role set by LoginRequired. Admins pass too.
func VendorRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get("userRole").(string)
		if role != "vendor" && role != "admin" {
			logger.Log.Warn(fmt.Sprintf("[auth] Vendor check failed for user %v (role %q).", c.Get("userID"), role))
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"success": false, "message": "Vendor access required",
			})
		}
		return next(c)
	}
}

// AdminRequired checks the role set by LoginRequired.
func AdminRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get("userRole").(string)
		if role != "admin" {
			logger.Log.Warn(fmt.Sprintf("[auth] Admin check failed for user %v (role %q).", c.Get("userID"), role))
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"success": false, "message": "Admin access required",
			})
		}
		return next(c)
	}
}

// ClaimsFrom returns the session claims stored by LoginRequired.
func ClaimsFrom(c echo.Context) (*UserClaims, bool) {
	claims, ok := c.Get("claims").(*UserClaims)
	return claims, ok
}

// OptionalClaims parses the session token on routes that don't require
// login. Returns nil claims when there is no valid session.
func OptionalClaims(c echo.Context) *UserClaims {
	if claims, ok := ClaimsFrom(c); ok {
		return claims
	}
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return nil
	}
	claims, err := ParseJWT(tokenString)
	if err != nil {
		return nil
	}
	return claims
}
