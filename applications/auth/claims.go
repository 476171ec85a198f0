package auth

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/Furqanhalari/travel-goals/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionCookie is the HTTP-only cookie carrying the signed session token.
const SessionCookie = "travel_session"

// sessionLifetime matches the 7-day session the frontend expects.
const sessionLifetime = 7 * 24 * time.Hour

var (
	jwtSecret     []byte
	jwtSecretOnce sync.Once
)

// signingKey resolves the secret on first use rather than at import time,
// so a JWT_SECRET supplied via .env (loaded in main) is honoured.
func signingKey() []byte {
	jwtSecretOnce.Do(func() {
		jwtSecret = loadSecret()
		logger.Log.Info("[auth] JWT configuration loaded and signing key initialized.")
	})
	return jwtSecret
}

func loadSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Log.Warn("[auth] JWT_SECRET not set, using development signing key.")
		return []byte("dev_key_123")
	}
	return []byte(secret)
}

// UserClaims is the session identity stored in the token.
type UserClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	// VendorID is zero for non-vendor accounts.
	VendorID int `json:"vendor_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT creates a new signed session token for the user.
func GenerateJWT(userID int, username, email, fullName, role string, vendorID int) (string, error) {
	claims := UserClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
		FullName: fullName,
		Role:     role,
		VendorID: vendorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(signingKey())
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[auth] Failed to sign JWT for user %d (%s): %v", userID, username, err))
		return "", err
	}

	logger.Log.Info(fmt.Sprintf("[auth] Generated session token for user %d (Role: %s).", userID, role))
	return tokenString, nil
}

// ParseJWT validates a token string and returns the claims inside it.
func ParseJWT(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// SetSessionCookie attaches the signed token to the response as an
// HTTP-only cookie.
func SetSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(sessionLifetime),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
