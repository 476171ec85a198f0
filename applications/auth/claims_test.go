package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The signing key must reflect the environment at first use, not at
// import time, so a JWT_SECRET loaded from .env in main is picked up.
func TestLoadSecret(t *testing.T) {
	t.Run("environment secret honoured", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "operator-configured-secret")
		assert.Equal(t, []byte("operator-configured-secret"), loadSecret())
	})

	t.Run("development fallback when unset", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		assert.Equal(t, []byte("dev_key_123"), loadSecret())
	})
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "wanderer", "w@example.com", "Wan Derer", "vendor", 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "wanderer", claims.Username)
	assert.Equal(t, "w@example.com", claims.Email)
	assert.Equal(t, "vendor", claims.Role)
	assert.Equal(t, 7, claims.VendorID)
}

func TestParseJWT_Tampered(t *testing.T) {
	token, err := GenerateJWT(1, "alice", "a@example.com", "Alice", "customer", 0)
	require.NoError(t, err)

	_, err = ParseJWT(token + "x")
	assert.Error(t, err)

	_, err = ParseJWT("not.a.token")
	assert.Error(t, err)
}

func TestLoginRequired(t *testing.T) {
	e := echo.New()
	handler := LoginRequired(func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		require.True(t, ok)
		return c.String(http.StatusOK, claims.Username)
	})

	t.Run("bearer token accepted", func(t *testing.T) {
		token, err := GenerateJWT(5, "bob", "b@example.com", "Bob", "customer", 0)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		err = handler(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bob", rec.Body.String())
	})

	t.Run("session cookie accepted", func(t *testing.T) {
		token, err := GenerateJWT(6, "carol", "c@example.com", "Carol", "customer", 0)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		rec := httptest.NewRecorder()

		err = handler(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	run := func(mw echo.MiddlewareFunc, role string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("userRole", role)
		require.NoError(t, mw(next)(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run(VendorRequired, "vendor"))
	assert.Equal(t, http.StatusOK, run(VendorRequired, "admin"))
	assert.Equal(t, http.StatusForbidden, run(VendorRequired, "customer"))

	assert.Equal(t, http.StatusOK, run(AdminRequired, "admin"))
	assert.Equal(t, http.StatusForbidden, run(AdminRequired, "vendor"))
}

func TestOptionalClaims(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Nil(t, OptionalClaims(c))

	token, err := GenerateJWT(9, "dave", "d@example.com", "Dave", "customer", 0)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	c = e.NewContext(req, httptest.NewRecorder())

	claims := OptionalClaims(c)
	require.NotNil(t, claims)
	assert.Equal(t, 9, claims.UserID)
}
