package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Furqanhalari/travel-goals/applications/auth"
	"github.com/Furqanhalari/travel-goals/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileController(t *testing.T) {
	e := echo.New()

	t.Run("no session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, ProfileController(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns the account row", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		prev := db.DB
		db.DB = sqlx.NewDb(conn, "sqlmock")
		t.Cleanup(func() {
			db.DB = prev
			_ = conn.Close()
		})

		mock.ExpectQuery(`FROM users u`).
			WithArgs(42).
			WillReturnRows(sqlmock.NewRows([]string{
				"user_id", "username", "email", "password_hash", "full_name",
				"phone", "is_active", "created_at", "last_login", "role_name",
			}).AddRow(42, "wanderer", "w@example.com", "hash", "Wan Derer",
				"5551234567", 1, time.Now(), nil, "customer"))

		req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("claims", &auth.UserClaims{UserID: 42, Username: "wanderer", Role: "customer"})

		require.NoError(t, ProfileController(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool `json:"success"`
			Profile struct {
				UserID   int    `json:"user_id"`
				Username string `json:"username"`
				Phone    string `json:"phone"`
				Role     string `json:"role"`
			} `json:"profile"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, 42, body.Profile.UserID)
		assert.Equal(t, "wanderer", body.Profile.Username)
		assert.Equal(t, "5551234567", body.Profile.Phone)
		assert.Equal(t, "customer", body.Profile.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
