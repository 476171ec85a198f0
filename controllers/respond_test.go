package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Furqanhalari/travel-goals/apperr"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	e := echo.New()

	run := func(err error) (int, map[string]interface{}) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, respondError(c, err))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec.Code, body
	}

	t.Run("validation is 400 with message", func(t *testing.T) {
		code, body := run(apperr.Invalid("Rating must be between 1 and 5"))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Rating must be between 1 and 5", body["message"])
	})

	t.Run("unauthorized is 401", func(t *testing.T) {
		code, _ := run(apperr.ErrUnauthorized)
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("forbidden is 403 with its message", func(t *testing.T) {
		code, body := run(apperr.Forbidden("This package does not belong to you"))
		assert.Equal(t, http.StatusForbidden, code)
		assert.Equal(t, "This package does not belong to you", body["message"])
	})

	t.Run("wrapped not found is 404", func(t *testing.T) {
		code, _ := run(fmt.Errorf("booking 7: %w", apperr.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("already processed is 409", func(t *testing.T) {
		code, _ := run(fmt.Errorf("vendor 3: %w", apperr.ErrAlreadyProcessed))
		assert.Equal(t, http.StatusConflict, code)
	})

	t.Run("unknown error is generic 500", func(t *testing.T) {
		code, body := run(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.NotContains(t, body["message"], "pq:", "internals must not leak")
	})
}

func TestEnvelopeHelpers(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ok(c, http.StatusOK, envelope{"count": 3}))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["count"])
}
