package review

import (
	"testing"

	"github.com/Furqanhalari/travel-goals/apperr"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "wanderer",
		Review{Username: strPtr("wanderer"), UserName: strPtr("Typed Name")}.DisplayName(),
		"account username wins")

	assert.Equal(t, "Typed Name",
		Review{UserName: strPtr("Typed Name")}.DisplayName())

	assert.Equal(t, "Anonymous Traveler", Review{}.DisplayName())
	assert.Equal(t, "Anonymous Traveler",
		Review{Username: strPtr(""), UserName: strPtr("")}.DisplayName())
}

func TestSubmitRejectsBadInputBeforeWriting(t *testing.T) {
	// These paths must fail validation before any storage access; db.DB
	// is nil in this test, so reaching the database would panic.
	cases := []struct {
		name   string
		params SubmitParams
	}{
		{"missing package", SubmitParams{Rating: 5}},
		{"rating too low", SubmitParams{PackageID: 1, Rating: 0}},
		{"rating too high", SubmitParams{PackageID: 1, Rating: 6}},
		{"negative rating", SubmitParams{PackageID: 1, Rating: -3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Submit(nil, tc.params)
			assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}
