package travelpackage

import (
	"testing"

	"github.com/Furqanhalari/travel-goals/apperr"

	"github.com/stretchr/testify/assert"
)

func TestForSeating(t *testing.T) {
	prices := TierPrices{
		AdultPrice:          500,
		ChildPrice:          300,
		InfantPrice:         50,
		EconomyAdultPrice:   450,
		EconomyChildPrice:   270,
		EconomyInfantPrice:  45,
		BusinessAdultPrice:  900,
		BusinessChildPrice:  540,
		BusinessInfantPrice: 90,
	}

	adult, child, infant := prices.ForSeating("economy")
	assert.Equal(t, 450.0, adult)
	assert.Equal(t, 270.0, child)
	assert.Equal(t, 45.0, infant)

	adult, child, infant = prices.ForSeating("business")
	assert.Equal(t, 900.0, adult)
	assert.Equal(t, 540.0, child)
	assert.Equal(t, 90.0, infant)

	// Anything else falls back to the base tier.
	adult, child, infant = prices.ForSeating("premium")
	assert.Equal(t, 500.0, adult)
	assert.Equal(t, 300.0, child)
	assert.Equal(t, 50.0, infant)
}

func TestSubmitParamsValidate(t *testing.T) {
	valid := SubmitParams{
		DestinationID: 1,
		Name:          "Bali Escape",
		Description:   "Seven days of beaches and temples.",
		DurationDays:  7,
		MaxTravelers:  20,
	}

	t.Run("valid", func(t *testing.T) {
		p := valid
		assert.NoError(t, p.validate())
	})

	cases := []struct {
		name   string
		mutate func(*SubmitParams)
	}{
		{"missing destination", func(p *SubmitParams) { p.DestinationID = 0 }},
		{"missing name", func(p *SubmitParams) { p.Name = "" }},
		{"missing description", func(p *SubmitParams) { p.Description = "" }},
		{"zero duration", func(p *SubmitParams) { p.DurationDays = 0 }},
		{"zero capacity", func(p *SubmitParams) { p.MaxTravelers = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := p.validate()
			assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}
