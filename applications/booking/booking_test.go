package booking

import (
	"testing"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/applications/travelpackage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusPending, StatusPending, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Pending"), "statuses are case sensitive")
}

func tierPrices() travelpackage.TierPrices {
	return travelpackage.TierPrices{
		AdultPrice:          1000,
		ChildPrice:          700,
		InfantPrice:         100,
		EconomyAdultPrice:   900,
		EconomyChildPrice:   600,
		EconomyInfantPrice:  90,
		BusinessAdultPrice:  1800,
		BusinessChildPrice:  1200,
		BusinessInfantPrice: 180,
	}
}

func TestComputeTotal(t *testing.T) {
	prices := tierPrices()

	t.Run("economy one way", func(t *testing.T) {
		total := ComputeTotal(prices, "economy", "one_way", 2, 1, 1)
		assert.Equal(t, 2*900.0+600.0+90.0, total)
	})

	t.Run("business class", func(t *testing.T) {
		total := ComputeTotal(prices, "business", "one_way", 1, 0, 0)
		assert.Equal(t, 1800.0, total)
	})

	t.Run("round trip doubles", func(t *testing.T) {
		oneWay := ComputeTotal(prices, "economy", "one_way", 2, 0, 0)
		roundTrip := ComputeTotal(prices, "economy", "round_trip", 2, 0, 0)
		assert.Equal(t, oneWay*2, roundTrip)
	})

	t.Run("unknown seating uses base tier", func(t *testing.T) {
		total := ComputeTotal(prices, "first", "one_way", 1, 1, 0)
		assert.Equal(t, 1000.0+700.0, total)
	})
}

func validParams() CreateParams {
	return CreateParams{
		PackageID:        3,
		FromLocation:     "Karachi",
		ToLocation:       "Paris",
		DepartureDate:    "2026-10-01",
		DepartureTime:    "09:00",
		PreferredAirline: "PIA",
		PreferredSeating: "economy",
		NumAdults:        2,
		FareType:         "one_way",
		FullName:         "Test Traveler",
		Phone:            "+92-300-0000000",
		Email:            "Traveler@Example.com",
	}
}

func TestCreateParamsValidate(t *testing.T) {
	t.Run("valid one way", func(t *testing.T) {
		p := validParams()
		require.NoError(t, p.validate())
		assert.Equal(t, "traveler@example.com", p.Email, "email is normalized")
	})

	t.Run("missing required field", func(t *testing.T) {
		p := validParams()
		p.ToLocation = "  "
		err := p.validate()
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("bad email", func(t *testing.T) {
		p := validParams()
		p.Email = "not-an-email"
		assert.True(t, apperr.IsValidation(p.validate()))
	})

	t.Run("no travelers", func(t *testing.T) {
		p := validParams()
		p.NumAdults, p.NumChildren, p.NumInfants = 0, 0, 0
		assert.True(t, apperr.IsValidation(p.validate()))
	})

	t.Run("negative travelers", func(t *testing.T) {
		p := validParams()
		p.NumChildren = -1
		assert.True(t, apperr.IsValidation(p.validate()))
	})

	t.Run("round trip needs return leg", func(t *testing.T) {
		p := validParams()
		p.FareType = "round_trip"
		assert.True(t, apperr.IsValidation(p.validate()))

		p.ReturnDate = "2026-10-10"
		p.ReturnTime = "18:00"
		assert.NoError(t, p.validate())
	})

	t.Run("one way clears return leg", func(t *testing.T) {
		p := validParams()
		p.ReturnDate = "2026-10-10"
		p.ReturnTime = "18:00"
		require.NoError(t, p.validate())
		assert.Empty(t, p.ReturnDate)
		assert.Empty(t, p.ReturnTime)
	})
}
