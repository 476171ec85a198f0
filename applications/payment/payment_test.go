package payment

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/Furqanhalari/travel-goals/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() CardDetails {
	return CardDetails{
		CardNumber:  "4111111111111111",
		CardHolder:  "Test Traveler",
		ExpiryMonth: "12",
		ExpiryYear:  "2028",
		CVV:         "123",
	}
}

func TestCardDetailsValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := validCard()
		assert.NoError(t, c.Validate())
	})

	cases := []struct {
		name   string
		mutate func(*CardDetails)
	}{
		{"short number", func(c *CardDetails) { c.CardNumber = "41111111" }},
		{"non-numeric number", func(c *CardDetails) { c.CardNumber = "4111x11111111111" }},
		{"short holder", func(c *CardDetails) { c.CardHolder = "Jo" }},
		{"missing expiry month", func(c *CardDetails) { c.ExpiryMonth = "" }},
		{"missing expiry year", func(c *CardDetails) { c.ExpiryYear = "" }},
		{"short cvv", func(c *CardDetails) { c.CVV = "12" }},
		{"alpha cvv", func(c *CardDetails) { c.CVV = "12a" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCard()
			tc.mutate(&c)
			err := c.Validate()
			assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCardDetailsNormalize(t *testing.T) {
	c := CardDetails{
		CardNumber: "4111 1111 1111 1111",
		CardHolder: "  Test Traveler  ",
		CVV:        " 123 ",
	}
	c.Normalize()
	assert.Equal(t, "4111111111111111", c.CardNumber)
	assert.Equal(t, "Test Traveler", c.CardHolder)
	assert.Equal(t, "123", c.CVV)
}

func TestCardDetailsLast4(t *testing.T) {
	c := validCard()
	assert.Equal(t, "1111", c.Last4())
}

func TestSimulatorCharge(t *testing.T) {
	req := ChargeRequest{BookingID: 1, Amount: 1200, Card: validCard()}

	t.Run("always approves at full rate", func(t *testing.T) {
		s := NewSimulatorWithSeed(1)
		s.ApproveRate = 1.0
		for i := 0; i < 20; i++ {
			result, err := s.Charge(context.Background(), req)
			require.NoError(t, err)
			assert.True(t, result.Approved)
			assert.True(t, strings.HasPrefix(result.TransactionID, "TXN"))
			assert.Len(t, result.TransactionID, 15)
		}
	})

	t.Run("always declines at zero rate", func(t *testing.T) {
		s := NewSimulatorWithSeed(1)
		s.ApproveRate = 0
		result, err := s.Charge(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, result.Approved)
		assert.NotEmpty(t, result.Message)
		assert.Empty(t, result.TransactionID)
	})

	t.Run("rejects bad card before charging", func(t *testing.T) {
		s := NewSimulatorWithSeed(1)
		bad := req
		bad.Card.CVV = "9"
		_, err := s.Charge(context.Background(), bad)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("concurrent charges", func(t *testing.T) {
		s := NewSimulatorWithSeed(3)
		s.ApproveRate = 1.0

		var wg sync.WaitGroup
		results := make(chan string, 16)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result, err := s.Charge(context.Background(), req)
				assert.NoError(t, err)
				if err == nil {
					results <- result.TransactionID
				}
			}()
		}
		wg.Wait()
		close(results)

		for txn := range results {
			assert.True(t, strings.HasPrefix(txn, "TXN"))
			assert.Len(t, txn, 15)
		}
	})

	t.Run("distinct transaction ids", func(t *testing.T) {
		s := NewSimulatorWithSeed(7)
		s.ApproveRate = 1.0
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			result, err := s.Charge(context.Background(), req)
			require.NoError(t, err)
			assert.False(t, seen[result.TransactionID], "duplicate transaction id")
			seen[result.TransactionID] = true
		}
	})
}
