package payment

import (
	"context"
	"strings"

	"github.com/Furqanhalari/travel-goals/apperr"
)

// CardDetails is the card payload the payment page submits.
type CardDetails struct {
	CardNumber  string `json:"card_number"`
	CardHolder  string `json:"card_holder"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

// Normalize strips the spacing the frontend inserts into card numbers.
func (c *CardDetails) Normalize() {
	c.CardNumber = strings.ReplaceAll(c.CardNumber, " ", "")
	c.CardHolder = strings.TrimSpace(c.CardHolder)
	c.CVV = strings.TrimSpace(c.CVV)
}

// Validate checks the card shape only. No network validation happens here.
func (c CardDetails) Validate() error {
	if len(c.CardNumber) != 16 || !isDigits(c.CardNumber) {
		return apperr.Invalid("Invalid card number")
	}
	if len(c.CardHolder) < 3 {
		return apperr.Invalid("Invalid cardholder name")
	}
	if c.ExpiryMonth == "" || c.ExpiryYear == "" {
		return apperr.Invalid("Invalid expiry date")
	}
	if len(c.CVV) != 3 || !isDigits(c.CVV) {
		return apperr.Invalid("Invalid CVV")
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Last4 returns the last four card digits for the masked payment method.
func (c CardDetails) Last4() string {
	if len(c.CardNumber) < 4 {
		return c.CardNumber
	}
	return c.CardNumber[len(c.CardNumber)-4:]
}

// ChargeRequest is what a provider needs to attempt a charge.
type ChargeRequest struct {
	BookingID int
	Amount    float64
	Card      CardDetails
}

// ChargeResult is a provider's answer for an attempted charge.
type ChargeResult struct {
	Approved      bool
	TransactionID string
	// Message is user-facing when the charge is declined.
	Message string
}

// Provider is the pluggable payment gateway. The default wiring is the
// Simulator; a real gateway implements the same contract and slots in
// without touching booking logic.
type Provider interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
