package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/applications/booking"
	"github.com/Furqanhalari/travel-goals/db"
)

// PayParams is the payment submission for a booking.
type PayParams struct {
	BookingID int `json:"booking_id"`
	CardDetails
}

// PayResult is returned to the client after a successful charge.
type PayResult struct {
	BookingID     int     `json:"booking_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

// Pay charges the booking through the provider and records the payment.
// The amount always comes from the stored booking, never the client.
func Pay(ctx context.Context, provider Provider, userID int, p PayParams) (*PayResult, error) {
	if p.BookingID <= 0 {
		return nil, apperr.Invalid("Booking ID is required")
	}

	var row struct {
		UserID        int     `db:"user_id"`
		TotalPrice    float64 `db:"total_price"`
		PaymentStatus string  `db:"payment_status"`
	}
	err := db.DB.Get(&row,
		`SELECT user_id, total_price, payment_status FROM bookings WHERE booking_id = $1`,
		p.BookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", p.BookingID, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load booking for payment: %w", err)
	}
	if row.UserID != userID {
		return nil, apperr.Forbidden("This booking does not belong to you")
	}
	if row.PaymentStatus == booking.PaymentPaid {
		return nil, apperr.Invalid("This booking is already paid")
	}

	result, err := provider.Charge(ctx, ChargeRequest{
		BookingID: p.BookingID,
		Amount:    row.TotalPrice,
		Card:      p.CardDetails,
	})
	if err != nil {
		return nil, err
	}
	if !result.Approved {
		return nil, apperr.Invalid("%s", result.Message)
	}

	method := fmt.Sprintf("Credit Card (****%s)", p.Last4())
	res, err := db.DB.Exec(
		`UPDATE bookings
		    SET payment_status = $1, payment_method = $2,
		        payment_date = CURRENT_TIMESTAMP, payment_transaction_id = $3
		  WHERE booking_id = $4 AND payment_status <> $1`,
		booking.PaymentPaid, method, result.TransactionID, p.BookingID)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("booking %d paid concurrently: %w", p.BookingID, apperr.ErrAlreadyProcessed)
	}

	slog.Info("payment recorded", "booking_id", p.BookingID, "transaction_id", result.TransactionID, "amount", row.TotalPrice)
	return &PayResult{
		BookingID:     p.BookingID,
		TransactionID: result.TransactionID,
		Amount:        row.TotalPrice,
		PaymentMethod: method,
	}, nil
}
