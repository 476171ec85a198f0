package booking

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
	"github.com/Furqanhalari/travel-goals/logger"
)

// UpdateStatusParams comes from the vendor dashboard. The frontend sends the
// cancellation reason as either "message" or "rejection_reason".
type UpdateStatusParams struct {
	Status          string `json:"status"`
	Message         string `json:"message"`
	RejectionReason string `json:"rejection_reason"`
}

// UpdateStatus moves a booking through its status machine. Only the vendor
// owning the booked package (or an admin, who passes isAdmin=true) may act.
// Cancellations require a reason, which is stored with the booking. The
// UPDATE re-checks the current status so two concurrent decisions cannot
// both apply.
func UpdateStatus(bookingID, vendorID int, isAdmin bool, p UpdateStatusParams) error {
	newStatus := strings.TrimSpace(p.Status)
	if !ValidStatus(newStatus) {
		return apperr.Invalid("Invalid status")
	}

	reason := strings.TrimSpace(p.Message)
	if reason == "" {
		reason = strings.TrimSpace(p.RejectionReason)
	}
	if newStatus == StatusCancelled && reason == "" {
		return apperr.Invalid("A reason is required when cancelling a booking")
	}

	var ownerVendorID, currentStatus = 0, ""
	err := db.DB.QueryRow(`
		SELECT p.vendor_id, b.status
		FROM bookings b
		JOIN packages p ON b.package_id = p.package_id
		WHERE b.booking_id = $1`, bookingID).Scan(&ownerVendorID, &currentStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: booking not found", apperr.ErrNotFound)
		}
		return fmt.Errorf("database query error: %w", err)
	}

	if !isAdmin && ownerVendorID != vendorID {
		return apperr.Forbidden("Booking not found or unauthorized")
	}

	if !CanTransition(currentStatus, newStatus) {
		return apperr.Invalid("Cannot change a %s booking to %s", currentStatus, newStatus)
	}

	var res sql.Result
	if newStatus == StatusCancelled {
		res, err = db.DB.Exec(`
			UPDATE bookings SET status = $2, rejection_reason = $3
			WHERE booking_id = $1 AND status = $4`,
			bookingID, newStatus, reason, currentStatus)
	} else {
		res, err = db.DB.Exec(`
			UPDATE bookings SET status = $2
			WHERE booking_id = $1 AND status = $3`,
			bookingID, newStatus, currentStatus)
	}
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: booking status changed concurrently", apperr.ErrAlreadyProcessed)
	}

	logger.Log.Info(fmt.Sprintf("[booking] Booking %d moved %s -> %s.", bookingID, currentStatus, newStatus))
	return nil
}

// StatusMessage translates a status into the confirmation text the frontend
// shows after an update.
func StatusMessage(status string) string {
	switch status {
	case StatusConfirmed:
		return "Booking successfully approved"
	case StatusCancelled:
		return "Booking successfully rejected"
	case StatusCompleted:
		return "Booking successfully completed"
	default:
		return "Booking successfully set to " + status
	}
}
