package destination

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
	"github.com/Furqanhalari/travel-goals/logger"
)

// Approve copies the submission into the live destinations table and marks
// the pending row 'approved', all in one transaction. The UPDATE is
// conditional on status='pending' so a concurrent approval of the same row
// cannot produce a second live copy; the pending row itself is kept as an
// audit record.
func Approve(pendingID, adminID int) error {
	tx, err := db.DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var name, country, description string
	var imageURL sql.NullString
	err = tx.QueryRow(`
		UPDATE pending_destinations
		SET status = 'approved', reviewed_at = CURRENT_TIMESTAMP, reviewed_by = $2
		WHERE pending_id = $1 AND status = 'pending'
		RETURNING name, country, description, image_url`,
		pendingID, adminID,
	).Scan(&name, &country, &description, &imageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: destination not found or already processed", apperr.ErrAlreadyProcessed)
		}
		return fmt.Errorf("failed to update pending destination: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO destinations (name, country, description, image_url)
		VALUES ($1, $2, $3, $4)`,
		name, country, description, imageURL)
	if err != nil {
		return fmt.Errorf("failed to insert live destination: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[destination] Pending destination %d approved by admin %d.", pendingID, adminID))
	return nil
}

// Reject marks the pending row 'rejected' with reviewer stamps. No live row
// is created. Acting on an already-decided row reports "already processed".
func Reject(pendingID, adminID int) error {
	res, err := db.DB.Exec(`
		UPDATE pending_destinations
		SET status = 'rejected', reviewed_at = CURRENT_TIMESTAMP, reviewed_by = $2
		WHERE pending_id = $1 AND status = 'pending'`,
		pendingID, adminID)
	if err != nil {
		return fmt.Errorf("failed to update pending destination: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: destination not found or already processed", apperr.ErrAlreadyProcessed)
	}

	logger.Log.Info(fmt.Sprintf("[destination] Pending destination %d rejected by admin %d.", pendingID, adminID))
	return nil
}
