package travelpackage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
	"github.com/Furqanhalari/travel-goals/logger"
)

// Approve copies the submission into the live packages table (active) and
// marks the pending row 'approved' in one transaction. The conditional
// update on status='pending' makes a second concurrent approval fail with
// "already processed" instead of producing a duplicate live row.
func Approve(pendingPkgID, adminID int) error {
	tx, err := db.DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := Pending{}
	err = tx.QueryRowx(`
		UPDATE pending_packages
		SET status = 'approved', reviewed_at = CURRENT_TIMESTAMP, reviewed_by = $2
		WHERE pending_pkg_id = $1 AND status = 'pending'
		RETURNING vendor_id, destination_id, name, description, duration_days,
		          max_travelers, includes, image_url,
		          adult_price, child_price, infant_price,
		          economy_adult_price, economy_child_price, economy_infant_price,
		          business_adult_price, business_child_price, business_infant_price`,
		pendingPkgID, adminID,
	).Scan(
		&row.VendorID, &row.DestinationID, &row.Name, &row.Description, &row.DurationDays,
		&row.MaxTravelers, &row.Includes, &row.ImageURL,
		&row.AdultPrice, &row.ChildPrice, &row.InfantPrice,
		&row.EconomyAdultPrice, &row.EconomyChildPrice, &row.EconomyInfantPrice,
		&row.BusinessAdultPrice, &row.BusinessChildPrice, &row.BusinessInfantPrice,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: package not found or already processed", apperr.ErrAlreadyProcessed)
		}
		return fmt.Errorf("failed to update pending package: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO packages (vendor_id, destination_id, name, description,
			duration_days, max_travelers, includes, image_url,
			adult_price, child_price, infant_price,
			economy_adult_price, economy_child_price, economy_infant_price,
			business_adult_price, business_child_price, business_infant_price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, 1)`,
		row.VendorID, row.DestinationID, row.Name, row.Description,
		row.DurationDays, row.MaxTravelers, row.Includes, row.ImageURL,
		row.AdultPrice, row.ChildPrice, row.InfantPrice,
		row.EconomyAdultPrice, row.EconomyChildPrice, row.EconomyInfantPrice,
		row.BusinessAdultPrice, row.BusinessChildPrice, row.BusinessInfantPrice)
	if err != nil {
		return fmt.Errorf("failed to insert live package: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[package] Pending package %d approved by admin %d.", pendingPkgID, adminID))
	return nil
}

// Reject marks the pending row 'rejected' with reviewer stamps.
func Reject(pendingPkgID, adminID int) error {
	res, err := db.DB.Exec(`
		UPDATE pending_packages
		SET status = 'rejected', reviewed_at = CURRENT_TIMESTAMP, reviewed_by = $2
		WHERE pending_pkg_id = $1 AND status = 'pending'`,
		pendingPkgID, adminID)
	if err != nil {
		return fmt.Errorf("failed to update pending package: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: package not found or already processed", apperr.ErrAlreadyProcessed)
	}

	logger.Log.Info(fmt.Sprintf("[package] Pending package %d rejected by admin %d.", pendingPkgID, adminID))
	return nil
}
