package travelpackage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
	"github.com/Furqanhalari/travel-goals/logger"
)

// requireOwnership checks that the live package exists and belongs to the
// vendor. Ownership is a direct vendor_id comparison.
func requireOwnership(packageID, vendorID int) error {
	var ownerID int
	err := db.DB.Get(&ownerID, `SELECT vendor_id FROM packages WHERE package_id = $1`, packageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: package not found", apperr.ErrNotFound)
		}
		return fmt.Errorf("database query error: %w", err)
	}
	if ownerID != vendorID {
		return apperr.Forbidden("Unauthorized: This package does not belong to you")
	}
	return nil
}

// Update edits a live package in place. Live edits skip moderation; only
// the owning vendor may make them.
func Update(packageID, vendorID int, p SubmitParams) error {
	if err := p.validate(); err != nil {
		return err
	}
	if err := requireOwnership(packageID, vendorID); err != nil {
		return err
	}

	_, err := db.DB.Exec(`
		UPDATE packages SET
			destination_id = $2, name = $3, description = $4,
			duration_days = $5, max_travelers = $6, includes = $7, image_url = $8,
			adult_price = $9, child_price = $10, infant_price = $11,
			economy_adult_price = $12, economy_child_price = $13, economy_infant_price = $14,
			business_adult_price = $15, business_child_price = $16, business_infant_price = $17
		WHERE package_id = $1`,
		packageID, p.DestinationID, p.Name, p.Description,
		p.DurationDays, p.MaxTravelers, nullable(p.Includes), nullable(p.ImageURL),
		p.AdultPrice, p.ChildPrice, p.InfantPrice,
		p.EconomyAdultPrice, p.EconomyChildPrice, p.EconomyInfantPrice,
		p.BusinessAdultPrice, p.BusinessChildPrice, p.BusinessInfantPrice)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[package] Package %d updated by vendor %d.", packageID, vendorID))
	return nil
}

// Disable soft-deletes a package. Live packages are never hard-deleted so
// that booking history keeps resolving.
func Disable(packageID, vendorID int) error {
	if err := requireOwnership(packageID, vendorID); err != nil {
		return err
	}

	if _, err := db.DB.Exec(`UPDATE packages SET is_active = 0 WHERE package_id = $1`, packageID); err != nil {
		return fmt.Errorf("failed to disable package: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[package] Package %d disabled by vendor %d.", packageID, vendorID))
	return nil
}

// Toggle flips the active flag and returns the new state. Toggling twice
// restores the original state.
func Toggle(packageID, vendorID int) (active bool, err error) {
	if err := requireOwnership(packageID, vendorID); err != nil {
		return false, err
	}

	var newState int
	err = db.DB.QueryRow(`
		UPDATE packages
		SET is_active = 1 - is_active
		WHERE package_id = $1
		RETURNING is_active`, packageID).Scan(&newState)
	if err != nil {
		return false, fmt.Errorf("failed to toggle package: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[package] Package %d toggled to is_active=%d by vendor %d.", packageID, newState, vendorID))
	return newState == 1, nil
}
