package destination

import (
	"fmt"

	"github.com/Furqanhalari/travel-goals/db"
)

// PendingForVendor returns a vendor's own submissions, every status, newest
// first.
func PendingForVendor(vendorID int) ([]Pending, error) {
	const selectSQL = `
		SELECT pd.pending_id, pd.vendor_id, pd.name, pd.country, pd.description,
		       pd.image_url, pd.status, pd.submitted_at, pd.reviewed_at, pd.reviewed_by,
		       vp.company_name
		FROM pending_destinations pd
		JOIN vendor_profiles vp ON pd.vendor_id = vp.vendor_id
		WHERE pd.vendor_id = $1
		ORDER BY pd.submitted_at DESC`

	rows := []Pending{}
	if err := db.DB.Select(&rows, selectSQL, vendorID); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return rows, nil
}

// PendingForReview returns the admin moderation queue: submissions still in
// 'pending' state.
func PendingForReview() ([]Pending, error) {
	const selectSQL = `
		SELECT pd.pending_id, pd.vendor_id, pd.name, pd.country, pd.description,
		       pd.image_url, pd.status, pd.submitted_at, pd.reviewed_at, pd.reviewed_by,
		       vp.company_name
		FROM pending_destinations pd
		JOIN vendor_profiles vp ON pd.vendor_id = vp.vendor_id
		WHERE pd.status = 'pending'
		ORDER BY pd.submitted_at DESC`

	rows := []Pending{}
	if err := db.DB.Select(&rows, selectSQL); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return rows, nil
}
