package travelpackage

import (
	"fmt"

	"github.com/Furqanhalari/travel-goals/db"
)

const pendingColumns = `
	pp.pending_pkg_id, pp.vendor_id, pp.destination_id, pp.name, pp.description,
	pp.duration_days, pp.max_travelers, pp.includes, pp.image_url,
	pp.adult_price, pp.child_price, pp.infant_price,
	pp.economy_adult_price, pp.economy_child_price, pp.economy_infant_price,
	pp.business_adult_price, pp.business_child_price, pp.business_infant_price,
	pp.status, pp.submitted_at, pp.reviewed_at, pp.reviewed_by`

// PendingForVendor returns a vendor's own submissions, every status.
func PendingForVendor(vendorID int) ([]Pending, error) {
	query := `
		SELECT ` + pendingColumns + `,
		       vp.company_name, d.name AS destination_name, d.country
		FROM pending_packages pp
		JOIN vendor_profiles vp ON pp.vendor_id = vp.vendor_id
		JOIN destinations d ON pp.destination_id = d.destination_id
		WHERE pp.vendor_id = $1
		ORDER BY pp.submitted_at DESC`

	rows := []Pending{}
	if err := db.DB.Select(&rows, query, vendorID); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return rows, nil
}

// PendingForReview returns the admin moderation queue.
func PendingForReview() ([]Pending, error) {
	query := `
		SELECT ` + pendingColumns + `,
		       vp.company_name, d.name AS destination_name, d.country
		FROM pending_packages pp
		JOIN vendor_profiles vp ON pp.vendor_id = vp.vendor_id
		JOIN destinations d ON pp.destination_id = d.destination_id
		WHERE pp.status = 'pending'
		ORDER BY pp.submitted_at DESC`

	rows := []Pending{}
	if err := db.DB.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return rows, nil
}
