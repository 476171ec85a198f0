package travelpackage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
)

const packageColumns = `
	p.package_id, p.vendor_id, p.destination_id, p.name, p.description,
	p.duration_days, p.max_travelers, p.includes, p.image_url,
	p.adult_price, p.child_price, p.infant_price,
	p.economy_adult_price, p.economy_child_price, p.economy_infant_price,
	p.business_adult_price, p.business_child_price, p.business_infant_price,
	p.is_active, p.created_at`

// ListActive returns the public catalog: active packages joined with their
// destination and vendor, optionally filtered by destination. Disabled
// packages never appear here.
func ListActive(destinationID int) ([]Package, error) {
	query := `
		SELECT ` + packageColumns + `,
		       d.name AS destination_name, d.country,
		       vp.company_name AS vendor_name, vp.rating AS vendor_rating
		FROM packages p
		JOIN destinations d ON p.destination_id = d.destination_id
		JOIN vendor_profiles vp ON p.vendor_id = vp.vendor_id
		WHERE p.is_active = 1`

	packages := []Package{}
	var err error
	if destinationID > 0 {
		err = db.DB.Select(&packages, query+` AND p.destination_id = $1 ORDER BY vp.company_name`, destinationID)
	} else {
		err = db.DB.Select(&packages, query+` ORDER BY d.name`)
	}
	if err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return packages, nil
}

// ListForVendor returns a vendor's own live packages, active or not.
func ListForVendor(vendorID int) ([]Package, error) {
	query := `
		SELECT ` + packageColumns + `,
		       d.name AS destination_name, d.country
		FROM packages p
		JOIN destinations d ON p.destination_id = d.destination_id
		WHERE p.vendor_id = $1
		ORDER BY p.created_at DESC`

	packages := []Package{}
	if err := db.DB.Select(&packages, query, vendorID); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return packages, nil
}

// GetActive loads a single live, active package by id. Used by the booking
// flow for server-side price computation.
func GetActive(packageID int) (*Package, error) {
	query := `
		SELECT ` + packageColumns + `,
		       d.name AS destination_name, d.country,
		       vp.company_name AS vendor_name, vp.rating AS vendor_rating
		FROM packages p
		JOIN destinations d ON p.destination_id = d.destination_id
		JOIN vendor_profiles vp ON p.vendor_id = vp.vendor_id
		WHERE p.package_id = $1 AND p.is_active = 1`

	pkg := &Package{}
	if err := db.DB.Get(pkg, query, packageID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: package not found", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return pkg, nil
}
