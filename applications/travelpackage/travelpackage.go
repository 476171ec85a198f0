package travelpackage

import (
	"database/sql"
	"time"
)

// TierPrices is the multi-tier price grid every package carries:
// base prices plus per-seating-class adult/child/infant prices.
type TierPrices struct {
	AdultPrice          float64 `db:"adult_price" json:"adult_price"`
	ChildPrice          float64 `db:"child_price" json:"child_price"`
	InfantPrice         float64 `db:"infant_price" json:"infant_price"`
	EconomyAdultPrice   float64 `db:"economy_adult_price" json:"economy_adult_price"`
	EconomyChildPrice   float64 `db:"economy_child_price" json:"economy_child_price"`
	EconomyInfantPrice  float64 `db:"economy_infant_price" json:"economy_infant_price"`
	BusinessAdultPrice  float64 `db:"business_adult_price" json:"business_adult_price"`
	BusinessChildPrice  float64 `db:"business_child_price" json:"business_child_price"`
	BusinessInfantPrice float64 `db:"business_infant_price" json:"business_infant_price"`
}

// ForSeating resolves the adult/child/infant prices for a seating class.
// Unknown classes fall back to the base prices.
func (t TierPrices) ForSeating(seating string) (adult, child, infant float64) {
	switch seating {
	case "economy":
		return t.EconomyAdultPrice, t.EconomyChildPrice, t.EconomyInfantPrice
	case "business":
		return t.BusinessAdultPrice, t.BusinessChildPrice, t.BusinessInfantPrice
	default:
		return t.AdultPrice, t.ChildPrice, t.InfantPrice
	}
}

// Package is a live catalog row joined with its destination and vendor.
type Package struct {
	PackageID     int            `db:"package_id" json:"package_id"`
	VendorID      int            `db:"vendor_id" json:"vendor_id"`
	DestinationID int            `db:"destination_id" json:"destination_id"`
	Name          string         `db:"name" json:"name"`
	Description   string         `db:"description" json:"description"`
	DurationDays  int            `db:"duration_days" json:"duration_days"`
	MaxTravelers  int            `db:"max_travelers" json:"max_travelers"`
	Includes      sql.NullString `db:"includes" json:"includes,omitempty"`
	ImageURL      sql.NullString `db:"image_url" json:"image_url,omitempty"`
	TierPrices
	IsActive  int       `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Join columns, present on list endpoints.
	DestinationName string          `db:"destination_name" json:"destination_name,omitempty"`
	Country         string          `db:"country" json:"country,omitempty"`
	VendorName      sql.NullString  `db:"vendor_name" json:"vendor_name,omitempty"`
	VendorRating    sql.NullFloat64 `db:"vendor_rating" json:"vendor_rating,omitempty"`
}

// Pending is a vendor package submission awaiting moderation, same
// copy-and-mark lifecycle as pending destinations.
type Pending struct {
	PendingPkgID  int            `db:"pending_pkg_id" json:"pending_pkg_id"`
	VendorID      int            `db:"vendor_id" json:"vendor_id"`
	DestinationID int            `db:"destination_id" json:"destination_id"`
	Name          string         `db:"name" json:"name"`
	Description   string         `db:"description" json:"description"`
	DurationDays  int            `db:"duration_days" json:"duration_days"`
	MaxTravelers  int            `db:"max_travelers" json:"max_travelers"`
	Includes      sql.NullString `db:"includes" json:"includes,omitempty"`
	ImageURL      sql.NullString `db:"image_url" json:"image_url,omitempty"`
	TierPrices
	Status      string        `db:"status" json:"status"`
	SubmittedAt time.Time     `db:"submitted_at" json:"submitted_at"`
	ReviewedAt  sql.NullTime  `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy  sql.NullInt64 `db:"reviewed_by" json:"reviewed_by,omitempty"`

	CompanyName     string `db:"company_name" json:"company_name,omitempty"`
	DestinationName string `db:"destination_name" json:"destination_name,omitempty"`
	Country         string `db:"country" json:"country,omitempty"`
}
