package travelpackage

import (
	"fmt"
	"strings"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
	"github.com/Furqanhalari/travel-goals/logger"
)

// SubmitParams is a vendor's package submission, all tiers included.
type SubmitParams struct {
	DestinationID int    `json:"destination_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DurationDays  int    `json:"duration_days"`
	MaxTravelers  int    `json:"max_travelers"`
	Includes      string `json:"includes"`
	ImageURL      string `json:"image_url"`
	TierPrices
}

func (p *SubmitParams) validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	if p.DestinationID <= 0 {
		return apperr.Invalid("A destination is required")
	}
	if p.Name == "" || p.Description == "" {
		return apperr.Invalid("Name and description are required")
	}
	if p.DurationDays <= 0 {
		return apperr.Invalid("Duration must be at least one day")
	}
	if p.MaxTravelers <= 0 {
		return apperr.Invalid("Capacity must be at least one traveler")
	}
	return nil
}

// Submit inserts a pending package for admin review.
func Submit(vendorID int, p SubmitParams) error {
	if err := p.validate(); err != nil {
		return err
	}

	_, err := db.DB.Exec(`
		INSERT INTO pending_packages (vendor_id, destination_id, name, description,
			duration_days, max_travelers, includes, image_url,
			adult_price, child_price, infant_price,
			economy_adult_price, economy_child_price, economy_infant_price,
			business_adult_price, business_child_price, business_infant_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, 'pending')`,
		vendorID, p.DestinationID, p.Name, p.Description,
		p.DurationDays, p.MaxTravelers, nullable(p.Includes), nullable(p.ImageURL),
		p.AdultPrice, p.ChildPrice, p.InfantPrice,
		p.EconomyAdultPrice, p.EconomyChildPrice, p.EconomyInfantPrice,
		p.BusinessAdultPrice, p.BusinessChildPrice, p.BusinessInfantPrice)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[package] Failed to insert pending package for vendor %d: %v", vendorID, err))
		return fmt.Errorf("failed to submit package: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[package] Vendor %d submitted package %q for review.", vendorID, p.Name))
	return nil
}

func nullable(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
