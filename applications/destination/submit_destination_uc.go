package destination

import (
	"fmt"
	"strings"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
	"github.com/Furqanhalari/travel-goals/logger"
)

// SubmitParams is a vendor's destination submission.
type SubmitParams struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Submit inserts a pending destination for admin review.
func Submit(vendorID int, p SubmitParams) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Country = strings.TrimSpace(p.Country)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = strings.TrimSpace(p.ImageURL)

	if p.Name == "" || p.Country == "" || p.Description == "" {
		return apperr.Invalid("Name, country, and description are required")
	}

	var imageURL interface{}
	if p.ImageURL != "" {
		imageURL = p.ImageURL
	}

	_, err := db.DB.Exec(`
		INSERT INTO pending_destinations (vendor_id, name, country, description, image_url, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')`,
		vendorID, p.Name, p.Country, p.Description, imageURL)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[destination] Failed to insert pending destination for vendor %d: %v", vendorID, err))
		return fmt.Errorf("failed to submit destination: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[destination] Vendor %d submitted destination %q for review.", vendorID, p.Name))
	return nil
}
