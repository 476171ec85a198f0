package destination

import (
	"fmt"

	"github.com/Furqanhalari/travel-goals/db"
)

// ListDestinations returns the public catalog, alphabetically.
func ListDestinations() ([]Destination, error) {
	const selectSQL = `
		SELECT destination_id, name, country, description, image_url, created_at
		FROM destinations
		ORDER BY name`

	destinations := []Destination{}
	if err := db.DB.Select(&destinations, selectSQL); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return destinations, nil
}

// Highlights returns the top destinations for the landing page.
func Highlights() ([]Destination, error) {
	const selectSQL = `
		SELECT destination_id, name, country, description, image_url, created_at
		FROM destinations
		ORDER BY name
		LIMIT 3`

	highlights := []Destination{}
	if err := db.DB.Select(&highlights, selectSQL); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return highlights, nil
}
