package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
)

// SearchMatch is one package found by the booking assistant, priced for
// the traveler party extracted from the query.
type SearchMatch struct {
	PackageID       int     `db:"package_id" json:"package_id"`
	PackageName     string  `db:"package_name" json:"package_name"`
	DestinationName string  `db:"destination_name" json:"destination_name"`
	Country         string  `db:"destination_country" json:"destination_country"`
	Price           float64 `db:"price" json:"price"`
	Duration        int     `db:"duration" json:"duration"`
	Description     string  `db:"description" json:"description"`
	Highlights      *string `db:"highlights" json:"highlights,omitempty"`
	TotalPrice      float64 `json:"total_price"`
}

// SearchResult is the booking assistant's full answer for a query.
type SearchResult struct {
	Query        string         `json:"query"`
	Intent       *BookingIntent `json:"extracted_params"`
	Summary      string         `json:"summary"`
	Packages     []SearchMatch  `json:"packages"`
	TotalResults int            `json:"total_results"`
}

// Search runs the natural-language booking assistant: extract intent,
// filter the catalog with it, price results for the party, and narrate.
func (c *Client) Search(ctx context.Context, userQuery string) (*SearchResult, error) {
	userQuery = strings.TrimSpace(userQuery)
	if userQuery == "" {
		return nil, apperr.Invalid("Please provide a search query")
	}

	intent := c.ExtractBookingIntent(ctx, userQuery)
	if intent == nil {
		return nil, apperr.Invalid(`I couldn't understand your request. Try something like "Book a 5-day beach trip for 2 under $2000"`)
	}

	matches, err := searchPackages(intent)
	if err != nil {
		return nil, err
	}

	// Price per party: adults and children pay, infants travel free here.
	party := intent.Adults + intent.Children
	if party < 1 {
		party = 1
	}
	for i := range matches {
		matches[i].TotalPrice = matches[i].Price * float64(party)
	}
	if len(matches) > 10 {
		matches = matches[:10]
	}

	return &SearchResult{
		Query:        userQuery,
		Intent:       intent,
		Summary:      c.SearchSummary(ctx, userQuery, intent, len(matches)),
		Packages:     matches,
		TotalResults: len(matches),
	}, nil
}

// searchPackages filters active packages by the extracted intent.
// Duration matches with one day of tolerance; budget caps the per-adult
// economy price.
func searchPackages(intent *BookingIntent) ([]SearchMatch, error) {
	query := `
		SELECT p.package_id, p.name AS package_name,
		       d.name AS destination_name, d.country AS destination_country,
		       p.economy_adult_price AS price, p.duration_days AS duration,
		       p.description, p.includes AS highlights
		  FROM packages p
		  JOIN destinations d ON d.destination_id = p.destination_id
		 WHERE p.is_active = 1`
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if intent.DestinationType != "" && intent.DestinationType != "Any" {
		ph := arg("%" + strings.ToLower(intent.DestinationType) + "%")
		query += fmt.Sprintf(
			" AND (LOWER(p.description) LIKE %s OR LOWER(COALESCE(p.includes, '')) LIKE %s OR LOWER(d.name) LIKE %s)",
			ph, ph, ph)
	}
	if intent.DestinationName != "" {
		query += fmt.Sprintf(" AND LOWER(d.name) LIKE %s",
			arg("%"+strings.ToLower(intent.DestinationName)+"%"))
	}
	if intent.DurationDays > 0 {
		min := intent.DurationDays - 1
		if min < 1 {
			min = 1
		}
		query += fmt.Sprintf(" AND p.duration_days BETWEEN %s AND %s",
			arg(min), arg(intent.DurationDays+1))
	}
	if intent.MaxBudget > 0 {
		query += fmt.Sprintf(" AND p.economy_adult_price <= %s", arg(intent.MaxBudget))
	}
	query += " ORDER BY p.economy_adult_price ASC"

	var matches []SearchMatch
	if err := db.DB.Select(&matches, query, args...); err != nil {
		return nil, fmt.Errorf("search packages: %w", err)
	}
	return matches, nil
}
