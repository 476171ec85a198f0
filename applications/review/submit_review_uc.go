package review

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
)

// SubmitParams is a new review submission. UserID is nil for guests.
type SubmitParams struct {
	PackageID int    `json:"package_id"`
	UserName  string `json:"user_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// Submit stores a review. The rating is checked before anything is
// written; an out-of-range rating rejects the whole submission.
func Submit(userID *int, p SubmitParams) (int, error) {
	if p.PackageID <= 0 {
		return 0, apperr.Invalid("Package ID is required")
	}
	if p.Rating < 1 || p.Rating > 5 {
		return 0, apperr.Invalid("Rating must be between 1 and 5")
	}
	p.UserName = strings.TrimSpace(p.UserName)
	p.Comment = strings.TrimSpace(p.Comment)

	var exists int
	err := db.DB.Get(&exists,
		`SELECT 1 FROM packages WHERE package_id = $1`, p.PackageID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("package %d: %w", p.PackageID, apperr.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("check package for review: %w", err)
	}

	var reviewID int
	err = db.DB.QueryRow(
		`INSERT INTO reviews (package_id, user_id, user_name, rating, comment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING review_id`,
		p.PackageID, userID, nullable(p.UserName), p.Rating, p.Comment).Scan(&reviewID)
	if err != nil {
		return 0, fmt.Errorf("insert review: %w", err)
	}

	slog.Info("review submitted", "review_id", reviewID, "package_id", p.PackageID, "rating", p.Rating)
	return reviewID, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
