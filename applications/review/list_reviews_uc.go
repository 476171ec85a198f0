package review

import (
	"fmt"

	"github.com/Furqanhalari/travel-goals/db"
)

// ListResult bundles a package's reviews with their aggregate rating.
type ListResult struct {
	Reviews       []Summary `json:"reviews"`
	AverageRating float64   `json:"average_rating"`
	Count         int       `json:"count"`
}

// Summary is the user-facing shape of one review.
type Summary struct {
	ReviewID  int    `json:"review_id"`
	Reviewer  string `json:"reviewer"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// ListForPackage returns all reviews for a package, newest first, with
// the running average rating.
func ListForPackage(packageID int) (*ListResult, error) {
	var reviews []Review
	err := db.DB.Select(&reviews,
		`SELECT r.review_id, r.package_id, r.user_id, r.user_name, r.rating,
		        r.comment, r.created_at, u.username
		   FROM reviews r
		   LEFT JOIN users u ON u.user_id = r.user_id
		  WHERE r.package_id = $1
		  ORDER BY r.created_at DESC`,
		packageID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for package %d: %w", packageID, err)
	}

	result := &ListResult{Reviews: make([]Summary, 0, len(reviews)), Count: len(reviews)}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
		result.Reviews = append(result.Reviews, Summary{
			ReviewID:  r.ReviewID,
			Reviewer:  r.DisplayName(),
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt.Format("2006-01-02"),
		})
	}
	if len(reviews) > 0 {
		result.AverageRating = float64(sum) / float64(len(reviews))
	}
	return result, nil
}

// Ratings returns just the rating values for a package, for summarization.
func Ratings(packageID int) ([]int, error) {
	var ratings []int
	err := db.DB.Select(&ratings,
		`SELECT rating FROM reviews WHERE package_id = $1`, packageID)
	if err != nil {
		return nil, fmt.Errorf("load ratings for package %d: %w", packageID, err)
	}
	return ratings, nil
}
