package review

import "time"

// Review is a customer rating for a package. Reviews are append-only.
type Review struct {
	ReviewID  int       `db:"review_id" json:"review_id"`
	PackageID int       `db:"package_id" json:"package_id"`
	UserID    *int      `db:"user_id" json:"user_id,omitempty"`
	UserName  *string   `db:"user_name" json:"user_name,omitempty"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Username comes from the users join when the reviewer had an account.
	Username *string `db:"username" json:"username,omitempty"`
}

// DisplayName prefers the account username, then the name the reviewer
// typed with the review, then a generic fallback.
func (r Review) DisplayName() string {
	if r.Username != nil && *r.Username != "" {
		return *r.Username
	}
	if r.UserName != nil && *r.UserName != "" {
		return *r.UserName
	}
	return "Anonymous Traveler"
}
