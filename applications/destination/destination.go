package destination

import (
	"database/sql"
	"time"
)

// Destination is a live, approved catalog row.
type Destination struct {
	DestinationID int            `db:"destination_id" json:"destination_id"`
	Name          string         `db:"name" json:"name"`
	Country       string         `db:"country" json:"country"`
	Description   string         `db:"description" json:"description"`
	ImageURL      sql.NullString `db:"image_url" json:"image_url,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// Pending is a vendor submission awaiting moderation. Rows are never
// deleted: approval copies the fields into destinations and marks the row,
// rejection only marks it. Either way the row stays as an audit record.
type Pending struct {
	PendingID   int            `db:"pending_id" json:"pending_id"`
	VendorID    int            `db:"vendor_id" json:"vendor_id"`
	Name        string         `db:"name" json:"name"`
	Country     string         `db:"country" json:"country"`
	Description string         `db:"description" json:"description"`
	ImageURL    sql.NullString `db:"image_url" json:"image_url,omitempty"`
	Status      string         `db:"status" json:"status"`
	SubmittedAt time.Time      `db:"submitted_at" json:"submitted_at"`
	ReviewedAt  sql.NullTime   `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy  sql.NullInt64  `db:"reviewed_by" json:"reviewed_by,omitempty"`
	CompanyName string         `db:"company_name" json:"company_name"`
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)
