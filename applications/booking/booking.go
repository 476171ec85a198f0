package booking

import (
	"database/sql"
	"time"
)

// Booking statuses. Transitions are forward-only: a decided booking can
// move toward cancellation or completion but never back to pending.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Payment statuses live on their own axis, independent of the booking status.
const (
	PaymentUnpaid = "Unpaid"
	PaymentPaid   = "Paid"
)

// allowedTransitions is the booking status machine. Cancelled and completed
// are terminal.
var allowedTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking in `from` may move to `to`.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking mirrors a row of the bookings table plus the join columns the
// list endpoints attach.
type Booking struct {
	BookingID        int            `db:"booking_id" json:"booking_id"`
	BookingReference string         `db:"booking_reference" json:"booking_reference"`
	UserID           int            `db:"user_id" json:"user_id"`
	PackageID        int            `db:"package_id" json:"package_id"`
	FromLocation     string         `db:"from_location" json:"from_location"`
	ToLocation       string         `db:"to_location" json:"to_location"`
	DepartureDate    time.Time      `db:"departure_date" json:"departure_date"`
	DepartureTime    string         `db:"departure_time" json:"departure_time"`
	ReturnDate       sql.NullTime   `db:"return_date" json:"return_date,omitempty"`
	ReturnTime       sql.NullString `db:"return_time" json:"return_time,omitempty"`
	PreferredAirline string         `db:"preferred_airline" json:"preferred_airline"`
	PreferredSeating string         `db:"preferred_seating" json:"preferred_seating"`
	NumAdults        int            `db:"num_adults" json:"num_adults"`
	NumChildren      int            `db:"num_children" json:"num_children"`
	NumInfants       int            `db:"num_infants" json:"num_infants"`
	NumTravelers     int            `db:"num_travelers" json:"num_travelers"`
	FareType         string         `db:"fare_type" json:"fare_type"`
	Message          sql.NullString `db:"message" json:"message,omitempty"`
	TotalPrice       float64        `db:"total_price" json:"total_price"`
	CustomerFullName string         `db:"customer_full_name" json:"customer_full_name"`
	CustomerPhone    string         `db:"customer_phone" json:"customer_phone"`
	CustomerEmail    string         `db:"customer_email" json:"customer_email"`
	Status           string         `db:"status" json:"status"`
	RejectionReason  sql.NullString `db:"rejection_reason" json:"rejection_reason,omitempty"`
	PaymentStatus    string         `db:"payment_status" json:"payment_status"`
	PaymentMethod    sql.NullString `db:"payment_method" json:"payment_method,omitempty"`
	PaymentDate      sql.NullTime   `db:"payment_date" json:"payment_date,omitempty"`
	PaymentTxnID     sql.NullString `db:"payment_transaction_id" json:"payment_transaction_id,omitempty"`
	BookingDate      time.Time      `db:"booking_date" json:"created_at"`

	PackageName     sql.NullString `db:"package_name" json:"package_name,omitempty"`
	PackageImageURL sql.NullString `db:"package_image_url" json:"image_url,omitempty"`
	DestinationName sql.NullString `db:"destination_name" json:"destination_name,omitempty"`
	Country         sql.NullString `db:"country" json:"country,omitempty"`
	VendorName      sql.NullString `db:"vendor_name" json:"vendor_name,omitempty"`
}
