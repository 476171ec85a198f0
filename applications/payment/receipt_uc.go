package payment

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
)

// Receipt is the full payment record for a paid booking.
type Receipt struct {
	BookingID       int            `db:"booking_id" json:"booking_id"`
	Reference       string         `db:"booking_reference" json:"booking_reference"`
	CustomerName    string         `db:"customer_full_name" json:"customer_name"`
	CustomerEmail   string         `db:"customer_email" json:"customer_email"`
	PackageName     string         `db:"package_name" json:"package_name"`
	DestinationName string         `db:"destination_name" json:"destination_name"`
	Country         string         `db:"country" json:"country"`
	VendorName      string         `db:"vendor_name" json:"vendor_name"`
	DepartureDate   time.Time      `db:"departure_date" json:"departure_date"`
	ReturnDate      sql.NullTime   `db:"return_date" json:"return_date,omitempty"`
	Seating         string         `db:"preferred_seating" json:"preferred_seating"`
	FareType        string         `db:"fare_type" json:"fare_type"`
	NumAdults       int            `db:"num_adults" json:"num_adults"`
	NumChildren     int            `db:"num_children" json:"num_children"`
	NumInfants      int            `db:"num_infants" json:"num_infants"`
	NumTravelers    int            `db:"num_travelers" json:"num_travelers"`
	TotalPrice      float64        `db:"total_price" json:"total_price"`
	PaymentMethod   sql.NullString `db:"payment_method" json:"payment_method"`
	PaymentDate     sql.NullTime   `db:"payment_date" json:"payment_date"`
	TransactionID   sql.NullString `db:"payment_transaction_id" json:"transaction_id"`
}

// GetReceipt loads the receipt for a paid booking owned by the user.
func GetReceipt(bookingID, userID int) (*Receipt, error) {
	var r Receipt
	err := db.DB.Get(&r,
		`SELECT b.booking_id, b.booking_reference, b.customer_full_name, b.customer_email,
		        p.name AS package_name, d.name AS destination_name, d.country,
		        v.company_name AS vendor_name,
		        b.departure_date, b.return_date, b.preferred_seating, b.fare_type,
		        b.num_adults, b.num_children, b.num_infants, b.num_travelers,
		        b.total_price, b.payment_method, b.payment_date, b.payment_transaction_id
		   FROM bookings b
		   JOIN packages p ON p.package_id = b.package_id
		   JOIN destinations d ON d.destination_id = p.destination_id
		   JOIN vendor_profiles v ON v.vendor_id = p.vendor_id
		  WHERE b.booking_id = $1 AND b.user_id = $2 AND b.payment_status = 'Paid'`,
		bookingID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("paid booking %d: %w", bookingID, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load receipt: %w", err)
	}
	return &r, nil
}
