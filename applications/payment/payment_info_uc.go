package payment

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/db"
)

// Info holds what the payment page needs to render a booking before charging.
type Info struct {
	BookingID       int       `db:"booking_id" json:"booking_id"`
	PackageName     string    `db:"package_name" json:"package_name"`
	DestinationName string    `db:"destination_name" json:"destination_name"`
	DepartureDate   time.Time `db:"departure_date" json:"departure_date"`
	Seating         string    `db:"preferred_seating" json:"preferred_seating"`
	FareType        string    `db:"fare_type" json:"fare_type"`
	NumAdults       int       `db:"num_adults" json:"num_adults"`
	NumChildren     int       `db:"num_children" json:"num_children"`
	NumInfants      int       `db:"num_infants" json:"num_infants"`
	NumTravelers    int       `db:"num_travelers" json:"num_travelers"`
	TotalPrice      float64   `db:"total_price" json:"total_price"`
	PaymentStatus   string    `db:"payment_status" json:"payment_status"`
}

// GetInfo loads the payment summary for one of the user's bookings.
func GetInfo(bookingID, userID int) (*Info, error) {
	var info Info
	err := db.DB.Get(&info,
		`SELECT b.booking_id, p.name AS package_name, d.name AS destination_name,
		        b.departure_date, b.preferred_seating, b.fare_type,
		        b.num_adults, b.num_children, b.num_infants, b.num_travelers,
		        b.total_price, b.payment_status
		   FROM bookings b
		   JOIN packages p ON p.package_id = b.package_id
		   JOIN destinations d ON d.destination_id = p.destination_id
		  WHERE b.booking_id = $1 AND b.user_id = $2`,
		bookingID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", bookingID, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load payment info: %w", err)
	}
	return &info, nil
}
