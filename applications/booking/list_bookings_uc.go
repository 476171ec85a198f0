package booking

import (
	"fmt"

	"github.com/Furqanhalari/travel-goals/db"
)

const bookingColumns = `
	b.booking_id, b.booking_reference, b.user_id, b.package_id, b.from_location, b.to_location,
	b.departure_date, b.departure_time, b.return_date, b.return_time,
	b.preferred_airline, b.preferred_seating,
	b.num_adults, b.num_children, b.num_infants, b.num_travelers,
	b.fare_type, b.message, b.total_price,
	b.customer_full_name, b.customer_phone, b.customer_email,
	b.status, b.rejection_reason, b.payment_status, b.payment_method,
	b.payment_date, b.payment_transaction_id, b.booking_date`

// ListForUser returns a customer's own bookings, newest first.
func ListForUser(userID int) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `,
		       p.name AS package_name, p.image_url AS package_image_url,
		       d.name AS destination_name, d.country,
		       vp.company_name AS vendor_name
		FROM bookings b
		JOIN packages p ON b.package_id = p.package_id
		JOIN destinations d ON p.destination_id = d.destination_id
		JOIN vendor_profiles vp ON p.vendor_id = vp.vendor_id
		WHERE b.user_id = $1
		ORDER BY b.booking_date DESC`

	bookings := []Booking{}
	if err := db.DB.Select(&bookings, query, userID); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return bookings, nil
}

// ListForVendor returns the bookings against a vendor's packages. Ownership
// is the packages.vendor_id foreign key, not a company-name match.
func ListForVendor(vendorID int) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `,
		       p.name AS package_name, p.image_url AS package_image_url,
		       d.name AS destination_name, d.country,
		       vp.company_name AS vendor_name
		FROM bookings b
		JOIN packages p ON b.package_id = p.package_id
		JOIN destinations d ON p.destination_id = d.destination_id
		JOIN vendor_profiles vp ON p.vendor_id = vp.vendor_id
		WHERE p.vendor_id = $1
		ORDER BY b.booking_date DESC`

	bookings := []Booking{}
	if err := db.DB.Select(&bookings, query, vendorID); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return bookings, nil
}

// ListAll returns every booking on the platform for the admin dashboard.
func ListAll() ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `,
		       p.name AS package_name, p.image_url AS package_image_url,
		       d.name AS destination_name, d.country,
		       vp.company_name AS vendor_name
		FROM bookings b
		JOIN packages p ON b.package_id = p.package_id
		JOIN destinations d ON p.destination_id = d.destination_id
		JOIN vendor_profiles vp ON p.vendor_id = vp.vendor_id
		ORDER BY b.booking_date DESC`

	bookings := []Booking{}
	if err := db.DB.Select(&bookings, query); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return bookings, nil
}
