package booking

import (
	"fmt"
	"strings"

	"github.com/Furqanhalari/travel-goals/apperr"
	"github.com/Furqanhalari/travel-goals/applications/travelpackage"
	"github.com/Furqanhalari/travel-goals/db"
	"github.com/Furqanhalari/travel-goals/logger"

	"github.com/google/uuid"
)

// CreateParams is the booking request from the contact form. There is
// deliberately no price field: totals are always computed server-side.
type CreateParams struct {
	PackageID        int    `json:"package_id"`
	FromLocation     string `json:"from_location"`
	ToLocation       string `json:"to_location"`
	DepartureDate    string `json:"departure_date"`
	DepartureTime    string `json:"departure_time"`
	ReturnDate       string `json:"return_date"`
	ReturnTime       string `json:"return_time"`
	PreferredAirline string `json:"preferred_airline"`
	PreferredSeating string `json:"preferred_seating"`
	NumAdults        int    `json:"num_adults"`
	NumChildren      int    `json:"num_children"`
	NumInfants       int    `json:"num_infants"`
	FareType         string `json:"fare_type"`
	Message          string `json:"message"`
	FullName         string `json:"full_name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
}

// CreateResult carries what the frontend needs to move on to payment.
type CreateResult struct {
	BookingID        int     `json:"booking_id"`
	BookingReference string  `json:"booking_reference"`
	TotalPrice       float64 `json:"total_price"`
	PackageName      string  `json:"package_name"`
}

// newBookingReference mints the short public code printed on receipts
// and used in support conversations.
func newBookingReference() string {
	return "TG-" + strings.ToUpper(uuid.NewString()[:8])
}

// ComputeTotal derives the booking total from the package's tier prices for
// the chosen seating class. Round trips cost double the one-way total. The
// client never supplies a price.
func ComputeTotal(prices travelpackage.TierPrices, seating, fareType string, adults, children, infants int) float64 {
	adultPrice, childPrice, infantPrice := prices.ForSeating(seating)
	total := adultPrice*float64(adults) + childPrice*float64(children) + infantPrice*float64(infants)
	if fareType == "round_trip" {
		total *= 2
	}
	return total
}

func (p *CreateParams) validate() error {
	p.FromLocation = strings.TrimSpace(p.FromLocation)
	p.ToLocation = strings.TrimSpace(p.ToLocation)
	p.DepartureDate = strings.TrimSpace(p.DepartureDate)
	p.DepartureTime = strings.TrimSpace(p.DepartureTime)
	p.ReturnDate = strings.TrimSpace(p.ReturnDate)
	p.ReturnTime = strings.TrimSpace(p.ReturnTime)
	p.FullName = strings.TrimSpace(p.FullName)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Message = strings.TrimSpace(p.Message)

	if p.PackageID <= 0 {
		return apperr.Invalid("Invalid package selected")
	}
	required := map[string]string{
		"from_location":     p.FromLocation,
		"to_location":       p.ToLocation,
		"departure_date":    p.DepartureDate,
		"departure_time":    p.DepartureTime,
		"preferred_airline": p.PreferredAirline,
		"preferred_seating": p.PreferredSeating,
		"fare_type":         p.FareType,
		"full_name":         p.FullName,
		"phone":             p.Phone,
		"email":             p.Email,
	}
	for field, value := range required {
		if value == "" {
			return apperr.Invalid("%s is required", field)
		}
	}
	if !strings.Contains(p.Email, "@") || !strings.Contains(p.Email, ".") {
		return apperr.Invalid("Invalid email format")
	}
	if p.NumAdults < 0 || p.NumChildren < 0 || p.NumInfants < 0 {
		return apperr.Invalid("Traveler counts cannot be negative")
	}
	if p.NumAdults+p.NumChildren+p.NumInfants == 0 {
		return apperr.Invalid("At least one traveler is required")
	}
	if p.FareType == "round_trip" && (p.ReturnDate == "" || p.ReturnTime == "") {
		return apperr.Invalid("Return date and time required for round trip")
	}
	if p.FareType != "round_trip" {
		p.ReturnDate = ""
		p.ReturnTime = ""
	}
	return nil
}

// Create validates the request, recomputes the total from catalog data, and
// inserts the booking in 'pending'/'Unpaid' state. Only existing, active
// packages can be booked.
func Create(userID int, p CreateParams) (*CreateResult, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	pkg, err := travelpackage.GetActive(p.PackageID)
	if err != nil {
		return nil, err
	}

	total := ComputeTotal(pkg.TierPrices, p.PreferredSeating, p.FareType,
		p.NumAdults, p.NumChildren, p.NumInfants)
	if total <= 0 {
		return nil, apperr.Invalid("Invalid total price")
	}

	totalTravelers := p.NumAdults + p.NumChildren + p.NumInfants

	var returnDate, returnTime interface{}
	if p.ReturnDate != "" {
		returnDate = p.ReturnDate
		returnTime = p.ReturnTime
	}
	var message interface{}
	if p.Message != "" {
		message = p.Message
	}

	reference := newBookingReference()

	var bookingID int
	err = db.DB.QueryRow(`
		INSERT INTO bookings (
			booking_reference, user_id, package_id, from_location, to_location,
			departure_date, departure_time, return_date, return_time,
			preferred_airline, preferred_seating,
			num_adults, num_children, num_infants, num_travelers,
			fare_type, message, total_price,
			customer_full_name, customer_phone, customer_email,
			status, payment_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21,
			'pending', 'Unpaid'
		) RETURNING booking_id`,
		reference, userID, p.PackageID, p.FromLocation, p.ToLocation,
		p.DepartureDate, p.DepartureTime, returnDate, returnTime,
		p.PreferredAirline, p.PreferredSeating,
		p.NumAdults, p.NumChildren, p.NumInfants, totalTravelers,
		p.FareType, message, total,
		p.FullName, p.Phone, p.Email,
	).Scan(&bookingID)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[booking] Failed to insert booking for user %d: %v", userID, err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[booking] Booking %d created for user %d, total %.2f.", bookingID, userID, total))
	return &CreateResult{
		BookingID:        bookingID,
		BookingReference: reference,
		TotalPrice:       total,
		PackageName:      pkg.Name,
	}, nil
}
