package payment

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateReceiptPDF renders a single-page A4 payment receipt for a paid
// booking, with a QR code of the transaction id for verification.
func GenerateReceiptPDF(bookingID, userID int) (*Receipt, []byte, error) {
	r, err := GetReceipt(bookingID, userID)
	if err != nil {
		return nil, nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	// --- Header ---
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "TRAVELGOALS PAYMENT RECEIPT")
	pdf.Ln(20)

	// --- Divider ---
	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	// --- Booking Summary + QR ---
	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 55, "F")

	pdf.SetXY(20, yStart+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "BOOKING SUMMARY")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Booking Ref: %s", r.Reference))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Name: %s", r.CustomerName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", r.CustomerEmail))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Travelers: %d", r.NumTravelers))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total Paid: $%.2f", r.TotalPrice))

	// QR encodes the transaction id so staff can verify a printed receipt.
	txn := r.TransactionID.String
	if txn == "" {
		txn = fmt.Sprintf("BOOKING-%d", r.BookingID)
	}
	qrBytes, _ := qrcode.Encode(txn, qrcode.Medium, 256)
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("qr", 145, yStart+5, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(yStart + 63)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Scan this QR code to verify the transaction.")
	pdf.Ln(8)

	// --- Trip Details ---
	drawSectionTitle(pdf, "TRIP DETAILS")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Package: %s", r.PackageName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Destination: %s, %s", r.DestinationName, r.Country))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Operator: %s", r.VendorName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Departure: %s", r.DepartureDate.Format("02 Jan 2006")))
	pdf.Ln(6)
	if r.ReturnDate.Valid {
		pdf.Cell(0, 8, fmt.Sprintf("Return: %s", r.ReturnDate.Time.Format("02 Jan 2006")))
		pdf.Ln(6)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Class: %s | Fare: %s", r.Seating, r.FareType))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Party: %d adults, %d children, %d infants", r.NumAdults, r.NumChildren, r.NumInfants))
	pdf.Ln(8)

	// --- Payment Info ---
	drawSectionTitle(pdf, "PAYMENT INFORMATION")
	pdf.SetFont("Helvetica", "", 12)
	if r.PaymentMethod.Valid {
		pdf.Cell(0, 8, fmt.Sprintf("Method: %s", r.PaymentMethod.String))
		pdf.Ln(6)
	}
	if r.TransactionID.Valid {
		pdf.Cell(0, 8, fmt.Sprintf("Transaction ID: %s", r.TransactionID.String))
		pdf.Ln(6)
	}
	if r.PaymentDate.Valid {
		pdf.Cell(0, 8, fmt.Sprintf("Paid On: %s", r.PaymentDate.Time.Format("02 Jan 2006 15:04")))
		pdf.Ln(6)
	}

	// --- Footer at bottom of page ---
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, 285, 195, 285)
	pdf.SetY(288)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "© 2026 TravelGoals. All Rights Reserved.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, nil, err
	}
	return r, buf.Bytes(), nil
}

// drawSectionTitle adds consistent section headers
func drawSectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
}
