package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Furqanhalari/travel-goals/applications/payment"

	"github.com/labstack/echo/v4"
)

// PaymentController serves the payment flow. It holds the provider so
// the simulator can be swapped for a real gateway in one place.
type PaymentController struct {
	Provider payment.Provider
}

// Info returns the booking summary for the payment page.
func (pc *PaymentController) Info(c echo.Context) error {
	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid booking ID")
	}

	info, err := payment.GetInfo(bookingID, sessionUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"booking": info})
}

// Pay charges the booking through the configured provider.
func (pc *PaymentController) Pay(c echo.Context) error {
	var p payment.PayParams
	if err := bindJSON(c, &p); err != nil {
		return respondError(c, err)
	}

	result, err := payment.Pay(c.Request().Context(), pc.Provider, sessionUserID(c), p)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{
		"message":        "Payment successful",
		"booking_id":     result.BookingID,
		"transaction_id": result.TransactionID,
		"amount":         result.Amount,
		"payment_method": result.PaymentMethod,
	})
}

// Receipt returns the JSON receipt for a paid booking.
func (pc *PaymentController) Receipt(c echo.Context) error {
	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid booking ID")
	}

	receipt, err := payment.GetReceipt(bookingID, sessionUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"receipt": receipt})
}

// ReceiptPDF streams the printable PDF receipt.
func (pc *PaymentController) ReceiptPDF(c echo.Context) error {
	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid booking ID")
	}

	receipt, pdf, err := payment.GenerateReceiptPDF(bookingID, sessionUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="receipt_%d.pdf"`, receipt.BookingID))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
