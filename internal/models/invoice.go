package models

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"

	InvoiceDateLayout = "2006-01-02"

	centsPerUnit = 100
)

type Invoice struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customerId"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       string        `json:"date"`
}

// InvoiceForm mirrors the submitted invoice form. Amount stays a string until
// validation succeeds so that non-numeric input becomes a field error.
type InvoiceForm struct {
	CustomerID string `form:"customerId" json:"customerId" validate:"required,uuid"`
	Amount     string `form:"amount"     json:"amount"     validate:"required,positive_decimal"`
	Status     string `form:"status"     json:"status"     validate:"required,oneof=pending paid"`
}

func (f *InvoiceForm) Normalize() {
	f.CustomerID = strings.TrimSpace(f.CustomerID)
	f.Amount = strings.TrimSpace(f.Amount)
	f.Status = strings.TrimSpace(f.Status)
}

func (f *InvoiceForm) FieldMessages() map[string]string {
	return map[string]string{
		"customerId": "Please select a customer.",
		"amount":     "Please enter an amount greater than $0.",
		"status":     "Please select an invoice status.",
	}
}

// ErrAmountTooLarge is returned by ToCents when the cents do not fit in an int64.
var ErrAmountTooLarge = errors.New("amount too large")

// ToCents converts a decimal currency amount to integer cents, rounding half
// away from zero, so 12.50 becomes 1250.
func ToCents(amount string) (int64, error) {
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, strconv.ErrSyntax
	}

	cents := math.Round(v * centsPerUnit)
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range
	if math.Abs(cents) >= math.MaxInt64 {
		return 0, ErrAmountTooLarge
	}
	return int64(cents), nil
}
