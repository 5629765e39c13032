package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// Form field names submitted by the invoice create/edit forms.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// InvoiceInput is the validated shape shared by the create and update
// flows. Identifier and date are excluded: both are system-assigned and
// never part of the editable payload. Amount is in major units as typed
// by the user.
type InvoiceInput struct {
	CustomerID string
	Amount     float64
	Status     InvoiceStatus
}

// ParseInvoiceInput coerces raw form fields into an InvoiceInput. Pure
// function of its input; no side effects.
//
// customerId must be present (it is an opaque reference and is not
// existence-checked here), amount must coerce to a number, and status
// must equal exactly "paid" or "pending".
func ParseInvoiceInput(form url.Values) (InvoiceInput, error) {
	if _, ok := form[FieldCustomerID]; !ok {
		return InvoiceInput{}, ErrMissingCustomerID
	}
	customerID := form.Get(FieldCustomerID)

	amount, err := strconv.ParseFloat(strings.TrimSpace(form.Get(FieldAmount)), 64)
	if err != nil {
		return InvoiceInput{}, ErrInvalidAmount
	}

	status := InvoiceStatus(form.Get(FieldStatus))
	if !status.Valid() {
		return InvoiceInput{}, ErrInvalidStatus
	}

	return InvoiceInput{
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
	}, nil
}
