package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoiceInput(t *testing.T) {
	form := url.Values{}
	form.Set(FieldCustomerID, "cust-1")
	form.Set(FieldAmount, "45.50")
	form.Set(FieldStatus, "pending")

	input, err := ParseInvoiceInput(form)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", input.CustomerID)
	assert.Equal(t, 45.50, input.Amount)
	assert.Equal(t, InvoiceStatusPending, input.Status)
}

func TestParseInvoiceInputMissingCustomer(t *testing.T) {
	form := url.Values{}
	form.Set(FieldAmount, "10")
	form.Set(FieldStatus, "paid")

	_, err := ParseInvoiceInput(form)
	assert.ErrorIs(t, err, ErrMissingCustomerID)
}

func TestParseInvoiceInputEmptyCustomerAllowed(t *testing.T) {
	// The reference is opaque: presence is checked, content is not.
	form := url.Values{}
	form.Set(FieldCustomerID, "")
	form.Set(FieldAmount, "10")
	form.Set(FieldStatus, "paid")

	input, err := ParseInvoiceInput(form)
	require.NoError(t, err)
	assert.Equal(t, "", input.CustomerID)
}

func TestParseInvoiceInputBadAmount(t *testing.T) {
	for _, amount := range []string{"", "abc", "12,50"} {
		form := url.Values{}
		form.Set(FieldCustomerID, "cust-1")
		form.Set(FieldAmount, amount)
		form.Set(FieldStatus, "paid")

		_, err := ParseInvoiceInput(form)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %q", amount)
	}
}

func TestParseInvoiceInputBadStatus(t *testing.T) {
	for _, status := range []string{"", "PAID", "open", "Pending"} {
		form := url.Values{}
		form.Set(FieldCustomerID, "cust-1")
		form.Set(FieldAmount, "10")
		form.Set(FieldStatus, status)

		_, err := ParseInvoiceInput(form)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", status)
	}
}
