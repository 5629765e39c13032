// Package domain contains persistence models and contracts for invoicing.
package domain

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
)

// Valid reports whether the status is one of the two allowed values.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusPending
}

// Invoice is a persisted invoice row. Amount is held in minor currency
// units (cents), never fractional major units. Date is the creation day
// in ISO-8601 form with no time component; stored as text so lexical
// order matches chronological order. ID and Date are immutable after
// creation.
type Invoice struct {
	ID         string        `gorm:"primaryKey;type:text" json:"id"`
	CustomerID string        `gorm:"not null;index" json:"customer_id"`
	Amount     int64         `gorm:"not null" json:"amount"`
	Status     InvoiceStatus `gorm:"type:text;not null" json:"status"`
	Date       string        `gorm:"type:text;not null" json:"date"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceRow is a listing entry joined with its customer.
type InvoiceRow struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	ImageURL      string        `json:"image_url"`
	Amount        int64         `json:"amount"`
	Status        InvoiceStatus `json:"status"`
	Date          string        `json:"date"`
}

// InvoiceDetail feeds the edit form: amount converted back to major units.
type InvoiceDetail struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}
