// Package domain contains persistence models for customers.
package domain

// Customer is a persisted customer row.
type Customer struct {
	ID       string `gorm:"primaryKey;type:text" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	ImageURL string `gorm:"column:image_url" json:"image_url"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }

// CustomerField is a name/id pair for the invoice form select.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerRow is a customers-table entry with per-customer invoice totals.
type CustomerRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  int64  `json:"total_pending"`
	TotalPaid     int64  `json:"total_paid"`
}
