// Package domain contains read models for the dashboard overview page.
package domain

import "context"

// CardData backs the four summary cards. Amounts are in minor units.
type CardData struct {
	InvoiceCount   int64 `json:"invoice_count"`
	CustomerCount  int64 `json:"customer_count"`
	TotalCollected int64 `json:"total_collected"`
	TotalPending   int64 `json:"total_pending"`
}

// LatestInvoice is one entry of the latest-invoices panel.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   int64  `json:"amount"`
}

// RevenuePoint is one month of the revenue chart.
type RevenuePoint struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// Revenue is the persisted monthly revenue row.
type Revenue struct {
	Month   string `gorm:"primaryKey;type:text" json:"month"`
	Revenue int64  `gorm:"not null" json:"revenue"`
}

// TableName sets the database table name.
func (Revenue) TableName() string { return "revenue" }

// Overview aggregates everything the dashboard landing page renders.
type Overview struct {
	Cards          CardData        `json:"cards"`
	LatestInvoices []LatestInvoice `json:"latest_invoices"`
	Revenue        []RevenuePoint  `json:"revenue"`
}

type Service interface {
	Overview(ctx context.Context) (Overview, error)
}
