package domain

import (
	"context"

	"github.com/acmelabs/facture/pkg/db/pagination"
	"gorm.io/gorm"
)

// Repository issues the parameterized statements for invoices. Insert
// assigns the identifier; Update and Delete are plain single-row
// statements that succeed even when no row matches.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Update(ctx context.Context, db *gorm.DB, id string, customerID string, amount int64, status InvoiceStatus) error
	Delete(ctx context.Context, db *gorm.DB, id string) error

	FindByID(ctx context.Context, db *gorm.DB, id string) (*Invoice, error)
	ListFiltered(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]InvoiceRow, error)
	CountFiltered(ctx context.Context, db *gorm.DB, query string) (int64, error)
}
