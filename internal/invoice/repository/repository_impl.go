package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/acmelabs/facture/internal/invoice/domain"
	"github.com/acmelabs/facture/pkg/db/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// Insert persists a new invoice. The store assigns the identifier; the
// caller never supplies one.
func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	invoice.ID = uuid.NewString()
	return db.WithContext(ctx).Exec(
		`INSERT INTO invoices (id, customer_id, amount, status, date)
		 VALUES (?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.CustomerID,
		invoice.Amount,
		invoice.Status,
		invoice.Date,
	).Error
}

// Update sets the editable fields on the matching row. Date and id are
// never touched. Matching zero rows is not an error.
func (r *repo) Update(ctx context.Context, db *gorm.DB, id string, customerID string, amount int64, status domain.InvoiceStatus) error {
	return db.WithContext(ctx).Exec(
		`UPDATE invoices
		 SET customer_id = ?, amount = ?, status = ?
		 WHERE id = ?`,
		customerID,
		amount,
		status,
		id,
	).Error
}

// Delete removes the matching row; deleting an absent id succeeds.
func (r *repo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM invoices WHERE id = ?`,
		id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).Raw(
		`SELECT id, customer_id, amount, status, date
		 FROM invoices WHERE id = ?`,
		id,
	).Scan(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if invoice.ID == "" {
		return nil, nil
	}
	return &invoice, nil
}

func (r *repo) ListFiltered(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]domain.InvoiceRow, error) {
	var rows []domain.InvoiceRow
	pattern := likePattern(query)
	err := db.WithContext(ctx).Raw(
		`SELECT invoices.id,
		        customers.id AS customer_id,
		        customers.name AS customer_name,
		        customers.email AS customer_email,
		        customers.image_url,
		        invoices.amount,
		        invoices.status,
		        invoices.date
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 WHERE LOWER(customers.name) LIKE ? OR
		       LOWER(customers.email) LIKE ? OR
		       CAST(invoices.amount AS TEXT) LIKE ? OR
		       invoices.date LIKE ? OR
		       LOWER(invoices.status) LIKE ?
		 ORDER BY invoices.date DESC, invoices.id DESC
		 LIMIT ? OFFSET ?`,
		pattern, pattern, pattern, pattern, pattern,
		page.PageSize, page.Offset(),
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) CountFiltered(ctx context.Context, db *gorm.DB, query string) (int64, error) {
	var count int64
	pattern := likePattern(query)
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*)
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 WHERE LOWER(customers.name) LIKE ? OR
		       LOWER(customers.email) LIKE ? OR
		       CAST(invoices.amount AS TEXT) LIKE ? OR
		       invoices.date LIKE ? OR
		       LOWER(invoices.status) LIKE ?`,
		pattern, pattern, pattern, pattern, pattern,
	).Scan(&count).Error
	return count, err
}

func likePattern(query string) string {
	return "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
}
