package repository

import (
	"context"
	"strings"

	"github.com/acmelabs/facture/internal/customer/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	return db.WithContext(ctx).Exec(
		`INSERT INTO customers (id, name, email, image_url)
		 VALUES (?, ?, ?, ?)`,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.ImageURL,
	).Error
}

func (r *repo) ListFields(ctx context.Context, db *gorm.DB) ([]domain.CustomerField, error) {
	var fields []domain.CustomerField
	err := db.WithContext(ctx).Raw(
		`SELECT id, name FROM customers ORDER BY name ASC`,
	).Scan(&fields).Error
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// ListFiltered returns the customers table with per-customer invoice
// totals, pending and paid amounts in minor units.
func (r *repo) ListFiltered(ctx context.Context, db *gorm.DB, query string) ([]domain.CustomerRow, error) {
	var rows []domain.CustomerRow
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	err := db.WithContext(ctx).Raw(
		`SELECT customers.id,
		        customers.name,
		        customers.email,
		        customers.image_url,
		        COUNT(invoices.id) AS total_invoices,
		        COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
		        COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		 FROM customers
		 LEFT JOIN invoices ON customers.id = invoices.customer_id
		 WHERE LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ?
		 GROUP BY customers.id, customers.name, customers.email, customers.image_url
		 ORDER BY customers.name ASC`,
		pattern, pattern,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
