package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	ListFields(ctx context.Context, db *gorm.DB) ([]CustomerField, error)
	ListFiltered(ctx context.Context, db *gorm.DB, query string) ([]CustomerRow, error)
}
