package domain

import (
	"context"
	"errors"
)

type Service interface {
	ListFields(ctx context.Context) ([]CustomerField, error)
	ListFiltered(ctx context.Context, query string) ([]CustomerRow, error)
}

var ErrNotFound = errors.New("not_found")
