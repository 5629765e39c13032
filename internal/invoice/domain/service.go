package domain

import (
	"context"
	"errors"

	"github.com/acmelabs/facture/pkg/db/pagination"
)

// ListingPath is the cached dashboard view invalidated by every
// successful action and the route the create/update actions redirect to.
const ListingPath = "/dashboard/invoices"

type ListInvoicesRequest struct {
	Query string
	Page  pagination.Pagination
}

type ListInvoicesResponse struct {
	pagination.PageInfo
	Invoices []InvoiceRow `json:"invoices"`
}

// Service covers the three form actions plus the dashboard reads.
//
// Create, Update and Delete each issue a single atomic statement and
// then invalidate the cached listing view; they carry no multi-step
// workflow and no rollback logic of their own.
type Service interface {
	Create(ctx context.Context, input InvoiceInput) error
	Update(ctx context.Context, id string, input InvoiceInput) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, req ListInvoicesRequest) (ListInvoicesResponse, error)
	TotalPages(ctx context.Context, query string) (int, error)
	GetByID(ctx context.Context, id string) (InvoiceDetail, error)
}

var (
	ErrMissingCustomerID = errors.New("missing_customer_id")
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotFound          = errors.New("not_found")
)
