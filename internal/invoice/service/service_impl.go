package service

import (
	"context"
	"math"
	"strings"

	"github.com/acmelabs/facture/internal/clock"
	"github.com/acmelabs/facture/internal/invoice/domain"
	obsmetrics "github.com/acmelabs/facture/internal/observability/metrics"
	"github.com/acmelabs/facture/internal/pagecache"
	"github.com/acmelabs/facture/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout      = "2006-01-02"
	defaultPageSize = 6
	maxPageSize     = 100
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Repo    domain.Repository
	Clock   clock.Clock
	Cache   pagecache.Cache
	Metrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    domain.Repository
	clock   clock.Clock
	cache   pagecache.Cache
	metrics *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("invoice.service"),
		repo:    p.Repo,
		clock:   p.Clock,
		cache:   p.Cache,
		metrics: p.Metrics,
	}
}

// Create persists a new invoice. The amount is converted to minor units
// and the date is stamped with the current UTC calendar day; the store
// assigns the identifier. On success the cached listing view is
// invalidated.
func (s *Service) Create(ctx context.Context, input domain.InvoiceInput) error {
	invoice := domain.Invoice{
		CustomerID: input.CustomerID,
		Amount:     toMinorUnits(input.Amount),
		Status:     input.Status,
		Date:       s.clock.Now().UTC().Format(dateLayout),
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		s.log.Warn("create invoice failed", zap.Error(err))
		s.metrics.RecordInvoiceAction(ctx, "create", "error")
		return err
	}

	if err := s.cache.Invalidate(ctx, domain.ListingPath); err != nil {
		s.log.Warn("invalidate listing cache failed", zap.Error(err))
		s.metrics.RecordInvoiceAction(ctx, "create", "error")
		return err
	}

	s.metrics.RecordInvoiceAction(ctx, "create", "ok")
	s.metrics.RecordPageCacheEvent(ctx, "invalidate")
	return nil
}

// Update sets customer reference, amount and status on the matching
// row. Date and identifier are never modified. An id matching zero rows
// is ordinary success.
func (s *Service) Update(ctx context.Context, id string, input domain.InvoiceInput) error {
	if err := s.repo.Update(ctx, s.db, id, input.CustomerID, toMinorUnits(input.Amount), input.Status); err != nil {
		s.log.Warn("update invoice failed", zap.String("invoice_id", id), zap.Error(err))
		s.metrics.RecordInvoiceAction(ctx, "update", "error")
		return err
	}

	if err := s.cache.Invalidate(ctx, domain.ListingPath); err != nil {
		s.log.Warn("invalidate listing cache failed", zap.Error(err))
		s.metrics.RecordInvoiceAction(ctx, "update", "error")
		return err
	}

	s.metrics.RecordInvoiceAction(ctx, "update", "ok")
	s.metrics.RecordPageCacheEvent(ctx, "invalidate")
	return nil
}

// Delete removes the matching row; deleting an absent id succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		s.log.Warn("delete invoice failed", zap.String("invoice_id", id), zap.Error(err))
		s.metrics.RecordInvoiceAction(ctx, "delete", "error")
		return err
	}

	if err := s.cache.Invalidate(ctx, domain.ListingPath); err != nil {
		s.log.Warn("invalidate listing cache failed", zap.Error(err))
		s.metrics.RecordInvoiceAction(ctx, "delete", "error")
		return err
	}

	s.metrics.RecordInvoiceAction(ctx, "delete", "ok")
	s.metrics.RecordPageCacheEvent(ctx, "invalidate")
	return nil
}

func (s *Service) List(ctx context.Context, req domain.ListInvoicesRequest) (domain.ListInvoicesResponse, error) {
	page := req.Page.Normalize(defaultPageSize, maxPageSize)

	rows, err := s.repo.ListFiltered(ctx, s.db, req.Query, page)
	if err != nil {
		return domain.ListInvoicesResponse{}, err
	}

	count, err := s.repo.CountFiltered(ctx, s.db, req.Query)
	if err != nil {
		return domain.ListInvoicesResponse{}, err
	}

	return domain.ListInvoicesResponse{
		PageInfo: pagination.BuildPageInfo(page, count),
		Invoices: rows,
	}, nil
}

func (s *Service) TotalPages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountFiltered(ctx, s.db, query)
	if err != nil {
		return 0, err
	}
	return pagination.BuildPageInfo(pagination.Pagination{Page: 1, PageSize: defaultPageSize}, count).TotalPages, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.InvoiceDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.InvoiceDetail{}, domain.ErrInvalidID
	}

	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.InvoiceDetail{}, err
	}
	if invoice == nil {
		return domain.InvoiceDetail{}, domain.ErrNotFound
	}

	return domain.InvoiceDetail{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     float64(invoice.Amount) / 100,
		Status:     invoice.Status,
	}, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
