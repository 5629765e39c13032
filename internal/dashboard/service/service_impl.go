package service

import (
	"context"

	"github.com/acmelabs/facture/internal/dashboard/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const latestInvoicesLimit = 5

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("dashboard.service"),
	}
}

// Overview collects the card totals, the latest invoices and the
// monthly revenue series in three read-only queries.
func (s *Service) Overview(ctx context.Context) (domain.Overview, error) {
	cards, err := s.cardData(ctx)
	if err != nil {
		return domain.Overview{}, err
	}

	latest, err := s.latestInvoices(ctx)
	if err != nil {
		return domain.Overview{}, err
	}

	revenue, err := s.revenueSeries(ctx)
	if err != nil {
		return domain.Overview{}, err
	}

	return domain.Overview{
		Cards:          cards,
		LatestInvoices: latest,
		Revenue:        revenue,
	}, nil
}

func (s *Service) cardData(ctx context.Context) (domain.CardData, error) {
	var cards domain.CardData
	err := s.db.WithContext(ctx).Raw(
		`SELECT (SELECT COUNT(*) FROM invoices) AS invoice_count,
		        (SELECT COUNT(*) FROM customers) AS customer_count,
		        COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS total_collected,
		        COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS total_pending
		 FROM invoices`,
	).Scan(&cards).Error
	if err != nil {
		return domain.CardData{}, err
	}
	return cards, nil
}

func (s *Service) latestInvoices(ctx context.Context) ([]domain.LatestInvoice, error) {
	var latest []domain.LatestInvoice
	err := s.db.WithContext(ctx).Raw(
		`SELECT invoices.id,
		        customers.name,
		        customers.email,
		        customers.image_url,
		        invoices.amount
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 ORDER BY invoices.date DESC, invoices.id DESC
		 LIMIT ?`,
		latestInvoicesLimit,
	).Scan(&latest).Error
	if err != nil {
		return nil, err
	}
	return latest, nil
}

func (s *Service) revenueSeries(ctx context.Context) ([]domain.RevenuePoint, error) {
	var series []domain.RevenuePoint
	err := s.db.WithContext(ctx).Raw(
		`SELECT month, revenue FROM revenue`,
	).Scan(&series).Error
	if err != nil {
		return nil, err
	}
	return series, nil
}
