package service

import (
	"context"

	"github.com/acmelabs/facture/internal/customer/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("customer.service"),
		repo: p.Repo,
	}
}

func (s *Service) ListFields(ctx context.Context) ([]domain.CustomerField, error) {
	return s.repo.ListFields(ctx, s.db)
}

func (s *Service) ListFiltered(ctx context.Context, query string) ([]domain.CustomerRow, error) {
	return s.repo.ListFiltered(ctx, s.db, query)
}
