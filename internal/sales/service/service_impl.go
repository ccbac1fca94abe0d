package service

import (
	"context"
	"strings"
	"time"

	"github.com/fairstand/tillpoint/internal/sales/domain"
	"github.com/fairstand/tillpoint/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Store *store.Store
	Log   *zap.Logger
	Repo  domain.Repository
}

type Service struct {
	store *store.Store
	log   *zap.Logger
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		store: p.Store,
		log:   p.Log.Named("sales.service"),
		repo:  p.Repo,
	}
}

func (s *Service) Record(ctx context.Context, item string, price int64) (int64, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return 0, domain.ErrInvalidItem
	}

	conn, err := s.store.Open(ctx)
	if err != nil {
		return 0, err
	}

	sale := domain.Sale{
		Item:  item,
		Price: price,
		Date:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, conn, &sale); err != nil {
		return 0, err
	}

	s.log.Info("sale recorded",
		zap.Int64("key", sale.Key),
		zap.String("item", sale.Item),
		zap.Int64("price", sale.Price),
	)
	return sale.Key, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	conn, err := s.store.Open(ctx)
	if err != nil {
		return 0, err
	}
	return s.repo.Count(ctx, conn)
}

func (s *Service) List(ctx context.Context) ([]domain.Sale, error) {
	conn, err := s.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, conn)
}
