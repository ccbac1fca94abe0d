package service

import (
	"context"
	"strings"
	"time"

	"github.com/fairstand/tillpoint/internal/config"
	"github.com/fairstand/tillpoint/internal/inventory/domain"
	"github.com/fairstand/tillpoint/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Store  *store.Store
	Log    *zap.Logger
	Repo   domain.Repository
	Policy *config.PolicyHolder
}

type Service struct {
	store  *store.Store
	log    *zap.Logger
	repo   domain.Repository
	policy *config.PolicyHolder
}

func New(p Params) domain.Service {
	return &Service{
		store:  p.Store,
		log:    p.Log.Named("inventory.service"),
		repo:   p.Repo,
		policy: p.Policy,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	conn, err := s.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, conn)
}

func (s *Service) Add(ctx context.Context, req domain.AddRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, domain.ErrInvalidName
	}
	if req.Price <= 0 {
		return 0, domain.ErrInvalidPrice
	}
	if req.Stock < 0 {
		return 0, domain.ErrInvalidStock
	}

	conn, err := s.store.Open(ctx)
	if err != nil {
		return 0, err
	}

	item := domain.Item{
		Name:      name,
		Price:     req.Price,
		Stock:     req.Stock,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, conn, &item); err != nil {
		return 0, err
	}

	s.log.Info("item added",
		zap.Int64("id", item.ID),
		zap.String("name", item.Name),
		zap.Int64("stock", item.Stock),
	)
	return item.ID, nil
}

func (s *Service) Update(ctx context.Context, item domain.Item) error {
	conn, err := s.store.Open(ctx)
	if err != nil {
		return err
	}

	stored, err := s.repo.FindByID(ctx, conn, item.ID)
	if err != nil {
		return err
	}
	if stored == nil {
		return domain.ErrNotFound
	}
	if item.Name != stored.Name {
		return domain.ErrNameImmutable
	}

	return s.repo.Update(ctx, conn, &item)
}

func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	conn, err := s.store.Open(ctx)
	if err != nil {
		return err
	}

	stored, err := s.repo.FindByID(ctx, conn, id)
	if err != nil {
		return err
	}
	if stored == nil {
		// Unknown id is a no-op by contract, not an error.
		return nil
	}

	stored.IsActive = active
	return s.repo.Update(ctx, conn, stored)
}

func (s *Service) LowStock(ctx context.Context) ([]domain.Item, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	threshold := int64(s.policy.Get().LowStockThreshold)
	low := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.IsActive && item.Stock <= threshold {
			low = append(low, item)
		}
	}
	return low, nil
}
