package service

import (
	"context"
	"strings"
	"time"

	"github.com/fairstand/tillpoint/internal/counter/domain"
	salesdomain "github.com/fairstand/tillpoint/internal/sales/domain"
	"github.com/fairstand/tillpoint/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Store *store.Store
	Log   *zap.Logger
	Repo  domain.Repository
	Sales salesdomain.Repository
}

type Service struct {
	store *store.Store
	log   *zap.Logger
	repo  domain.Repository
	sales salesdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		store: p.Store,
		log:   p.Log.Named("counter.service"),
		repo:  p.Repo,
		sales: p.Sales,
	}
}

func (s *Service) Current(ctx context.Context) (*domain.Counter, error) {
	conn, err := s.store.Open(ctx)
	if err != nil {
		return nil, err
	}

	counters, err := s.repo.FindAll(ctx, conn)
	if err != nil {
		return nil, err
	}
	if len(counters) == 0 {
		return nil, nil
	}
	if len(counters) > 1 {
		// Should be impossible under correct usage; keep the lowest id and
		// surface the anomaly instead of hiding it.
		s.log.Warn("multiple counter records found, using lowest id",
			zap.Int("count", len(counters)),
			zap.Int64("id", counters[0].ID),
		)
	}
	return &counters[0], nil
}

func (s *Service) Save(ctx context.Context, req domain.SaveRequest) (domain.Counter, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Counter{}, domain.ErrInvalidName
	}
	operator := strings.TrimSpace(req.OperatorName)

	conn, err := s.store.Open(ctx)
	if err != nil {
		return domain.Counter{}, err
	}

	existing, err := s.Current(ctx)
	if err != nil {
		return domain.Counter{}, err
	}

	if existing == nil {
		counter := domain.Counter{
			Name:         name,
			OperatorName: operator,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.repo.Insert(ctx, conn, &counter); err != nil {
			return domain.Counter{}, err
		}
		s.log.Info("counter configured", zap.Int64("id", counter.ID), zap.String("name", counter.Name))
		return counter, nil
	}

	// Re-check the ledger inside the save: the name freeze is a store
	// invariant, not a UI courtesy.
	saleCount, err := s.sales.Count(ctx, conn)
	if err != nil {
		return domain.Counter{}, err
	}
	if saleCount > 0 {
		if name != existing.Name {
			s.log.Warn("counter rename ignored, sales already recorded",
				zap.String("stored", existing.Name),
				zap.String("requested", name),
				zap.Int64("sales", saleCount),
			)
		}
		name = existing.Name
	}

	existing.Name = name
	existing.OperatorName = operator
	if err := s.repo.Update(ctx, conn, existing); err != nil {
		return domain.Counter{}, err
	}
	return *existing, nil
}

func (s *Service) HasRecordedSales(ctx context.Context) (bool, error) {
	conn, err := s.store.Open(ctx)
	if err != nil {
		return false, err
	}
	count, err := s.sales.Count(ctx, conn)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
