package repository

import (
	"context"

	"github.com/fairstand/tillpoint/internal/counter/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Counter, error) {
	var counters []domain.Counter
	err := db.WithContext(ctx).
		Model(&domain.Counter{}).
		Order("id asc").
		Find(&counters).Error
	if err != nil {
		return nil, err
	}
	return counters, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, counter *domain.Counter) error {
	return db.WithContext(ctx).Create(counter).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, counter *domain.Counter) error {
	return db.WithContext(ctx).Exec(
		`UPDATE counter SET name = ?, operator_name = ? WHERE id = ?`,
		counter.Name,
		counter.OperatorName,
		counter.ID,
	).Error
}
