package repository

import (
	"context"

	"github.com/fairstand/tillpoint/internal/inventory/domain"
	"github.com/fairstand/tillpoint/pkg/db"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, conn *gorm.DB) ([]domain.Item, error) {
	var items []domain.Item
	err := conn.WithContext(ctx).Model(&domain.Item{}).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, conn *gorm.DB, id int64) (*domain.Item, error) {
	var item domain.Item
	err := conn.WithContext(ctx).
		Model(&domain.Item{}).
		Where("id = ?", id).
		First(&item).Error
	if db.IsNotFoundErr(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, item *domain.Item) error {
	return conn.WithContext(ctx).Create(item).Error
}

func (r *repo) Update(ctx context.Context, conn *gorm.DB, item *domain.Item) error {
	return conn.WithContext(ctx).Exec(
		`UPDATE items SET name = ?, price = ?, stock = ?, is_active = ?, created_at = ? WHERE id = ?`,
		item.Name,
		item.Price,
		item.Stock,
		item.IsActive,
		item.CreatedAt,
		item.ID,
	).Error
}
