package repository

import (
	"context"

	"github.com/fairstand/tillpoint/internal/sales/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, sale *domain.Sale) error {
	return db.WithContext(ctx).Create(sale).Error
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Sale{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := db.WithContext(ctx).Model(&domain.Sale{}).Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}
