package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, sale *Sale) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Sale, error)
}
