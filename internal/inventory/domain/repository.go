package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]Item, error)
	// FindByID returns nil when no item has the given id.
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Item, error)
	Insert(ctx context.Context, db *gorm.DB, item *Item) error
	Update(ctx context.Context, db *gorm.DB, item *Item) error
}
