package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// FindAll returns every counter record ordered by id ascending. A
	// correctly used store holds zero or one.
	FindAll(ctx context.Context, db *gorm.DB) ([]Counter, error)
	Insert(ctx context.Context, db *gorm.DB, counter *Counter) error
	Update(ctx context.Context, db *gorm.DB, counter *Counter) error
}
