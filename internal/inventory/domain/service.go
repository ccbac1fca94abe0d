package domain

import (
	"context"
	"errors"
)

type AddRequest struct {
	Name  string
	Price int64
	Stock int64
}

type Service interface {
	// List returns the catalog in raw storage order; apply DisplayOrder
	// before rendering.
	List(ctx context.Context) ([]Item, error)
	// Add validates and persists a new active item, returning its id.
	Add(ctx context.Context, req AddRequest) (int64, error)
	// Update replaces the stored record with the same id. The name must
	// match the stored one; a missing id is ErrNotFound.
	Update(ctx context.Context, item Item) error
	// SetActive toggles retirement. Unknown ids are a silent no-op.
	SetActive(ctx context.Context, id int64, active bool) error
	// LowStock lists active items at or below the configured threshold.
	LowStock(ctx context.Context) ([]Item, error)
}

var (
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidPrice  = errors.New("invalid_price")
	ErrInvalidStock  = errors.New("invalid_stock")
	ErrNameImmutable = errors.New("name_immutable")
	ErrNotFound      = errors.New("not_found")
)
