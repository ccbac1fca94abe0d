package domain

import (
	"context"
	"errors"
)

// Service is the append-only sales ledger. There are deliberately no update
// or delete operations anywhere on this surface: once recorded, a sale can
// never be silently altered.
type Service interface {
	// Record appends a sale with the current timestamp and returns the
	// assigned key. It does not touch inventory stock; decrementing stock
	// is the caller's concern.
	Record(ctx context.Context, item string, price int64) (int64, error)
	// Count reports the total number of recorded sales.
	Count(ctx context.Context) (int64, error)
	// List returns all sales in storage order. Chronological ordering for
	// history display is the caller's concern.
	List(ctx context.Context) ([]Sale, error)
}

var ErrInvalidItem = errors.New("invalid_item")
