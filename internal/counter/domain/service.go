package domain

import (
	"context"
	"errors"
)

type SaveRequest struct {
	Name         string
	OperatorName string
}

type Service interface {
	// Current returns the device's counter identity, or nil when the
	// device has never been configured.
	Current(ctx context.Context) (*Counter, error)
	// Save creates the identity on first call. Later calls update it, but
	// once any sale exists the stored name is preserved regardless of what
	// the request carries; only the operator name may still change. The
	// sale count is re-checked inside the call, not trusted from the UI.
	Save(ctx context.Context, req SaveRequest) (Counter, error)
	// HasRecordedSales reports whether the ledger holds at least one sale,
	// which is when the name field locks.
	HasRecordedSales(ctx context.Context) (bool, error)
}

var ErrInvalidName = errors.New("invalid_name")
