package service

import (
	"context"
	"testing"

	"github.com/fairstand/tillpoint/internal/sales/domain"
	"github.com/fairstand/tillpoint/internal/sales/repository"
	"github.com/fairstand/tillpoint/internal/store"
	"github.com/fairstand/tillpoint/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()
	st := store.New(db.Config{Path: "file:sales_" + t.Name() + "?mode=memory&cache=shared"}, zap.NewNop())
	t.Cleanup(func() { _ = st.Close() })

	return New(Params{
		Store: st,
		Log:   zap.NewNop(),
		Repo:  repository.Provide(),
	})
}

func TestRecordAndCount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	var keys []int64
	for i := 0; i < 3; i++ {
		key, err := svc.Record(ctx, "Tea", 10)
		require.NoError(t, err)
		keys = append(keys, key)
	}

	count, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Keys are storage-assigned and strictly increasing.
	assert.Less(t, keys[0], keys[1])
	assert.Less(t, keys[1], keys[2])
}

func TestRecordSnapshotsItemAndPrice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, "Tea", 10)
	require.NoError(t, err)
	_, err = svc.Record(ctx, "Cake", 25)
	require.NoError(t, err)

	sales, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	byItem := make(map[string]domain.Sale, len(sales))
	for _, sale := range sales {
		byItem[sale.Item] = sale
	}
	assert.Equal(t, int64(10), byItem["Tea"].Price)
	assert.Equal(t, int64(25), byItem["Cake"].Price)
	assert.False(t, byItem["Tea"].Date.IsZero())
}

func TestRecordRejectsEmptyItem(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, "   ", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidItem)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
