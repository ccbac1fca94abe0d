package service

import (
	"context"
	"testing"
	"time"

	"github.com/fairstand/tillpoint/internal/counter/domain"
	"github.com/fairstand/tillpoint/internal/counter/repository"
	salesrepo "github.com/fairstand/tillpoint/internal/sales/repository"
	"github.com/fairstand/tillpoint/internal/store"
	"github.com/fairstand/tillpoint/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (domain.Service, *store.Store) {
	t.Helper()
	st := store.New(db.Config{Path: "file:counter_" + t.Name() + "?mode=memory&cache=shared"}, zap.NewNop())
	t.Cleanup(func() { _ = st.Close() })

	svc := New(Params{
		Store: st,
		Log:   zap.NewNop(),
		Repo:  repository.Provide(),
		Sales: salesrepo.Provide(),
	})
	return svc, st
}

func recordSale(t *testing.T, st *store.Store, item string, price int64) {
	t.Helper()
	conn, err := st.Open(context.Background())
	require.NoError(t, err)
	require.NoError(t, conn.Exec(
		`INSERT INTO sales (item, price, date) VALUES (?, ?, ?)`,
		item, price, time.Now().UTC(),
	).Error)
}

func TestCurrentOnFreshDevice(t *testing.T) {
	svc, _ := newTestService(t)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSaveCreatesIdentity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, domain.SaveRequest{Name: "Counter 1", OperatorName: "Maria"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "Counter 1", saved.Name)
	assert.Equal(t, "Maria", saved.OperatorName)
	assert.False(t, saved.CreatedAt.IsZero())

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Counter 1", current.Name)
}

func TestSaveRejectsEmptyName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.SaveRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSaveUpdatesWhileNoSales(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, domain.SaveRequest{Name: "Counter 1"})
	require.NoError(t, err)

	updated, err := svc.Save(ctx, domain.SaveRequest{Name: "Counter 2", OperatorName: "John"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "Counter 2", updated.Name)
	assert.Equal(t, "John", updated.OperatorName)
}

func TestNameFrozenOnceSalesExist(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.SaveRequest{Name: "Counter 1", OperatorName: "Maria"})
	require.NoError(t, err)

	recordSale(t, st, "Tea", 10)
	recordSale(t, st, "Tea", 10)
	recordSale(t, st, "Tea", 10)

	has, err := svc.HasRecordedSales(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	// The rename is ignored, but the operator change still lands.
	saved, err := svc.Save(ctx, domain.SaveRequest{Name: "Counter 2", OperatorName: "John"})
	require.NoError(t, err)
	assert.Equal(t, "Counter 1", saved.Name)
	assert.Equal(t, "John", saved.OperatorName)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Counter 1", current.Name)
	assert.Equal(t, "John", current.OperatorName)
}

func TestHasRecordedSalesOnFreshDevice(t *testing.T) {
	svc, _ := newTestService(t)

	has, err := svc.HasRecordedSales(context.Background())
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCurrentPicksLowestIDWhenDuplicated(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	conn, err := st.Open(ctx)
	require.NoError(t, err)
	now := time.Now().UTC()
	require.NoError(t, conn.Exec(
		`INSERT INTO counter (name, operator_name, created_at) VALUES (?, ?, ?)`,
		"First", "", now,
	).Error)
	require.NoError(t, conn.Exec(
		`INSERT INTO counter (name, operator_name, created_at) VALUES (?, ?, ?)`,
		"Second", "", now,
	).Error)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "First", current.Name)
}
