package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/finance-be/internal/models"
)

func asset(kind, amount string) models.Asset {
	return models.Asset{Name: kind + " holding", Type: kind, Amount: decimal.RequireFromString(amount)}
}

func TestSummarizeEmpty(t *testing.T) {
	d := Summarize(nil, nil)
	assert.True(t, d.TotalNetWorth.IsZero())
	assert.Empty(t, d.NetWorthByType)
	assert.NotNil(t, d.Assets)
	assert.NotNil(t, d.RecentTransactions)
}

func TestSummarizeSumsExactly(t *testing.T) {
	assets := []models.Asset{
		asset("cash", "0.1"),
		asset("crypto", "1500.55"),
		asset("cash", "0.2"),
		asset("bank", "-20"),
	}
	d := Summarize(assets, nil)

	assert.Equal(t, "1480.85", d.TotalNetWorth.String())
	require.Len(t, d.NetWorthByType, 3)
	assert.Equal(t, "0.3", d.NetWorthByType["cash"].String())
	assert.Equal(t, "1500.55", d.NetWorthByType["crypto"].String())
	assert.Equal(t, "-20", d.NetWorthByType["bank"].String())
	assert.Len(t, d.Assets, 4)

	sum := decimal.Zero
	for _, v := range d.NetWorthByType {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(d.TotalNetWorth))
}

type stubStores struct {
	assets     []models.Asset
	recent     []models.Transaction
	err        error
	gotLimit   int
	gotUserIDs []string
}

func (s *stubStores) ListAssets(_ context.Context, userID string) ([]models.Asset, error) {
	s.gotUserIDs = append(s.gotUserIDs, userID)
	return s.assets, s.err
}

func (s *stubStores) RecentTransactions(_ context.Context, userID string, limit int) ([]models.Transaction, error) {
	s.gotUserIDs = append(s.gotUserIDs, userID)
	s.gotLimit = limit
	return s.recent, nil
}

func TestBuildReadsBothStoresForUser(t *testing.T) {
	stores := &stubStores{
		assets: []models.Asset{asset("cash", "100")},
		recent: []models.Transaction{{ID: "t1", Date: time.Now()}},
	}
	d, err := NewAggregator(stores, stores).Build(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, []string{"u1", "u1"}, stores.gotUserIDs)
	assert.Equal(t, RecentLimit, stores.gotLimit)
	assert.Equal(t, "100", d.TotalNetWorth.String())
	assert.Len(t, d.RecentTransactions, 1)
}

func TestBuildPropagatesStoreErrors(t *testing.T) {
	stores := &stubStores{err: errors.New("db down")}
	_, err := NewAggregator(stores, stores).Build(context.Background(), "u1")
	assert.ErrorContains(t, err, "db down")
}
