// Package dashboard derives a user's net-worth summary from their assets and transactions.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hongminglow/finance-be/internal/models"
	"github.com/hongminglow/finance-be/internal/models/dto"
)

// RecentLimit is how many transactions the dashboard shows.
const RecentLimit = 5

// AssetLister reads a user's assets.
type AssetLister interface {
	ListAssets(ctx context.Context, userID string) ([]models.Asset, error)
}

// RecentTransactionLister reads a user's newest transactions.
type RecentTransactionLister interface {
	RecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
}

// Aggregator recomputes the dashboard on every call.
type Aggregator struct {
	assets       AssetLister
	transactions RecentTransactionLister
}

// NewAggregator builds an aggregator over the given stores.
func NewAggregator(assets AssetLister, transactions RecentTransactionLister) *Aggregator {
	return &Aggregator{assets: assets, transactions: transactions}
}

// Build loads the user's data and summarizes it.
func (a *Aggregator) Build(ctx context.Context, userID string) (dto.Dashboard, error) {
	assets, err := a.assets.ListAssets(ctx, userID)
	if err != nil {
		return dto.Dashboard{}, fmt.Errorf("list assets: %w", err)
	}
	recent, err := a.transactions.RecentTransactions(ctx, userID, RecentLimit)
	if err != nil {
		return dto.Dashboard{}, fmt.Errorf("recent transactions: %w", err)
	}
	return Summarize(assets, recent), nil
}

// Summarize totals asset amounts overall and per asset type. Amounts are
// assumed to share one currency.
func Summarize(assets []models.Asset, recent []models.Transaction) dto.Dashboard {
	byType := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, asset := range assets {
		total = total.Add(asset.Amount)
		byType[asset.Type] = byType[asset.Type].Add(asset.Amount)
	}
	if assets == nil {
		assets = []models.Asset{}
	}
	if recent == nil {
		recent = []models.Transaction{}
	}
	return dto.Dashboard{
		TotalNetWorth:      total,
		NetWorthByType:     byType,
		RecentTransactions: recent,
		Assets:             assets,
	}
}
