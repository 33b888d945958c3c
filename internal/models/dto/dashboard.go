package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hongminglow/finance-be/internal/models"
)

// Dashboard is the aggregate returned by GET /users/dashboard.
type Dashboard struct {
	TotalNetWorth      decimal.Decimal            `json:"totalNetWorth"`
	NetWorthByType     map[string]decimal.Decimal `json:"netWorthByType"`
	RecentTransactions []models.Transaction       `json:"recentTransactions"`
	Assets             []models.Asset             `json:"assets"`
}

// MessageResponse acknowledges operations without a body, such as deletes.
type MessageResponse struct {
	Message string `json:"message"`
}
