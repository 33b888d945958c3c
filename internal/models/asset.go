package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is something a user owns, counted towards their net worth.
// Type is a free-form label such as cash, crypto, product or bank.
type Asset struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
