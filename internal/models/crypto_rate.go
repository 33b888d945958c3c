package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CryptoRate is the USD price of one unit of a crypto asset. Rates are shared by all users.
type CryptoRate struct {
	Symbol    string          `json:"symbol"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NormalizeSymbol trims and uppercases a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
