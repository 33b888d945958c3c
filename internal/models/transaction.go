package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a single income or expense entry owned by one user.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	Date        time.Time       `json:"date"`
	IsCash      bool            `json:"isCash"`
	ReceiptURL  *string         `json:"receiptUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ValidTransactionType reports whether kind is income or expense.
func ValidTransactionType(kind string) bool {
	return kind == TransactionIncome || kind == TransactionExpense
}
