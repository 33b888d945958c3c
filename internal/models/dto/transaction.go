package dto

import (
	"net/url"
	"strings"
	"time"

	"github.com/hongminglow/finance-be/internal/models"
)

// TransactionInput is the body of POST /transactions and PUT /transactions/{id},
// sent either as JSON or as multipart form fields next to a receipt file.
type TransactionInput struct {
	Amount      *Flex   `json:"amount"`
	Type        *string `json:"type"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Date        *Flex   `json:"date"`
	IsCash      *Flex   `json:"isCash"`
}

// TransactionInputFromForm picks the transaction fields out of form values,
// leaving fields that were not posted nil.
func TransactionInputFromForm(form url.Values) TransactionInput {
	var in TransactionInput
	str := func(key string) *string {
		if _, ok := form[key]; !ok {
			return nil
		}
		v := form.Get(key)
		return &v
	}
	flex := func(key string) *Flex {
		if _, ok := form[key]; !ok {
			return nil
		}
		return flexPtr(form.Get(key))
	}
	in.Amount = flex("amount")
	in.Type = str("type")
	in.Category = str("category")
	in.Description = str("description")
	in.Date = flex("date")
	in.IsCash = flex("isCash")
	return in
}

// NewTransaction validates a create request. A missing date defaults to now.
func (in TransactionInput) NewTransaction(userID string, now time.Time) (models.Transaction, error) {
	amount, err := parseAmount("amount", in.Amount)
	if err != nil {
		return models.Transaction{}, err
	}
	kind := strings.ToLower(trimmed(in.Type))
	if !models.ValidTransactionType(kind) {
		return models.Transaction{}, invalid("type", "must be %q or %q", models.TransactionIncome, models.TransactionExpense)
	}
	category := trimmed(in.Category)
	if category == "" {
		return models.Transaction{}, invalid("category", "is required")
	}
	date := now.UTC()
	if !empty(in.Date) {
		if date, err = parseDate("date", in.Date); err != nil {
			return models.Transaction{}, err
		}
	}
	return models.Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        kind,
		Category:    category,
		Description: optional(in.Description),
		Date:        date,
		IsCash:      in.IsCash != nil && parseBool(in.IsCash),
	}, nil
}

// Apply merges the supplied fields onto an existing transaction. Blank values
// keep the stored ones, except description which is replaced whenever present.
func (in TransactionInput) Apply(tx models.Transaction) (models.Transaction, error) {
	if !empty(in.Amount) {
		amount, err := parseAmount("amount", in.Amount)
		if err != nil {
			return models.Transaction{}, err
		}
		tx.Amount = amount
	}
	if kind := strings.ToLower(trimmed(in.Type)); kind != "" {
		if !models.ValidTransactionType(kind) {
			return models.Transaction{}, invalid("type", "must be %q or %q", models.TransactionIncome, models.TransactionExpense)
		}
		tx.Type = kind
	}
	if v := trimmed(in.Category); v != "" {
		tx.Category = v
	}
	if in.Description != nil {
		tx.Description = optional(in.Description)
	}
	if !empty(in.Date) {
		date, err := parseDate("date", in.Date)
		if err != nil {
			return models.Transaction{}, err
		}
		tx.Date = date
	}
	if !empty(in.IsCash) {
		tx.IsCash = parseBool(in.IsCash)
	}
	return tx, nil
}
