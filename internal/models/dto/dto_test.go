package dto

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/finance-be/internal/models"
)

func strPtr(s string) *string { return &s }

func TestFlexAcceptsScalars(t *testing.T) {
	var body struct {
		A *Flex `json:"a"`
		B *Flex `json:"b"`
		C *Flex `json:"c"`
		D *Flex `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"12.50","b":99.5,"c":true,"d":null}`), &body))
	assert.Equal(t, "12.50", body.A.String())
	assert.Equal(t, "99.5", body.B.String())
	assert.Equal(t, "true", body.C.String())
	assert.Nil(t, body.D)

	err := json.Unmarshal([]byte(`{"a":{"x":1}}`), &body)
	assert.Error(t, err)
}

func TestAssetInputNewAssetRejectsNonNumericAmount(t *testing.T) {
	in := AssetInput{Name: strPtr("Cash"), Type: strPtr("cash"), Amount: flexPtr("lots")}
	_, err := in.NewAsset("u1")

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "amount", vErr.Field)
}

func TestAssetInputNewAssetRequiresFields(t *testing.T) {
	_, err := AssetInput{Type: strPtr("cash"), Amount: flexPtr("1")}.NewAsset("u1")
	assert.ErrorContains(t, err, "name")

	_, err = AssetInput{Name: strPtr("Cash"), Amount: flexPtr("1")}.NewAsset("u1")
	assert.ErrorContains(t, err, "type")

	_, err = AssetInput{Name: strPtr("Cash"), Type: strPtr("cash")}.NewAsset("u1")
	assert.ErrorContains(t, err, "amount")
}

func TestAssetInputApplyKeepsUnspecifiedFields(t *testing.T) {
	existing := models.Asset{ID: "a1", UserID: "u1", Name: "Cash", Type: "cash", Amount: decimal.NewFromInt(100)}

	var in AssetInput
	require.NoError(t, json.Unmarshal([]byte(`{"description":"emergency fund"}`), &in))
	updated, err := in.Apply(existing)
	require.NoError(t, err)

	assert.Equal(t, "Cash", updated.Name)
	assert.Equal(t, "cash", updated.Type)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(100)))
	require.NotNil(t, updated.Description)
	assert.Equal(t, "emergency fund", *updated.Description)
}

func TestAssetInputApplyClearsDescription(t *testing.T) {
	existing := models.Asset{Name: "Cash", Type: "cash", Description: strPtr("old")}
	updated, err := AssetInput{Description: strPtr("")}.Apply(existing)
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
}

func TestTransactionInputNewTransaction(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tx, err := TransactionInput{
		Amount:   flexPtr("-250.75"),
		Type:     strPtr("Expense"),
		Category: strPtr("food"),
		IsCash:   flexPtr("true"),
	}.NewTransaction("u1", now)
	require.NoError(t, err)
	assert.Equal(t, "expense", tx.Type)
	assert.Equal(t, "-250.75", tx.Amount.String())
	assert.Equal(t, now, tx.Date)
	assert.True(t, tx.IsCash)
	assert.Nil(t, tx.Description)

	_, err = TransactionInput{Amount: flexPtr("1"), Type: strPtr("gift"), Category: strPtr("x")}.NewTransaction("u1", now)
	assert.ErrorContains(t, err, "type")

	_, err = TransactionInput{Amount: flexPtr("1"), Type: strPtr("income"), Category: strPtr("x"), Date: flexPtr("yesterday")}.NewTransaction("u1", now)
	assert.ErrorContains(t, err, "date")
}

func TestTransactionInputFromFormOnlySetsPostedFields(t *testing.T) {
	form := url.Values{"amount": {"15"}, "isCash": {"false"}}
	in := TransactionInputFromForm(form)

	existing := models.Transaction{
		Amount:   decimal.NewFromInt(10),
		Type:     models.TransactionExpense,
		Category: "transport",
		IsCash:   true,
		Date:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	updated, err := in.Apply(existing)
	require.NoError(t, err)
	assert.Equal(t, "15", updated.Amount.String())
	assert.False(t, updated.IsCash)
	assert.Equal(t, "transport", updated.Category)
	assert.Equal(t, existing.Date, updated.Date)
	assert.Nil(t, in.Description)
}

func TestTransactionDateLayouts(t *testing.T) {
	for _, raw := range []string{"2026-05-04", "2026-05-04T08:30", "2026-05-04T08:30:00", "2026-05-04T08:30:00Z"} {
		date, err := parseDate("date", flexPtr(raw))
		require.NoError(t, err, raw)
		assert.Equal(t, 2026, date.Year())
		assert.Equal(t, time.May, date.Month())
	}
}

func TestSetRateRequestParseRate(t *testing.T) {
	rate, err := SetRateRequest{Rate: flexPtr("50000")}.ParseRate()
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(50000)))

	_, err = SetRateRequest{Rate: flexPtr("0.000000000000000001")}.ParseRate()
	require.NoError(t, err)

	for _, raw := range []string{"abc", "0", "-5", "0.0000000000000000001", "1000000000000000000"} {
		_, err = SetRateRequest{Rate: flexPtr(raw)}.ParseRate()
		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr), "rate %q", raw)
	}
	_, err = SetRateRequest{}.ParseRate()
	assert.Error(t, err)
}

func TestAmountBounds(t *testing.T) {
	for _, raw := range []string{"9999999999999999.99999999", "-9999999999999999", "0.00000001", "12.50000000000"} {
		amount, err := parseAmount("amount", flexPtr(raw))
		require.NoError(t, err, raw)
		assert.True(t, amount.Equal(decimal.RequireFromString(raw)), raw)
	}

	for raw, message := range map[string]string{
		"0.123456789":        "decimal places",
		"10000000000000000":  "digits before the decimal point",
		"-10000000000000000": "digits before the decimal point",
	} {
		_, err := parseAmount("amount", flexPtr(raw))
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr), raw)
		assert.Equal(t, "amount", vErr.Field)
		assert.Contains(t, vErr.Message, message)
	}
}

func TestAuthRequestTelegramIdentity(t *testing.T) {
	for raw, want := range map[string]string{
		"123456789": "123456789",
		" 42 ":      "42",
		"0042":      "42",
		"77.0":      "77",
	} {
		id, err := AuthRequest{TelegramID: flexPtr(raw)}.TelegramIdentity()
		require.NoError(t, err, raw)
		assert.Equal(t, want, id, raw)
	}

	for _, raw := range []string{"true", "false", "0", "-1", "1.5", "abc", ""} {
		_, err := AuthRequest{TelegramID: flexPtr(raw)}.TelegramIdentity()
		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr), "telegramId %q", raw)
	}

	_, err := AuthRequest{}.TelegramIdentity()
	assert.EqualError(t, err, "telegram ID is required")
}
