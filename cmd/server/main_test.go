package main

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/finance-be/internal/models"
)

func TestConfigureJSONEncodesAmountsAsNumbers(t *testing.T) {
	previous := decimal.MarshalJSONWithoutQuotes
	t.Cleanup(func() { decimal.MarshalJSONWithoutQuotes = previous })

	configureJSON()

	data, err := json.Marshal(models.Asset{Name: "Cash", Amount: decimal.RequireFromString("100.50")})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"amount":100.5`)
	assert.Contains(t, string(data), `"description":null`)
}
