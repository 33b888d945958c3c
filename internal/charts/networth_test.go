package charts

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestNetWorthByTypeRendersPNG(t *testing.T) {
	img, err := NetWorthByType(map[string]decimal.Decimal{
		"cash":   decimal.NewFromInt(1200),
		"crypto": decimal.RequireFromString("830.5"),
		"debt":   decimal.NewFromInt(-300),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestNetWorthByTypeNothingToPlot(t *testing.T) {
	_, err := NetWorthByType(nil)
	assert.ErrorIs(t, err, ErrNothingToPlot)

	_, err = NetWorthByType(map[string]decimal.Decimal{"debt": decimal.NewFromInt(-5), "empty": decimal.Zero})
	assert.ErrorIs(t, err, ErrNothingToPlot)
}
