// Package charts renders dashboard breakdowns as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
)

// ErrNothingToPlot means there are no positive values to draw.
var ErrNothingToPlot = errors.New("nothing to plot")

// NetWorthByType draws a pie chart with one slice per asset type. Types whose
// total is zero or negative cannot be drawn as a slice and are left out.
func NetWorthByType(byType map[string]decimal.Decimal) ([]byte, error) {
	types := make([]string, 0, len(byType))
	for kind, amount := range byType {
		if amount.IsPositive() {
			types = append(types, kind)
		}
	}
	if len(types) == 0 {
		return nil, ErrNothingToPlot
	}
	sort.Strings(types)

	values := make([]chart.Value, 0, len(types))
	for _, kind := range types {
		amount := byType[kind]
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s", kind, amount.StringFixed(2)),
			Value: amount.InexactFloat64(),
		})
	}

	pie := chart.PieChart{
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 40, Right: 40, Bottom: 40},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer(nil)
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render net worth chart: %w", err)
	}
	return buffer.Bytes(), nil
}
