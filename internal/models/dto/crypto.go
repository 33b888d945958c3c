package dto

import (
	"github.com/shopspring/decimal"
)

// UpdateRatesRequest lists the symbols to refresh from the pricing API.
type UpdateRatesRequest struct {
	Symbols []string `json:"symbols"`
}

// SetRateRequest manually overrides a symbol's rate.
type SetRateRequest struct {
	Rate *Flex `json:"rate"`
}

// ParseRate returns the requested rate, which must be a positive number.
func (in SetRateRequest) ParseRate() (decimal.Decimal, error) {
	if empty(in.Rate) {
		return decimal.Zero, &ValidationError{Message: "valid rate is required"}
	}
	rate, err := decimal.NewFromString(in.Rate.String())
	if err != nil || !rate.IsPositive() {
		return decimal.Zero, &ValidationError{Message: "valid rate is required"}
	}
	if err := checkBounds("rate", rate, rateScale, rateIntegerLimit); err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}
