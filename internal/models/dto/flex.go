package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Flex holds a scalar JSON value (string, number or boolean) as its text form.
// The Mini App sends amounts and ids either quoted or bare, and multipart forms
// only carry text, so parsing is deferred to the field's consumer.
type Flex string

// UnmarshalJSON accepts strings, numbers and booleans.
func (f *Flex) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Flex(s)
	case '{', '[':
		return errors.New("expected a scalar value")
	default:
		*f = Flex(data)
	}
	return nil
}

// String returns the trimmed text.
func (f Flex) String() string {
	return strings.TrimSpace(string(f))
}

func flexPtr(v string) *Flex {
	f := Flex(v)
	return &f
}

// empty reports whether the field was omitted or sent blank.
func empty(f *Flex) bool {
	return f == nil || f.String() == ""
}

// Bounds match the NUMERIC(24,8) amount and NUMERIC(36,18) rate columns so every
// store accepts exactly the same values.
const (
	amountScale        = 8
	amountIntegerLimit = 16
	rateScale          = 18
	rateIntegerLimit   = 18
)

func parseAmount(field string, f *Flex) (decimal.Decimal, error) {
	if empty(f) {
		return decimal.Zero, invalid(field, "is required")
	}
	amount, err := decimal.NewFromString(f.String())
	if err != nil {
		return decimal.Zero, invalid(field, "must be a number, got %q", f.String())
	}
	if err := checkBounds(field, amount, amountScale, amountIntegerLimit); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// checkBounds rejects values with more than scale fractional digits or with
// more than integerDigits digits before the decimal point.
func checkBounds(field string, d decimal.Decimal, scale int32, integerDigits int32) error {
	if !d.Equal(d.Truncate(scale)) {
		return invalid(field, "must have at most %d decimal places", scale)
	}
	if d.Abs().GreaterThanOrEqual(decimal.New(1, integerDigits)) {
		return invalid(field, "must have at most %d digits before the decimal point", integerDigits)
	}
	return nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDate(field string, f *Flex) (time.Time, error) {
	raw := f.String()
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, invalid(field, "unrecognized date %q", raw)
}

func parseBool(f *Flex) bool {
	return strings.EqualFold(f.String(), "true")
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
