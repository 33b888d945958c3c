package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hongminglow/finance-be/internal/models"
)

// AuthRequest is sent by the Mini App with the Telegram user it was opened by.
type AuthRequest struct {
	TelegramID *Flex  `json:"telegramId"`
	Name       string `json:"name"`
}

// TelegramIdentity returns the caller's Telegram id as canonical decimal text.
// Only positive integers are accepted, as a bare number or a digit string, so
// 123, "123" and 123.0 resolve to the same user and true, 0 or "abc" are rejected.
func (in AuthRequest) TelegramIdentity() (string, error) {
	if empty(in.TelegramID) {
		return "", &ValidationError{Message: "telegram ID is required"}
	}
	id, err := decimal.NewFromString(in.TelegramID.String())
	if err != nil || !id.IsInteger() || !id.IsPositive() {
		return "", invalid("telegramId", "must be a positive integer, got %q", in.TelegramID.String())
	}
	return id.String(), nil
}

// AuthResponse carries the bearer token for subsequent requests.
type AuthResponse struct {
	Token string         `json:"token"`
	User  models.Profile `json:"user"`
}

// UpdateProfileRequest changes the display name; blank keeps the current one.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}
