package models

import "time"

// User is an identity resolved from a Telegram account.
type User struct {
	ID         string    `json:"id"`
	TelegramID string    `json:"telegramId"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DefaultUserName is assigned when the Mini App does not send a display name.
const DefaultUserName = "User"

// Profile is the public view of a user returned by the /users endpoints.
type Profile struct {
	ID         string `json:"id"`
	TelegramID string `json:"telegramId"`
	Name       string `json:"name"`
}

// Profile strips bookkeeping fields from the user.
func (u User) Profile() Profile {
	return Profile{ID: u.ID, TelegramID: u.TelegramID, Name: u.Name}
}
