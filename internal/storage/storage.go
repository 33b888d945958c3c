package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/finance-be/internal/models"
)

// ErrNotFound indicates a record does not exist or is not owned by the caller.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore persists Telegram-backed identities.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByTelegramID(ctx context.Context, telegramID string) (models.User, error)
	UpdateUserName(ctx context.Context, id, name string) (models.User, error)
}

// TransactionStore persists transactions. Every lookup is scoped to the owning user.
type TransactionStore interface {
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	RecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, userID, id string) (models.Transaction, error)
	CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id string) error
}

// AssetStore persists assets. Every lookup is scoped to the owning user.
type AssetStore interface {
	ListAssets(ctx context.Context, userID string) ([]models.Asset, error)
	GetAsset(ctx context.Context, userID, id string) (models.Asset, error)
	CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error)
	UpdateAsset(ctx context.Context, asset models.Asset) (models.Asset, error)
	DeleteAsset(ctx context.Context, userID, id string) error
}

// RateStore persists globally shared crypto rates keyed by symbol.
type RateStore interface {
	ListRates(ctx context.Context) ([]models.CryptoRate, error)
	GetRate(ctx context.Context, symbol string) (models.CryptoRate, error)
	UpsertRate(ctx context.Context, rate models.CryptoRate) (models.CryptoRate, error)
}

// Store is everything the HTTP layer needs from a backend.
type Store interface {
	UserStore
	TransactionStore
	AssetStore
	RateStore
	Close()
}
