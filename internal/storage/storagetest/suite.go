// Package storagetest holds the behavioural suite every storage.Store backend must pass.
package storagetest

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hongminglow/finance-be/internal/models"
	"github.com/hongminglow/finance-be/internal/storage"
)

// StoreSuite runs the shared store contract against a fresh backend per test.
type StoreSuite struct {
	suite.Suite
	NewStore func() (storage.Store, error)

	store storage.Store
	ctx   context.Context
	alice models.User
	bob   models.User
}

// SetupTest opens a backend and seeds two users.
func (s *StoreSuite) SetupTest() {
	store, err := s.NewStore()
	require.NoError(s.T(), err, "failed to create store")
	s.store = store
	s.ctx = context.Background()

	s.alice, err = store.CreateUser(s.ctx, models.User{TelegramID: s.uniqueTelegramID("alice"), Name: "Alice"})
	require.NoError(s.T(), err)
	s.bob, err = store.CreateUser(s.ctx, models.User{TelegramID: s.uniqueTelegramID("bob"), Name: "Bob"})
	require.NoError(s.T(), err)
}

// TearDownTest closes the backend.
func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		s.store.Close()
	}
}

func (s *StoreSuite) uniqueTelegramID(prefix string) string {
	return prefix + "-" + time.Now().Format("150405.000000000")
}

func (s *StoreSuite) TestUserLookups() {
	found, err := s.store.FindUserByTelegramID(s.ctx, s.alice.TelegramID)
	s.Require().NoError(err)
	s.Equal(s.alice.ID, found.ID)

	found, err = s.store.FindUserByID(s.ctx, s.bob.ID)
	s.Require().NoError(err)
	s.Equal("Bob", found.Name)

	_, err = s.store.FindUserByID(s.ctx, "missing")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StoreSuite) TestCreateUserDuplicateTelegramID() {
	_, err := s.store.CreateUser(s.ctx, models.User{TelegramID: s.alice.TelegramID, Name: "Impostor"})
	s.ErrorIs(err, storage.ErrAlreadyExists)
}

func (s *StoreSuite) TestUpdateUserName() {
	updated, err := s.store.UpdateUserName(s.ctx, s.alice.ID, "Alicia")
	s.Require().NoError(err)
	s.Equal("Alicia", updated.Name)
	s.Equal(s.alice.TelegramID, updated.TelegramID)

	_, err = s.store.UpdateUserName(s.ctx, "missing", "x")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StoreSuite) newTransaction(user models.User, amount int64, date time.Time) models.Transaction {
	desc := "lunch"
	tx, err := s.store.CreateTransaction(s.ctx, models.Transaction{
		UserID:      user.ID,
		Amount:      decimal.NewFromInt(amount),
		Type:        models.TransactionExpense,
		Category:    "food",
		Description: &desc,
		Date:        date,
		IsCash:      true,
	})
	s.Require().NoError(err)
	return tx
}

func (s *StoreSuite) TestCreateAndGetTransaction() {
	date := time.Date(2026, 2, 3, 12, 30, 0, 0, time.UTC)
	created := s.newTransaction(s.alice, 42, date)
	s.NotEmpty(created.ID)

	got, err := s.store.GetTransaction(s.ctx, s.alice.ID, created.ID)
	s.Require().NoError(err)
	s.True(got.Amount.Equal(decimal.NewFromInt(42)), "amount = %s", got.Amount)
	s.Equal("food", got.Category)
	s.True(got.Date.Equal(date), "date = %s", got.Date)
	s.True(got.IsCash)
	s.Require().NotNil(got.Description)
	s.Equal("lunch", *got.Description)
	s.Nil(got.ReceiptURL)
}

func (s *StoreSuite) TestTransactionsAreInvisibleToOtherUsers() {
	tx := s.newTransaction(s.alice, 10, time.Now().UTC())

	_, err := s.store.GetTransaction(s.ctx, s.bob.ID, tx.ID)
	s.ErrorIs(err, storage.ErrNotFound)

	hijack := tx
	hijack.UserID = s.bob.ID
	hijack.Amount = decimal.NewFromInt(999)
	_, err = s.store.UpdateTransaction(s.ctx, hijack)
	s.ErrorIs(err, storage.ErrNotFound)

	s.ErrorIs(s.store.DeleteTransaction(s.ctx, s.bob.ID, tx.ID), storage.ErrNotFound)
	s.ErrorIs(s.store.DeleteTransaction(s.ctx, s.alice.ID, "missing"), storage.ErrNotFound)

	list, err := s.store.ListTransactions(s.ctx, s.bob.ID)
	s.Require().NoError(err)
	s.Empty(list)

	got, err := s.store.GetTransaction(s.ctx, s.alice.ID, tx.ID)
	s.Require().NoError(err)
	s.True(got.Amount.Equal(decimal.NewFromInt(10)))
}

func (s *StoreSuite) TestListTransactionsNewestFirst() {
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		s.newTransaction(s.alice, int64(i+1), base.Add(time.Duration(i)*24*time.Hour))
	}

	list, err := s.store.ListTransactions(s.ctx, s.alice.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 7)
	for i := 1; i < len(list); i++ {
		s.False(list[i].Date.After(list[i-1].Date), "transactions out of order at %d", i)
	}

	recent, err := s.store.RecentTransactions(s.ctx, s.alice.ID, 5)
	s.Require().NoError(err)
	s.Require().Len(recent, 5)
	s.True(recent[0].Amount.Equal(decimal.NewFromInt(7)))
	s.True(recent[4].Amount.Equal(decimal.NewFromInt(3)))
}

func (s *StoreSuite) TestUpdateAndDeleteTransaction() {
	tx := s.newTransaction(s.alice, 10, time.Now().UTC())

	receipt := "/uploads/1-receipt.png"
	tx.Amount = decimal.RequireFromString("-12.34")
	tx.Type = models.TransactionIncome
	tx.ReceiptURL = &receipt
	tx.Description = nil
	updated, err := s.store.UpdateTransaction(s.ctx, tx)
	s.Require().NoError(err)
	s.True(updated.Amount.Equal(decimal.RequireFromString("-12.34")))
	s.Equal(models.TransactionIncome, updated.Type)
	s.Require().NotNil(updated.ReceiptURL)
	s.Equal(receipt, *updated.ReceiptURL)
	s.Nil(updated.Description)

	s.Require().NoError(s.store.DeleteTransaction(s.ctx, s.alice.ID, tx.ID))
	_, err = s.store.GetTransaction(s.ctx, s.alice.ID, tx.ID)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StoreSuite) TestAssetOwnership() {
	asset, err := s.store.CreateAsset(s.ctx, models.Asset{
		UserID: s.alice.ID, Name: "Cash", Type: "cash", Amount: decimal.NewFromInt(100),
	})
	s.Require().NoError(err)

	_, err = s.store.GetAsset(s.ctx, s.bob.ID, asset.ID)
	s.ErrorIs(err, storage.ErrNotFound)

	hijack := asset
	hijack.UserID = s.bob.ID
	_, err = s.store.UpdateAsset(s.ctx, hijack)
	s.ErrorIs(err, storage.ErrNotFound)
	s.ErrorIs(s.store.DeleteAsset(s.ctx, s.bob.ID, asset.ID), storage.ErrNotFound)

	bobs, err := s.store.ListAssets(s.ctx, s.bob.ID)
	s.Require().NoError(err)
	s.Empty(bobs)

	alices, err := s.store.ListAssets(s.ctx, s.alice.ID)
	s.Require().NoError(err)
	s.Len(alices, 1)
}

func (s *StoreSuite) TestUpdateAndDeleteAsset() {
	asset, err := s.store.CreateAsset(s.ctx, models.Asset{
		UserID: s.alice.ID, Name: "Wallet", Type: "crypto", Amount: decimal.RequireFromString("0.5"),
	})
	s.Require().NoError(err)
	s.Nil(asset.Description)

	note := "cold storage"
	asset.Description = &note
	asset.Amount = decimal.RequireFromString("0.75")
	updated, err := s.store.UpdateAsset(s.ctx, asset)
	s.Require().NoError(err)
	s.Equal("Wallet", updated.Name)
	s.True(updated.Amount.Equal(decimal.RequireFromString("0.75")))
	s.Require().NotNil(updated.Description)
	s.Equal(note, *updated.Description)

	s.Require().NoError(s.store.DeleteAsset(s.ctx, s.alice.ID, asset.ID))
	_, err = s.store.GetAsset(s.ctx, s.alice.ID, asset.ID)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StoreSuite) TestUpsertRateIsIdempotent() {
	for i := 0; i < 2; i++ {
		rate, err := s.store.UpsertRate(s.ctx, models.CryptoRate{Symbol: "btc", Rate: decimal.NewFromInt(50000)})
		s.Require().NoError(err)
		s.Equal("BTC", rate.Symbol)
	}

	rates, err := s.store.ListRates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rates, 1)
	s.True(rates[0].Rate.Equal(decimal.NewFromInt(50000)))

	_, err = s.store.UpsertRate(s.ctx, models.CryptoRate{Symbol: "BTC", Rate: decimal.NewFromInt(61000)})
	s.Require().NoError(err)
	got, err := s.store.GetRate(s.ctx, "Btc")
	s.Require().NoError(err)
	s.True(got.Rate.Equal(decimal.NewFromInt(61000)))

	_, err = s.store.GetRate(s.ctx, "DOGE")
	s.ErrorIs(err, storage.ErrNotFound)
}
