package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hongminglow/finance-be/internal/models"
)

const transactionColumns = `id, user_id, amount, type, category, description, date, is_cash, receipt_url, created_at, updated_at`

// ListTransactions returns all of the user's transactions, newest first.
func (s *Store) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.queryTransactions(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = ? ORDER BY date DESC, created_at DESC`, userID)
}

// RecentTransactions returns at most limit of the user's newest transactions.
func (s *Store) RecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	return s.queryTransactions(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = ? ORDER BY date DESC, created_at DESC LIMIT ?`, userID, limit)
}

// GetTransaction fetches one transaction owned by userID.
func (s *Store) GetTransaction(ctx context.Context, userID, id string) (models.Transaction, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ? AND user_id = ?`, id, userID)
	return scanTransaction(row)
}

// CreateTransaction inserts a transaction with a generated id.
func (s *Store) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	now := s.now()
	row := s.conn.QueryRowContext(ctx, `
		INSERT INTO transactions (id, user_id, amount, type, category, description, date, is_cash, receipt_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+transactionColumns,
		uuid.NewString(), tx.UserID, tx.Amount, tx.Type, tx.Category, tx.Description, tx.Date.UTC(), tx.IsCash, tx.ReceiptURL, now, now)
	created, err := scanTransaction(row)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	return created, nil
}

// UpdateTransaction overwrites the mutable columns of a transaction owned by tx.UserID.
func (s *Store) UpdateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	row := s.conn.QueryRowContext(ctx, `
		UPDATE transactions
		SET amount = ?, type = ?, category = ?, description = ?, date = ?, is_cash = ?, receipt_url = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
		RETURNING `+transactionColumns,
		tx.Amount, tx.Type, tx.Category, tx.Description, tx.Date.UTC(), tx.IsCash, tx.ReceiptURL, s.now(), tx.ID, tx.UserID)
	return scanTransaction(row)
}

// DeleteTransaction removes a transaction owned by userID.
func (s *Store) DeleteTransaction(ctx context.Context, userID, id string) error {
	return deleteOwned(ctx, s.conn, "transactions", userID, id)
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	out := []models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

func scanTransaction(row scanner) (models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Category, &tx.Description,
		&tx.Date, &tx.IsCash, &tx.ReceiptURL, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return models.Transaction{}, notFound(err)
	}
	return tx, nil
}
