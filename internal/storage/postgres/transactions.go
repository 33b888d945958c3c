package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/finance-be/internal/models"
	"github.com/hongminglow/finance-be/internal/storage"
)

const transactionColumns = `id, user_id, amount, type, category, description, date, is_cash, receipt_url, created_at, updated_at`

// ListTransactions returns all of the user's transactions, newest first.
func (s *Store) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	const query = `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	return s.queryTransactions(ctx, query, userID)
}

// RecentTransactions returns at most limit of the user's newest transactions.
func (s *Store) RecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	const query = `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2`
	return s.queryTransactions(ctx, query, userID, limit)
}

// GetTransaction fetches one transaction owned by userID.
func (s *Store) GetTransaction(ctx context.Context, userID, id string) (models.Transaction, error) {
	const query = `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`
	return scanTransaction(s.pool.QueryRow(ctx, query, id, userID))
}

// CreateTransaction inserts a transaction with a generated id.
func (s *Store) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	const query = `
		INSERT INTO transactions (id, user_id, amount, type, category, description, date, is_cash, receipt_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + transactionColumns
	row := s.pool.QueryRow(ctx, query,
		uuid.NewString(), tx.UserID, tx.Amount, tx.Type, tx.Category, tx.Description, tx.Date, tx.IsCash, tx.ReceiptURL)
	created, err := scanTransaction(row)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	return created, nil
}

// UpdateTransaction overwrites the mutable columns of a transaction owned by tx.UserID.
func (s *Store) UpdateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	const query = `
		UPDATE transactions
		SET amount = $3, type = $4, category = $5, description = $6, date = $7, is_cash = $8, receipt_url = $9, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + transactionColumns
	row := s.pool.QueryRow(ctx, query,
		tx.ID, tx.UserID, tx.Amount, tx.Type, tx.Category, tx.Description, tx.Date, tx.IsCash, tx.ReceiptURL)
	return scanTransaction(row)
}

// DeleteTransaction removes a transaction owned by userID.
func (s *Store) DeleteTransaction(ctx context.Context, userID, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := s.pool.Query(ctx, query, args...)
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

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Category, &tx.Description,
		&tx.Date, &tx.IsCash, &tx.ReceiptURL, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return models.Transaction{}, notFound(err)
	}
	return tx, nil
}
