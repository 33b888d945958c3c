package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/finance-be/internal/models"
)

// ListRates returns every stored rate ordered by symbol.
func (s *Store) ListRates(ctx context.Context) ([]models.CryptoRate, error) {
	rows, err := s.pool.Query(ctx, `SELECT symbol, rate, updated_at FROM crypto_rates ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("query rates: %w", err)
	}
	defer rows.Close()

	out := []models.CryptoRate{}
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rate)
	}
	return out, rows.Err()
}

// GetRate fetches the rate for a symbol.
func (s *Store) GetRate(ctx context.Context, symbol string) (models.CryptoRate, error) {
	row := s.pool.QueryRow(ctx, `SELECT symbol, rate, updated_at FROM crypto_rates WHERE symbol = $1`, models.NormalizeSymbol(symbol))
	return scanRate(row)
}

// UpsertRate inserts the rate or overwrites the existing one for the same symbol.
func (s *Store) UpsertRate(ctx context.Context, rate models.CryptoRate) (models.CryptoRate, error) {
	const query = `
		INSERT INTO crypto_rates (symbol, rate, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (symbol) DO UPDATE SET rate = EXCLUDED.rate, updated_at = NOW()
		RETURNING symbol, rate, updated_at`
	row := s.pool.QueryRow(ctx, query, models.NormalizeSymbol(rate.Symbol), rate.Rate)
	return scanRate(row)
}

func scanRate(row pgx.Row) (models.CryptoRate, error) {
	var r models.CryptoRate
	if err := row.Scan(&r.Symbol, &r.Rate, &r.UpdatedAt); err != nil {
		return models.CryptoRate{}, notFound(err)
	}
	return r, nil
}
