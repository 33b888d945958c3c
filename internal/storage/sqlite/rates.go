package sqlite

import (
	"context"
	"fmt"

	"github.com/hongminglow/finance-be/internal/models"
)

// ListRates returns every stored rate ordered by symbol.
func (s *Store) ListRates(ctx context.Context) ([]models.CryptoRate, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT symbol, rate, updated_at FROM crypto_rates ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("query rates: %w", err)
	}
	defer rows.Close()

	out := []models.CryptoRate{}
	for rows.Next() {
		r, err := scanRate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRate fetches the rate for a symbol.
func (s *Store) GetRate(ctx context.Context, symbol string) (models.CryptoRate, error) {
	return scanRate(s.conn.QueryRowContext(ctx,
		`SELECT symbol, rate, updated_at FROM crypto_rates WHERE symbol = ?`, models.NormalizeSymbol(symbol)))
}

// UpsertRate inserts the rate or overwrites the existing one for the same symbol.
func (s *Store) UpsertRate(ctx context.Context, rate models.CryptoRate) (models.CryptoRate, error) {
	row := s.conn.QueryRowContext(ctx, `
		INSERT INTO crypto_rates (symbol, rate, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (symbol) DO UPDATE SET rate = excluded.rate, updated_at = excluded.updated_at
		RETURNING symbol, rate, updated_at`,
		models.NormalizeSymbol(rate.Symbol), rate.Rate, s.now())
	return scanRate(row)
}

func scanRate(row scanner) (models.CryptoRate, error) {
	var r models.CryptoRate
	if err := row.Scan(&r.Symbol, &r.Rate, &r.UpdatedAt); err != nil {
		return models.CryptoRate{}, notFound(err)
	}
	return r, nil
}
