package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/finance-be/internal/models"
	"github.com/hongminglow/finance-be/internal/storage"
)

const assetColumns = `id, user_id, name, type, amount, description, created_at, updated_at`

// ListAssets returns all of the user's assets.
func (s *Store) ListAssets(ctx context.Context, userID string) ([]models.Asset, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+assetColumns+` FROM assets WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()

	out := []models.Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, asset)
	}
	return out, rows.Err()
}

// GetAsset fetches one asset owned by userID.
func (s *Store) GetAsset(ctx context.Context, userID, id string) (models.Asset, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = $1 AND user_id = $2`, id, userID)
	return scanAsset(row)
}

// CreateAsset inserts an asset with a generated id.
func (s *Store) CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	const query = `
		INSERT INTO assets (id, user_id, name, type, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + assetColumns
	row := s.pool.QueryRow(ctx, query, uuid.NewString(), asset.UserID, asset.Name, asset.Type, asset.Amount, asset.Description)
	created, err := scanAsset(row)
	if err != nil {
		return models.Asset{}, fmt.Errorf("insert asset: %w", err)
	}
	return created, nil
}

// UpdateAsset overwrites the mutable columns of an asset owned by asset.UserID.
func (s *Store) UpdateAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	const query = `
		UPDATE assets
		SET name = $3, type = $4, amount = $5, description = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + assetColumns
	row := s.pool.QueryRow(ctx, query, asset.ID, asset.UserID, asset.Name, asset.Type, asset.Amount, asset.Description)
	return scanAsset(row)
}

// DeleteAsset removes an asset owned by userID.
func (s *Store) DeleteAsset(ctx context.Context, userID, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM assets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanAsset(row pgx.Row) (models.Asset, error) {
	var a models.Asset
	if err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Amount, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return models.Asset{}, notFound(err)
	}
	return a, nil
}
