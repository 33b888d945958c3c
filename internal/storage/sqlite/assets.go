package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hongminglow/finance-be/internal/models"
)

const assetColumns = `id, user_id, name, type, amount, description, created_at, updated_at`

// ListAssets returns all of the user's assets.
func (s *Store) ListAssets(ctx context.Context, userID string) ([]models.Asset, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT `+assetColumns+` FROM assets WHERE user_id = ? ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()

	out := []models.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetAsset fetches one asset owned by userID.
func (s *Store) GetAsset(ctx context.Context, userID, id string) (models.Asset, error) {
	return scanAsset(s.conn.QueryRowContext(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = ? AND user_id = ?`, id, userID))
}

// CreateAsset inserts an asset with a generated id.
func (s *Store) CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	now := s.now()
	row := s.conn.QueryRowContext(ctx, `
		INSERT INTO assets (id, user_id, name, type, amount, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+assetColumns,
		uuid.NewString(), asset.UserID, asset.Name, asset.Type, asset.Amount, asset.Description, now, now)
	created, err := scanAsset(row)
	if err != nil {
		return models.Asset{}, fmt.Errorf("insert asset: %w", err)
	}
	return created, nil
}

// UpdateAsset overwrites the mutable columns of an asset owned by asset.UserID.
func (s *Store) UpdateAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	row := s.conn.QueryRowContext(ctx, `
		UPDATE assets SET name = ?, type = ?, amount = ?, description = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
		RETURNING `+assetColumns,
		asset.Name, asset.Type, asset.Amount, asset.Description, s.now(), asset.ID, asset.UserID)
	return scanAsset(row)
}

// DeleteAsset removes an asset owned by userID.
func (s *Store) DeleteAsset(ctx context.Context, userID, id string) error {
	return deleteOwned(ctx, s.conn, "assets", userID, id)
}

func scanAsset(row scanner) (models.Asset, error) {
	var a models.Asset
	if err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Amount, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return models.Asset{}, notFound(err)
	}
	return a, nil
}
