package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/finance-be/internal/models"
	"github.com/hongminglow/finance-be/internal/storage"
)

const userColumns = `id, telegram_id, name, created_at`

// CreateUser inserts a new user row with a generated id.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (id, telegram_id, name)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	row := s.pool.QueryRow(ctx, query, uuid.NewString(), user.TelegramID, user.Name)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// FindUserByID fetches a user by primary key.
func (s *Store) FindUserByID(ctx context.Context, id string) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindUserByTelegramID fetches a user by Telegram account id.
func (s *Store) FindUserByTelegramID(ctx context.Context, telegramID string) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE telegram_id = $1`, telegramID)
	return scanUser(row)
}

// UpdateUserName changes the display name.
func (s *Store) UpdateUserName(ctx context.Context, id, name string) (models.User, error) {
	row := s.pool.QueryRow(ctx, `UPDATE users SET name = $2 WHERE id = $1 RETURNING `+userColumns, id, name)
	return scanUser(row)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.TelegramID, &user.Name, &user.CreatedAt); err != nil {
		return models.User{}, notFound(err)
	}
	return user, nil
}
