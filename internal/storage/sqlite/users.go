package sqlite

import (
	"context"

	"github.com/google/uuid"

	"github.com/hongminglow/finance-be/internal/models"
	"github.com/hongminglow/finance-be/internal/storage"
)

const userColumns = `id, telegram_id, name, created_at`

// CreateUser inserts a new user row with a generated id.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	row := s.conn.QueryRowContext(ctx,
		`INSERT INTO users (id, telegram_id, name, created_at) VALUES (?, ?, ?, ?) RETURNING `+userColumns,
		uuid.NewString(), user.TelegramID, user.Name, s.now())
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
	return scanUser(s.conn.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

// FindUserByTelegramID fetches a user by Telegram account id.
func (s *Store) FindUserByTelegramID(ctx context.Context, telegramID string) (models.User, error) {
	return scanUser(s.conn.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE telegram_id = ?`, telegramID))
}

// UpdateUserName changes the display name.
func (s *Store) UpdateUserName(ctx context.Context, id, name string) (models.User, error) {
	return scanUser(s.conn.QueryRowContext(ctx, `UPDATE users SET name = ? WHERE id = ? RETURNING `+userColumns, name, id))
}

func scanUser(row scanner) (models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.TelegramID, &u.Name, &u.CreatedAt); err != nil {
		return models.User{}, notFound(err)
	}
	return u, nil
}
