package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
		SELECT id, email, full_name, phone, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u user.User

	var phone sql.NullString

	var roleStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.FullName, &phone, &roleStr, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	u.Phone = phone.String
	u.Role = user.Role(roleStr)

	return &u, nil
}
