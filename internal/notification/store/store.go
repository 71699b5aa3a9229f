package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/notification"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectNotificationColumns = `id, user_id, type, title, body, data, read_at, created_at`

func scanNotification(s scanner) (*notification.Notification, error) {
	var n notification.Notification

	var typeStr string

	var data []byte

	if err := s.Scan(&n.ID, &n.UserID, &typeStr, &n.Title, &n.Body, &data, &n.ReadAt, &n.CreatedAt); err != nil {
		return nil, err
	}

	n.Type = notification.Type(typeStr)

	if len(data) > 0 {
		if err := json.Unmarshal(data, &n.Data); err != nil {
			return nil, fmt.Errorf("decoding notification data: %w", err)
		}
	}

	return &n, nil
}

func (s *Store) CreateNotification(ctx context.Context, n *notification.Notification) error {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return fmt.Errorf("encoding notification data: %w", err)
	}

	query := `
		INSERT INTO notifications (user_id, type, title, body, data, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		n.UserID,
		n.Type,
		n.Title,
		n.Body,
		data,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}

	return nil
}

func (s *Store) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*notification.Notification, error) {
	query := `SELECT ` + selectNotificationColumns + ` FROM notifications WHERE user_id = $1`

	if unreadOnly {
		query += " AND read_at IS NULL"
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var ns []*notification.Notification

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}

		ns = append(ns, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification rows: %w", err)
	}

	return ns, nil
}

// MarkRead keeps the first read timestamp, so repeated reads are harmless.
func (s *Store) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET read_at = COALESCE(read_at, NOW())
		WHERE id = $1 AND user_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading update result: %w", err)
	}

	if affected == 0 {
		return notification.ErrNotFound
	}

	return nil
}
