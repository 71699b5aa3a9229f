package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/conversation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateConversation(ctx context.Context, params conversation.CreateParams) (*conversation.Conversation, error) {
	query := `
		INSERT INTO conversations (property_id, application_id, subject, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	conv := &conversation.Conversation{
		PropertyID:    params.PropertyID,
		ApplicationID: params.ApplicationID,
		Subject:       params.Subject,
	}

	err := s.db.QueryRowContext(ctx, query,
		params.PropertyID,
		params.ApplicationID,
		params.Subject,
	).Scan(&conv.ID, &conv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating conversation: %w", err)
	}

	return conv, nil
}

// AddParticipant is idempotent so retried bootstraps cannot fail on the
// unique (conversation_id, user_id) pair.
func (s *Store) AddParticipant(ctx context.Context, conversationID, userID uuid.UUID) error {
	query := `
		INSERT INTO conversation_participants (conversation_id, user_id, joined_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (conversation_id, user_id) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, conversationID, userID); err != nil {
		return fmt.Errorf("adding conversation participant: %w", err)
	}

	return nil
}
