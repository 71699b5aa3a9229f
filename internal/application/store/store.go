package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/application"
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

const selectApplicationColumns = `
	id, applicant_id, property_id, conversation_id,
	status, previous_status, status_history, property_snapshot,
	employment, personal_info, rental_history, co_applicants, documents,
	current_address, move_in_date, message,
	score, score_breakdown, scored_at,
	rejection_category, rejection_reason, rejection_details,
	reviewed_by, reviewed_at, created_at, updated_at
`

// scanApplication reads an application row from the scanner. The column order
// must match selectApplicationColumns.
func scanApplication(s scanner) (*application.Application, error) {
	var app application.Application

	var statusStr string

	var prevStatus sql.NullString

	var rejectionCategory, rejectionReason sql.NullString

	var history, snapshot, employment, personalInfo, rentalHistory, coApplicants, documents []byte

	var scoreBreakdown, rejectionDetails []byte

	if err := s.Scan(
		&app.ID, &app.ApplicantID, &app.PropertyID, &app.ConversationID,
		&statusStr, &prevStatus, &history, &snapshot,
		&employment, &personalInfo, &rentalHistory, &coApplicants, &documents,
		&app.CurrentAddress, &app.MoveInDate, &app.Message,
		&app.Score, &scoreBreakdown, &app.ScoredAt,
		&rejectionCategory, &rejectionReason, &rejectionDetails,
		&app.ReviewedBy, &app.ReviewedAt, &app.CreatedAt, &app.UpdatedAt,
	); err != nil {
		return nil, err
	}

	app.Status = application.Status(statusStr)

	if prevStatus.Valid {
		prev := application.Status(prevStatus.String)
		app.PreviousStatus = &prev
	}

	app.RejectionCategory = rejectionCategory.String
	app.RejectionReason = rejectionReason.String

	for _, col := range []struct {
		name string
		data []byte
		dest any
	}{
		{"status_history", history, &app.StatusHistory},
		{"property_snapshot", snapshot, &app.Snapshot},
		{"employment", employment, &app.Employment},
		{"personal_info", personalInfo, &app.PersonalInfo},
		{"rental_history", rentalHistory, &app.RentalHistory},
		{"co_applicants", coApplicants, &app.CoApplicants},
		{"documents", documents, &app.Documents},
		{"score_breakdown", scoreBreakdown, &app.ScoreBreakdown},
		{"rejection_details", rejectionDetails, &app.RejectionDetails},
	} {
		if len(col.data) == 0 {
			continue
		}

		if err := json.Unmarshal(col.data, col.dest); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", col.name, err)
		}
	}

	return &app, nil
}

func encodeJSON(column string, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", column, err)
	}

	return data, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *Store) CreateApplication(ctx context.Context, app *application.Application) error {
	// the history column must hold an array so later entries can be appended
	history := app.StatusHistory
	if history == nil {
		history = []application.StatusChange{}
	}

	historyJSON, err := encodeJSON("status_history", history)
	if err != nil {
		return err
	}

	snapshotJSON, err := encodeJSON("property_snapshot", app.Snapshot)
	if err != nil {
		return err
	}

	employmentJSON, err := encodeJSON("employment", app.Employment)
	if err != nil {
		return err
	}

	personalJSON, err := encodeJSON("personal_info", app.PersonalInfo)
	if err != nil {
		return err
	}

	rentalJSON, err := encodeJSON("rental_history", app.RentalHistory)
	if err != nil {
		return err
	}

	coApplicantsJSON, err := encodeJSON("co_applicants", app.CoApplicants)
	if err != nil {
		return err
	}

	documentsJSON, err := encodeJSON("documents", app.Documents)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO applications (
			applicant_id, property_id, status, status_history, property_snapshot,
			employment, personal_info, rental_history, co_applicants, documents,
			current_address, move_in_date, message, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		app.ApplicantID,
		app.PropertyID,
		app.Status,
		historyJSON,
		snapshotJSON,
		employmentJSON,
		personalJSON,
		rentalJSON,
		coApplicantsJSON,
		documentsJSON,
		app.CurrentAddress,
		app.MoveInDate,
		app.Message,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating application: %w", err)
	}

	return nil
}

func (s *Store) GetApplication(ctx context.Context, id uuid.UUID) (*application.Application, error) {
	query := `SELECT ` + selectApplicationColumns + ` FROM applications WHERE id = $1`

	app, err := scanApplication(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrNotFound
		}

		return nil, fmt.Errorf("getting application: %w", err)
	}

	return app, nil
}

func (s *Store) UpdateApplication(ctx context.Context, id uuid.UUID, params application.UpdateParams) (*application.Application, error) {
	sets := []string{"updated_at = NOW()"}

	var args []any

	argIdx := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if params.Employment != nil {
		data, err := encodeJSON("employment", params.Employment)
		if err != nil {
			return nil, err
		}

		add("employment", data)
	}

	if params.PersonalInfo != nil {
		data, err := encodeJSON("personal_info", params.PersonalInfo)
		if err != nil {
			return nil, err
		}

		add("personal_info", data)
	}

	if params.RentalHistory != nil {
		data, err := encodeJSON("rental_history", params.RentalHistory)
		if err != nil {
			return nil, err
		}

		add("rental_history", data)
	}

	if params.CoApplicants != nil {
		data, err := encodeJSON("co_applicants", *params.CoApplicants)
		if err != nil {
			return nil, err
		}

		add("co_applicants", data)
	}

	if params.Documents != nil {
		data, err := encodeJSON("documents", *params.Documents)
		if err != nil {
			return nil, err
		}

		add("documents", data)
	}

	if params.CurrentAddress != nil {
		add("current_address", *params.CurrentAddress)
	}

	if params.MoveInDate != nil {
		add("move_in_date", *params.MoveInDate)
	}

	if params.Message != nil {
		add("message", *params.Message)
	}

	if params.ConversationID != nil {
		add("conversation_id", *params.ConversationID)
	}

	if params.Score != nil {
		add("score", *params.Score)
	}

	if params.ScoreBreakdown != nil {
		data, err := encodeJSON("score_breakdown", params.ScoreBreakdown)
		if err != nil {
			return nil, err
		}

		add("score_breakdown", data)
	}

	if params.ScoredAt != nil {
		add("scored_at", *params.ScoredAt)
	}

	query := fmt.Sprintf("UPDATE applications SET %s WHERE id = $%d", strings.Join(sets, ", "), argIdx)
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating application: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("reading update result: %w", err)
	}

	if affected == 0 {
		return nil, application.ErrNotFound
	}

	return s.GetApplication(ctx, id)
}

// UpdateApplicationStatus moves the status and appends the history entry in
// one statement, so concurrent transitions cannot drop entries.
func (s *Store) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, change application.StatusUpdate) (*application.Application, error) {
	entryJSON, err := encodeJSON("status_history", []application.StatusChange{change.Entry})
	if err != nil {
		return nil, err
	}

	var detailsJSON []byte
	if change.RejectionDetails != nil {
		detailsJSON, err = encodeJSON("rejection_details", change.RejectionDetails)
		if err != nil {
			return nil, err
		}
	}

	query := `
		UPDATE applications
		SET status = $1,
			previous_status = $2,
			status_history = status_history || $3::jsonb,
			rejection_category = $4,
			rejection_reason = $5,
			rejection_details = $6,
			reviewed_by = $7,
			reviewed_at = $8,
			updated_at = NOW()
		WHERE id = $9
	`

	res, err := s.db.ExecContext(ctx, query,
		change.Status,
		change.PreviousStatus,
		entryJSON,
		nullString(change.RejectionCategory),
		nullString(change.RejectionReason),
		detailsJSON,
		change.ReviewedBy,
		change.ReviewedAt,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating application status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("reading update result: %w", err)
	}

	if affected == 0 {
		return nil, application.ErrNotFound
	}

	return s.GetApplication(ctx, id)
}

func (s *Store) FindApplicationsByUser(ctx context.Context, userID uuid.UUID) ([]*application.Application, error) {
	query := `SELECT ` + selectApplicationColumns + `
		FROM applications
		WHERE applicant_id = $1
		ORDER BY created_at DESC`

	return s.list(ctx, query, userID)
}

func (s *Store) FindApplicationsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*application.Application, error) {
	query := `SELECT ` + selectApplicationColumns + `
		FROM applications
		WHERE property_id = $1
		ORDER BY created_at DESC`

	return s.list(ctx, query, propertyID)
}

func (s *Store) CheckDuplicateApplication(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM applications WHERE applicant_id = $1 AND property_id = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, propertyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking duplicate application: %w", err)
	}

	return exists, nil
}

func (s *Store) list(ctx context.Context, query string, arg any) ([]*application.Application, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*application.Application

	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning application: %w", err)
		}

		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating application rows: %w", err)
	}

	return apps, nil
}
