package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/property"
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

const selectPropertyColumns = `
	id, owner_id, title, description, address, city, state, zip, type,
	bedrooms, bathrooms, square_feet, rent, deposit, application_fee,
	lease_term_months, available_date, policies, status, version,
	created_at, updated_at
`

func scanProperty(s scanner) (*property.Property, error) {
	var p property.Property

	var description, city, state, zip, propType sql.NullString

	var statusStr string

	var policies []byte

	if err := s.Scan(
		&p.ID, &p.OwnerID, &p.Title, &description, &p.Address, &city, &state, &zip, &propType,
		&p.Bedrooms, &p.Bathrooms, &p.SquareFeet, &p.Rent, &p.Deposit, &p.ApplicationFee,
		&p.LeaseTermMonths, &p.AvailableDate, &policies, &statusStr, &p.Version,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Description = description.String
	p.City = city.String
	p.State = state.String
	p.Zip = zip.String
	p.Type = propType.String
	p.Status = property.Status(statusStr)

	if len(policies) > 0 {
		if err := json.Unmarshal(policies, &p.Policies); err != nil {
			return nil, fmt.Errorf("decoding policies: %w", err)
		}
	}

	return &p, nil
}

func (s *Store) CreateProperty(ctx context.Context, p *property.Property) error {
	policies, err := json.Marshal(p.Policies)
	if err != nil {
		return fmt.Errorf("encoding policies: %w", err)
	}

	query := `
		INSERT INTO properties (
			owner_id, title, description, address, city, state, zip, type,
			bedrooms, bathrooms, square_feet, rent, deposit, application_fee,
			lease_term_months, available_date, policies, status, version,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		p.OwnerID, p.Title, p.Description, p.Address, p.City, p.State, p.Zip, p.Type,
		p.Bedrooms, p.Bathrooms, p.SquareFeet, p.Rent, p.Deposit, p.ApplicationFee,
		p.LeaseTermMonths, p.AvailableDate, policies, p.Status, p.Version,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating property: %w", err)
	}

	return nil
}

func (s *Store) GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	query := `SELECT ` + selectPropertyColumns + ` FROM properties WHERE id = $1`

	p, err := scanProperty(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, property.ErrNotFound
		}

		return nil, fmt.Errorf("getting property: %w", err)
	}

	return p, nil
}

func (s *Store) ListProperties(ctx context.Context, filter property.ListFilter) ([]*property.Property, error) {
	query := `SELECT ` + selectPropertyColumns + ` FROM properties WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.City != nil {
		query += fmt.Sprintf(" AND lower(city) = lower($%d)", argIdx)

		args = append(args, *filter.City)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.MinRent != nil {
		query += fmt.Sprintf(" AND rent >= $%d", argIdx)

		args = append(args, *filter.MinRent)
		argIdx++
	}

	if filter.MaxRent != nil {
		query += fmt.Sprintf(" AND rent <= $%d", argIdx)

		args = append(args, *filter.MaxRent)
		argIdx++
	}

	if filter.Bedrooms != nil {
		query += fmt.Sprintf(" AND bedrooms >= $%d", argIdx)

		args = append(args, *filter.Bedrooms)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer rows.Close()

	var props []*property.Property

	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}

		props = append(props, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating property rows: %w", err)
	}

	return props, nil
}

// UpdateProperty applies the non-nil fields and bumps the listing version in
// the same statement.
func (s *Store) UpdateProperty(ctx context.Context, id uuid.UUID, params property.UpdateParams) (*property.Property, error) {
	sets := []string{"version = version + 1", "updated_at = NOW()"}

	var args []any

	argIdx := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if params.Title != nil {
		add("title", *params.Title)
	}

	if params.Description != nil {
		add("description", *params.Description)
	}

	if params.Rent != nil {
		add("rent", *params.Rent)
	}

	if params.Deposit != nil {
		add("deposit", *params.Deposit)
	}

	if params.ApplicationFee != nil {
		add("application_fee", *params.ApplicationFee)
	}

	if params.LeaseTermMonths != nil {
		add("lease_term_months", *params.LeaseTermMonths)
	}

	if params.AvailableDate != nil {
		add("available_date", *params.AvailableDate)
	}

	if params.Policies != nil {
		policies, err := json.Marshal(params.Policies)
		if err != nil {
			return nil, fmt.Errorf("encoding policies: %w", err)
		}

		add("policies", policies)
	}

	if params.Status != nil {
		add("status", *params.Status)
	}

	query := fmt.Sprintf("UPDATE properties SET %s WHERE id = $%d", strings.Join(sets, ", "), argIdx)
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating property: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, property.ErrNotFound
	}

	return s.GetProperty(ctx, id)
}
