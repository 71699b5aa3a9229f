package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/rentora/internal/application"
	"github.com/rentora/rentora/internal/application/store"
)

func applicationColumns() []string {
	return []string{
		"id", "applicant_id", "property_id", "conversation_id",
		"status", "previous_status", "status_history", "property_snapshot",
		"employment", "personal_info", "rental_history", "co_applicants", "documents",
		"current_address", "move_in_date", "message",
		"score", "score_breakdown", "scored_at",
		"rejection_category", "rejection_reason", "rejection_details",
		"reviewed_by", "reviewed_at", "created_at", "updated_at",
	}
}

func applicationRow(appID, applicantID, propertyID uuid.UUID, status string) *sqlmock.Rows {
	now := time.Now().UTC()

	history := []byte(`[{"status":"submitted","changed_at":"2025-06-02T10:00:00Z","changed_by":"` + applicantID.String() + `"}]`)
	snapshot := []byte(`{"rent":1850,"title":"Sunny 2BR near the park","property_version":3}`)

	return sqlmock.NewRows(applicationColumns()).AddRow(
		appID.String(), applicantID.String(), propertyID.String(), nil,
		status, nil, history, snapshot,
		[]byte(`{"monthly_income":6000,"duration":"3 years"}`),
		[]byte(`{"full_name":"Avery Renter","email":"avery@example.com"}`),
		[]byte(`{"duration":"4 years"}`),
		[]byte(`[]`),
		[]byte(`{}`),
		"48 Oak Ave", nil, "hello",
		int64(86), nil, nil,
		nil, nil, nil,
		nil, nil, now, now,
	)
}

func TestStore_CreateApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)

	applicantID := uuid.New()
	propertyID := uuid.New()
	appID := uuid.New()
	now := time.Now().UTC()

	app := &application.Application{
		ApplicantID: applicantID,
		PropertyID:  propertyID,
		Status:      application.StatusSubmitted,
		StatusHistory: []application.StatusChange{
			{Status: application.StatusSubmitted, ChangedAt: now, ChangedBy: applicantID},
		},
		Snapshot:       application.PropertySnapshot{Rent: 1850, Title: "Sunny 2BR near the park"},
		CurrentAddress: "48 Oak Ave",
		Message:        "hello",
	}

	mock.ExpectQuery(`INSERT INTO applications .* RETURNING id, created_at, updated_at`).
		WithArgs(
			applicantID, propertyID, "submitted",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"48 Oak Ave", nil, "hello",
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(appID.String(), now, now))

	require.NoError(t, s.CreateApplication(context.Background(), app))

	assert.Equal(t, appID, app.ID)
	assert.False(t, app.CreatedAt.IsZero())
	assert.NotNil(t, app.UpdatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)

	appID := uuid.New()
	applicantID := uuid.New()
	propertyID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM applications WHERE id = \$1`).
		WithArgs(appID).
		WillReturnRows(applicationRow(appID, applicantID, propertyID, "submitted"))

	got, err := s.GetApplication(context.Background(), appID)
	require.NoError(t, err)

	assert.Equal(t, appID, got.ID)
	assert.Equal(t, applicantID, got.ApplicantID)
	assert.Equal(t, application.StatusSubmitted, got.Status)
	assert.Equal(t, 86, got.Score)
	assert.Equal(t, "Sunny 2BR near the park", got.Snapshot.Title)
	assert.Equal(t, application.Number(6000), got.Employment.MonthlyIncome)
	assert.Equal(t, "Avery Renter", got.PersonalInfo.FullName)
	assert.Nil(t, got.ConversationID)

	require.Len(t, got.StatusHistory, 1)
	assert.Equal(t, application.StatusSubmitted, got.StatusHistory[0].Status)
	assert.Equal(t, applicantID, got.StatusHistory[0].ChangedBy)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetApplication_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)

	appID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM applications WHERE id = \$1`).
		WithArgs(appID).
		WillReturnRows(sqlmock.NewRows(applicationColumns()))

	_, err = s.GetApplication(context.Background(), appID)
	assert.ErrorIs(t, err, application.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateApplication_OnlyTouchedColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)

	appID := uuid.New()
	applicantID := uuid.New()
	propertyID := uuid.New()
	address := "99 Birch Rd"

	mock.ExpectExec(`UPDATE applications SET updated_at = NOW\(\), current_address = \$1 WHERE id = \$2`).
		WithArgs(address, appID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .* FROM applications WHERE id = \$1`).
		WithArgs(appID).
		WillReturnRows(applicationRow(appID, applicantID, propertyID, "submitted"))

	_, err = s.UpdateApplication(context.Background(), appID, application.UpdateParams{CurrentAddress: &address})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateApplication_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)

	appID := uuid.New()
	message := "updated"

	mock.ExpectExec(`UPDATE applications SET updated_at = NOW\(\), message = \$1 WHERE id = \$2`).
		WithArgs(message, appID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = s.UpdateApplication(context.Background(), appID, application.UpdateParams{Message: &message})
	assert.ErrorIs(t, err, application.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateApplicationStatus_AppendsHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)

	appID := uuid.New()
	applicantID := uuid.New()
	propertyID := uuid.New()
	reviewerID := uuid.New()
	now := time.Now().UTC()

	change := application.StatusUpdate{
		Status:         application.StatusApproved,
		PreviousStatus: application.StatusUnderReview,
		Entry: application.StatusChange{
			Status:    application.StatusApproved,
			ChangedAt: now,
			ChangedBy: reviewerID,
		},
		ReviewedBy: &reviewerID,
		ReviewedAt: &now,
	}

	mock.ExpectExec(`UPDATE applications SET status = \$1, previous_status = \$2, status_history = status_history \|\| \$3::jsonb`).
		WithArgs(
			"approved", "under_review", sqlmock.AnyArg(),
			nil, nil, nil,
			reviewerID, sqlmock.AnyArg(), appID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .* FROM applications WHERE id = \$1`).
		WithArgs(appID).
		WillReturnRows(applicationRow(appID, applicantID, propertyID, "approved"))

	got, err := s.UpdateApplicationStatus(context.Background(), appID, change)
	require.NoError(t, err)
	assert.Equal(t, application.StatusApproved, got.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CheckDuplicateApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)

	applicantID := uuid.New()
	propertyID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(applicantID, propertyID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.CheckDuplicateApplication(context.Background(), applicantID, propertyID)
	require.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindApplicationsByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)

	applicantID := uuid.New()

	rows := applicationRow(uuid.New(), applicantID, uuid.New(), "submitted")

	mock.ExpectQuery(`SELECT .* FROM applications WHERE applicant_id = \$1 ORDER BY created_at DESC`).
		WithArgs(applicantID).
		WillReturnRows(rows)

	apps, err := s.FindApplicationsByUser(context.Background(), applicantID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, applicantID, apps[0].ApplicantID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
