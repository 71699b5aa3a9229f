package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/application"
)

type applicationResponse struct {
	ID             uuid.UUID  `json:"id"`
	ApplicantID    uuid.UUID  `json:"applicant_id"`
	PropertyID     uuid.UUID  `json:"property_id"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`

	Status         application.Status         `json:"status"`
	PreviousStatus *application.Status        `json:"previous_status,omitempty"`
	NextStatuses   []application.Status       `json:"next_statuses"`
	StatusHistory  []application.StatusChange `json:"status_history"`

	PropertySnapshot application.PropertySnapshot `json:"property_snapshot"`

	PersonalInfo   application.PersonalInfo               `json:"personal_info"`
	Employment     application.Employment                 `json:"employment"`
	RentalHistory  application.RentalHistory              `json:"rental_history"`
	CoApplicants   []application.CoApplicant              `json:"co_applicants,omitempty"`
	Documents      map[string]application.DocumentStatus  `json:"documents,omitempty"`
	CurrentAddress string                                 `json:"current_address,omitempty"`
	MoveInDate     *time.Time                             `json:"move_in_date,omitempty"`
	Message        string                                 `json:"message,omitempty"`

	Score          int                         `json:"score"`
	ScoreBreakdown *application.ScoreBreakdown `json:"score_breakdown,omitempty"`
	ScoredAt       *time.Time                  `json:"scored_at,omitempty"`

	RejectionCategory string                        `json:"rejection_category,omitempty"`
	RejectionReason   string                        `json:"rejection_reason,omitempty"`
	RejectionDetails  *application.RejectionDetails `json:"rejection_details,omitempty"`
	ReviewedBy        *uuid.UUID                    `json:"reviewed_by,omitempty"`
	ReviewedAt        *time.Time                    `json:"reviewed_at,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(app *application.Application) applicationResponse {
	return applicationResponse{
		ID:                app.ID,
		ApplicantID:       app.ApplicantID,
		PropertyID:        app.PropertyID,
		ConversationID:    app.ConversationID,
		Status:            app.Status,
		PreviousStatus:    app.PreviousStatus,
		NextStatuses:      application.NextStatuses(app.Status),
		StatusHistory:     app.StatusHistory,
		PropertySnapshot:  app.Snapshot,
		PersonalInfo:      app.PersonalInfo,
		Employment:        app.Employment,
		RentalHistory:     app.RentalHistory,
		CoApplicants:      app.CoApplicants,
		Documents:         app.Documents,
		CurrentAddress:    app.CurrentAddress,
		MoveInDate:        app.MoveInDate,
		Message:           app.Message,
		Score:             app.Score,
		ScoreBreakdown:    app.ScoreBreakdown,
		ScoredAt:          app.ScoredAt,
		RejectionCategory: app.RejectionCategory,
		RejectionReason:   app.RejectionReason,
		RejectionDetails:  app.RejectionDetails,
		ReviewedBy:        app.ReviewedBy,
		ReviewedAt:        app.ReviewedAt,
		CreatedAt:         app.CreatedAt,
		UpdatedAt:         app.UpdatedAt,
	}
}

func toResponseList(apps []*application.Application) []applicationResponse {
	resp := make([]applicationResponse, len(apps))
	for i, app := range apps {
		resp[i] = toResponse(app)
	}

	return resp
}
