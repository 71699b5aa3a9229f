package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/conversation"
	"github.com/rentora/rentora/internal/email"
	"github.com/rentora/rentora/internal/property"
	"github.com/rentora/rentora/internal/task"
	"github.com/rentora/rentora/internal/user"
	"github.com/rentora/rentora/internal/validate"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=application

// Repository persists applications.
type Repository interface {
	CreateApplication(ctx context.Context, app *Application) error
	GetApplication(ctx context.Context, id uuid.UUID) (*Application, error)
	UpdateApplication(ctx context.Context, id uuid.UUID, params UpdateParams) (*Application, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, change StatusUpdate) (*Application, error)
	FindApplicationsByUser(ctx context.Context, userID uuid.UUID) ([]*Application, error)
	FindApplicationsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*Application, error)
	CheckDuplicateApplication(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
}

// PropertyDirectory looks up listings. Reads go straight to the store so
// snapshots are built from authoritative data, never the cache.
type PropertyDirectory interface {
	GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error)
}

// UserDirectory looks up accounts for email delivery.
type UserDirectory interface {
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// ConversationStarter opens the applicant/owner message thread.
type ConversationStarter interface {
	CreateConversation(ctx context.Context, params conversation.CreateParams) (*conversation.Conversation, error)
	AddParticipant(ctx context.Context, conversationID, userID uuid.UUID) error
}

// Notifier records in-app notifications.
type Notifier interface {
	NewApplication(ctx context.Context, ownerID uuid.UUID, app *Application) error
	ScoringComplete(ctx context.Context, ownerID uuid.UUID, app *Application) error
	StatusChanged(ctx context.Context, recipientID uuid.UUID, app *Application) error
}

// Mailer delivers rendered email.
type Mailer interface {
	Send(ctx context.Context, msg email.Message) error
}

// Service owns the application lifecycle: submission, scoring, updates and
// status transitions.
type Service struct {
	repo          Repository
	properties    PropertyDirectory
	users         UserDirectory
	conversations ConversationStarter
	notifier      Notifier
	mailer        Mailer
	scorer        *Scorer
	tasks         task.Runner
}

// ServiceDeps carries the collaborators the lifecycle needs.
type ServiceDeps struct {
	Repo          Repository
	Properties    PropertyDirectory
	Users         UserDirectory
	Conversations ConversationStarter
	Notifier      Notifier
	Mailer        Mailer
	Scorer        *Scorer
	Tasks         task.Runner
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		repo:          deps.Repo,
		properties:    deps.Properties,
		users:         deps.Users,
		conversations: deps.Conversations,
		notifier:      deps.Notifier,
		mailer:        deps.Mailer,
		scorer:        deps.Scorer,
		tasks:         deps.Tasks,
	}
}

// CreateParams is the submission payload. The first violated rule becomes
// the error message, mirroring the intake form.
type CreateParams struct {
	PropertyID     uuid.UUID `validate:"required"`
	PersonalInfo   PersonalInfo
	Employment     Employment
	RentalHistory  RentalHistory
	CoApplicants   []CoApplicant `validate:"max=4,dive"`
	Documents      map[string]DocumentStatus
	CurrentAddress string `validate:"max=500"`
	MoveInDate     *time.Time
	Message        string `validate:"max=2000"`
}

// UpdateParams are partial application edits. Nil fields are left unchanged.
// Score fields are written by the service itself, never from a request.
type UpdateParams struct {
	Employment     *Employment
	PersonalInfo   *PersonalInfo
	RentalHistory  *RentalHistory
	CoApplicants   *[]CoApplicant
	Documents      *map[string]DocumentStatus
	CurrentAddress *string
	MoveInDate     *time.Time
	Message        *string

	ConversationID *uuid.UUID

	Score          *int
	ScoreBreakdown *ScoreBreakdown
	ScoredAt       *time.Time
}

// StatusUpdateParams describes a requested lifecycle move.
type StatusUpdateParams struct {
	Status    Status
	Reason    string
	Rejection *RejectionInfo
}

// RejectionInfo is only consulted when the target status is rejected.
type RejectionInfo struct {
	Category string
	Reason   string
	Details  *RejectionDetails
}

// StatusUpdate is the persisted result of an authorized transition.
type StatusUpdate struct {
	Status            Status
	PreviousStatus    Status
	Entry             StatusChange
	RejectionCategory string
	RejectionReason   string
	RejectionDetails  *RejectionDetails
	ReviewedBy        *uuid.UUID
	ReviewedAt        *time.Time
}

// Create validates and stores a submission, snapshots the listing terms,
// scores it, and kicks off the conversation and notification side effects.
// Side effects never fail the submission.
func (s *Service) Create(ctx context.Context, applicantID uuid.UUID, params CreateParams) (*Application, error) {
	if err := validate.Struct(params); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	prop, err := s.properties.GetProperty(ctx, params.PropertyID)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			return nil, &NotFoundError{Resource: "property"}
		}

		return nil, fmt.Errorf("loading property: %w", err)
	}

	exists, err := s.repo.CheckDuplicateApplication(ctx, applicantID, prop.ID)
	if err != nil {
		return nil, fmt.Errorf("checking for duplicate application: %w", err)
	}

	if exists {
		return nil, &DuplicateError{PropertyID: prop.ID}
	}

	now := time.Now().UTC()
	app := &Application{
		ApplicantID: applicantID,
		PropertyID:  prop.ID,
		Status:      StatusSubmitted,
		StatusHistory: []StatusChange{
			{Status: StatusSubmitted, ChangedAt: now, ChangedBy: applicantID},
		},
		Snapshot:       snapshotProperty(prop),
		Employment:     params.Employment,
		PersonalInfo:   params.PersonalInfo,
		RentalHistory:  params.RentalHistory,
		CoApplicants:   params.CoApplicants,
		Documents:      params.Documents,
		CurrentAddress: params.CurrentAddress,
		MoveInDate:     params.MoveInDate,
		Message:        params.Message,
	}

	if err := s.repo.CreateApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	// The initial score must exist before the caller reads the response.
	scored, err := s.rescore(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("scoring application: %w", err)
	}

	if prop.OwnerID != uuid.Nil {
		s.tasks.Go("conversation-bootstrap", func(ctx context.Context) {
			s.startConversation(ctx, scored, prop)
		})

		s.tasks.Go("owner-new-application", func(ctx context.Context) {
			if err := s.notifier.NewApplication(ctx, prop.OwnerID, scored); err != nil {
				slog.Error("failed to notify owner of new application", "application_id", scored.ID, "error", err)
			}
		})
	}

	s.tasks.Go("application-confirmation-email", func(ctx context.Context) {
		s.sendConfirmation(ctx, scored)
	})

	return scored, nil
}

func (s *Service) Get(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role) (*Application, error) {
	app, err := s.repo.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	party, err := s.isParty(ctx, app, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	if !party {
		return nil, &AuthorizationError{Reason: "not allowed to view this application"}
	}

	return app, nil
}

// Update applies edits and rescores when employment or personal info
// changed. Untouched sections leave the score and its timestamp alone.
func (s *Service) Update(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role, params UpdateParams) (*Application, error) {
	app, err := s.repo.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	party, err := s.isParty(ctx, app, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	if !party {
		return nil, &AuthorizationError{Reason: "not allowed to update this application"}
	}

	updated, err := s.repo.UpdateApplication(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("updating application: %w", err)
	}

	if params.Employment == nil && params.PersonalInfo == nil {
		return updated, nil
	}

	rescored, err := s.rescore(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("rescoring application: %w", err)
	}

	s.tasks.Go("owner-scoring-complete", func(ctx context.Context) {
		prop, err := s.properties.GetProperty(ctx, rescored.PropertyID)
		if err != nil {
			slog.Error("failed to load property for scoring notification", "application_id", rescored.ID, "error", err)
			return
		}

		if prop.OwnerID == uuid.Nil {
			return
		}

		if err := s.notifier.ScoringComplete(ctx, prop.OwnerID, rescored); err != nil {
			slog.Error("failed to notify owner of scoring", "application_id", rescored.ID, "error", err)
		}
	})

	return rescored, nil
}

// UpdateStatus moves an application through the lifecycle. The transition
// table decides what is reachable; the role rules decide who may do it.
func (s *Service) UpdateStatus(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role, params StatusUpdateParams) (*Application, error) {
	app, err := s.repo.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	prop, err := s.properties.GetProperty(ctx, app.PropertyID)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			return nil, &NotFoundError{Resource: "property"}
		}

		return nil, fmt.Errorf("loading property: %w", err)
	}

	if !CanTransition(app.Status, params.Status) {
		return nil, &TransitionError{From: app.Status, To: params.Status}
	}

	if err := authorizeTransition(params.Status, requesterID, requesterRole, app.ApplicantID, prop.OwnerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	change := StatusUpdate{
		Status:         params.Status,
		PreviousStatus: app.Status,
		Entry: StatusChange{
			Status:    params.Status,
			ChangedAt: now,
			ChangedBy: requesterID,
			Reason:    params.Reason,
		},
	}

	if params.Status == StatusRejected && params.Rejection != nil {
		change.RejectionCategory = params.Rejection.Category
		change.RejectionReason = params.Rejection.Reason
		change.RejectionDetails = params.Rejection.Details
	}

	if params.Status == StatusApproved || params.Status == StatusRejected {
		change.ReviewedBy = &requesterID
		change.ReviewedAt = &now
	}

	updated, err := s.repo.UpdateApplicationStatus(ctx, id, change)
	if err != nil {
		return nil, fmt.Errorf("updating application status: %w", err)
	}

	s.tasks.Go("status-change-notification", func(ctx context.Context) {
		if err := s.notifier.StatusChanged(ctx, updated.ApplicantID, updated); err != nil {
			slog.Error("failed to send status change notification", "application_id", updated.ID, "error", err)
		}
	})

	return updated, nil
}

func (s *Service) ListByUser(ctx context.Context, userID, requesterID uuid.UUID, requesterRole user.Role) ([]*Application, error) {
	if requesterID != userID && requesterRole != user.RoleAdmin {
		return nil, &AuthorizationError{Reason: "not allowed to view another user's applications"}
	}

	apps, err := s.repo.FindApplicationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing applications by user: %w", err)
	}

	return apps, nil
}

func (s *Service) ListByProperty(ctx context.Context, propertyID, requesterID uuid.UUID, requesterRole user.Role) ([]*Application, error) {
	prop, err := s.properties.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			return nil, &NotFoundError{Resource: "property"}
		}

		return nil, fmt.Errorf("loading property: %w", err)
	}

	if requesterID != prop.OwnerID && requesterRole != user.RoleAdmin {
		return nil, &AuthorizationError{Reason: "only the property owner or an admin can view a property's applications"}
	}

	apps, err := s.repo.FindApplicationsByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("listing applications by property: %w", err)
	}

	return apps, nil
}

// rescore computes and persists the score, returning the stored application.
func (s *Service) rescore(ctx context.Context, app *Application) (*Application, error) {
	bd, err := s.scorer.Calculate(ctx, app)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return s.repo.UpdateApplication(ctx, app.ID, UpdateParams{
		Score:          &bd.TotalScore,
		ScoreBreakdown: bd,
		ScoredAt:       &now,
	})
}

// isParty reports whether the requester is the applicant, the property
// owner, or an admin. A missing property only rules out the owner check.
func (s *Service) isParty(ctx context.Context, app *Application, requesterID uuid.UUID, requesterRole user.Role) (bool, error) {
	if requesterID == app.ApplicantID || requesterRole == user.RoleAdmin {
		return true, nil
	}

	prop, err := s.properties.GetProperty(ctx, app.PropertyID)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("loading property: %w", err)
	}

	return prop.OwnerID == requesterID, nil
}

func (s *Service) startConversation(ctx context.Context, app *Application, prop *property.Property) {
	conv, err := s.conversations.CreateConversation(ctx, conversation.CreateParams{
		PropertyID:    prop.ID,
		ApplicationID: &app.ID,
		Subject:       fmt.Sprintf("Application for %s", prop.Title),
	})
	if err != nil {
		slog.Error("failed to start application conversation", "application_id", app.ID, "error", err)
		return
	}

	for _, participant := range []uuid.UUID{app.ApplicantID, prop.OwnerID} {
		if err := s.conversations.AddParticipant(ctx, conv.ID, participant); err != nil {
			slog.Error("failed to add conversation participant",
				"conversation_id", conv.ID, "user_id", participant, "error", err)
		}
	}

	if _, err := s.repo.UpdateApplication(ctx, app.ID, UpdateParams{ConversationID: &conv.ID}); err != nil {
		slog.Error("failed to link conversation to application", "application_id", app.ID, "error", err)
	}
}

func (s *Service) sendConfirmation(ctx context.Context, app *Application) {
	applicant, err := s.users.GetUser(ctx, app.ApplicantID)
	if err != nil {
		slog.Error("failed to load applicant for confirmation email", "application_id", app.ID, "error", err)
		return
	}

	msg, err := email.ApplicationReceived(applicant.Email, email.ApplicationReceivedData{
		ApplicantName:   applicant.FullName,
		PropertyTitle:   app.Snapshot.Title,
		PropertyAddress: app.Snapshot.Address,
		Rent:            app.Snapshot.Rent,
		SubmittedAt:     app.CreatedAt,
	})
	if err != nil {
		slog.Error("failed to render confirmation email", "application_id", app.ID, "error", err)
		return
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.Error("failed to send confirmation email", "application_id", app.ID, "error", err)
	}
}
