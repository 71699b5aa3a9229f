package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/application"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=notification

// Repository persists notifications.
type Repository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

// Service writes and reads dashboard notifications. It is the Notifier the
// application lifecycle calls after submissions, scoring and status changes.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewApplication tells a property owner that someone applied.
func (s *Service) NewApplication(ctx context.Context, ownerID uuid.UUID, app *application.Application) error {
	return s.repo.CreateNotification(ctx, &Notification{
		UserID: ownerID,
		Type:   TypeNewApplication,
		Title:  "New application received",
		Body:   fmt.Sprintf("%s applied for %s.", app.PersonalInfo.FullName, app.Snapshot.Title),
		Data: map[string]any{
			"application_id": app.ID.String(),
			"property_id":    app.PropertyID.String(),
		},
	})
}

// ScoringComplete tells a property owner that an application's screening
// score is ready or has changed.
func (s *Service) ScoringComplete(ctx context.Context, ownerID uuid.UUID, app *application.Application) error {
	return s.repo.CreateNotification(ctx, &Notification{
		UserID: ownerID,
		Type:   TypeScoringComplete,
		Title:  "Application screening updated",
		Body:   fmt.Sprintf("%s now scores %d of %d.", app.PersonalInfo.FullName, app.Score, application.MaxScore),
		Data: map[string]any{
			"application_id": app.ID.String(),
			"property_id":    app.PropertyID.String(),
			"score":          app.Score,
		},
	})
}

// StatusChanged tells the applicant their application moved. Rejections
// carry the stated reason and whether the decision can be appealed.
func (s *Service) StatusChanged(ctx context.Context, recipientID uuid.UUID, app *application.Application) error {
	data := map[string]any{
		"application_id": app.ID.String(),
		"property_id":    app.PropertyID.String(),
		"status":         string(app.Status),
	}

	if app.Status == application.StatusRejected {
		if app.RejectionReason != "" {
			data["rejection_reason"] = app.RejectionReason
		}

		if app.RejectionDetails != nil {
			data["appealable"] = app.RejectionDetails.Appealable
		}
	}

	return s.repo.CreateNotification(ctx, &Notification{
		UserID: recipientID,
		Type:   TypeStatusChange,
		Title:  "Application status updated",
		Body:   fmt.Sprintf("Your application for %s is now %s.", app.Snapshot.Title, statusLabel(app.Status)),
		Data:   data,
	})
}

// List returns a user's notifications, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*Notification, error) {
	ns, err := s.repo.ListNotifications(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	return ns, nil
}

// MarkRead stamps a notification as read. Reading it twice keeps the first
// timestamp. Notifications belonging to someone else report not found.
func (s *Service) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func statusLabel(status application.Status) string {
	return strings.ReplaceAll(string(status), "_", " ")
}
