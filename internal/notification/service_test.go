package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rentora/rentora/internal/application"
	"github.com/rentora/rentora/internal/notification"
)

func testApp() *application.Application {
	return &application.Application{
		ID:          uuid.New(),
		ApplicantID: uuid.New(),
		PropertyID:  uuid.New(),
		Status:      application.StatusUnderReview,
		PersonalInfo: application.PersonalInfo{
			FullName: "Avery Renter",
			Email:    "avery@example.com",
		},
		Snapshot: application.PropertySnapshot{Title: "Sunny 2BR near the park"},
		Score:    86,
	}
}

func TestService_NewApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := notification.NewMockRepository(ctrl)
	svc := notification.NewService(repo)

	app := testApp()
	ownerID := uuid.New()

	repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notification.Notification) error {
			assert.Equal(t, ownerID, n.UserID)
			assert.Equal(t, notification.TypeNewApplication, n.Type)
			assert.Contains(t, n.Body, "Avery Renter")
			assert.Contains(t, n.Body, "Sunny 2BR near the park")
			assert.Equal(t, app.ID.String(), n.Data["application_id"])
			assert.Equal(t, app.PropertyID.String(), n.Data["property_id"])

			return nil
		})

	require.NoError(t, svc.NewApplication(context.Background(), ownerID, app))
}

func TestService_ScoringComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := notification.NewMockRepository(ctrl)
	svc := notification.NewService(repo)

	app := testApp()
	ownerID := uuid.New()

	repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notification.Notification) error {
			assert.Equal(t, notification.TypeScoringComplete, n.Type)
			assert.Contains(t, n.Body, "86 of 100")
			assert.Equal(t, 86, n.Data["score"])

			return nil
		})

	require.NoError(t, svc.ScoringComplete(context.Background(), ownerID, app))
}

func TestService_StatusChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := notification.NewMockRepository(ctrl)
	svc := notification.NewService(repo)

	app := testApp()
	app.Status = application.StatusConditionalApproval

	repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notification.Notification) error {
			assert.Equal(t, app.ApplicantID, n.UserID)
			assert.Equal(t, notification.TypeStatusChange, n.Type)

			// underscores read badly in a sentence
			assert.Contains(t, n.Body, "conditional approval")
			assert.Equal(t, "conditional_approval", n.Data["status"])

			return nil
		})

	require.NoError(t, svc.StatusChanged(context.Background(), app.ApplicantID, app))
}

func TestService_StatusChanged_RejectionPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := notification.NewMockRepository(ctrl)
	svc := notification.NewService(repo)

	app := testApp()
	app.Status = application.StatusRejected
	app.RejectionReason = "income below requirement"
	app.RejectionDetails = &application.RejectionDetails{Appealable: true}

	repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notification.Notification) error {
			assert.Equal(t, "rejected", n.Data["status"])
			assert.Equal(t, "income below requirement", n.Data["rejection_reason"])
			assert.Equal(t, true, n.Data["appealable"])

			return nil
		})

	require.NoError(t, svc.StatusChanged(context.Background(), app.ApplicantID, app))
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := notification.NewMockRepository(ctrl)
	svc := notification.NewService(repo)

	userID := uuid.New()
	now := time.Now().UTC()

	repo.EXPECT().ListNotifications(gomock.Any(), userID, true).Return([]*notification.Notification{
		{ID: uuid.New(), UserID: userID, Type: notification.TypeStatusChange, CreatedAt: now},
	}, nil)

	ns, err := svc.List(context.Background(), userID, true)
	require.NoError(t, err)
	assert.Len(t, ns, 1)
}

func TestService_MarkRead_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := notification.NewMockRepository(ctrl)
	svc := notification.NewService(repo)

	id := uuid.New()
	userID := uuid.New()

	repo.EXPECT().MarkRead(gomock.Any(), id, userID).Return(notification.ErrNotFound)

	err := svc.MarkRead(context.Background(), id, userID)
	assert.ErrorIs(t, err, notification.ErrNotFound)
}
