package application_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rentora/rentora/internal/application"
	apphttp "github.com/rentora/rentora/internal/http/application"
	"github.com/rentora/rentora/internal/http/auth"
	"github.com/rentora/rentora/internal/property"
	"github.com/rentora/rentora/internal/task"
	"github.com/rentora/rentora/internal/user"
)

const testSecret = "handler-test-secret"

type serviceMocks struct {
	repo       *application.MockRepository
	properties *application.MockPropertyDirectory
}

// newServer mounts the handler behind real token auth, with the lifecycle's
// collaborators mocked out.
func newServer(ctrl *gomock.Controller) (http.Handler, serviceMocks) {
	m := serviceMocks{
		repo:       application.NewMockRepository(ctrl),
		properties: application.NewMockPropertyDirectory(ctrl),
	}

	svc := application.NewService(application.ServiceDeps{
		Repo:          m.repo,
		Properties:    m.properties,
		Users:         application.NewMockUserDirectory(ctrl),
		Conversations: application.NewMockConversationStarter(ctrl),
		Notifier:      application.NewMockNotifier(ctrl),
		Mailer:        application.NewMockMailer(ctrl),
		Scorer:        application.NewScorer(application.NewMockCreditBureau(0)),
		Tasks:         task.Sync{},
	})

	h := apphttp.NewHandler(svc)

	router := chi.NewRouter()
	router.Route("/applications", func(r chi.Router) {
		r.Use(auth.Middleware(testSecret))
		h.Routes(r)
	})
	router.Route("/properties", func(r chi.Router) {
		r.Use(auth.Middleware(testSecret))
		h.PropertyRoutes(r)
	})

	return router, m
}

func bearer(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"role": string(role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return "Bearer " + signed
}

func TestHandler_Create_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, _ := newServer(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/applications/", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Create_BadJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, _ := newServer(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/applications/", strings.NewReader(`{not json`))
	req.Header.Set("Authorization", bearer(t, uuid.New(), user.RoleRenter))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Create_ValidationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, _ := newServer(ctrl)

	// personal info is missing entirely
	body := `{"property_id":"` + uuid.NewString() + `"}`

	req := httptest.NewRequest(http.MethodPost, "/applications/", strings.NewReader(body))
	req.Header.Set("Authorization", bearer(t, uuid.New(), user.RoleRenter))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_Create_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newServer(ctrl)

	applicantID := uuid.New()
	prop := &property.Property{ID: uuid.New(), OwnerID: uuid.New(), Title: "Sunny 2BR", Rent: 1850}

	m.properties.EXPECT().GetProperty(gomock.Any(), prop.ID).Return(prop, nil)
	m.repo.EXPECT().CheckDuplicateApplication(gomock.Any(), applicantID, prop.ID).Return(true, nil)

	body := `{
		"property_id": "` + prop.ID.String() + `",
		"personal_info": {"full_name": "Avery Renter", "email": "avery@example.com"}
	}`

	req := httptest.NewRequest(http.MethodPost, "/applications/", strings.NewReader(body))
	req.Header.Set("Authorization", bearer(t, applicantID, user.RoleRenter))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already applied")
}

func TestHandler_Get_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newServer(ctrl)

	app := &application.Application{
		ID:          uuid.New(),
		ApplicantID: uuid.New(),
		PropertyID:  uuid.New(),
		Status:      application.StatusSubmitted,
	}
	prop := &property.Property{ID: app.PropertyID, OwnerID: uuid.New()}

	m.repo.EXPECT().GetApplication(gomock.Any(), app.ID).Return(app, nil)
	m.properties.EXPECT().GetProperty(gomock.Any(), app.PropertyID).Return(prop, nil)

	req := httptest.NewRequest(http.MethodGet, "/applications/"+app.ID.String(), nil)
	req.Header.Set("Authorization", bearer(t, uuid.New(), user.RoleRenter))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newServer(ctrl)

	id := uuid.New()
	m.repo.EXPECT().GetApplication(gomock.Any(), id).Return(nil, application.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/applications/"+id.String(), nil)
	req.Header.Set("Authorization", bearer(t, uuid.New(), user.RoleAdmin))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Get_ReturnsNextStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newServer(ctrl)

	applicantID := uuid.New()
	app := &application.Application{
		ID:          uuid.New(),
		ApplicantID: applicantID,
		PropertyID:  uuid.New(),
		Status:      application.StatusSubmitted,
		Snapshot:    application.PropertySnapshot{Rent: 1850, Title: "Sunny 2BR"},
		Score:       86,
	}

	m.repo.EXPECT().GetApplication(gomock.Any(), app.ID).Return(app, nil)

	req := httptest.NewRequest(http.MethodGet, "/applications/"+app.ID.String(), nil)
	req.Header.Set("Authorization", bearer(t, applicantID, user.RoleRenter))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status       string   `json:"status"`
		NextStatuses []string `json:"next_statuses"`
		Score        int      `json:"score"`
		Snapshot     struct {
			Rent float64 `json:"rent"`
		} `json:"property_snapshot"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "submitted", resp.Status)
	assert.ElementsMatch(t, []string{"under_review", "withdrawn"}, resp.NextStatuses)
	assert.Equal(t, 86, resp.Score)
	assert.Equal(t, 1850.0, resp.Snapshot.Rent)
}

func TestHandler_UpdateStatus_IllegalTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newServer(ctrl)

	ownerID := uuid.New()
	app := &application.Application{
		ID:          uuid.New(),
		ApplicantID: uuid.New(),
		PropertyID:  uuid.New(),
		Status:      application.StatusSubmitted,
	}
	prop := &property.Property{ID: app.PropertyID, OwnerID: ownerID}

	m.repo.EXPECT().GetApplication(gomock.Any(), app.ID).Return(app, nil)
	m.properties.EXPECT().GetProperty(gomock.Any(), app.PropertyID).Return(prop, nil)

	req := httptest.NewRequest(http.MethodPatch, "/applications/"+app.ID.String()+"/status",
		strings.NewReader(`{"status":"approved"}`))
	req.Header.Set("Authorization", bearer(t, ownerID, user.RoleLandlord))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "cannot change status")
}

func TestHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, _ := newServer(ctrl)

	req := httptest.NewRequest(http.MethodPatch, "/applications/"+uuid.NewString()+"/status",
		strings.NewReader(`{"status":"archived"}`))
	req.Header.Set("Authorization", bearer(t, uuid.New(), user.RoleLandlord))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ListByProperty_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, m := newServer(ctrl)

	prop := &property.Property{ID: uuid.New(), OwnerID: uuid.New()}
	m.properties.EXPECT().GetProperty(gomock.Any(), prop.ID).Return(prop, nil)

	req := httptest.NewRequest(http.MethodGet, "/properties/"+prop.ID.String()+"/applications", nil)
	req.Header.Set("Authorization", bearer(t, uuid.New(), user.RoleRenter))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
