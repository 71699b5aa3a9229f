package application

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/application"
	"github.com/rentora/rentora/internal/http/auth"
)

type Handler struct {
	svc *application.Service
}

func NewHandler(svc *application.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/my", h.listMine)
	r.Get("/user/{userID}", h.listByUser)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Patch("/{id}/status", h.updateStatus)
}

// PropertyRoutes mounts the owner-facing listing of a property's applications.
func (h *Handler) PropertyRoutes(r chi.Router) {
	r.Get("/{id}/applications", h.listByProperty)
}

type createApplicationRequest struct {
	PropertyID     uuid.UUID                              `json:"property_id"`
	PersonalInfo   application.PersonalInfo               `json:"personal_info"`
	Employment     application.Employment                 `json:"employment"`
	RentalHistory  application.RentalHistory              `json:"rental_history"`
	CoApplicants   []application.CoApplicant              `json:"co_applicants"`
	Documents      map[string]application.DocumentStatus  `json:"documents"`
	CurrentAddress string                                 `json:"current_address"`
	MoveInDate     *time.Time                             `json:"move_in_date"`
	Message        string                                 `json:"message"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req createApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	app, err := h.svc.Create(r.Context(), identity.UserID, application.CreateParams{
		PropertyID:     req.PropertyID,
		PersonalInfo:   req.PersonalInfo,
		Employment:     req.Employment,
		RentalHistory:  req.RentalHistory,
		CoApplicants:   req.CoApplicants,
		Documents:      req.Documents,
		CurrentAddress: req.CurrentAddress,
		MoveInDate:     req.MoveInDate,
		Message:        req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(app)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	app, err := h.svc.Get(r.Context(), id, identity.UserID, identity.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(app)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateApplicationRequest struct {
	Employment     *application.Employment                 `json:"employment,omitempty"`
	PersonalInfo   *application.PersonalInfo               `json:"personal_info,omitempty"`
	RentalHistory  *application.RentalHistory              `json:"rental_history,omitempty"`
	CoApplicants   *[]application.CoApplicant              `json:"co_applicants,omitempty"`
	Documents      *map[string]application.DocumentStatus  `json:"documents,omitempty"`
	CurrentAddress *string                                 `json:"current_address,omitempty"`
	MoveInDate     *time.Time                              `json:"move_in_date,omitempty"`
	Message        *string                                 `json:"message,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	app, err := h.svc.Update(r.Context(), id, identity.UserID, identity.Role, application.UpdateParams{
		Employment:     req.Employment,
		PersonalInfo:   req.PersonalInfo,
		RentalHistory:  req.RentalHistory,
		CoApplicants:   req.CoApplicants,
		Documents:      req.Documents,
		CurrentAddress: req.CurrentAddress,
		MoveInDate:     req.MoveInDate,
		Message:        req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(app)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type rejectionRequest struct {
	Category string                        `json:"category"`
	Reason   string                        `json:"reason"`
	Details  *application.RejectionDetails `json:"details,omitempty"`
}

type updateStatusRequest struct {
	Status    application.Status `json:"status"`
	Reason    string             `json:"reason,omitempty"`
	Rejection *rejectionRequest  `json:"rejection,omitempty"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !req.Status.IsValid() {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return
	}

	params := application.StatusUpdateParams{
		Status: req.Status,
		Reason: req.Reason,
	}

	if req.Rejection != nil {
		params.Rejection = &application.RejectionInfo{
			Category: req.Rejection.Category,
			Reason:   req.Rejection.Reason,
			Details:  req.Rejection.Details,
		}
	}

	app, err := h.svc.UpdateStatus(r.Context(), id, identity.UserID, identity.Role, params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(app)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	apps, err := h.svc.ListByUser(r.Context(), identity.UserID, identity.UserID, identity.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(apps)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listByUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	apps, err := h.svc.ListByUser(r.Context(), userID, identity.UserID, identity.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(apps)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listByProperty(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	propertyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return
	}

	apps, err := h.svc.ListByProperty(r.Context(), propertyID, identity.UserID, identity.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(apps)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps lifecycle errors onto status codes. Anything unrecognized
// is a 500 and gets logged, not echoed.
func writeError(w http.ResponseWriter, err error) {
	var (
		valErr  *application.ValidationError
		dupErr  *application.DuplicateError
		nfErr   *application.NotFoundError
		authErr *application.AuthorizationError
		trErr   *application.TransitionError
	)

	switch {
	case errors.As(err, &valErr):
		http.Error(w, valErr.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &dupErr):
		http.Error(w, dupErr.Error(), http.StatusConflict)
	case errors.As(err, &trErr):
		http.Error(w, trErr.Error(), http.StatusConflict)
	case errors.As(err, &nfErr):
		http.Error(w, nfErr.Error(), http.StatusNotFound)
	case errors.Is(err, application.ErrNotFound):
		http.Error(w, "application not found", http.StatusNotFound)
	case errors.As(err, &authErr):
		http.Error(w, authErr.Error(), http.StatusForbidden)
	default:
		slog.Error("application request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
