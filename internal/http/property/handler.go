package property

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/http/auth"
	"github.com/rentora/rentora/internal/property"
	"github.com/rentora/rentora/internal/user"
)

type Handler struct {
	svc *property.Service
}

func NewHandler(svc *property.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes are the browse endpoints; no token required.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
}

type createPropertyRequest struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Address         string            `json:"address"`
	City            string            `json:"city"`
	State           string            `json:"state"`
	Zip             string            `json:"zip"`
	Type            string            `json:"type"`
	Bedrooms        int               `json:"bedrooms"`
	Bathrooms       float64           `json:"bathrooms"`
	SquareFeet      int               `json:"square_feet"`
	Rent            float64           `json:"rent"`
	Deposit         float64           `json:"deposit"`
	ApplicationFee  float64           `json:"application_fee"`
	LeaseTermMonths int               `json:"lease_term_months"`
	AvailableDate   *time.Time        `json:"available_date"`
	Policies        property.Policies `json:"policies"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	// renters browse and apply; they do not list properties
	if identity.Role != user.RoleLandlord && identity.Role != user.RoleAgent && identity.Role != user.RoleAdmin {
		http.Error(w, "only landlords and agents can create listings", http.StatusForbidden)
		return
	}

	var req createPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), identity.UserID, property.CreateParams{
		Title:           req.Title,
		Description:     req.Description,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Zip:             req.Zip,
		Type:            req.Type,
		Bedrooms:        req.Bedrooms,
		Bathrooms:       req.Bathrooms,
		SquareFeet:      req.SquareFeet,
		Rent:            req.Rent,
		Deposit:         req.Deposit,
		ApplicationFee:  req.ApplicationFee,
		LeaseTermMonths: req.LeaseTermMonths,
		AvailableDate:   req.AvailableDate,
		Policies:        req.Policies,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := property.ListFilter{}

	q := r.URL.Query()

	if s := q.Get("city"); s != "" {
		filter.City = &s
	}

	if s := q.Get("status"); s != "" {
		st := property.Status(s)
		filter.Status = &st
	}

	if s := q.Get("min_rent"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			filter.MinRent = &v
		}
	}

	if s := q.Get("max_rent"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			filter.MaxRent = &v
		}
	}

	if s := q.Get("bedrooms"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			filter.Bedrooms = &v
		}
	}

	props, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(props)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updatePropertyRequest struct {
	Title           *string            `json:"title,omitempty"`
	Description     *string            `json:"description,omitempty"`
	Rent            *float64           `json:"rent,omitempty"`
	Deposit         *float64           `json:"deposit,omitempty"`
	ApplicationFee  *float64           `json:"application_fee,omitempty"`
	LeaseTermMonths *int               `json:"lease_term_months,omitempty"`
	AvailableDate   *time.Time         `json:"available_date,omitempty"`
	Policies        *property.Policies `json:"policies,omitempty"`
	Status          *property.Status   `json:"status,omitempty"`
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

	var req updatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Update(r.Context(), id, identity.UserID, identity.Role, property.UpdateParams{
		Title:           req.Title,
		Description:     req.Description,
		Rent:            req.Rent,
		Deposit:         req.Deposit,
		ApplicationFee:  req.ApplicationFee,
		LeaseTermMonths: req.LeaseTermMonths,
		AvailableDate:   req.AvailableDate,
		Policies:        req.Policies,
		Status:          req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, property.ErrInvalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, property.ErrNotFound):
		http.Error(w, "property not found", http.StatusNotFound)
	case errors.Is(err, property.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		slog.Error("property request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
