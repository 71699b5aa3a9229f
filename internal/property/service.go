package property

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/cache"
	"github.com/rentora/rentora/internal/user"
	"github.com/rentora/rentora/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=property
type Repository interface {
	CreateProperty(ctx context.Context, p *Property) error
	GetProperty(ctx context.Context, id uuid.UUID) (*Property, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, params UpdateParams) (*Property, error)
	ListProperties(ctx context.Context, filter ListFilter) ([]*Property, error)
}

// Service serves listing reads through Redis. Lookups that feed application
// snapshots go to the repository directly, not through here.
type Service struct {
	repo  Repository
	cache *cache.Cache
	ttl   time.Duration
}

func NewService(repo Repository, c *cache.Cache, ttl time.Duration) *Service {
	return &Service{repo: repo, cache: c, ttl: ttl}
}

type CreateParams struct {
	Title           string  `validate:"required,min=3,max=200"`
	Description     string  `validate:"max=5000"`
	Address         string  `validate:"required,max=500"`
	City            string  `validate:"max=100"`
	State           string  `validate:"max=100"`
	Zip             string  `validate:"max=20"`
	Type            string  `validate:"omitempty,oneof=apartment house condo townhouse room"`
	Bedrooms        int     `validate:"gte=0,lte=20"`
	Bathrooms       float64 `validate:"gte=0,lte=20"`
	SquareFeet      int     `validate:"gte=0"`
	Rent            float64 `validate:"required,gt=0"`
	Deposit         float64 `validate:"gte=0"`
	ApplicationFee  float64 `validate:"gte=0"`
	LeaseTermMonths int     `validate:"gte=0,lte=60"`
	AvailableDate   *time.Time
	Policies        Policies
}

// UpdateParams are listing edits. Nil fields are left unchanged. Every
// applied update bumps the listing version.
type UpdateParams struct {
	Title           *string
	Description     *string
	Rent            *float64
	Deposit         *float64
	ApplicationFee  *float64
	LeaseTermMonths *int
	AvailableDate   *time.Time
	Policies        *Policies
	Status          *Status
}

type ListFilter struct {
	City     *string
	Status   *Status
	MinRent  *float64
	MaxRent  *float64
	Bedrooms *int
}

// cacheKey builds a stable key covering every filter dimension.
func (f ListFilter) cacheKey() string {
	var b strings.Builder

	b.WriteString("properties:list")

	if f.City != nil {
		fmt.Fprintf(&b, ":city=%s", strings.ToLower(*f.City))
	}

	if f.Status != nil {
		fmt.Fprintf(&b, ":status=%s", *f.Status)
	}

	if f.MinRent != nil {
		fmt.Fprintf(&b, ":min=%g", *f.MinRent)
	}

	if f.MaxRent != nil {
		fmt.Fprintf(&b, ":max=%g", *f.MaxRent)
	}

	if f.Bedrooms != nil {
		fmt.Fprintf(&b, ":beds=%d", *f.Bedrooms)
	}

	return b.String()
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Property, error) {
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, err)
	}

	status := StatusActive

	p := &Property{
		OwnerID:         ownerID,
		Title:           params.Title,
		Description:     params.Description,
		Address:         params.Address,
		City:            params.City,
		State:           params.State,
		Zip:             params.Zip,
		Type:            params.Type,
		Bedrooms:        params.Bedrooms,
		Bathrooms:       params.Bathrooms,
		SquareFeet:      params.SquareFeet,
		Rent:            params.Rent,
		Deposit:         params.Deposit,
		ApplicationFee:  params.ApplicationFee,
		LeaseTermMonths: params.LeaseTermMonths,
		AvailableDate:   params.AvailableDate,
		Policies:        params.Policies,
		Status:          status,
		Version:         1,
	}

	if err := s.repo.CreateProperty(ctx, p); err != nil {
		return nil, fmt.Errorf("creating property: %w", err)
	}

	s.invalidate(ctx)

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Property, error) {
	key := "properties:id:" + id.String()

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var p Property
		if err := json.Unmarshal(cached, &p); err == nil {
			return &p, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("property cache read failed", "key", key, "error", err)
	}

	p, err := s.repo.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, p)

	return p, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Property, error) {
	key := filter.cacheKey()

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var props []*Property
		if err := json.Unmarshal(cached, &props); err == nil {
			return props, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("property cache read failed", "key", key, "error", err)
	}

	props, err := s.repo.ListProperties(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}

	s.store(ctx, key, props)

	return props, nil
}

func (s *Service) Update(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role, params UpdateParams) (*Property, error) {
	existing, err := s.repo.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.OwnerID != requesterID && requesterRole != user.RoleAdmin {
		return nil, ErrForbidden
	}

	if params.Status != nil && !params.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, *params.Status)
	}

	updated, err := s.repo.UpdateProperty(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("updating property: %w", err)
	}

	s.invalidate(ctx)

	return updated, nil
}

func (s *Service) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
		slog.Warn("property cache write failed", "key", key, "error", err)
	}
}

// invalidate drops every cached listing read. Edits are rare next to reads,
// so wholesale invalidation keeps the cache trivially correct.
func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, "properties:"); err != nil {
		slog.Warn("property cache invalidation failed", "error", err)
	}
}
