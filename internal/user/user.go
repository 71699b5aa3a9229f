package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

// Role represents what a user is allowed to do on the platform.
type Role string

const (
	RoleRenter   Role = "renter"
	RoleLandlord Role = "landlord"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleRenter, RoleLandlord, RoleAgent, RoleAdmin:
		return true
	}

	return false
}

// User represents a registered account.
type User struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Phone     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt *time.Time
}
