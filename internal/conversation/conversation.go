package conversation

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a message thread between an applicant and a property
// owner. Threads opened by an application submission carry its ID.
type Conversation struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	ApplicationID *uuid.UUID
	Subject       string
	CreatedAt     time.Time
}

type CreateParams struct {
	PropertyID    uuid.UUID
	ApplicationID *uuid.UUID
	Subject       string
}
