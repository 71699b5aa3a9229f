package application

import (
	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/user"
)

// transitions enumerates the allowed next statuses for each state. Terminal
// states map to nil. Draft applications may move straight to submitted when
// the listing charges no application fee, or through the payment leg when it
// does.
var transitions = map[Status][]Status{
	StatusDraft:               {StatusSubmitted, StatusPendingPayment, StatusWithdrawn},
	StatusPendingPayment:      {StatusPaymentVerified, StatusWithdrawn},
	StatusPaymentVerified:     {StatusSubmitted, StatusWithdrawn},
	StatusSubmitted:           {StatusUnderReview, StatusWithdrawn},
	StatusUnderReview:         {StatusInfoRequested, StatusConditionalApproval, StatusApproved, StatusRejected, StatusWithdrawn},
	StatusInfoRequested:       {StatusUnderReview, StatusConditionalApproval, StatusApproved, StatusRejected, StatusWithdrawn},
	StatusConditionalApproval: {StatusApproved, StatusRejected, StatusWithdrawn},
	StatusApproved:            nil,
	StatusRejected:            nil,
	StatusWithdrawn:           nil,
}

// CanTransition reports whether the lifecycle allows moving between the two
// statuses. Unknown statuses have no transitions.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// NextStatuses returns the statuses reachable from the given one.
func NextStatuses(from Status) []Status {
	next := transitions[from]

	out := make([]Status, len(next))
	copy(out, next)

	return out
}

// reviewStatuses are the moves reserved for the property owner or an admin.
var reviewStatuses = map[Status]bool{
	StatusUnderReview:         true,
	StatusInfoRequested:       true,
	StatusConditionalApproval: true,
	StatusApproved:            true,
	StatusRejected:            true,
}

// authorizeTransition enforces who may move an application into the target
// status. The transition table has already been consulted at this point.
func authorizeTransition(to Status, requesterID uuid.UUID, requesterRole user.Role, applicantID, ownerID uuid.UUID) error {
	isApplicant := requesterID == applicantID
	isOwner := requesterID == ownerID
	isAdmin := requesterRole == user.RoleAdmin

	switch {
	case to == StatusWithdrawn:
		if !isApplicant {
			return &AuthorizationError{Reason: "only the applicant can withdraw an application"}
		}
	case to == StatusSubmitted:
		if !isApplicant {
			return &AuthorizationError{Reason: "only the applicant can submit an application"}
		}
	case reviewStatuses[to]:
		if !isOwner && !isAdmin {
			return &AuthorizationError{Reason: "only the property owner or an admin can review applications"}
		}
	default:
		// payment leg: any party to the application
		if !isApplicant && !isOwner && !isAdmin {
			return &AuthorizationError{Reason: "not allowed to update this application"}
		}
	}

	return nil
}
