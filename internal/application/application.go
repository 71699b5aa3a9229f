package application

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/property"
)

// Status represents where an application sits in its lifecycle.
type Status string

const (
	StatusDraft               Status = "draft"
	StatusPendingPayment      Status = "pending_payment"
	StatusPaymentVerified     Status = "payment_verified"
	StatusSubmitted           Status = "submitted"
	StatusUnderReview         Status = "under_review"
	StatusInfoRequested       Status = "info_requested"
	StatusConditionalApproval Status = "conditional_approval"
	StatusApproved            Status = "approved"
	StatusRejected            Status = "rejected"
	StatusWithdrawn           Status = "withdrawn"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingPayment, StatusPaymentVerified, StatusSubmitted,
		StatusUnderReview, StatusInfoRequested, StatusConditionalApproval,
		StatusApproved, StatusRejected, StatusWithdrawn:
		return true
	}

	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusWithdrawn
}

// Document kinds every application is expected to provide.
const (
	DocumentID                     = "id"
	DocumentProofOfIncome          = "proof_of_income"
	DocumentEmploymentVerification = "employment_verification"
)

// RequiredDocuments are the kinds counted by the document sub-score. Extra
// uploads are ignored.
var RequiredDocuments = []string{DocumentID, DocumentProofOfIncome, DocumentEmploymentVerification}

// DocumentStatus tracks one uploaded document.
type DocumentStatus struct {
	Uploaded bool   `json:"uploaded"`
	Verified bool   `json:"verified"`
	URL      string `json:"url,omitempty"`
}

// Number is a float64 that also accepts quoted numeric strings, which the
// intake form has historically sent for money fields.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}

	s = strings.Trim(s, `"`)
	if s == "" {
		*n = 0
		return nil
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return fmt.Errorf("parsing number %q: %w", s, err)
	}

	*n = Number(f)

	return nil
}

// DurationText is free-form tenure text such as "2 years" or "18 months".
// Bare JSON numbers are accepted and kept as their literal digits.
type DurationText string

func (d *DurationText) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*d = ""
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}

		*d = DurationText(v)

		return nil
	}

	*d = DurationText(s)

	return nil
}

// Employment captures the applicant's stated work situation.
type Employment struct {
	Employer      string       `json:"employer,omitempty"`
	Position      string       `json:"position,omitempty"`
	MonthlyIncome Number       `json:"monthly_income" validate:"gte=0"`
	Duration      DurationText `json:"duration,omitempty"`

	// Employed is only sent explicitly by the form when false.
	Employed *bool `json:"employed,omitempty"`
}

func (e Employment) IsEmployed() bool {
	return e.Employed == nil || *e.Employed
}

// PersonalInfo identifies the applicant. SSN is optional and only consulted
// by the credit check.
type PersonalInfo struct {
	FullName    string     `json:"full_name" validate:"required,min=2,max=120"`
	Email       string     `json:"email" validate:"required,email"`
	Phone       string     `json:"phone,omitempty" validate:"max=30"`
	SSN         string     `json:"ssn,omitempty" validate:"max=11"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

// RentalHistory is the applicant's account of their current tenancy.
type RentalHistory struct {
	CurrentLandlord  string       `json:"current_landlord,omitempty"`
	LandlordPhone    string       `json:"landlord_phone,omitempty"`
	Duration         DurationText `json:"duration,omitempty"`
	MonthlyRent      Number       `json:"monthly_rent,omitempty" validate:"gte=0"`
	HasEviction      bool         `json:"has_eviction,omitempty"`
	ReasonForLeaving string       `json:"reason_for_leaving,omitempty"`
}

// CoApplicant is an additional tenant whose income counts toward the
// combined income sub-score.
type CoApplicant struct {
	FullName      string `json:"full_name" validate:"required,max=120"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Relationship  string `json:"relationship,omitempty"`
	MonthlyIncome Number `json:"monthly_income" validate:"gte=0"`
}

// StatusChange is one entry in the append-only status history.
type StatusChange struct {
	Status    Status    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy uuid.UUID `json:"changed_by"`
	Reason    string    `json:"reason,omitempty"`
}

// PropertySnapshot freezes the listing terms the applicant agreed to. It is
// written once at submission and never updated, so later listing edits
// cannot change what was applied for.
type PropertySnapshot struct {
	Rent            float64           `json:"rent"`
	Deposit         float64           `json:"deposit"`
	ApplicationFee  float64           `json:"application_fee"`
	LeaseTermMonths int               `json:"lease_term_months"`
	AvailableDate   *time.Time        `json:"available_date,omitempty"`
	Title           string            `json:"title"`
	Address         string            `json:"address"`
	PropertyType    string            `json:"property_type"`
	Policies        property.Policies `json:"policies"`
	PropertyVersion int               `json:"property_version"`
	PropertyStatus  string            `json:"property_status"`
}

// ScoreBreakdown itemizes the screening score out of 100.
type ScoreBreakdown struct {
	IncomeScore        int      `json:"income_score"`
	CreditScore        int      `json:"credit_score"`
	RentalHistoryScore int      `json:"rental_history_score"`
	EmploymentScore    int      `json:"employment_score"`
	DocumentsScore     int      `json:"documents_score"`
	TotalScore         int      `json:"total_score"`
	MaxScore           int      `json:"max_score"`
	Flags              []string `json:"flags,omitempty"`
}

// RejectionDetails is structured rejection metadata shown to the applicant.
type RejectionDetails struct {
	Categories  []string `json:"categories,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Appealable  bool     `json:"appealable"`
}

// Application is a rental application through its whole lifecycle.
type Application struct {
	ID             uuid.UUID
	ApplicantID    uuid.UUID
	PropertyID     uuid.UUID
	ConversationID *uuid.UUID

	Status         Status
	PreviousStatus *Status
	StatusHistory  []StatusChange

	Snapshot PropertySnapshot

	Employment     Employment
	PersonalInfo   PersonalInfo
	RentalHistory  RentalHistory
	CoApplicants   []CoApplicant
	Documents      map[string]DocumentStatus
	CurrentAddress string
	MoveInDate     *time.Time
	Message        string

	Score          int
	ScoreBreakdown *ScoreBreakdown
	ScoredAt       *time.Time

	RejectionCategory string
	RejectionReason   string
	RejectionDetails  *RejectionDetails
	ReviewedBy        *uuid.UUID
	ReviewedAt        *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// snapshotProperty copies the listing terms an applicant is agreeing to.
func snapshotProperty(p *property.Property) PropertySnapshot {
	return PropertySnapshot{
		Rent:            p.Rent,
		Deposit:         p.Deposit,
		ApplicationFee:  p.ApplicationFee,
		LeaseTermMonths: p.LeaseTermMonths,
		AvailableDate:   p.AvailableDate,
		Title:           p.Title,
		Address:         p.Address,
		PropertyType:    p.Type,
		Policies:        p.Policies,
		PropertyVersion: p.Version,
		PropertyStatus:  string(p.Status),
	}
}
