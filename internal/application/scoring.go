package application

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MaxScore is the ceiling of the total screening score.
const MaxScore = 100

// Flag values the scoring engine attaches to a breakdown.
const (
	FlagLowIncome            = "low_income"
	FlagNoIncomeProvided     = "no_income_provided"
	FlagPoorCreditScore      = "poor_credit_score"
	FlagNoCreditCheckAuth    = "no_credit_check_authorization"
	FlagLimitedRentalHistory = "limited_rental_history"
	FlagPreviousEviction     = "previous_eviction"
	FlagUnemployed           = "unemployed"
	FlagMissingDocuments     = "missing_documents"
)

// CreditChecker looks up a credit score for the given identifier.
type CreditChecker interface {
	Check(ctx context.Context, identifier string) (int, error)
}

// Scorer computes screening scores for applications.
type Scorer struct {
	credit CreditChecker
}

func NewScorer(credit CreditChecker) *Scorer {
	return &Scorer{credit: credit}
}

// Calculate produces the full breakdown for an application. Identical
// application data always yields an identical breakdown.
func (s *Scorer) Calculate(ctx context.Context, app *Application) (*ScoreBreakdown, error) {
	income, incomeFlags := scoreIncome(app.Employment, app.CoApplicants)

	credit, creditFlags, err := s.scoreCredit(ctx, app.PersonalInfo)
	if err != nil {
		return nil, fmt.Errorf("checking credit: %w", err)
	}

	rental, rentalFlags := scoreRentalHistory(app.RentalHistory)
	employment, employmentFlags := scoreEmployment(app.Employment)
	documents, documentFlags := scoreDocuments(app.Documents)

	bd := &ScoreBreakdown{
		IncomeScore:        income,
		CreditScore:        credit,
		RentalHistoryScore: rental,
		EmploymentScore:    employment,
		DocumentsScore:     documents,
		TotalScore:         income + credit + rental + employment + documents,
		MaxScore:           MaxScore,
	}

	bd.Flags = append(bd.Flags, incomeFlags...)
	bd.Flags = append(bd.Flags, creditFlags...)
	bd.Flags = append(bd.Flags, rentalFlags...)
	bd.Flags = append(bd.Flags, employmentFlags...)
	bd.Flags = append(bd.Flags, documentFlags...)

	return bd, nil
}

// scoreIncome rates combined monthly income, applicant plus co-applicants.
// Worth up to 25 points.
func scoreIncome(emp Employment, coApplicants []CoApplicant) (int, []string) {
	income := float64(emp.MonthlyIncome)
	for _, ca := range coApplicants {
		income += float64(ca.MonthlyIncome)
	}

	switch {
	case income >= 5000:
		return 25, nil
	case income >= 4000:
		return 22, nil
	case income >= 3000:
		return 18, nil
	case income >= 2000:
		return 12, nil
	case income > 0:
		return 5, []string{FlagLowIncome}
	default:
		return 0, []string{FlagNoIncomeProvided}
	}
}

// scoreCredit rates the bureau score, up to 25 points. Without an SSN there
// is no authorization to run the check, which scores zero.
func (s *Scorer) scoreCredit(ctx context.Context, info PersonalInfo) (int, []string, error) {
	ssn := strings.TrimSpace(info.SSN)
	if ssn == "" {
		return 0, []string{FlagNoCreditCheckAuth}, nil
	}

	score, err := s.credit.Check(ctx, ssn)
	if err != nil {
		return 0, nil, err
	}

	switch {
	case score >= 750:
		return 25, nil, nil
	case score >= 700:
		return 20, nil, nil
	case score >= 650:
		return 15, nil, nil
	case score >= 600:
		return 10, nil, nil
	default:
		return 5, []string{FlagPoorCreditScore}, nil
	}
}

// scoreRentalHistory rates tenure, up to 20 points. The eviction penalty
// applies after bracketing and floors at zero.
func scoreRentalHistory(h RentalHistory) (int, []string) {
	years := h.Duration.Years()

	var score int

	var flags []string

	switch {
	case years >= 3:
		score = 20
	case years >= 2:
		score = 16
	case years >= 1:
		score = 12
	case years > 0:
		score = 8
	default:
		score = 5
		flags = append(flags, FlagLimitedRentalHistory)
	}

	if h.HasEviction {
		score -= 15
		if score < 0 {
			score = 0
		}

		flags = append(flags, FlagPreviousEviction)
	}

	return score, flags
}

// scoreEmployment rates job stability, up to 15 points.
func scoreEmployment(emp Employment) (int, []string) {
	if !emp.IsEmployed() {
		return 3, []string{FlagUnemployed}
	}

	years := emp.Duration.Years()

	switch {
	case years >= 2:
		return 15, nil
	case years >= 1:
		return 12, nil
	default:
		return 8, nil
	}
}

// scoreDocuments counts only the required kinds, up to 15 points.
func scoreDocuments(docs map[string]DocumentStatus) (int, []string) {
	var uploaded, verified int

	for _, kind := range RequiredDocuments {
		d, ok := docs[kind]
		if !ok {
			continue
		}

		if d.Uploaded {
			uploaded++
		}

		if d.Verified {
			verified++
		}
	}

	switch {
	case verified >= len(RequiredDocuments):
		return 15, nil
	case uploaded >= len(RequiredDocuments):
		return 12, nil
	case uploaded >= 2:
		return 8, nil
	case uploaded >= 1:
		return 5, nil
	default:
		return 0, []string{FlagMissingDocuments}
	}
}

// mockCreditBureau stands in for the credit provider until that integration
// lands. The score derives from the identifier's last digit, so repeated
// checks of the same applicant always agree.
type mockCreditBureau struct {
	delay time.Duration
}

// NewMockCreditBureau returns the stand-in credit checker. The delay models
// provider latency; the check itself always succeeds.
func NewMockCreditBureau(delay time.Duration) CreditChecker {
	return &mockCreditBureau{delay: delay}
}

func (m *mockCreditBureau) Check(_ context.Context, identifier string) (int, error) {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	digit := 5
	if identifier != "" {
		if c := identifier[len(identifier)-1]; c >= '0' && c <= '9' {
			digit = int(c - '0')
		}
	}

	return 600 + digit*20, nil
}
