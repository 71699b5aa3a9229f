package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/rentora/internal/application"
)

type creditStub struct {
	score int
	err   error
}

func (c creditStub) Check(context.Context, string) (int, error) {
	return c.score, c.err
}

func boolPtr(b bool) *bool { return &b }

func TestScorer_Calculate_StrongApplication(t *testing.T) {
	scorer := application.NewScorer(application.NewMockCreditBureau(0))

	app := &application.Application{
		PersonalInfo: application.PersonalInfo{
			FullName: "Jordan Li",
			Email:    "jordan@example.com",
			SSN:      "123-45-6788", // last digit 8 -> bureau score 760
		},
		Employment: application.Employment{
			MonthlyIncome: 6000,
			Duration:      "3 years",
		},
		RentalHistory: application.RentalHistory{
			Duration: "4 years",
		},
		Documents: map[string]application.DocumentStatus{
			application.DocumentID:                     {Uploaded: true, Verified: true},
			application.DocumentProofOfIncome:          {Uploaded: true, Verified: true},
			application.DocumentEmploymentVerification: {Uploaded: true, Verified: true},
		},
	}

	bd, err := scorer.Calculate(context.Background(), app)
	require.NoError(t, err)

	assert.Equal(t, 25, bd.IncomeScore)
	assert.Equal(t, 25, bd.CreditScore)
	assert.Equal(t, 20, bd.RentalHistoryScore)
	assert.Equal(t, 15, bd.EmploymentScore)
	assert.Equal(t, 15, bd.DocumentsScore)
	assert.Equal(t, 100, bd.TotalScore)
	assert.Equal(t, 100, bd.MaxScore)
	assert.Empty(t, bd.Flags)
}

func TestScorer_Calculate_EmptyApplication(t *testing.T) {
	scorer := application.NewScorer(application.NewMockCreditBureau(0))

	app := &application.Application{
		Employment: application.Employment{
			Employed: boolPtr(false),
		},
	}

	bd, err := scorer.Calculate(context.Background(), app)
	require.NoError(t, err)

	assert.Equal(t, 0, bd.IncomeScore)
	assert.Equal(t, 0, bd.CreditScore)
	assert.Equal(t, 5, bd.RentalHistoryScore)
	assert.Equal(t, 3, bd.EmploymentScore)
	assert.Equal(t, 0, bd.DocumentsScore)
	assert.Equal(t, 8, bd.TotalScore)

	assert.ElementsMatch(t, []string{
		application.FlagNoIncomeProvided,
		application.FlagNoCreditCheckAuth,
		application.FlagLimitedRentalHistory,
		application.FlagUnemployed,
		application.FlagMissingDocuments,
	}, bd.Flags)
}

func TestScorer_Calculate_MiddleOfTheRoad(t *testing.T) {
	scorer := application.NewScorer(application.NewMockCreditBureau(0))

	app := &application.Application{
		PersonalInfo: application.PersonalInfo{
			SSN: "123-45-6780", // last digit 0 -> bureau score 600
		},
		Employment: application.Employment{
			MonthlyIncome: 4500,
			Duration:      "2 years",
		},
		RentalHistory: application.RentalHistory{
			Duration: "18 months",
		},
		Documents: map[string]application.DocumentStatus{
			application.DocumentID:            {Uploaded: true, Verified: true},
			application.DocumentProofOfIncome: {Uploaded: true},
		},
	}

	bd, err := scorer.Calculate(context.Background(), app)
	require.NoError(t, err)

	assert.Equal(t, 22, bd.IncomeScore)
	assert.Equal(t, 10, bd.CreditScore)
	assert.Equal(t, 12, bd.RentalHistoryScore) // 18 months floors to 1 year
	assert.Equal(t, 15, bd.EmploymentScore)
	assert.Equal(t, 8, bd.DocumentsScore)
	assert.Equal(t, 67, bd.TotalScore)
	assert.Empty(t, bd.Flags)
}

func TestScorer_Calculate_Deterministic(t *testing.T) {
	scorer := application.NewScorer(application.NewMockCreditBureau(0))

	app := &application.Application{
		PersonalInfo: application.PersonalInfo{SSN: "987-65-4321"},
		Employment:   application.Employment{MonthlyIncome: 3200, Duration: "14 months"},
		RentalHistory: application.RentalHistory{
			Duration: "2 years",
		},
		Documents: map[string]application.DocumentStatus{
			application.DocumentID: {Uploaded: true},
		},
	}

	first, err := scorer.Calculate(context.Background(), app)
	require.NoError(t, err)

	second, err := scorer.Calculate(context.Background(), app)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScorer_Calculate_CreditCheckError(t *testing.T) {
	scorer := application.NewScorer(creditStub{err: errors.New("bureau unreachable")})

	app := &application.Application{
		PersonalInfo: application.PersonalInfo{SSN: "123-45-6789"},
	}

	_, err := scorer.Calculate(context.Background(), app)
	assert.Error(t, err)
}

func TestScoreIncome_Brackets(t *testing.T) {
	type testCase struct {
		name      string
		income    application.Number
		coIncomes []application.Number
		want      int
		wantFlags []string
	}

	tests := []testCase{
		{name: "Top", income: 5000, want: 25},
		{name: "JustUnderTop", income: 4999, want: 22},
		{name: "Fourth", income: 4000, want: 22},
		{name: "Third", income: 3000, want: 18},
		{name: "Second", income: 2000, want: 12},
		{name: "Low", income: 1999, want: 5, wantFlags: []string{application.FlagLowIncome}},
		{name: "Zero", income: 0, want: 0, wantFlags: []string{application.FlagNoIncomeProvided}},
		{name: "CoApplicantsCombine", income: 2500, coIncomes: []application.Number{2600}, want: 25},
		{name: "CoApplicantOnly", income: 0, coIncomes: []application.Number{2100}, want: 12},
	}

	scorer := application.NewScorer(application.NewMockCreditBureau(0))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &application.Application{
				Employment: application.Employment{MonthlyIncome: tt.income},
			}
			for _, ci := range tt.coIncomes {
				app.CoApplicants = append(app.CoApplicants, application.CoApplicant{FullName: "Co", MonthlyIncome: ci})
			}

			bd, err := scorer.Calculate(context.Background(), app)
			require.NoError(t, err)

			assert.Equal(t, tt.want, bd.IncomeScore)
			for _, f := range tt.wantFlags {
				assert.Contains(t, bd.Flags, f)
			}
		})
	}
}

func TestScoreCredit_Brackets(t *testing.T) {
	type testCase struct {
		name   string
		bureau int
		want   int
		flag   string
	}

	tests := []testCase{
		{name: "Excellent", bureau: 750, want: 25},
		{name: "Good", bureau: 700, want: 20},
		{name: "Fair", bureau: 650, want: 15},
		{name: "Poor", bureau: 600, want: 10},
		{name: "VeryPoor", bureau: 599, want: 5, flag: application.FlagPoorCreditScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := application.NewScorer(creditStub{score: tt.bureau})

			app := &application.Application{
				PersonalInfo: application.PersonalInfo{SSN: "123-45-6789"},
			}

			bd, err := scorer.Calculate(context.Background(), app)
			require.NoError(t, err)

			assert.Equal(t, tt.want, bd.CreditScore)
			if tt.flag != "" {
				assert.Contains(t, bd.Flags, tt.flag)
			}
		})
	}
}

func TestScoreRentalHistory_EvictionPenalty(t *testing.T) {
	scorer := application.NewScorer(application.NewMockCreditBureau(0))

	// long tenure keeps a sliver of points after the penalty
	app := &application.Application{
		RentalHistory: application.RentalHistory{Duration: "2 years", HasEviction: true},
	}

	bd, err := scorer.Calculate(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, 1, bd.RentalHistoryScore)
	assert.Contains(t, bd.Flags, application.FlagPreviousEviction)
	assert.NotContains(t, bd.Flags, application.FlagLimitedRentalHistory)

	// no tenure floors at zero rather than going negative
	app = &application.Application{
		RentalHistory: application.RentalHistory{HasEviction: true},
	}

	bd, err = scorer.Calculate(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, 0, bd.RentalHistoryScore)
	assert.Contains(t, bd.Flags, application.FlagPreviousEviction)
	assert.Contains(t, bd.Flags, application.FlagLimitedRentalHistory)
}

func TestScoreEmployment_Brackets(t *testing.T) {
	type testCase struct {
		name     string
		emp      application.Employment
		want     int
		wantFlag string
	}

	tests := []testCase{
		{name: "TwoYears", emp: application.Employment{Duration: "2 years"}, want: 15},
		{name: "OneYear", emp: application.Employment{Duration: "1 year"}, want: 12},
		{name: "NewJob", emp: application.Employment{Duration: "3 months"}, want: 8},
		{name: "NoDuration", emp: application.Employment{}, want: 8},
		{name: "Unemployed", emp: application.Employment{Employed: boolPtr(false), Duration: "5 years"}, want: 3, wantFlag: application.FlagUnemployed},
		{name: "ExplicitlyEmployed", emp: application.Employment{Employed: boolPtr(true), Duration: "2 years"}, want: 15},
	}

	scorer := application.NewScorer(application.NewMockCreditBureau(0))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd, err := scorer.Calculate(context.Background(), &application.Application{Employment: tt.emp})
			require.NoError(t, err)

			assert.Equal(t, tt.want, bd.EmploymentScore)
			if tt.wantFlag != "" {
				assert.Contains(t, bd.Flags, tt.wantFlag)
			}
		})
	}
}

func TestScoreDocuments_Brackets(t *testing.T) {
	type testCase struct {
		name     string
		docs     map[string]application.DocumentStatus
		want     int
		wantFlag string
	}

	tests := []testCase{
		{
			name: "AllVerified",
			docs: map[string]application.DocumentStatus{
				application.DocumentID:                     {Uploaded: true, Verified: true},
				application.DocumentProofOfIncome:          {Uploaded: true, Verified: true},
				application.DocumentEmploymentVerification: {Uploaded: true, Verified: true},
			},
			want: 15,
		},
		{
			name: "AllUploaded",
			docs: map[string]application.DocumentStatus{
				application.DocumentID:                     {Uploaded: true},
				application.DocumentProofOfIncome:          {Uploaded: true},
				application.DocumentEmploymentVerification: {Uploaded: true},
			},
			want: 12,
		},
		{
			name: "TwoUploaded",
			docs: map[string]application.DocumentStatus{
				application.DocumentID:            {Uploaded: true},
				application.DocumentProofOfIncome: {Uploaded: true},
			},
			want: 8,
		},
		{
			name: "OneUploaded",
			docs: map[string]application.DocumentStatus{
				application.DocumentID: {Uploaded: true},
			},
			want: 5,
		},
		{
			name:     "None",
			docs:     nil,
			want:     0,
			wantFlag: application.FlagMissingDocuments,
		},
		{
			name: "ExtraKindsIgnored",
			docs: map[string]application.DocumentStatus{
				"pet_reference": {Uploaded: true, Verified: true},
			},
			want:     0,
			wantFlag: application.FlagMissingDocuments,
		},
	}

	scorer := application.NewScorer(application.NewMockCreditBureau(0))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd, err := scorer.Calculate(context.Background(), &application.Application{Documents: tt.docs})
			require.NoError(t, err)

			assert.Equal(t, tt.want, bd.DocumentsScore)
			if tt.wantFlag != "" {
				assert.Contains(t, bd.Flags, tt.wantFlag)
			}
		})
	}
}

func TestMockCreditBureau(t *testing.T) {
	bureau := application.NewMockCreditBureau(0)

	score, err := bureau.Check(context.Background(), "123-45-6788")
	require.NoError(t, err)
	assert.Equal(t, 760, score)

	// same identifier, same answer
	again, err := bureau.Check(context.Background(), "123-45-6788")
	require.NoError(t, err)
	assert.Equal(t, score, again)

	// identifiers not ending in a digit use the middle of the range
	score, err = bureau.Check(context.Background(), "anonymous-x")
	require.NoError(t, err)
	assert.Equal(t, 700, score)
}
