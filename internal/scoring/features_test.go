package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashbhanu1/Alternate-Credit/internal/domain"
)

// gigWorkerSignals is the fluctuating-income delivery partner scenario.
func gigWorkerSignals() domain.RawSignals {
	return domain.RawSignals{
		ProfileID:     "gig-worker",
		Name:          "Ravi Kumar",
		MonthlyIncome: 25000,
		Financial: domain.FinancialData{
			LoanRepaymentScore: 0.8,
			Transactions: []domain.MonthlyTransaction{
				{Month: "Jan", Income: 25000, Expenses: 22000, UPIVolume: 45, EODBalance: 3000},
				{Month: "Feb", Income: 18000, Expenses: 17500, UPIVolume: 30, EODBalance: 3500},
				{Month: "Mar", Income: 32000, Expenses: 24000, UPIVolume: 60, EODBalance: 11500},
				{Month: "Apr", Income: 28000, Expenses: 23000, UPIVolume: 50, EODBalance: 16500},
				{Month: "May", Income: 15000, Expenses: 16000, UPIVolume: 25, EODBalance: 15500},
				{Month: "Jun", Income: 29000, Expenses: 22000, UPIVolume: 55, EODBalance: 22500},
			},
		},
		Telecom:    domain.TelecomData{PhoneNumberAgeMonths: 48, CallConsistencyScore: 0.9},
		Utilities:  domain.UtilityData{TotalBills: 12, OnTimePayments: 11},
		Digital:    domain.DigitalData{AppUsageScore: 0.85, BrowserHistoryRiskScore: 0.1, DeviceSwitchCountYear: 0, LocationConsistencyScore: 0.3},
		Social:     domain.SocialData{SocialConnectionsScore: 0.6, IdentityVerified: true},
		Public:     domain.PublicRecordData{NoCriminalRecord: true},
		Employment: domain.EmploymentData{TenureMonths: 24},
		Behavioral: domain.BehavioralData{TypingSpeedScore: 0.9, NavPathConfusionScore: 0.1, SensorSteadinessScore: 0.6},
	}
}

func TestEngineerFeatures_GigWorkerFinancialHealth(t *testing.T) {
	features := EngineerFeatures(gigWorkerSignals())

	// Total income 147000, total expenses 124500 -> savings ratio 22500/147000
	savingsRatio := 22500.0 / 147000.0
	assert.InDelta(t, savingsRatio, features.SavingsRatio, 1e-9)

	// Mean income 24500; population variance of the six incomes:
	// (500^2 + 6500^2 + 7500^2 + 3500^2 + 9500^2 + 4500^2) / 6
	popStdDev := math.Sqrt((250000.0 + 42250000 + 56250000 + 12250000 + 90250000 + 20250000) / 6)
	incomeStability := math.Max(0, 1-math.Min(popStdDev/24500.0, 1))
	expected := incomeStability*0.4 + math.Min(savingsRatio*2, 1)*0.6
	assert.InDelta(t, expected, features.FinancialHealth, 1e-9)
}

func TestEngineerFeatures_GigWorkerSubScores(t *testing.T) {
	features := EngineerFeatures(gigWorkerSignals())

	// Bills: 11/12 on time, repayment history 0.8
	assert.InDelta(t, (11.0/12.0)*0.6+0.8*0.4, features.CreditDiscipline, 1e-9)

	// Phone 48mo saturates at 36, employment 24mo saturates at 24
	assert.InDelta(t, 1.0*0.3+1.0*0.4+0.3*0.3, features.StabilityScore, 1e-9)

	// Verified identity, zero device switches, 0.1 browsing risk
	assert.InDelta(t, 0.85*0.4+1.0*0.4+0.2-0.1, features.DigitalAffinity, 1e-9)

	// No property, no business: base 0.2 only
	assert.InDelta(t, 0.6*0.5+0.2, features.SocialCredibility, 1e-9)

	assert.InDelta(t, 0.6*0.4+0.9*0.3+(1-0.1)*0.3, features.InteractionQuality, 1e-9)

	// Simple arithmetic mean of the six end-of-day balances
	assert.InDelta(t, (3000.0+3500+11500+16500+15500+22500)/6, features.AverageBalance, 1e-9)
}

func TestEngineerFeatures_ZeroBillsUsesNeutralRate(t *testing.T) {
	signals := gigWorkerSignals()
	signals.Utilities = domain.UtilityData{TotalBills: 0, OnTimePayments: 0}

	features := EngineerFeatures(signals)

	// No bill history must not be a divide-by-zero, a penalty, or a reward
	expected := 0.5*0.6 + 0.8*0.4
	assert.InDelta(t, expected, features.CreditDiscipline, 1e-9)
	assert.False(t, math.IsNaN(features.CreditDiscipline))
}

func TestEngineerFeatures_ZeroIncomeWorstCaseStability(t *testing.T) {
	signals := gigWorkerSignals()
	for i := range signals.Financial.Transactions {
		signals.Financial.Transactions[i].Income = 0
	}

	features := EngineerFeatures(signals)

	assert.Equal(t, 0.0, features.SavingsRatio, "zero total income means zero savings ratio")
	// Income stability collapses to 0, leaving only the savings term (also 0)
	assert.Equal(t, 0.0, features.FinancialHealth)
}

func TestEngineerFeatures_DigitalAffinityUnclamped(t *testing.T) {
	// Digital affinity is the one feature that may leave [0,1]. This pins
	// the current behavior; clamping it would change historical scores.
	signals := gigWorkerSignals()
	signals.Digital = domain.DigitalData{
		AppUsageScore:           0,
		BrowserHistoryRiskScore: 0.8,
		DeviceSwitchCountYear:   5, // device stability floors at 0
	}
	signals.Social.IdentityVerified = false

	features := EngineerFeatures(signals)
	assert.InDelta(t, -0.8, features.DigitalAffinity, 1e-9, "risk penalty can push the feature negative")

	signals.Digital = domain.DigitalData{
		AppUsageScore:         1.5, // out-of-range input is not rejected
		DeviceSwitchCountYear: 0,
	}
	signals.Social.IdentityVerified = true

	features = EngineerFeatures(signals)
	assert.InDelta(t, 1.5*0.4+0.4+0.2, features.DigitalAffinity, 1e-9, "out-of-range input propagates above 1")
}

func TestEngineerFeatures_InRangeSignalsProduceInRangeFeatures(t *testing.T) {
	features := EngineerFeatures(gigWorkerSignals())

	for name, value := range map[string]float64{
		"financial_health":    features.FinancialHealth,
		"credit_discipline":   features.CreditDiscipline,
		"stability_score":     features.StabilityScore,
		"social_credibility":  features.SocialCredibility,
		"interaction_quality": features.InteractionQuality,
	} {
		assert.GreaterOrEqual(t, value, 0.0, name)
		assert.LessOrEqual(t, value, 1.0, name)
	}
}

func TestEngineerFeatures_Deterministic(t *testing.T) {
	signals := gigWorkerSignals()

	first := CalculateTrustScore(EngineerFeatures(signals))
	second := CalculateTrustScore(EngineerFeatures(signals))

	require.Equal(t, first, second, "the pipeline has no randomness or hidden state")
}
