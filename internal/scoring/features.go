// Package scoring implements the Trust Score pipeline: raw alternative-data
// signals are engineered into six normalized features, the features are
// blended into a composite 300-850 score, and a specific loan request is
// evaluated against that score with a leverage/affordability policy.
//
// Every function in this package is pure: no I/O, no shared state, safe to
// call concurrently for different applicants without coordination.
package scoring

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/yashbhanu1/Alternate-Credit/internal/domain"
)

// =============================================================================
// FEATURE ENGINEERING WEIGHTS
// =============================================================================
// Each engineered feature is a weighted blend of normalized signals. Weights
// within a feature sum to 1.0 unless noted (digital affinity subtracts the
// browsing-risk penalty on top of its blend).

const (
	// Financial health: income regularity vs savings behavior
	FinancialWeightStability = 0.4
	FinancialWeightSavings   = 0.6
	// A 50% savings ratio already counts as perfect savings behavior
	SavingsRatioScale = 2.0

	// Credit discipline: utility bills vs prior loan/BNPL repayment
	DisciplineWeightBills      = 0.6
	DisciplineWeightRepayments = 0.4
	// Neutral rate when the applicant has no bill history at all
	NeutralBillPaymentRate = 0.5

	// Stability: telecom tenure, employment tenure, location consistency
	StabilityWeightTelecom    = 0.3
	StabilityWeightEmployment = 0.4
	StabilityWeightLocation   = 0.3
	// Months of history for a full tenure score
	PhoneAgeFullMonths       = 36.0
	EmploymentFullMonths     = 24.0

	// Digital affinity: app quality, device stability, verified identity
	DigitalWeightAppUsage  = 0.4
	DigitalWeightDevice    = 0.4
	IdentityVerifiedBonus  = 0.2
	DeviceSwitchPenalty    = 0.2 // per device switch in the past year

	// Social credibility: network quality plus public-record bonuses
	SocialWeightConnections = 0.5
	SocialBaseCredit        = 0.2
	PropertyOwnershipBonus  = 0.3
	BusinessRegisteredBonus = 0.2

	// Interaction quality: behavioral biometric proxies
	InteractionWeightSteadiness = 0.4
	InteractionWeightTyping     = 0.3
	InteractionWeightNavigation = 0.3
)

// EngineerFeatures transforms one applicant's raw signals into the six
// engineered sub-scores plus average balance and savings ratio.
//
// Precondition: signals.Financial.Transactions is non-empty. The function
// divides by the transaction count and does not guard against zero; callers
// (the HTTP boundary, the profile registry) validate before invoking.
func EngineerFeatures(signals domain.RawSignals) domain.EngineeredFeatures {
	n := len(signals.Financial.Transactions)
	incomes := make([]float64, n)
	balances := make([]float64, n)
	totalIncome := 0.0
	totalExpenses := 0.0
	for i, tx := range signals.Financial.Transactions {
		incomes[i] = tx.Income
		balances[i] = tx.EODBalance
		totalIncome += tx.Income
		totalExpenses += tx.Expenses
	}

	// 1. Financial health: income stability (inverse coefficient of
	// variation) blended with the savings ratio over the whole window.
	avgIncome := stat.Mean(incomes, nil)
	incomeCV := 1.0 // zero income is treated as maximally unstable
	if avgIncome != 0 {
		incomeCV = stat.PopStdDev(incomes, nil) / avgIncome
	}
	incomeStability := math.Max(0, 1-math.Min(incomeCV, 1))

	savingsRatio := 0.0
	if totalIncome != 0 {
		savingsRatio = math.Max(0, (totalIncome-totalExpenses)/totalIncome)
	}

	financialHealth := incomeStability*FinancialWeightStability +
		math.Min(savingsRatio*SavingsRatioScale, 1)*FinancialWeightSavings

	// 2. Credit discipline: on-time bill rate blended with prior repayment.
	billPaymentRate := NeutralBillPaymentRate
	if signals.Utilities.TotalBills != 0 {
		billPaymentRate = float64(signals.Utilities.OnTimePayments) / float64(signals.Utilities.TotalBills)
	}
	creditDiscipline := billPaymentRate*DisciplineWeightBills +
		signals.Financial.LoanRepaymentScore*DisciplineWeightRepayments

	// 3. Stability: tenure signals saturate at their full-score horizons.
	telecomScore := math.Min(float64(signals.Telecom.PhoneNumberAgeMonths)/PhoneAgeFullMonths, 1)
	employmentScore := math.Min(float64(signals.Employment.TenureMonths)/EmploymentFullMonths, 1)
	stabilityScore := telecomScore*StabilityWeightTelecom +
		employmentScore*StabilityWeightEmployment +
		signals.Digital.LocationConsistencyScore*StabilityWeightLocation

	// 4. Digital affinity. Deliberately NOT clamped to [0,1]: the verified
	// identity bonus and the browsing-risk penalty sit outside the weighted
	// blend, so the result can leave the unit interval. This matches the
	// deployed scorecard; clamping here would shift historical scores.
	deviceStability := math.Max(0, 1-float64(signals.Digital.DeviceSwitchCountYear)*DeviceSwitchPenalty)
	identityBonus := 0.0
	if signals.Social.IdentityVerified {
		identityBonus = IdentityVerifiedBonus
	}
	digitalAffinity := signals.Digital.AppUsageScore*DigitalWeightAppUsage +
		deviceStability*DigitalWeightDevice +
		identityBonus -
		signals.Digital.BrowserHistoryRiskScore

	// 5. Social credibility: base credit plus public-record bonuses,
	// capped at 1.
	publicRecordBonus := 0.0
	if signals.Public.PropertyOwnership {
		publicRecordBonus += PropertyOwnershipBonus
	}
	if signals.Public.BusinessRegistered {
		publicRecordBonus += BusinessRegisteredBonus
	}
	socialCredibility := math.Min(1, signals.Social.SocialConnectionsScore*SocialWeightConnections+
		publicRecordBonus+SocialBaseCredit)

	// 6. Interaction quality: steady sensors, consistent typing, confident
	// navigation.
	interactionQuality := signals.Behavioral.SensorSteadinessScore*InteractionWeightSteadiness +
		signals.Behavioral.TypingSpeedScore*InteractionWeightTyping +
		(1-signals.Behavioral.NavPathConfusionScore)*InteractionWeightNavigation

	return domain.EngineeredFeatures{
		FinancialHealth:    financialHealth,
		CreditDiscipline:   creditDiscipline,
		StabilityScore:     stabilityScore,
		DigitalAffinity:    digitalAffinity,
		SocialCredibility:  socialCredibility,
		InteractionQuality: interactionQuality,
		AverageBalance:     stat.Mean(balances, nil),
		SavingsRatio:       savingsRatio,
	}
}
