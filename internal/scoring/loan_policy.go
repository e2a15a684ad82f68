package scoring

import (
	"fmt"
	"math"

	"github.com/yashbhanu1/Alternate-Credit/internal/domain"
)

// =============================================================================
// LOAN DECISION POLICY
// =============================================================================
// A pure decision table evaluated in fixed priority order. The maximum
// grantable amount is the average account balance leveraged by a multiplier
// chosen from the trust tier; affordability is checked against a flat
// 12-month installment estimate.

const (
	// Minimum trust score to qualify for any loan
	MinimumTrustScore = 550

	// Leverage multipliers by trust tier
	LeverageHighTrust    = 8.0 // score >= 750
	LeverageGoodTrust    = 6.0 // 700-749
	LeverageAverageTrust = 4.5 // 600-699
	LeverageLowTrust     = 3.0 // 550-599

	// Flat amortization horizon for the EMI estimate (no interest)
	EMITenureMonths = 12.0
	// EMI must not exceed this share of monthly income
	EMIIncomeCap = 0.6

	// Mediocre scores asking near their ceiling are flagged for review
	ReviewScoreCeiling      = 650
	ReviewUtilizationBound  = 0.8
)

// leverageMultiplier returns the balance multiplier for a trust tier.
func leverageMultiplier(trustScore int) float64 {
	switch {
	case trustScore >= 750:
		return LeverageHighTrust
	case trustScore >= 700:
		return LeverageGoodTrust
	case trustScore >= 600:
		return LeverageAverageTrust
	case trustScore >= MinimumTrustScore:
		return LeverageLowTrust
	default:
		return 0
	}
}

// EvaluateLoanRequest decides a specific loan request. Rules are checked in
// priority order and the first match wins:
//
//  1. score below the minimum threshold  -> rejected
//  2. amount above the leveraged limit   -> rejected
//  3. EMI above 60% of monthly income    -> rejected
//  4. score < 650 and amount > 80% limit -> review
//  5. otherwise                          -> approved
//
// Deterministic and stateless; a manual override, if any, is layered on top
// by the presentation layer (domain.ReviewedDecision).
func EvaluateLoanRequest(trustScore int, avgBalance, monthlyIncome, requestedAmount float64) domain.LoanEvaluation {
	maxLimit := math.Round(avgBalance * leverageMultiplier(trustScore))

	// Flat 12-month tenure, no interest: an affordability proxy, not a
	// repayment schedule.
	estimatedEMI := requestedAmount / EMITenureMonths

	switch {
	case trustScore < MinimumTrustScore:
		return domain.LoanEvaluation{
			Status:   domain.DecisionRejected,
			Reason:   fmt.Sprintf("Trust Score is below the minimum threshold (%d).", MinimumTrustScore),
			MaxLimit: maxLimit,
		}
	case requestedAmount > maxLimit:
		return domain.LoanEvaluation{
			Status:   domain.DecisionRejected,
			Reason:   fmt.Sprintf("Requested amount (₹%.0f) exceeds maximum limit based on savings (₹%.0f).", requestedAmount, maxLimit),
			MaxLimit: maxLimit,
		}
	case estimatedEMI > monthlyIncome*EMIIncomeCap:
		return domain.LoanEvaluation{
			Status:   domain.DecisionRejected,
			Reason:   fmt.Sprintf("Loan EMI (₹%.0f) exceeds 60%% of monthly income. High default risk.", estimatedEMI),
			MaxLimit: maxLimit,
		}
	case trustScore < ReviewScoreCeiling && requestedAmount > maxLimit*ReviewUtilizationBound:
		return domain.LoanEvaluation{
			Status:   domain.DecisionReview,
			Reason:   "High utilization relative to Trust Score. Manual review recommended.",
			MaxLimit: maxLimit,
		}
	default:
		return domain.LoanEvaluation{
			Status:   domain.DecisionApproved,
			Reason:   "Approved based on Trust Score & Affordability.",
			MaxLimit: maxLimit,
		}
	}
}
