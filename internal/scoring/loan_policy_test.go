package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yashbhanu1/Alternate-Credit/internal/domain"
)

func TestEvaluateLoanRequest_LeverageTiers(t *testing.T) {
	cases := []struct {
		trustScore int
		maxLimit   float64
	}{
		{800, 80000}, // 8x
		{750, 80000}, // 8x, closed lower bound
		{749, 60000}, // 6x
		{700, 60000},
		{699, 45000}, // 4.5x
		{600, 45000},
		{599, 30000}, // 3x
		{550, 30000},
		{549, 0}, // below minimum: no leverage at all
	}

	for _, tc := range cases {
		eval := EvaluateLoanRequest(tc.trustScore, 10000, 50000, 1000)
		assert.Equal(t, tc.maxLimit, eval.MaxLimit, "trust score %d", tc.trustScore)
	}
}

func TestEvaluateLoanRequest_BelowThresholdAlwaysRejects(t *testing.T) {
	// Rule 1 shadows everything: even a trivial request against a huge
	// balance is rejected below the minimum score.
	for _, amount := range []float64{0, 1, 50000, 10000000} {
		eval := EvaluateLoanRequest(500, 1000000, 1000000, amount)
		assert.Equal(t, domain.DecisionRejected, eval.Status)
		assert.Equal(t, "Trust Score is below the minimum threshold (550).", eval.Reason)
	}
}

func TestEvaluateLoanRequest_ExceedsLimit(t *testing.T) {
	// Score 700 -> 6x leverage on a 10000 balance = 60000 limit
	eval := EvaluateLoanRequest(700, 10000, 100000, 60001)

	assert.Equal(t, domain.DecisionRejected, eval.Status)
	assert.Contains(t, eval.Reason, "₹60001")
	assert.Contains(t, eval.Reason, "₹60000")
}

func TestEvaluateLoanRequest_EMIAboveIncomeCap(t *testing.T) {
	// 48000/12 = 4000 EMI vs 0.6 * 6000 = 3600 cap
	eval := EvaluateLoanRequest(760, 10000, 6000, 48000)

	assert.Equal(t, domain.DecisionRejected, eval.Status)
	assert.Contains(t, eval.Reason, "EMI")

	// At exactly the cap the rule does not fire (strict inequality)
	eval = EvaluateLoanRequest(760, 10000, 6000, 43200) // EMI 3600 == cap
	assert.Equal(t, domain.DecisionApproved, eval.Status)
}

func TestEvaluateLoanRequest_ReviewBoundaryIsExclusive(t *testing.T) {
	// Score 649 -> 4.5x on 10000 = 45000 limit; review band starts strictly
	// above 80% utilization.
	atBound := EvaluateLoanRequest(649, 10000, 100000, 36000) // exactly 0.8 * 45000
	assert.Equal(t, domain.DecisionApproved, atBound.Status)

	aboveBound := EvaluateLoanRequest(649, 10000, 100000, 36001)
	assert.Equal(t, domain.DecisionReview, aboveBound.Status)
	assert.Equal(t, "High utilization relative to Trust Score. Manual review recommended.", aboveBound.Reason)

	// At 650 the review band no longer applies
	confident := EvaluateLoanRequest(650, 10000, 100000, 36001)
	assert.Equal(t, domain.DecisionApproved, confident.Status)
}

func TestEvaluateLoanRequest_Approved(t *testing.T) {
	eval := EvaluateLoanRequest(780, 20000, 60000, 100000)

	assert.Equal(t, domain.DecisionApproved, eval.Status)
	assert.Equal(t, 160000.0, eval.MaxLimit)
	assert.Equal(t, "Approved based on Trust Score & Affordability.", eval.Reason)
}

func TestReviewedDecision_Effective(t *testing.T) {
	auto := EvaluateLoanRequest(649, 10000, 100000, 40000)
	decision := domain.ReviewedDecision{Automatic: auto}
	assert.Equal(t, domain.DecisionReview, decision.Effective())

	override := domain.DecisionApproved
	decision.Override = &override
	assert.Equal(t, domain.DecisionApproved, decision.Effective())
	assert.Equal(t, domain.DecisionReview, decision.Automatic.Status, "override never rewrites the automated result")
}
