package scoring

import (
	"math"

	"github.com/yashbhanu1/Alternate-Credit/internal/domain"
)

// =============================================================================
// COMPOSITE SCORE WEIGHTS
// =============================================================================
// Final blend of the six engineered features (must sum to 1.0). Financial
// behavior dominates; behavioral biometrics act as a tiebreaker signal.

const (
	WeightFinancialHealth    = 0.25
	WeightCreditDiscipline   = 0.25
	WeightStability          = 0.15
	WeightSocialCredibility  = 0.15
	WeightDigitalAffinity    = 0.10
	WeightInteractionQuality = 0.10

	// Score scale: rawScore 0 maps to 300, rawScore 1 maps to 850.
	ScoreFloor = 300.0
	ScoreSpan  = 550.0
)

// Grade thresholds (closed lower bounds).
const (
	GradeAThreshold = 750
	GradeBThreshold = 700
	GradeCThreshold = 650
	GradeDThreshold = 550
)

// CalculateTrustScore blends the engineered features into a single
// 300-850 Trust Score with a letter grade and a probability-of-default
// proxy.
//
// The score is intentionally not clamped: an out-of-range feature (digital
// affinity can leave [0,1]) propagates into an out-of-range score rather
// than being silently masked.
func CalculateTrustScore(features domain.EngineeredFeatures) domain.ScoreResult {
	rawScore := features.FinancialHealth*WeightFinancialHealth +
		features.CreditDiscipline*WeightCreditDiscipline +
		features.StabilityScore*WeightStability +
		features.SocialCredibility*WeightSocialCredibility +
		features.DigitalAffinity*WeightDigitalAffinity +
		features.InteractionQuality*WeightInteractionQuality

	trustScore := int(math.Round(ScoreFloor + rawScore*ScoreSpan))

	// PD proxy: complement of the raw composite, 4 decimal places.
	pd := math.Round((1-rawScore)*10000) / 10000

	return domain.ScoreResult{
		TrustScore: trustScore,
		PD:         pd,
		Grade:      gradeFor(trustScore),
		Features:   features,
	}
}

// gradeFor maps a trust score onto the five-tier grade ladder. E is the
// floor grade; there is no tier below it.
func gradeFor(trustScore int) string {
	switch {
	case trustScore >= GradeAThreshold:
		return "A"
	case trustScore >= GradeBThreshold:
		return "B"
	case trustScore >= GradeCThreshold:
		return "C"
	case trustScore >= GradeDThreshold:
		return "D"
	default:
		return "E"
	}
}
