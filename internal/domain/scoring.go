package domain

// EngineeredFeatures holds the six normalized sub-scores derived from raw
// signals, plus two raw financial metrics surfaced to callers. Recomputed
// on every evaluation, never mutated.
//
// All sub-scores are 0-1 except DigitalAffinity, which the deployed
// scorecard leaves unclamped: the identity bonus and browsing-risk penalty
// can push it below 0 or above 1.
type EngineeredFeatures struct {
	FinancialHealth    float64 `json:"financial_health"`
	CreditDiscipline   float64 `json:"credit_discipline"`
	StabilityScore     float64 `json:"stability_score"`
	DigitalAffinity    float64 `json:"digital_affinity"`
	SocialCredibility  float64 `json:"social_credibility"`
	InteractionQuality float64 `json:"interaction_quality"`

	AverageBalance float64 `json:"average_balance"` // currency units
	SavingsRatio   float64 `json:"savings_ratio"`   // fraction, may exceed 1 or go negative
}

// ScoreResult is the composite creditworthiness result.
type ScoreResult struct {
	TrustScore int                `json:"trust_score"` // 300-850 for in-range features
	PD         float64            `json:"pd"`          // probability-of-default proxy, 1 - raw score
	Grade      string             `json:"grade"`       // A..E
	Features   EngineeredFeatures `json:"features"`
}

// DecisionStatus is the outcome of a loan request evaluation.
type DecisionStatus string

const (
	DecisionApproved DecisionStatus = "approved"
	DecisionRejected DecisionStatus = "rejected"
	DecisionReview   DecisionStatus = "review"
)

// Valid reports whether s is one of the three known statuses.
func (s DecisionStatus) Valid() bool {
	switch s {
	case DecisionApproved, DecisionRejected, DecisionReview:
		return true
	}
	return false
}

// LoanEvaluation is the automated decision for a specific loan request.
type LoanEvaluation struct {
	Status   DecisionStatus `json:"status"`
	Reason   string         `json:"reason"`
	MaxLimit float64        `json:"max_limit"` // maximum amount grantable at this trust tier
}

// ReviewedDecision pairs the automated decision with an optional manual
// override. The override is ephemeral presentation-layer state; the scoring
// core only ever produces the Automatic part.
type ReviewedDecision struct {
	Automatic LoanEvaluation  `json:"automatic"`
	Override  *DecisionStatus `json:"override,omitempty"`
}

// Effective returns the override when set, the automated status otherwise.
func (d ReviewedDecision) Effective() DecisionStatus {
	if d.Override != nil {
		return *d.Override
	}
	return d.Automatic.Status
}

// AIAnalysis is the free-text analysis returned by the generative-AI
// collaborator. Content is not guaranteed; on failure callers receive a
// static fallback payload.
type AIAnalysis struct {
	Summary         string   `json:"summary"`
	PositiveFactors []string `json:"positiveFactors"`
	NegativeFactors []string `json:"negativeFactors"`
	Recommendations []string `json:"recommendations"`
}
