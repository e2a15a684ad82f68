package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yashbhanu1/Alternate-Credit/internal/domain"
)

// analysisSchema constrains the model to the four-field contract.
var analysisSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"summary":         map[string]any{"type": "STRING"},
		"positiveFactors": map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
		"negativeFactors": map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
		"recommendations": map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
	},
}

// missingKeyFallback is returned when no API key is configured.
func missingKeyFallback() domain.AIAnalysis {
	return domain.AIAnalysis{
		Summary:         "AI analysis unavailable (Missing API Key).",
		PositiveFactors: []string{"N/A"},
		NegativeFactors: []string{"N/A"},
		Recommendations: []string{"Configure API Key to see insights."},
	}
}

// failureFallback is returned on any transport or parse failure.
func failureFallback() domain.AIAnalysis {
	return domain.AIAnalysis{
		Summary:         "Could not generate AI analysis at this time.",
		PositiveFactors: []string{"Manual Review Required"},
		NegativeFactors: []string{"Manual Review Required"},
		Recommendations: []string{"Check connection", "Retry later"},
	}
}

// Analyze asks the collaborator for a free-text credit assessment of one
// scored applicant. It never returns an error: missing credentials, network
// failures, and malformed responses all degrade to a static fallback, so a
// broken collaborator cannot affect the already-computed score.
func (c *Client) Analyze(ctx context.Context, profile domain.RawSignals, features domain.EngineeredFeatures, score domain.ScoreResult) domain.AIAnalysis {
	if !c.Configured() {
		return missingKeyFallback()
	}

	req := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: analysisPrompt(profile, features, score)}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisSchema,
		},
	}

	text, err := c.generateContent(ctx, req)
	if err != nil {
		c.log.Warn().Err(err).Str("profile_id", profile.ProfileID).Msg("Analysis request failed, using fallback")
		return failureFallback()
	}

	var analysis domain.AIAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		c.log.Warn().Err(err).Str("profile_id", profile.ProfileID).Msg("Analysis response is not valid JSON, using fallback")
		return failureFallback()
	}

	return analysis
}

// analysisPrompt embeds the profile, engineered features, and score into the
// analyst prompt. Content of the reply is not guaranteed; only its shape is
// (enforced via the response schema).
func analysisPrompt(profile domain.RawSignals, features domain.EngineeredFeatures, score domain.ScoreResult) string {
	var b strings.Builder

	b.WriteString("You are an expert credit risk analyst for underbanked populations in India.\n")
	b.WriteString("Analyze the following user profile and enriched alternative data signals.\n\n")

	fmt.Fprintf(&b, "User Profile:\n- Name: %s\n- Occupation: %s\n- Description: %s\n\n",
		profile.Name, profile.Occupation, profile.Description)

	billRate := 0.0
	if profile.Utilities.TotalBills > 0 {
		billRate = float64(profile.Utilities.OnTimePayments) / float64(profile.Utilities.TotalBills)
	}

	b.WriteString("KEY SIGNALS:\n")
	fmt.Fprintf(&b, "1. FINANCIAL:\n   - Monthly Average Balance: ₹%.0f\n   - Savings Ratio: %.1f%%\n   - Loan/BNPL History Score: %.2f (0-1)\n",
		features.AverageBalance, features.SavingsRatio*100, profile.Financial.LoanRepaymentScore)
	fmt.Fprintf(&b, "2. BEHAVIORAL & TELECOM:\n   - Phone Number Age: %d months\n   - Call Consistency: %.0f%%\n   - Data Usage: %.0f GB/mo\n   - Utility Bill Payment Rate: %.0f%%\n",
		profile.Telecom.PhoneNumberAgeMonths, profile.Telecom.CallConsistencyScore*100, profile.Telecom.DataUsageGB, billRate*100)
	fmt.Fprintf(&b, "3. DIGITAL & LOCATION:\n   - Location Consistency (Home/Work): %.0f%%\n   - Device Switches (Year): %d\n   - App Usage Score (Productivity vs Risk): %.2f\n",
		profile.Digital.LocationConsistencyScore*100, profile.Digital.DeviceSwitchCountYear, profile.Digital.AppUsageScore)
	fmt.Fprintf(&b, "4. SOCIAL & PUBLIC:\n   - Social Connections Score: %.2f\n   - Property Owner: %t\n   - Registered Business: %t\n   - Criminal Record: %t\n",
		profile.Social.SocialConnectionsScore, profile.Public.PropertyOwnership, profile.Public.BusinessRegistered, !profile.Public.NoCriminalRecord)
	fmt.Fprintf(&b, "5. SENSOR & INTERACTION:\n   - Avg Session Time: %.0fs\n   - Typing Consistency: %.2f\n   - Navigation Confusion: %.2f (High = Confused)\n   - Device Steadiness: %.2f (Accelerometry)\n\n",
		profile.Behavioral.AvgSessionTimeSeconds, profile.Behavioral.TypingSpeedScore, profile.Behavioral.NavPathConfusionScore, profile.Behavioral.SensorSteadinessScore)

	b.WriteString("CALCULATED METRICS (0-1 Scale):\n")
	fmt.Fprintf(&b, "- Financial Health: %.2f\n- Credit Discipline: %.2f\n- Stability Score: %.2f\n- Social Credibility: %.2f\n- Interaction Quality: %.2f\n\n",
		features.FinancialHealth, features.CreditDiscipline, features.StabilityScore, features.SocialCredibility, features.InteractionQuality)
	fmt.Fprintf(&b, "FINAL TRUST SCORE: %d (Grade %s)\n\n", score.TrustScore, score.Grade)

	b.WriteString("Provide a JSON response with:\n")
	b.WriteString("1. A short summary of their creditworthiness focusing on non-traditional signals (especially mentioning if behavioral biometrics indicate confidence or risk).\n")
	b.WriteString("2. Two key positive factors.\n")
	b.WriteString("3. Two key negative factors.\n")
	b.WriteString("4. Three specific, actionable financial tips.\n\n")
	b.WriteString("Return JSON only.\n")

	return b.String()
}
