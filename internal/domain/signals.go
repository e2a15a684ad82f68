// Package domain contains the core types for alternative-data credit
// scoring. The domain layer is pure: no infrastructure dependencies, no
// behavior beyond small accessors on value objects.
package domain

// MonthlyTransaction is one month of aggregated account activity.
type MonthlyTransaction struct {
	Month      string  `json:"month"`
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	UPIVolume  int     `json:"upi_volume"` // count of UPI transactions
	EODBalance float64 `json:"eod_balance"`
}

// FinancialData holds the transaction history and prior repayment signal.
// Transactions must be non-empty before the feature engineer runs; the
// HTTP boundary enforces this.
type FinancialData struct {
	Transactions       []MonthlyTransaction `json:"transactions"`
	LoanRepaymentScore float64              `json:"loan_repayment_score"` // 0-1, bureau/BNPL proxy
}

// TelecomData captures phone and connectivity signals.
type TelecomData struct {
	PhoneNumberAgeMonths int     `json:"phone_number_age_months"`
	AvgRechargeAmount    float64 `json:"avg_recharge_amount"`
	DataUsageGB          float64 `json:"data_usage_gb"`
	RoamingDays          int     `json:"roaming_days"`
	CallConsistencyScore float64 `json:"call_consistency_score"` // 0-1
}

// UtilityData captures bill payment behavior. OnTimePayments <= TotalBills.
type UtilityData struct {
	TotalBills     int      `json:"total_bills"`
	OnTimePayments int      `json:"on_time_payments"`
	UtilityTypes   []string `json:"utility_types"`
}

// DigitalData captures app, browsing and device signals.
type DigitalData struct {
	AppUsageScore            float64 `json:"app_usage_score"`            // 0-1, 1 = productive/financial apps
	EcommerceSpendRatio      float64 `json:"ecommerce_spend_ratio"`      // 0-1 fraction of income spent online
	BrowserHistoryRiskScore  float64 `json:"browser_history_risk_score"` // 0-1, 0 = safe
	DeviceSwitchCountYear    int     `json:"device_switch_count_year"`
	LocationConsistencyScore float64 `json:"location_consistency_score"` // 0-1 home/work stability
}

// SocialData captures network and identity signals.
type SocialData struct {
	SocialConnectionsScore float64 `json:"social_connections_score"` // 0-1
	IdentityVerified       bool    `json:"identity_verified"`
	EmailAgeMonths         int     `json:"email_age_months"`
}

// FlatProperty describes one owned flat declared as collateral.
type FlatProperty struct {
	BHK            int     `json:"bhk"`
	EstimatedValue float64 `json:"estimated_value"`
	HasProof       bool    `json:"has_proof,omitempty"`
}

// PublicRecordData captures registry-sourced signals. The extended
// collateral fields are declared by applicants for high-value requests and
// are not consumed by the scoring core.
type PublicRecordData struct {
	PropertyOwnership  bool `json:"property_ownership"`
	BusinessRegistered bool `json:"business_registered"`
	NoCriminalRecord   bool `json:"no_criminal_record"`

	PropertyLocation       string         `json:"property_location,omitempty"` // "Urban" or "Rural"
	EstimatedPropertyValue float64        `json:"estimated_property_value,omitempty"`
	PropertySizeAcres      float64        `json:"property_size_acres,omitempty"`
	OwnedFlats             []FlatProperty `json:"owned_flats,omitempty"`
}

// EmploymentData captures work history.
type EmploymentData struct {
	TenureMonths int  `json:"tenure_months"`
	IsSalaried   bool `json:"is_salaried"`
}

// BehavioralData captures in-app biometric proxies collected during
// application sessions.
type BehavioralData struct {
	AvgSessionTimeSeconds float64 `json:"avg_session_time_seconds"`
	TypingSpeedScore      float64 `json:"typing_speed_score"`       // 0-1 consistency
	NavPathConfusionScore float64 `json:"nav_path_confusion_score"` // 0-1, higher = more erratic
	SensorSteadinessScore float64 `json:"sensor_steadiness_score"`  // 0-1 accelerometer/gyro stability
}

// RawSignals is one applicant's full signal set. Immutable per evaluation:
// every score derivation is a pure function of one RawSignals value.
type RawSignals struct {
	ProfileID           string  `json:"profile_id"`
	Name                string  `json:"name"`
	Occupation          string  `json:"occupation"`
	Description         string  `json:"description"`
	MonthlyIncome       float64 `json:"monthly_income"`
	RequestedLoanAmount float64 `json:"requested_loan_amount,omitempty"`
	AadharNumber        string  `json:"aadhar_number,omitempty"`
	PanNumber           string  `json:"pan_number,omitempty"`

	Financial  FinancialData    `json:"financial"`
	Telecom    TelecomData      `json:"telecom"`
	Utilities  UtilityData      `json:"utilities"`
	Digital    DigitalData      `json:"digital"`
	Social     SocialData       `json:"social"`
	Public     PublicRecordData `json:"public"`
	Employment EmploymentData   `json:"employment"`
	Behavioral BehavioralData   `json:"behavioral"`
}
