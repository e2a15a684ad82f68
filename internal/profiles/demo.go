package profiles

import "github.com/yashbhanu1/Alternate-Credit/internal/domain"

// DemoProfiles returns the built-in demo applicants covering the main
// underbanked archetypes: a gig worker with volatile income, a cash-heavy
// rural shop owner, a thin-file student, and a homemaker with no direct
// income of her own.
func DemoProfiles() []domain.RawSignals {
	return []domain.RawSignals{
		{
			ProfileID:           "gig-worker",
			Name:                "Ravi Kumar",
			Occupation:          "Gig Worker (Delivery Partner)",
			Description:         "Fluctuating income, high UPI usage. Strong telecom history but high location variance due to job.",
			MonthlyIncome:       25000,
			RequestedLoanAmount: 50000,
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
			Telecom:    domain.TelecomData{PhoneNumberAgeMonths: 48, AvgRechargeAmount: 499, DataUsageGB: 45, RoamingDays: 2, CallConsistencyScore: 0.9},
			Utilities:  domain.UtilityData{TotalBills: 12, OnTimePayments: 11, UtilityTypes: []string{"Mobile Postpaid", "Electricity"}},
			Digital:    domain.DigitalData{AppUsageScore: 0.85, EcommerceSpendRatio: 0.1, BrowserHistoryRiskScore: 0.1, DeviceSwitchCountYear: 0, LocationConsistencyScore: 0.3},
			Social:     domain.SocialData{SocialConnectionsScore: 0.6, IdentityVerified: true, EmailAgeMonths: 36},
			Public:     domain.PublicRecordData{PropertyOwnership: false, BusinessRegistered: false, NoCriminalRecord: true},
			Employment: domain.EmploymentData{TenureMonths: 24, IsSalaried: false},
			Behavioral: domain.BehavioralData{AvgSessionTimeSeconds: 45, TypingSpeedScore: 0.9, NavPathConfusionScore: 0.1, SensorSteadinessScore: 0.6},
		},
		{
			ProfileID:           "rural-sme",
			Name:                "Lakshmi Devi",
			Occupation:          "Rural Kirana Store Owner",
			Description:         "Cash-heavy business moving to QR payments. High savings buffer, informal income. Strong local roots.",
			MonthlyIncome:       45000,
			RequestedLoanAmount: 200000,
			Financial: domain.FinancialData{
				LoanRepaymentScore: 0.5,
				Transactions: []domain.MonthlyTransaction{
					{Month: "Jan", Income: 45000, Expenses: 30000, UPIVolume: 120, EODBalance: 15000},
					{Month: "Feb", Income: 42000, Expenses: 28000, UPIVolume: 110, EODBalance: 29000},
					{Month: "Mar", Income: 48000, Expenses: 32000, UPIVolume: 130, EODBalance: 45000},
					{Month: "Apr", Income: 46000, Expenses: 31000, UPIVolume: 125, EODBalance: 60000},
					{Month: "May", Income: 43000, Expenses: 29000, UPIVolume: 115, EODBalance: 74000},
					{Month: "Jun", Income: 50000, Expenses: 35000, UPIVolume: 140, EODBalance: 89000},
				},
			},
			Telecom:    domain.TelecomData{PhoneNumberAgeMonths: 72, AvgRechargeAmount: 199, DataUsageGB: 5, RoamingDays: 0, CallConsistencyScore: 0.95},
			Utilities:  domain.UtilityData{TotalBills: 24, OnTimePayments: 24, UtilityTypes: []string{"Electricity", "Shop License"}},
			Digital:    domain.DigitalData{AppUsageScore: 0.4, EcommerceSpendRatio: 0.05, BrowserHistoryRiskScore: 0, DeviceSwitchCountYear: 1, LocationConsistencyScore: 0.99},
			Social:     domain.SocialData{SocialConnectionsScore: 0.7, IdentityVerified: true, EmailAgeMonths: 12},
			Public:     domain.PublicRecordData{PropertyOwnership: true, BusinessRegistered: true, NoCriminalRecord: true},
			Employment: domain.EmploymentData{TenureMonths: 120, IsSalaried: false},
			Behavioral: domain.BehavioralData{AvgSessionTimeSeconds: 120, TypingSpeedScore: 0.6, NavPathConfusionScore: 0, SensorSteadinessScore: 0.95},
		},
		{
			ProfileID:           "student",
			Name:                "Arjun Singh",
			Occupation:          "Student / First Job",
			Description:         "New to workforce. Thin file. High digital activity, erratic spending, high social score.",
			MonthlyIncome:       12000,
			RequestedLoanAmount: 25000,
			Financial: domain.FinancialData{
				LoanRepaymentScore: 0.6,
				Transactions: []domain.MonthlyTransaction{
					{Month: "Jan", Income: 12000, Expenses: 11500, UPIVolume: 80, EODBalance: 500},
					{Month: "Feb", Income: 12000, Expenses: 12500, UPIVolume: 90, EODBalance: 0},
					{Month: "Mar", Income: 12000, Expenses: 10000, UPIVolume: 70, EODBalance: 2000},
					{Month: "Apr", Income: 15000, Expenses: 14000, UPIVolume: 100, EODBalance: 3000},
					{Month: "May", Income: 15000, Expenses: 15000, UPIVolume: 85, EODBalance: 3000},
					{Month: "Jun", Income: 15000, Expenses: 13000, UPIVolume: 95, EODBalance: 5000},
				},
			},
			Telecom:    domain.TelecomData{PhoneNumberAgeMonths: 12, AvgRechargeAmount: 699, DataUsageGB: 120, RoamingDays: 10, CallConsistencyScore: 0.5},
			Utilities:  domain.UtilityData{TotalBills: 6, OnTimePayments: 4, UtilityTypes: []string{"Mobile Postpaid", "Streaming Sub"}},
			Digital:    domain.DigitalData{AppUsageScore: 0.6, EcommerceSpendRatio: 0.4, BrowserHistoryRiskScore: 0.4, DeviceSwitchCountYear: 2, LocationConsistencyScore: 0.6},
			Social:     domain.SocialData{SocialConnectionsScore: 0.9, IdentityVerified: true, EmailAgeMonths: 60},
			Public:     domain.PublicRecordData{PropertyOwnership: false, BusinessRegistered: false, NoCriminalRecord: true},
			Employment: domain.EmploymentData{TenureMonths: 3, IsSalaried: true},
			Behavioral: domain.BehavioralData{AvgSessionTimeSeconds: 300, TypingSpeedScore: 0.95, NavPathConfusionScore: 0.3, SensorSteadinessScore: 0.7},
		},
		{
			ProfileID:           "homemaker",
			Name:                "Priya Sharma",
			Occupation:          "Homemaker",
			Description:         "Household manager. No direct income, but manages expenses and savings efficiently. Very stable profile.",
			MonthlyIncome:       20000,
			RequestedLoanAmount: 40000,
			Financial: domain.FinancialData{
				LoanRepaymentScore: 0.5,
				Transactions: []domain.MonthlyTransaction{
					{Month: "Jan", Income: 20000, Expenses: 18000, UPIVolume: 15, EODBalance: 2000},
					{Month: "Feb", Income: 20000, Expenses: 17500, UPIVolume: 12, EODBalance: 4500},
					{Month: "Mar", Income: 20000, Expenses: 19000, UPIVolume: 20, EODBalance: 5500},
					{Month: "Apr", Income: 20000, Expenses: 18000, UPIVolume: 15, EODBalance: 7500},
					{Month: "May", Income: 20000, Expenses: 18500, UPIVolume: 18, EODBalance: 9000},
					{Month: "Jun", Income: 20000, Expenses: 18000, UPIVolume: 15, EODBalance: 11000},
				},
			},
			Telecom:    domain.TelecomData{PhoneNumberAgeMonths: 60, AvgRechargeAmount: 299, DataUsageGB: 10, RoamingDays: 0, CallConsistencyScore: 0.98},
			Utilities:  domain.UtilityData{TotalBills: 12, OnTimePayments: 12, UtilityTypes: []string{"LPG Gas", "Electricity"}},
			Digital:    domain.DigitalData{AppUsageScore: 0.5, EcommerceSpendRatio: 0.15, BrowserHistoryRiskScore: 0, DeviceSwitchCountYear: 0, LocationConsistencyScore: 0.95},
			Social:     domain.SocialData{SocialConnectionsScore: 0.7, IdentityVerified: true, EmailAgeMonths: 48},
			Public:     domain.PublicRecordData{PropertyOwnership: true, BusinessRegistered: false, NoCriminalRecord: true},
			Employment: domain.EmploymentData{TenureMonths: 0, IsSalaried: false},
			Behavioral: domain.BehavioralData{AvgSessionTimeSeconds: 90, TypingSpeedScore: 0.7, NavPathConfusionScore: 0.05, SensorSteadinessScore: 0.9},
		},
	}
}
