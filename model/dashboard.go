package model

// MetricCard is a KPI tile.
type MetricCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
}

// GroupTotal is one bar of a grouped chart.
type GroupTotal struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// GroupCount is one slice of a count chart.
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type Overview struct {
	KPIs             []MetricCard       `json:"kpis"`
	PremiumByProduct []GroupTotal       `json:"premium_by_product"`
	ClaimsByStatus   []GroupCount       `json:"claims_by_status"`
	RecentClaims     []Claim            `json:"recent_claims"`
	RecentCases      []UnderwritingCase `json:"recent_underwriting_cases"`
}

// FraudIndicator is a high-risk claim with the indicators shown for it.
type FraudIndicator struct {
	Claim       Claim    `json:"claim"`
	RiskFactors []string `json:"risk_factors"`
}

// TrendPoint is one period of the manual vs AI processing trend.
type TrendPoint struct {
	Period int `json:"period"`
	Manual int `json:"manual_processing"`
	AI     int `json:"ai_processing"`
}

type AutomationStats struct {
	Metrics []MetricCard `json:"metrics"`
	Trend   []TrendPoint `json:"trend"`
}

// StageProductTotal is one cell of the opportunity distribution chart.
type StageProductTotal struct {
	Stage            string  `json:"stage"`
	ProductInterest  string  `json:"product_interest"`
	PotentialPremium float64 `json:"potential_premium"`
}

type SalesPerformance struct {
	ByProduct   []GroupTotal `json:"by_product"`
	ByAgent     []GroupTotal `json:"by_agent"`
	RecentSales []SaleRecord `json:"recent_sales"`
}

// EApplicationDetail is an application with its progress bar fraction.
type EApplicationDetail struct {
	Application EApplication `json:"application"`
	Progress    float64      `json:"progress"` // 0..1
}

// ImpactRow compares a funnel rate with and without AI assistance.
type ImpactRow struct {
	Stage     string `json:"stage"`
	WithAI    int    `json:"with_ai"`
	WithoutAI int    `json:"without_ai"`
}

type AbandonmentPoint struct {
	Section string `json:"section"`
	Pct     int    `json:"pct"`
}

type EAppAnalytics struct {
	CompletionByProduct []GroupTotal       `json:"completion_by_product"`
	AIImpact            []ImpactRow        `json:"ai_impact"`
	AbandonmentPoints   []AbandonmentPoint `json:"abandonment_points"`
}
