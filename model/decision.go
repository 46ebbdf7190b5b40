package model

// ClaimSummary is the mock summarization of a claim's documents.
type ClaimSummary struct {
	ClaimID           string   `json:"claim_id"`
	Description       string   `json:"description"`
	KeyFactors        []string `json:"key_factors"`
	AIAssessment      string   `json:"ai_assessment"`
	RecommendedAction string   `json:"recommended_action"`
}

// SupportingDocument is a simulated document attached to a claim summary.
type SupportingDocument struct {
	Type      string   `json:"type"`
	Excerpt   string   `json:"excerpt"`
	KeyPoints []string `json:"key_points"`
}

// ClaimSummaryReport is what the summarization page shows for one claim.
type ClaimSummaryReport struct {
	Summary             ClaimSummary         `json:"summary"`
	ConfidencePct       int                  `json:"confidence_pct"` // 75..95
	SupportingDocuments []SupportingDocument `json:"supporting_documents"`
}

// ClaimProcessingResult is the fixed outcome of "Process with AI".
type ClaimProcessingResult struct {
	ClaimID           string   `json:"claim_id"`
	Assessment        string   `json:"assessment"`
	RecommendedAction string   `json:"recommended_action"`
	ConfidencePct     int      `json:"confidence_pct"`
	NextSteps         []string `json:"next_steps"`
}

type UnderwritingRecommendation struct {
	CaseID         string   `json:"case_id"`
	RiskFactors    []string `json:"risk_factors"`
	AIScore        float64  `json:"ai_score"` // 0..1
	Recommendation string   `json:"recommendation"`
}

// UnderwritingReport wraps a recommendation with the static context the
// underwriting page shows alongside it.
type UnderwritingReport struct {
	Recommendation  UnderwritingRecommendation `json:"recommendation"`
	SupportingData  []string                   `json:"supporting_data"`
	SimilarCases    []string                   `json:"similar_cases"`
	NextSteps       []string                   `json:"next_steps"`
	DecisionOptions []string                   `json:"decision_options"`
}

type EAppAssistance struct {
	SuggestedFields    []string `json:"suggested_fields"`
	CompletionTips     []string `json:"completion_tips"`
	EstimatedTimeSaved string   `json:"estimated_time_saved"`
}

// LeadScoring is the lead scoring view of a marketing opportunity.
type LeadScoring struct {
	Opportunity           MarketingOpportunity `json:"opportunity"`
	PositiveFactors       []string             `json:"positive_factors"`
	NegativeFactors       []string             `json:"negative_factors"`
	ConversionProbability int                  `json:"conversion_probability_pct"`
	RecommendedActions    []string             `json:"recommended_actions"`
}

// ActionResult acknowledges a user action that has no lasting effect.
type ActionResult struct {
	ID      string `json:"id"`
	Action  string `json:"action"`
	Message string `json:"message"`
}
