package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/mkumar84/Insurance-Dashboard/model"
)

// Fragments the mock engines assemble their results from.
var (
	summarySeverities = []string{"minor", "moderate", "major"}
	summaryIncidents  = []string{"collision", "weather-related", "theft", "fire"}
	summaryLocations  = []string{"home", "a parking lot", "on the highway"}
	summaryReporters  = []string{"Police", "Witness"}
	summaryMedia      = []string{"Photos", "Videos"}
	summaryHistory    = []string{"Previous claims", "No prior claims"}

	ClaimAssessments = []string{"Likely valid", "Potentially fraudulent", "Needs further investigation"}
	ClaimActions     = []string{"Approve claim", "Request additional documentation", "Investigate further"}

	SupportingDocumentTypes = []string{"Police Report", "Medical Records", "Repair Estimates", "Photos", "Witness Statements"}
	documentValidity        = []string{"Document appears valid", "No inconsistencies found", "Potential issue detected"}
	documentDetails         = []string{"Dates match claim timeline", "Signature present", "Professional letterhead"}

	applicantRiskFactors = []string{"Age", "Occupation", "Medical history"}
	applicantRiskLevels  = []string{"Low risk", "Medium risk", "High risk"}
	exposureFactors      = []string{"Location", "Property type", "Driving record"}
	exposureRatings      = []string{"Favorable", "Average", "Unfavorable"}

	UnderwritingOutcomes = []string{"Approve as standard", "Approve with premium adjustment", "Decline", "Refer to senior underwriter"}

	EAppSuggestableFields = []string{
		"Medical history details",
		"Vehicle information",
		"Property details",
		"Beneficiary information",
		"Driver details",
	}
	EAppCompletionTips = []string{
		"Consider adding additional driver information",
		"Review medical history section for completeness",
	}
)

const (
	ConfidenceMinPct     = 75
	ConfidenceMaxPct     = 95
	TimeSavedMinMinutes  = 5
	TimeSavedMaxMinutes  = 25
	supportingDocsShown  = 3
	suggestedFieldsShown = 2
)

// SampleClaimSummary fabricates a summary. claimID is only echoed back.
func SampleClaimSummary(r *rand.Rand, claimID string) model.ClaimSummary {
	description := fmt.Sprintf(
		"The claimant reported a %s %s incident. The claimant states the incident occurred at %s.",
		choice(r, summarySeverities), choice(r, summaryIncidents), choice(r, summaryLocations),
	)
	return model.ClaimSummary{
		ClaimID:     claimID,
		Description: description,
		KeyFactors: []string{
			choice(r, summaryReporters) + " report available",
			choice(r, summaryMedia) + " submitted",
			choice(r, summaryHistory) + " found",
		},
		AIAssessment:      choice(r, ClaimAssessments),
		RecommendedAction: choice(r, ClaimActions),
	}
}

// SampleSupportingDocuments picks three distinct document types, each with
// two extracted key points.
func SampleSupportingDocuments(r *rand.Rand, claimID string) []model.SupportingDocument {
	types := sample(r, SupportingDocumentTypes, supportingDocsShown)
	docs := make([]model.SupportingDocument, len(types))
	for i, t := range types {
		docs[i] = model.SupportingDocument{
			Type:      t,
			Excerpt:   fmt.Sprintf("This is a simulated %s for claim %s.", strings.ToLower(t), claimID),
			KeyPoints: []string{choice(r, documentValidity), choice(r, documentDetails)},
		}
	}
	return docs
}

func SampleUnderwritingRecommendation(r *rand.Rand, caseID string) model.UnderwritingRecommendation {
	return model.UnderwritingRecommendation{
		CaseID: caseID,
		RiskFactors: []string{
			fmt.Sprintf("%s: %s", choice(r, applicantRiskFactors), choice(r, applicantRiskLevels)),
			fmt.Sprintf("%s: %s", choice(r, exposureFactors), choice(r, exposureRatings)),
		},
		AIScore:        uniform2(r, UnderwritingScoreRange),
		Recommendation: choice(r, UnderwritingOutcomes),
	}
}

func SampleEAppAssistance(r *rand.Rand) model.EAppAssistance {
	tips := make([]string, len(EAppCompletionTips))
	copy(tips, EAppCompletionTips)
	return model.EAppAssistance{
		SuggestedFields:    sample(r, EAppSuggestableFields, suggestedFieldsShown),
		CompletionTips:     tips,
		EstimatedTimeSaved: fmt.Sprintf("%d minutes", randInt(r, TimeSavedMinMinutes, TimeSavedMaxMinutes)),
	}
}

// Sleeper pauses for d, returning early with ctx.Err() if ctx ends first.
type Sleeper func(ctx context.Context, d time.Duration) error

// ContextSleep is the real-time Sleeper.
func ContextSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoopSleep returns immediately. Used by tests and the CLI.
func NoopSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// ScaledSleep stretches or shrinks every delay by scale before sleeping.
func ScaledSleep(scale float64) Sleeper {
	return func(ctx context.Context, d time.Duration) error {
		return ContextSleep(ctx, time.Duration(float64(d)*scale))
	}
}

// DecisionDelays are the simulated processing times of each engine. The
// report delays are paid on top of the engine delay when a full page report
// is built.
type DecisionDelays struct {
	ClaimSummary       time.Duration
	ClaimSummaryReport time.Duration
	ClaimProcessing    time.Duration
	Underwriting       time.Duration
	UnderwritingReport time.Duration
	EAppAssistance     time.Duration
}

var DefaultDecisionDelays = DecisionDelays{
	ClaimSummary:       time.Second,
	ClaimSummaryReport: 2 * time.Second,
	ClaimProcessing:    2 * time.Second,
	Underwriting:       500 * time.Millisecond,
	UnderwritingReport: 1500 * time.Millisecond,
	EAppAssistance:     time.Second,
}

// DecisionEngine runs the mock AI features. Every call is independent.
type DecisionEngine struct {
	source *Source
	sleep  Sleeper
	delays DecisionDelays
}

func NewDecisionEngine(source *Source, sleep Sleeper, delays DecisionDelays) *DecisionEngine {
	if sleep == nil {
		sleep = NoopSleep
	}
	return &DecisionEngine{source: source, sleep: sleep, delays: delays}
}

func (e *DecisionEngine) SummarizeClaim(ctx context.Context, claimID string) (model.ClaimSummary, error) {
	if err := e.sleep(ctx, e.delays.ClaimSummary); err != nil {
		return model.ClaimSummary{}, err
	}
	var out model.ClaimSummary
	e.source.With(func(r *rand.Rand) { out = SampleClaimSummary(r, claimID) })
	return out, nil
}

// SummarizeClaimReport adds the confidence and supporting documents the
// summarization page shows around the summary.
func (e *DecisionEngine) SummarizeClaimReport(ctx context.Context, claimID string) (model.ClaimSummaryReport, error) {
	summary, err := e.SummarizeClaim(ctx, claimID)
	if err != nil {
		return model.ClaimSummaryReport{}, err
	}
	if err := e.sleep(ctx, e.delays.ClaimSummaryReport); err != nil {
		return model.ClaimSummaryReport{}, err
	}
	report := model.ClaimSummaryReport{Summary: summary}
	e.source.With(func(r *rand.Rand) {
		report.ConfidencePct = randInt(r, ConfidenceMinPct, ConfidenceMaxPct)
		report.SupportingDocuments = SampleSupportingDocuments(r, claimID)
	})
	return report, nil
}

// ProcessClaim returns the canned "Process with AI" outcome.
func (e *DecisionEngine) ProcessClaim(ctx context.Context, claimID string) (model.ClaimProcessingResult, error) {
	if err := e.sleep(ctx, e.delays.ClaimProcessing); err != nil {
		return model.ClaimProcessingResult{}, err
	}
	return model.ClaimProcessingResult{
		ClaimID:           claimID,
		Assessment:        "Likely valid",
		RecommendedAction: "Approve with standard review",
		ConfidencePct:     87,
		NextSteps: []string{
			"Verify supporting documents",
			"Confirm policy coverage",
			"Process payment if approved",
		},
	}, nil
}

func (e *DecisionEngine) RecommendUnderwriting(ctx context.Context, caseID string) (model.UnderwritingRecommendation, error) {
	if err := e.sleep(ctx, e.delays.Underwriting); err != nil {
		return model.UnderwritingRecommendation{}, err
	}
	var out model.UnderwritingRecommendation
	e.source.With(func(r *rand.Rand) { out = SampleUnderwritingRecommendation(r, caseID) })
	return out, nil
}

// RecommendUnderwritingReport is RecommendUnderwriting followed by the
// analysis pause of the underwriting page.
func (e *DecisionEngine) RecommendUnderwritingReport(ctx context.Context, caseID string) (model.UnderwritingRecommendation, error) {
	rec, err := e.RecommendUnderwriting(ctx, caseID)
	if err != nil {
		return model.UnderwritingRecommendation{}, err
	}
	if err := e.sleep(ctx, e.delays.UnderwritingReport); err != nil {
		return model.UnderwritingRecommendation{}, err
	}
	return rec, nil
}

func (e *DecisionEngine) AssistEApplication(ctx context.Context) (model.EAppAssistance, error) {
	if err := e.sleep(ctx, e.delays.EAppAssistance); err != nil {
		return model.EAppAssistance{}, err
	}
	var out model.EAppAssistance
	e.source.With(func(r *rand.Rand) { out = SampleEAppAssistance(r) })
	return out, nil
}
