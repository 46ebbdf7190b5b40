package service

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/mkumar84/Insurance-Dashboard/model"
	"github.com/mkumar84/Insurance-Dashboard/pkg/logger"
)

const (
	recentClaimsShown = 5
	recentCasesShown  = 5
	recentSalesShown  = 10
)

// UnderwritingDecisions are the choices an underwriter can submit.
var UnderwritingDecisions = []string{"Approve", "Approve with Conditions", "Decline", "Request More Info"}

// Fixed talking points shown by the dashboard pages.
var (
	overviewKPIs = []model.MetricCard{
		{Label: "Active Policies", Value: "1,248", Delta: "+5.2% vs last month"},
		{Label: "Claims This Month", Value: "87", Delta: "-2.3% vs last month"},
		{Label: "Underwriting AI Adoption", Value: "73%", Delta: "+12% vs last quarter"},
		{Label: "eApp Completion Rate", Value: "68%", Delta: "+8% vs last month"},
	}
	fraudRiskFactors = []string{
		"Multiple claims in short period",
		"Inconsistent incident description",
		"Unusual payment request method",
	}
	automationMetrics = []model.MetricCard{
		{Label: "Claims Processed Automatically", Value: "342", Delta: "15% increase"},
		{Label: "Average Processing Time", Value: "2.1 hours", Delta: "45% reduction"},
		{Label: "Fraud Detection Rate", Value: "92%", Delta: "8% improvement"},
	}
	manualTrend = []int{100, 85, 70, 55, 40}
	aiTrend     = []int{0, 15, 30, 45, 60}

	underwritingSupportingData = []string{"Credit score: Good", "Loss history: Clean"}
	underwritingSimilarCases   = []string{
		"Case #UW24567: Approved with 10% premium increase",
		"Case #UW19823: Approved as standard",
	}
	underwritingNextSteps = []string{
		"Review AI recommendation",
		"Verify applicant information",
		"Make final underwriting decision",
	}

	leadPositiveFactors = []string{
		"Matches ideal customer profile",
		"Previous engagement with marketing",
		"High income bracket",
	}
	leadNegativeFactors = []string{
		"No prior relationship",
		"Competitive quotes obtained",
		"Long sales cycle expected",
	}
	leadActions = []string{
		"Personalize outreach with bundle options",
		"Offer free consultation",
		"Follow up within 3 days",
	}

	eappAIImpact = []model.ImpactRow{
		{Stage: "Start Rate", WithAI: 65, WithoutAI: 45},
		{Stage: "Completion Rate", WithAI: 72, WithoutAI: 50},
		{Stage: "Approval Rate", WithAI: 80, WithoutAI: 55},
	}
	eappAbandonment = []model.AbandonmentPoint{
		{Section: "Medical history section", Pct: 32},
		{Section: "Beneficiary details", Pct: 28},
		{Section: "Payment information", Pct: 18},
	}
)

// DashboardService serves the session dataset and the mock engines to the
// dashboard pages.
type DashboardService struct {
	store     *DatasetStore
	generator *Generator
	engine    *DecisionEngine
}

func NewDashboardService(store *DatasetStore, generator *Generator, engine *DecisionEngine) *DashboardService {
	return &DashboardService{store: store, generator: generator, engine: engine}
}

func (s *DashboardService) Dataset() *model.Dataset {
	return s.store.Snapshot()
}

// Regenerate replaces the session dataset with a freshly generated one.
func (s *DashboardService) Regenerate(ctx context.Context) (*model.Dataset, error) {
	ds, err := s.generator.Dataset()
	if err != nil {
		return nil, fmt.Errorf("generate dataset: %w", err)
	}
	s.store.Replace(ds)
	logger.Info(ctx, "dataset regenerated", "generation", s.store.Generation())
	return ds, nil
}

func (s *DashboardService) Overview() model.Overview {
	ds := s.store.Snapshot()
	return model.Overview{
		KPIs:             slices.Clone(overviewKPIs),
		PremiumByProduct: sumBy(ds.Sales, func(r model.SaleRecord) (string, float64) { return r.Product, r.Premium }),
		ClaimsByStatus:   countBy(ds.Claims, func(c model.Claim) string { return c.Status }),
		RecentClaims:     RecentClaims(ds.Claims, recentClaimsShown),
		RecentCases:      RecentUnderwritingCases(ds.Underwriting, recentCasesShown),
	}
}

// FraudIndicators lists every high-risk claim.
func (s *DashboardService) FraudIndicators() []model.FraudIndicator {
	ds := s.store.Snapshot()
	out := []model.FraudIndicator{}
	for _, c := range ds.Claims {
		if c.AIFlag == model.RiskHigh {
			out = append(out, model.FraudIndicator{Claim: c, RiskFactors: slices.Clone(fraudRiskFactors)})
		}
	}
	return out
}

func (s *DashboardService) AutomationStats() model.AutomationStats {
	trend := make([]model.TrendPoint, len(manualTrend))
	for i := range trend {
		trend[i] = model.TrendPoint{Period: i + 1, Manual: manualTrend[i], AI: aiTrend[i]}
	}
	return model.AutomationStats{Metrics: slices.Clone(automationMetrics), Trend: trend}
}

func (s *DashboardService) ProcessClaim(ctx context.Context, claimID string) (model.ClaimProcessingResult, error) {
	if _, err := s.store.Claim(claimID); err != nil {
		return model.ClaimProcessingResult{}, err
	}
	return s.engine.ProcessClaim(ctx, claimID)
}

// FlagClaim acknowledges an investigate or clear action on a claim. Nothing
// is recorded.
func (s *DashboardService) FlagClaim(ctx context.Context, claimID string, investigate bool) (model.ActionResult, error) {
	if _, err := s.store.Claim(claimID); err != nil {
		return model.ActionResult{}, err
	}
	res := model.ActionResult{ID: claimID, Action: "clear", Message: fmt.Sprintf("Claim %s cleared for processing", claimID)}
	if investigate {
		res.Action = "investigate"
		res.Message = fmt.Sprintf("Claim %s flagged for investigation", claimID)
	}
	logger.Info(ctx, "claim action", "claim_id", claimID, "action", res.Action)
	return res, nil
}

func (s *DashboardService) SummarizeClaim(ctx context.Context, claimID string) (model.ClaimSummaryReport, error) {
	if _, err := s.store.Claim(claimID); err != nil {
		return model.ClaimSummaryReport{}, err
	}
	return s.engine.SummarizeClaimReport(ctx, claimID)
}

// ClaimSummaryExport returns the downloadable summary text for a claim.
func (s *DashboardService) ClaimSummaryExport(claimID string) (Export, error) {
	if _, err := s.store.Claim(claimID); err != nil {
		return Export{}, err
	}
	return ClaimSummaryExport(claimID), nil
}

func (s *DashboardService) RecommendUnderwriting(ctx context.Context, caseID string) (model.UnderwritingReport, error) {
	if _, err := s.store.UnderwritingCase(caseID); err != nil {
		return model.UnderwritingReport{}, err
	}
	rec, err := s.engine.RecommendUnderwritingReport(ctx, caseID)
	if err != nil {
		return model.UnderwritingReport{}, err
	}
	return model.UnderwritingReport{
		Recommendation:  rec,
		SupportingData:  slices.Clone(underwritingSupportingData),
		SimilarCases:    slices.Clone(underwritingSimilarCases),
		NextSteps:       slices.Clone(underwritingNextSteps),
		DecisionOptions: slices.Clone(UnderwritingDecisions),
	}, nil
}

// SubmitUnderwritingDecision validates and acknowledges a decision. The case
// itself is not modified.
func (s *DashboardService) SubmitUnderwritingDecision(ctx context.Context, caseID, decision string) (model.ActionResult, error) {
	if _, err := s.store.UnderwritingCase(caseID); err != nil {
		return model.ActionResult{}, err
	}
	if !slices.Contains(UnderwritingDecisions, decision) {
		return model.ActionResult{}, fmt.Errorf("decision %q: %w", decision, ErrInvalidArgument)
	}
	logger.Info(ctx, "underwriting decision submitted", "case_id", caseID, "decision", decision)
	return model.ActionResult{
		ID:      caseID,
		Action:  decision,
		Message: fmt.Sprintf("Decision submitted: %s for case %s", decision, caseID),
	}, nil
}

// Opportunities returns the opportunities ordered by AI score, best first.
func (s *DashboardService) Opportunities() []model.MarketingOpportunity {
	out := slices.Clone(s.store.Snapshot().Opportunities)
	slices.SortStableFunc(out, func(a, b model.MarketingOpportunity) int {
		return cmp.Compare(b.AIScore, a.AIScore)
	})
	return out
}

// OpportunityDistribution totals potential premium by stage and product.
func (s *DashboardService) OpportunityDistribution() []model.StageProductTotal {
	type key struct{ stage, product string }
	totals := map[key]float64{}
	for _, o := range s.store.Snapshot().Opportunities {
		totals[key{o.Stage, o.ProductInterest}] += o.PotentialPremium
	}
	out := make([]model.StageProductTotal, 0, len(totals))
	for k, v := range totals {
		out = append(out, model.StageProductTotal{Stage: k.stage, ProductInterest: k.product, PotentialPremium: round2(v)})
	}
	slices.SortFunc(out, func(a, b model.StageProductTotal) int {
		return cmp.Or(
			cmp.Compare(slices.Index(OpportunityStages, a.Stage), slices.Index(OpportunityStages, b.Stage)),
			cmp.Compare(a.ProductInterest, b.ProductInterest),
		)
	})
	return out
}

func (s *DashboardService) LeadScoring(opportunityID string) (model.LeadScoring, error) {
	opp, err := s.store.Opportunity(opportunityID)
	if err != nil {
		return model.LeadScoring{}, err
	}
	return model.LeadScoring{
		Opportunity:           opp,
		PositiveFactors:       slices.Clone(leadPositiveFactors),
		NegativeFactors:       slices.Clone(leadNegativeFactors),
		ConversionProbability: int(math.Round(opp.AIScore * 100)),
		RecommendedActions:    slices.Clone(leadActions),
	}, nil
}

func (s *DashboardService) SalesPerformance() model.SalesPerformance {
	sales := s.store.Snapshot().Sales
	return model.SalesPerformance{
		ByProduct:   sumBy(sales, func(r model.SaleRecord) (string, float64) { return r.Product, r.Premium }),
		ByAgent:     sumBy(sales, func(r model.SaleRecord) (string, float64) { return r.Agent, r.Premium }),
		RecentSales: RecentSales(sales, recentSalesShown),
	}
}

func (s *DashboardService) EApplication(id string) (model.EApplicationDetail, error) {
	app, err := s.store.EApplication(id)
	if err != nil {
		return model.EApplicationDetail{}, err
	}
	return model.EApplicationDetail{Application: app, Progress: float64(app.CompletionPct) / 100}, nil
}

func (s *DashboardService) AssistEApplication(ctx context.Context) (model.EAppAssistance, error) {
	return s.engine.AssistEApplication(ctx)
}

func (s *DashboardService) EAppAnalytics() model.EAppAnalytics {
	apps := s.store.Snapshot().EApplications
	return model.EAppAnalytics{
		CompletionByProduct: meanBy(apps, func(a model.EApplication) (string, float64) {
			return a.Product, float64(a.CompletionPct)
		}),
		AIImpact:          slices.Clone(eappAIImpact),
		AbandonmentPoints: slices.Clone(eappAbandonment),
	}
}

// RecentClaims returns up to n claims, most recently filed first.
func RecentClaims(claims []model.Claim, n int) []model.Claim {
	out := slices.Clone(claims)
	slices.SortStableFunc(out, func(a, b model.Claim) int {
		return b.DateFiled.Time().Compare(a.DateFiled.Time())
	})
	return out[:min(n, len(out))]
}

func RecentUnderwritingCases(cases []model.UnderwritingCase, n int) []model.UnderwritingCase {
	out := slices.Clone(cases)
	slices.SortStableFunc(out, func(a, b model.UnderwritingCase) int {
		return b.Date.Time().Compare(a.Date.Time())
	})
	return out[:min(n, len(out))]
}

func RecentSales(sales []model.SaleRecord, n int) []model.SaleRecord {
	out := slices.Clone(sales)
	slices.SortStableFunc(out, func(a, b model.SaleRecord) int {
		return b.Date.Time().Compare(a.Date.Time())
	})
	return out[:min(n, len(out))]
}

// sumBy totals values per key, sorted by key.
func sumBy[T any](rows []T, kv func(T) (string, float64)) []model.GroupTotal {
	totals := map[string]float64{}
	for _, r := range rows {
		k, v := kv(r)
		totals[k] += v
	}
	return groupTotals(totals)
}

// meanBy averages values per key, sorted by key.
func meanBy[T any](rows []T, kv func(T) (string, float64)) []model.GroupTotal {
	totals := map[string]float64{}
	counts := map[string]int{}
	for _, r := range rows {
		k, v := kv(r)
		totals[k] += v
		counts[k]++
	}
	for k := range totals {
		totals[k] /= float64(counts[k])
	}
	return groupTotals(totals)
}

func countBy[T any](rows []T, key func(T) string) []model.GroupCount {
	counts := map[string]int{}
	for _, r := range rows {
		counts[key(r)]++
	}
	out := make([]model.GroupCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, model.GroupCount{Key: k, Count: c})
	}
	slices.SortFunc(out, func(a, b model.GroupCount) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

func groupTotals(totals map[string]float64) []model.GroupTotal {
	out := make([]model.GroupTotal, 0, len(totals))
	for k, v := range totals {
		out = append(out, model.GroupTotal{Key: k, Value: round2(v)})
	}
	slices.SortFunc(out, func(a, b model.GroupTotal) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
