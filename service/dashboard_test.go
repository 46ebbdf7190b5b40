package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkumar84/Insurance-Dashboard/config"
	"github.com/mkumar84/Insurance-Dashboard/model"
)

func newTestDashboard(ds *model.Dataset) *DashboardService {
	source := NewSource(9)
	store := NewDatasetStore(ds)
	gen := NewGenerator(source, config.Default().Dataset, func() time.Time { return testNow })
	engine := NewDecisionEngine(source, NoopSleep, DefaultDecisionDelays)
	return NewDashboardService(store, gen, engine)
}

func TestOverview(t *testing.T) {
	svc := newTestDashboard(newTestDataset())

	ov := svc.Overview()

	assert.Len(t, ov.KPIs, 4)
	assert.Equal(t, []model.GroupTotal{{Key: "Auto", Value: 400.25}, {Key: "Home", Value: 200}}, ov.PremiumByProduct)
	assert.Equal(t, []model.GroupCount{{Key: "Paid", Count: 2}, {Key: "Submitted", Count: 1}}, ov.ClaimsByStatus)

	require.Len(t, ov.RecentClaims, 3)
	assert.Equal(t, "CLM20001", ov.RecentClaims[0].ClaimID)
	assert.Equal(t, "CLM20000", ov.RecentClaims[1].ClaimID)
	assert.Equal(t, "CLM20002", ov.RecentClaims[2].ClaimID)

	require.Len(t, ov.RecentCases, 2)
	assert.Equal(t, "UW30001", ov.RecentCases[0].CaseID)
}

func TestRecentClaimsLimit(t *testing.T) {
	claims := make([]model.Claim, 8)
	for i := range claims {
		claims[i] = model.Claim{ClaimID: string(rune('a' + i)), DateFiled: day(2026, 1, i+1)}
	}

	recent := RecentClaims(claims, 5)
	require.Len(t, recent, 5)
	assert.Equal(t, "h", recent[0].ClaimID)
	assert.Equal(t, "a", claims[0].ClaimID, "input must not be reordered")
}

func TestFraudIndicators(t *testing.T) {
	svc := newTestDashboard(newTestDataset())

	indicators := svc.FraudIndicators()
	require.Len(t, indicators, 2)
	for _, ind := range indicators {
		assert.Equal(t, model.RiskHigh, ind.Claim.AIFlag)
		assert.Len(t, ind.RiskFactors, 3)
	}
}

func TestFraudIndicatorsEmpty(t *testing.T) {
	svc := newTestDashboard(&model.Dataset{Claims: []model.Claim{{ClaimID: "CLM20000", AIFlag: model.RiskLow}}})

	indicators := svc.FraudIndicators()
	assert.NotNil(t, indicators)
	assert.Empty(t, indicators)
}

func TestAutomationStats(t *testing.T) {
	stats := newTestDashboard(newTestDataset()).AutomationStats()

	assert.Len(t, stats.Metrics, 3)
	require.Len(t, stats.Trend, 5)
	for _, p := range stats.Trend {
		assert.Equal(t, 100, p.Manual+p.AI)
	}
}

func TestDashboardUnknownIDs(t *testing.T) {
	svc := newTestDashboard(newTestDataset())
	ctx := context.Background()

	_, err := svc.ProcessClaim(ctx, "CLM0")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.SummarizeClaim(ctx, "CLM0")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.ClaimSummaryExport("CLM0")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.FlagClaim(ctx, "CLM0", true)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.RecommendUnderwriting(ctx, "UW0")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.SubmitUnderwritingDecision(ctx, "UW0", "Approve")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.LeadScoring("OPP0")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.EApplication("EAPP0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlagClaim(t *testing.T) {
	svc := newTestDashboard(newTestDataset())

	res, err := svc.FlagClaim(context.Background(), "CLM20000", true)
	require.NoError(t, err)
	assert.Equal(t, "investigate", res.Action)
	assert.Equal(t, "Claim CLM20000 flagged for investigation", res.Message)

	res, err = svc.FlagClaim(context.Background(), "CLM20000", false)
	require.NoError(t, err)
	assert.Equal(t, "clear", res.Action)
	assert.Equal(t, "Claim CLM20000 cleared for processing", res.Message)
}

func TestSubmitUnderwritingDecision(t *testing.T) {
	svc := newTestDashboard(newTestDataset())

	res, err := svc.SubmitUnderwritingDecision(context.Background(), "UW30000", "Approve with Conditions")
	require.NoError(t, err)
	assert.Equal(t, "Decision submitted: Approve with Conditions for case UW30000", res.Message)

	_, err = svc.SubmitUnderwritingDecision(context.Background(), "UW30000", "Maybe")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRecommendUnderwriting(t *testing.T) {
	svc := newTestDashboard(newTestDataset())

	report, err := svc.RecommendUnderwriting(context.Background(), "UW30001")
	require.NoError(t, err)
	assert.Equal(t, "UW30001", report.Recommendation.CaseID)
	assert.Equal(t, UnderwritingDecisions, report.DecisionOptions)
	assert.Len(t, report.SimilarCases, 2)
	assert.Len(t, report.NextSteps, 3)
}

func TestOpportunitiesSortedByScore(t *testing.T) {
	svc := newTestDashboard(newTestDataset())

	opps := svc.Opportunities()
	require.Len(t, opps, 3)
	assert.Equal(t, "OPP40001", opps[0].OpportunityID)
	assert.Equal(t, "OPP40002", opps[1].OpportunityID)
	assert.Equal(t, "OPP40000", opps[2].OpportunityID)

	assert.Equal(t, "OPP40000", svc.Dataset().Opportunities[0].OpportunityID, "dataset order must be kept")
}

func TestOpportunityDistribution(t *testing.T) {
	dist := newTestDashboard(newTestDataset()).OpportunityDistribution()

	assert.Equal(t, []model.StageProductTotal{
		{Stage: "Lead", ProductInterest: "Auto", PotentialPremium: 150.5},
		{Stage: "Proposal", ProductInterest: "Home", PotentialPremium: 700},
	}, dist)
}

func TestLeadScoring(t *testing.T) {
	scoring, err := newTestDashboard(newTestDataset()).LeadScoring("OPP40001")
	require.NoError(t, err)

	assert.Equal(t, 90, scoring.ConversionProbability)
	assert.Len(t, scoring.PositiveFactors, 3)
	assert.Len(t, scoring.NegativeFactors, 3)
	assert.Len(t, scoring.RecommendedActions, 3)
}

func TestSalesPerformance(t *testing.T) {
	perf := newTestDashboard(newTestDataset()).SalesPerformance()

	assert.Equal(t, []model.GroupTotal{{Key: "Agent 1", Value: 100}, {Key: "Agent 2", Value: 500.25}}, perf.ByAgent)
	require.Len(t, perf.RecentSales, 3)
	assert.Equal(t, "SAL50001", perf.RecentSales[0].SaleID)
}

func TestEApplicationDetail(t *testing.T) {
	detail, err := newTestDashboard(newTestDataset()).EApplication("EAPP60001")
	require.NoError(t, err)
	assert.InDelta(t, 0.8, detail.Progress, 1e-9)
}

func TestEAppAnalytics(t *testing.T) {
	analytics := newTestDashboard(newTestDataset()).EAppAnalytics()

	assert.Equal(t, []model.GroupTotal{{Key: "Auto", Value: 60}, {Key: "Life", Value: 100}}, analytics.CompletionByProduct)
	assert.Len(t, analytics.AIImpact, 3)
	assert.Len(t, analytics.AbandonmentPoints, 3)
}

func TestRegenerate(t *testing.T) {
	svc := newTestDashboard(newTestDataset())

	ds, err := svc.Regenerate(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Policies, 50)
	assert.Same(t, ds, svc.Dataset())

	_, err = svc.SummarizeClaim(context.Background(), "CLM20029")
	assert.NoError(t, err)
}
