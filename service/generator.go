package service

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mkumar84/Insurance-Dashboard/config"
	"github.com/mkumar84/Insurance-Dashboard/model"
)

// ID bases per entity. Record i gets prefix + (base + i).
const (
	policyIDBase       = 10000
	claimIDBase        = 20000
	underwritingIDBase = 30000
	opportunityIDBase  = 40000
	saleIDBase         = 50000
	eappIDBase         = 60000

	// Claims reference POL10000..POL10049 and Customer 1..50 regardless of
	// how many policies were generated.
	claimPolicyRefSpan = 50
	agentCount         = 10
)

func checkCount(entity string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s count %d: %w", entity, n, ErrInvalidArgument)
	}
	return nil
}

// GeneratePolicies returns n policies with one-year terms starting within the
// last three years.
func GeneratePolicies(r *rand.Rand, now time.Time, n int) ([]model.Policy, error) {
	if err := checkCount("policy", n); err != nil {
		return nil, err
	}

	base := startOfDay(now).AddDate(0, 0, -PolicyStartWindowDays)
	out := make([]model.Policy, n)
	for i := range out {
		start := base.AddDate(0, 0, randInt(r, 0, PolicyStartWindowDays))
		out[i] = model.Policy{
			PolicyID:  fmt.Sprintf("POL%d", policyIDBase+i),
			Product:   choice(r, PolicyProducts),
			Holder:    fmt.Sprintf("Customer %d", i+1),
			StartDate: model.Date(start),
			EndDate:   model.Date(start.AddDate(0, 0, PolicyTermDays)),
			Premium:   uniform2(r, PolicyPremiumRange),
			Status:    choice(r, PolicyStatuses),
			Agent:     fmt.Sprintf("Agent %d", randInt(r, 1, agentCount)),
		}
	}
	return out, nil
}

// GenerateClaims returns n claims filed within the last 180 days. The policy
// and customer references are sampled on their own and never joined.
func GenerateClaims(r *rand.Rand, now time.Time, n int) ([]model.Claim, error) {
	if err := checkCount("claim", n); err != nil {
		return nil, err
	}

	out := make([]model.Claim, n)
	for i := range out {
		filed := daysBack(r, now, ClaimLookbackDays)
		out[i] = model.Claim{
			ClaimID:   fmt.Sprintf("CLM%d", claimIDBase+i),
			PolicyID:  fmt.Sprintf("POL%d", policyIDBase+randInt(r, 0, claimPolicyRefSpan-1)),
			Type:      choice(r, ClaimTypes),
			DateFiled: model.Date(filed),
			Amount:    uniform2(r, ClaimAmountRange),
			Status:    choice(r, ClaimStatuses),
			Customer:  fmt.Sprintf("Customer %d", randInt(r, 1, claimPolicyRefSpan)),
			AIFlag:    choice(r, ClaimAIFlags),
		}
	}
	return out, nil
}

func GenerateUnderwritingCases(r *rand.Rand, now time.Time, n int) ([]model.UnderwritingCase, error) {
	if err := checkCount("underwriting case", n); err != nil {
		return nil, err
	}

	out := make([]model.UnderwritingCase, n)
	for i := range out {
		out[i] = model.UnderwritingCase{
			CaseID:           fmt.Sprintf("UW%d", underwritingIDBase+i),
			Applicant:        fmt.Sprintf("Applicant %d", i+1),
			Product:          choice(r, UnderwritingProducts),
			RiskAssessment:   choice(r, UnderwritingRisks),
			AIRecommendation: choice(r, UnderwritingRecommendations),
			Status:           choice(r, UnderwritingStatuses),
			Date:             model.Date(daysBack(r, now, UnderwritingLookbackDays)),
		}
	}
	return out, nil
}

// GenerateMarketingOpportunities ignores now; opportunities carry no dates.
func GenerateMarketingOpportunities(r *rand.Rand, _ time.Time, n int) ([]model.MarketingOpportunity, error) {
	if err := checkCount("opportunity", n); err != nil {
		return nil, err
	}

	out := make([]model.MarketingOpportunity, n)
	for i := range out {
		out[i] = model.MarketingOpportunity{
			OpportunityID:    fmt.Sprintf("OPP%d", opportunityIDBase+i),
			Customer:         fmt.Sprintf("Prospect %d", i+1),
			ProductInterest:  choice(r, OpportunityProducts),
			Channel:          choice(r, OpportunityChannels),
			Stage:            choice(r, OpportunityStages),
			PotentialPremium: uniform2(r, OpportunityPremiumRange),
			AIScore:          uniform2(r, OpportunityScoreRange),
		}
	}
	return out, nil
}

func GenerateSales(r *rand.Rand, now time.Time, n int) ([]model.SaleRecord, error) {
	if err := checkCount("sale", n); err != nil {
		return nil, err
	}

	out := make([]model.SaleRecord, n)
	for i := range out {
		date := daysBack(r, now, SaleLookbackDays)
		out[i] = model.SaleRecord{
			SaleID:     fmt.Sprintf("SAL%d", saleIDBase+i),
			Date:       model.Date(date),
			Product:    choice(r, SaleProducts),
			Agent:      fmt.Sprintf("Agent %d", randInt(r, 1, agentCount)),
			Region:     choice(r, SaleRegions),
			Premium:    uniform2(r, SalePremiumRange),
			Commission: uniform2(r, SaleCommissionRange),
		}
	}
	return out, nil
}

// GenerateEApplications keeps the time of day of now so start and
// last-activity stamps look like real sessions.
func GenerateEApplications(r *rand.Rand, now time.Time, n int) ([]model.EApplication, error) {
	if err := checkCount("e-application", n); err != nil {
		return nil, err
	}

	now = now.UTC().Truncate(time.Minute)
	out := make([]model.EApplication, n)
	for i := range out {
		start := now.AddDate(0, 0, -randInt(r, 0, EAppLookbackDays))
		last := start.Add(time.Duration(randInt(r, 5, 120)) * time.Minute)
		out[i] = model.EApplication{
			ApplicationID:    fmt.Sprintf("EAPP%d", eappIDBase+i),
			Customer:         fmt.Sprintf("Applicant %d", i+1),
			Product:          choice(r, EAppProducts),
			StartTime:        model.Timestamp(start),
			LastActivity:     model.Timestamp(last),
			Status:           choice(r, EAppStatuses),
			AIAssistanceUsed: r.IntN(2) == 1,
			CompletionPct:    randInt(r, 10, 100),
		}
	}
	return out, nil
}

// GenerateDataset builds every collection with the given counts.
func GenerateDataset(r *rand.Rand, now time.Time, counts config.DatasetConfig) (*model.Dataset, error) {
	ds := &model.Dataset{GeneratedAt: now}
	var err error

	if ds.Policies, err = GeneratePolicies(r, now, counts.Policies); err != nil {
		return nil, err
	}
	if ds.Claims, err = GenerateClaims(r, now, counts.Claims); err != nil {
		return nil, err
	}
	if ds.Underwriting, err = GenerateUnderwritingCases(r, now, counts.Underwriting); err != nil {
		return nil, err
	}
	if ds.Opportunities, err = GenerateMarketingOpportunities(r, now, counts.Opportunities); err != nil {
		return nil, err
	}
	if ds.Sales, err = GenerateSales(r, now, counts.Sales); err != nil {
		return nil, err
	}
	if ds.EApplications, err = GenerateEApplications(r, now, counts.EApps); err != nil {
		return nil, err
	}
	return ds, nil
}

// Generator produces datasets from a shared source and clock.
type Generator struct {
	source *Source
	clock  func() time.Time
	counts config.DatasetConfig
}

func NewGenerator(source *Source, counts config.DatasetConfig, clock func() time.Time) *Generator {
	if clock == nil {
		clock = time.Now
	}
	return &Generator{source: source, clock: clock, counts: counts}
}

// Dataset generates a fresh dataset with the configured counts.
func (g *Generator) Dataset() (*model.Dataset, error) {
	var (
		ds  *model.Dataset
		err error
	)
	g.source.With(func(r *rand.Rand) {
		ds, err = GenerateDataset(r, g.clock(), g.counts)
	})
	return ds, err
}
