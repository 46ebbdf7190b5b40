package service

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mkumar84/Insurance-Dashboard/model"
)

// Enumerated value sets the generators sample from.
var (
	PolicyProducts = []string{"Home", "Auto", "Life", "Health", "Travel"}
	PolicyStatuses = []string{"Active", "Expired", "Pending", "Cancelled"}

	ClaimTypes    = []string{"Auto Collision", "Property Damage", "Medical", "Theft", "Natural Disaster"}
	ClaimStatuses = []string{"Submitted", "In Review", "Approved", "Denied", "Paid"}
	ClaimAIFlags  = []string{model.RiskLow, model.RiskMedium, model.RiskHigh}

	UnderwritingProducts        = []string{"Home", "Life", "Health"}
	UnderwritingRisks           = []string{"Low", "Medium", "High", "Very High"}
	UnderwritingRecommendations = []string{"Approve", "Approve with Conditions", "Decline", "Further Review"}
	UnderwritingStatuses        = []string{"New", "In Review", "Approved", "Declined"}

	OpportunityProducts = []string{"Auto", "Home", "Life", "Bundle"}
	OpportunityChannels = []string{"Email", "Direct Mail", "Social Media", "Web", "Partner"}
	OpportunityStages   = []string{"Lead", "Contacted", "Proposal", "Negotiation", "Closed-Won", "Closed-Lost"}

	SaleProducts = []string{"Auto", "Home", "Life", "Health", "Travel"}
	SaleRegions  = []string{"North", "South", "East", "West", "Central"}

	EAppProducts = []string{"Auto", "Home", "Life"}
	EAppStatuses = []string{"Started", "In Progress", "Submitted", "Under Review", "Approved", "Declined"}
)

// Numeric ranges. Money ranges are inclusive and rounded to cents.
var (
	PolicyPremiumRange      = Range{100, 2000}
	ClaimAmountRange        = Range{500, 50000}
	OpportunityPremiumRange = Range{500, 5000}
	OpportunityScoreRange   = Range{0, 1}
	SalePremiumRange        = Range{200, 3000}
	SaleCommissionRange     = Range{20, 300}
	UnderwritingScoreRange  = Range{0, 1}
)

// Lookback windows in days.
const (
	PolicyStartWindowDays    = 365 * 3
	PolicyTermDays           = 365
	ClaimLookbackDays        = 180
	UnderwritingLookbackDays = 60
	SaleLookbackDays         = 365
	EAppLookbackDays         = 30
)

// Range is a closed float interval.
type Range struct {
	Min, Max float64
}

func (rg Range) Contains(v float64) bool {
	return v >= rg.Min && v <= rg.Max
}

// Source serializes access to a random source shared across requests.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a PCG-backed source. Seed 0 seeds from the clock.
func NewSource(seed uint64) *Source {
	return &Source{rng: NewRand(seed)}
}

// NewRand returns a *rand.Rand for the given seed, or a clock-seeded one
// when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// With runs fn holding the source lock.
func (s *Source) With(fn func(r *rand.Rand)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.rng)
}

func choice[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

// sample returns k distinct elements of xs in random order.
func sample[T any](r *rand.Rand, xs []T, k int) []T {
	idx := r.Perm(len(xs))[:k]
	out := make([]T, k)
	for i, j := range idx {
		out[i] = xs[j]
	}
	return out
}

// randInt returns an integer in [lo, hi].
func randInt(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// uniform2 draws from rg and rounds to two decimals.
func uniform2(r *rand.Rand, rg Range) float64 {
	v := rg.Min + r.Float64()*(rg.Max-rg.Min)
	return math.Round(v*100) / 100
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBack returns the UTC day a uniform [0, window] number of days before now.
func daysBack(r *rand.Rand, now time.Time, window int) time.Time {
	return startOfDay(now).AddDate(0, 0, -randInt(r, 0, window))
}
