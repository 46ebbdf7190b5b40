package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mkumar84/Insurance-Dashboard/model"
)

// DatasetStore holds the session dataset in memory, indexed by record id.
// The dataset is only ever replaced whole; records are never edited.
type DatasetStore struct {
	mu         sync.RWMutex
	dataset    *model.Dataset
	generation int

	claims        map[string]int
	cases         map[string]int
	opportunities map[string]int
	eapps         map[string]int
}

func NewDatasetStore(ds *model.Dataset) *DatasetStore {
	s := &DatasetStore{}
	s.Replace(ds)
	return s
}

// Replace swaps in ds and rebuilds the id indexes.
func (s *DatasetStore) Replace(ds *model.Dataset) {
	if ds == nil {
		ds = &model.Dataset{}
	}

	claims := make(map[string]int, len(ds.Claims))
	for i, c := range ds.Claims {
		claims[c.ClaimID] = i
	}
	cases := make(map[string]int, len(ds.Underwriting))
	for i, c := range ds.Underwriting {
		cases[c.CaseID] = i
	}
	opps := make(map[string]int, len(ds.Opportunities))
	for i, o := range ds.Opportunities {
		opps[o.OpportunityID] = i
	}
	eapps := make(map[string]int, len(ds.EApplications))
	for i, a := range ds.EApplications {
		eapps[a.ApplicationID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dataset = ds
	s.claims = claims
	s.cases = cases
	s.opportunities = opps
	s.eapps = eapps
	s.generation++

	slog.Info("session dataset loaded",
		"generation", s.generation,
		"policies", len(ds.Policies),
		"claims", len(ds.Claims),
		"underwriting", len(ds.Underwriting),
		"opportunities", len(ds.Opportunities),
		"sales", len(ds.Sales),
		"eapplications", len(ds.EApplications),
	)
}

// Snapshot returns the current dataset. Callers must not modify it.
func (s *DatasetStore) Snapshot() *model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// Generation counts how many datasets this store has held.
func (s *DatasetStore) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *DatasetStore) Claim(id string) (model.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.claims[id]
	if !ok {
		return model.Claim{}, fmt.Errorf("claim %q: %w", id, ErrNotFound)
	}
	return s.dataset.Claims[i], nil
}

func (s *DatasetStore) UnderwritingCase(id string) (model.UnderwritingCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.cases[id]
	if !ok {
		return model.UnderwritingCase{}, fmt.Errorf("underwriting case %q: %w", id, ErrNotFound)
	}
	return s.dataset.Underwriting[i], nil
}

func (s *DatasetStore) Opportunity(id string) (model.MarketingOpportunity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.opportunities[id]
	if !ok {
		return model.MarketingOpportunity{}, fmt.Errorf("opportunity %q: %w", id, ErrNotFound)
	}
	return s.dataset.Opportunities[i], nil
}

func (s *DatasetStore) EApplication(id string) (model.EApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.eapps[id]
	if !ok {
		return model.EApplication{}, fmt.Errorf("e-application %q: %w", id, ErrNotFound)
	}
	return s.dataset.EApplications[i], nil
}
