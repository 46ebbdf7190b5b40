package model

import (
	"encoding/json"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04"
)

// Date is a calendar day serialized as YYYY-MM-DD.
type Date time.Time

func (d Date) Time() time.Time { return time.Time(d) }

func (d Date) String() string { return time.Time(d).Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// Timestamp is a minute-precision time serialized as YYYY-MM-DD HH:MM.
type Timestamp time.Time

func (ts Timestamp) Time() time.Time { return time.Time(ts) }

func (ts Timestamp) String() string { return time.Time(ts).Format(TimestampLayout) }

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return err
	}
	*ts = Timestamp(t)
	return nil
}

// Policy is an issued insurance policy.
type Policy struct {
	PolicyID  string  `json:"policy_id"`
	Product   string  `json:"product"`
	Holder    string  `json:"holder"`
	StartDate Date    `json:"start_date"`
	EndDate   Date    `json:"end_date"`
	Premium   float64 `json:"premium"`
	Status    string  `json:"status"`
	Agent     string  `json:"agent"`
}

// Claim is a filed claim. PolicyID is nominal and is not guaranteed to name
// a generated Policy.
type Claim struct {
	ClaimID   string  `json:"claim_id"`
	PolicyID  string  `json:"policy_id"`
	Type      string  `json:"type"`
	DateFiled Date    `json:"date_filed"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Customer  string  `json:"customer"`
	AIFlag    string  `json:"ai_flag"`
}

type UnderwritingCase struct {
	CaseID           string `json:"case_id"`
	Applicant        string `json:"applicant"`
	Product          string `json:"product"`
	RiskAssessment   string `json:"risk_assessment"`
	AIRecommendation string `json:"ai_recommendation"`
	Status           string `json:"status"`
	Date             Date   `json:"date"`
}

type MarketingOpportunity struct {
	OpportunityID    string  `json:"opportunity_id"`
	Customer         string  `json:"customer"`
	ProductInterest  string  `json:"product_interest"`
	Channel          string  `json:"channel"`
	Stage            string  `json:"stage"`
	PotentialPremium float64 `json:"potential_premium"`
	AIScore          float64 `json:"ai_score"` // 0..1
}

type SaleRecord struct {
	SaleID     string  `json:"sale_id"`
	Date       Date    `json:"date"`
	Product    string  `json:"product"`
	Agent      string  `json:"agent"`
	Region     string  `json:"region"`
	Premium    float64 `json:"premium"`
	Commission float64 `json:"commission"`
}

type EApplication struct {
	ApplicationID    string    `json:"application_id"`
	Customer         string    `json:"customer"`
	Product          string    `json:"product"`
	StartTime        Timestamp `json:"start_time"`
	LastActivity     Timestamp `json:"last_activity"`
	Status           string    `json:"status"`
	AIAssistanceUsed bool      `json:"ai_assistance_used"`
	CompletionPct    int       `json:"completion_pct"` // 10..100
}

// Dataset is one session's worth of generated records. Collections are
// generated independently of each other.
type Dataset struct {
	GeneratedAt   time.Time              `json:"generated_at"`
	Policies      []Policy               `json:"policies"`
	Claims        []Claim                `json:"claims"`
	Underwriting  []UnderwritingCase     `json:"underwriting"`
	Opportunities []MarketingOpportunity `json:"opportunities"`
	Sales         []SaleRecord           `json:"sales"`
	EApplications []EApplication         `json:"eapplications"`
}

// Claim AI risk flags
const (
	RiskLow    = "Low Risk"
	RiskMedium = "Medium Risk"
	RiskHigh   = "High Risk"
)
