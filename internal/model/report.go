package model

import "time"

// Trend is the direction marker shown next to a score
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Summary is the dashboard reading of a bundle
type Summary struct {
	Verdict       string           `json:"verdict" bson:"verdict"`
	QuickWins     []Opportunity    `json:"quickWins" bson:"quickWins"`
	Trends        map[string]Trend `json:"trends" bson:"trends"`
	CategoryCount int              `json:"categoryCount" bson:"categoryCount"`
}

// Report is an archived, finished assessment
type Report struct {
	ID        string    `json:"id" bson:"_id"`
	SessionID string    `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	Bundle    Bundle    `json:"bundle" bson:"bundle"`
	Summary   Summary   `json:"summary" bson:"summary"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
