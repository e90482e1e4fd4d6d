package model

import "time"

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// Session is one walk through the catalog. It is replaced, never edited,
// by each event.
type Session struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	SectionIndex int           `json:"sectionIndex" bson:"sectionIndex"`
	Responses    Responses     `json:"responses" bson:"responses"`
	Status       SessionStatus `json:"status" bson:"status"`
	ReportID     string        `json:"reportId,omitempty" bson:"reportId,omitempty"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updatedAt"`
	CompletedAt  *time.Time    `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// Completed reports whether the session has been finished
func (s *Session) Completed() bool {
	return s.Status == SessionCompleted
}
