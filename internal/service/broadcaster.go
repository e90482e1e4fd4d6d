package service

// Broadcaster pushes session events to live listeners (avoids import cycle)
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
}

// Event names sent to websocket listeners
const (
	MsgSessionUpdated      = "session_updated"
	MsgAssessmentCompleted = "assessment_completed"
	MsgSessionAbandoned    = "session_abandoned"
)
