package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"vantageassess/internal/assessment"
	"vantageassess/internal/cache"
	"vantageassess/internal/model"
	"vantageassess/internal/repository"
)

// SessionState is a session together with what the client should render
type SessionState struct {
	Session *model.Session  `json:"session"`
	View    assessment.View `json:"view"`
}

// SessionService drives questionnaire sessions through the reducer
type SessionService struct {
	catalog     *model.Catalog
	engine      *assessment.Engine
	sessions    cache.SessionCache
	reports     repository.ReportRepo
	broadcaster Broadcaster
	now         func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(
	catalog *model.Catalog,
	engine *assessment.Engine,
	sessions cache.SessionCache,
	reports repository.ReportRepo,
) *SessionService {
	return &SessionService{
		catalog:  catalog,
		engine:   engine,
		sessions: sessions,
		reports:  reports,
		now:      time.Now,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Catalog returns the questionnaire sessions are walked against
func (s *SessionService) Catalog() *model.Catalog {
	return s.catalog
}

// Start opens a new session on the first section
func (s *SessionService) Start(ctx context.Context) (*SessionState, error) {
	session := assessment.NewSession(uuid.NewString(), s.now().UTC())
	if err := s.sessions.Set(ctx, &session); err != nil {
		return nil, eris.Wrap(err, "failed to store session")
	}
	return s.state(&session)
}

// Get returns the current state of a session
func (s *SessionService) Get(ctx context.Context, id string) (*SessionState, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load session %s", id)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return s.state(session)
}

// Answer records a single answer in the current section. A null value
// clears the answer.
func (s *SessionService) Answer(ctx context.Context, id, category, questionID string, value json.RawMessage) (*SessionState, error) {
	return s.apply(ctx, id, assessment.Event{
		Type:       assessment.EventAnswer,
		Category:   category,
		QuestionID: questionID,
		Value:      value,
	})
}

// Next advances to the following section
func (s *SessionService) Next(ctx context.Context, id string) (*SessionState, error) {
	return s.apply(ctx, id, assessment.Event{Type: assessment.EventNext})
}

// Back returns to the previous section, keeping all answers
func (s *SessionService) Back(ctx context.Context, id string) (*SessionState, error) {
	return s.apply(ctx, id, assessment.Event{Type: assessment.EventBack})
}

func (s *SessionService) apply(ctx context.Context, id string, ev assessment.Event) (*SessionState, error) {
	updated, err := s.sessions.Update(ctx, id, func(current *model.Session) (*model.Session, error) {
		if current == nil {
			return nil, ErrSessionNotFound
		}
		next, err := assessment.Reduce(s.catalog, *current, ev, s.now().UTC())
		if err != nil {
			return nil, err
		}
		return &next, nil
	})
	if err != nil {
		return nil, eris.Wrapf(err, "%s on session %s", ev.Type, id)
	}

	state, err := s.state(updated)
	if err != nil {
		return nil, err
	}
	s.broadcast(id, MsgSessionUpdated, state)
	return state, nil
}

// Finish completes the session and archives its report. Finishing an
// already completed session returns the archived report.
func (s *SessionService) Finish(ctx context.Context, id string) (*model.Report, error) {
	reportID := uuid.NewString()
	var finished bool

	updated, err := s.sessions.Update(ctx, id, func(current *model.Session) (*model.Session, error) {
		finished = false
		if current == nil {
			return nil, ErrSessionNotFound
		}
		if current.Completed() && current.ReportID != "" {
			finished = true
			return current, nil
		}
		next, err := assessment.Reduce(s.catalog, *current, assessment.Event{Type: assessment.EventFinish}, s.now().UTC())
		if err != nil {
			return nil, err
		}
		next.ReportID = reportID
		return &next, nil
	})
	if err != nil {
		return nil, eris.Wrapf(err, "finish session %s", id)
	}

	if finished {
		report, err := s.archived(ctx, updated)
		if err != nil {
			return nil, err
		}
		if report != nil {
			return report, nil
		}
		// archive write failed on the first attempt; rebuild it
	}

	report := s.buildReport(updated)
	if err := s.reports.Save(ctx, report); err != nil {
		return nil, eris.Wrapf(err, "failed to archive report %s", report.ID)
	}

	s.broadcast(id, MsgAssessmentCompleted, map[string]interface{}{
		"reportId": report.ID,
		"scores":   report.Bundle.Scores,
	})
	return report, nil
}

// Report returns the archived report of a finished session
func (s *SessionService) Report(ctx context.Context, id string) (*model.Report, error) {
	report, err := s.reports.GetBySession(ctx, id)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load report for session %s", id)
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// Abandon discards a session. An archived report is kept.
func (s *SessionService) Abandon(ctx context.Context, id string) error {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return eris.Wrapf(err, "failed to load session %s", id)
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return eris.Wrapf(err, "failed to delete session %s", id)
	}
	s.broadcast(id, MsgSessionAbandoned, map[string]interface{}{"sessionId": id})
	return nil
}

// archived looks a completed session's report up by id, then by session
func (s *SessionService) archived(ctx context.Context, session *model.Session) (*model.Report, error) {
	report, err := s.reports.GetByID(ctx, session.ReportID)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load report %s", session.ReportID)
	}
	if report != nil {
		return report, nil
	}
	report, err = s.reports.GetBySession(ctx, session.ID)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load report for session %s", session.ID)
	}
	return report, nil
}

func (s *SessionService) buildReport(session *model.Session) *model.Report {
	completedAt := session.UpdatedAt
	if session.CompletedAt != nil {
		completedAt = *session.CompletedAt
	}
	bundle := s.engine.NewBundle(session.Responses, completedAt)
	return &model.Report{
		ID:        session.ReportID,
		SessionID: session.ID,
		Bundle:    bundle,
		Summary:   assessment.Summarize(bundle),
		CreatedAt: s.now().UTC(),
	}
}

func (s *SessionService) state(session *model.Session) (*SessionState, error) {
	view, err := assessment.NewView(s.catalog, *session)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to render session %s", session.ID)
	}
	return &SessionState{Session: session, View: view}, nil
}

func (s *SessionService) broadcast(sessionID, msgType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, msgType, payload)
	}
}
