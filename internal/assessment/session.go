package assessment

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/rotisserie/eris"

	"vantageassess/internal/model"
)

// EventType names a session transition
type EventType string

const (
	EventAnswer EventType = "answer"
	EventNext   EventType = "next"
	EventBack   EventType = "back"
	EventFinish EventType = "finish"
)

// Event is one user action applied to a session
type Event struct {
	Type       EventType       `json:"type"`
	Category   string          `json:"category,omitempty"`
	QuestionID string          `json:"questionId,omitempty"`
	Value      json.RawMessage `json:"value,omitempty"`
}

// NewSession returns an empty session positioned on the first section
func NewSession(id string, now time.Time) model.Session {
	return model.Session{
		ID:        id,
		Responses: model.Responses{},
		Status:    model.SessionInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reduce applies ev to s and returns the next session. s is never modified;
// on error the returned session equals s.
func Reduce(cat *model.Catalog, s model.Session, ev Event, now time.Time) (model.Session, error) {
	if cat.SectionCount() == 0 {
		return s, ErrEmptyCatalog
	}
	if s.Completed() {
		return s, ErrSessionCompleted
	}
	if s.SectionIndex < 0 || s.SectionIndex >= cat.SectionCount() {
		return s, eris.Errorf("section index %d out of range", s.SectionIndex)
	}

	section := cat.Sections[s.SectionIndex]
	last := s.SectionIndex == cat.SectionCount()-1
	next := s

	switch ev.Type {
	case EventAnswer:
		if !inSection(section, ev.Category, ev.QuestionID) {
			if _, ok := cat.Question(ev.Category, ev.QuestionID); !ok {
				return s, eris.Wrapf(ErrUnknownQuestion, "%s.%s", ev.Category, ev.QuestionID)
			}
			return s, eris.Wrapf(ErrNotInSection, "%s.%s", ev.Category, ev.QuestionID)
		}
		responses, err := ApplyAnswer(cat, s.Responses, ev.Category, ev.QuestionID, ev.Value)
		if err != nil {
			return s, err
		}
		if responses.Has(ev.Category, ev.QuestionID) && !isVisible(section, responses, ev.Category, ev.QuestionID) {
			return s, eris.Wrapf(ErrQuestionHidden, "%s.%s", ev.Category, ev.QuestionID)
		}
		next.Responses = responses

	case EventNext:
		if last {
			return s, ErrUseFinish
		}
		if !IsSectionComplete(VisibleQuestions(section, s.Responses), s.Responses) {
			return s, ErrSectionIncomplete
		}
		next.SectionIndex++

	case EventBack:
		if s.SectionIndex == 0 {
			return s, ErrAtFirstSection
		}
		next.SectionIndex--

	case EventFinish:
		if !last {
			return s, ErrNotLastSection
		}
		if !IsSectionComplete(VisibleQuestions(section, s.Responses), s.Responses) {
			return s, ErrSectionIncomplete
		}
		next.Status = model.SessionCompleted
		done := now
		next.CompletedAt = &done

	default:
		return s, eris.Wrapf(ErrUnknownEvent, "%q", ev.Type)
	}

	next.UpdatedAt = now
	return next, nil
}

func inSection(section model.Section, category, id string) bool {
	for _, q := range section.Questions {
		if q.Category == category && q.ID == id {
			return true
		}
	}
	return false
}

// isVisible checks the answered question against the snapshot that includes
// its own answer, so self-referencing rules behave as the client sees them.
func isVisible(section model.Section, r model.Responses, category, id string) bool {
	for _, q := range VisibleQuestions(section, r) {
		if q.Category == category && q.ID == id {
			return true
		}
	}
	return false
}

// View is what a client needs to render the active section
type View struct {
	SectionIndex int                 `json:"sectionIndex"`
	SectionCount int                 `json:"sectionCount"`
	Step         string              `json:"step"`
	Progress     int                 `json:"progress"`
	Section      SectionHeader       `json:"section"`
	Questions    []model.Question    `json:"questions"`
	Missing      []string            `json:"missing,omitempty"`
	CanAdvance   bool                `json:"canAdvance"`
	IsLast       bool                `json:"isLast"`
	Status       model.SessionStatus `json:"status"`
}

// SectionHeader is a section without its question list
type SectionHeader struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewView renders the session's active section. Visibility is computed fresh.
func NewView(cat *model.Catalog, s model.Session) (View, error) {
	count := cat.SectionCount()
	if count == 0 {
		return View{}, ErrEmptyCatalog
	}
	idx := s.SectionIndex
	if idx < 0 || idx >= count {
		return View{}, eris.Errorf("section index %d out of range", idx)
	}

	section := cat.Sections[idx]
	visible := VisibleQuestions(section, s.Responses)
	missing := MissingRequired(visible, s.Responses)

	return View{
		SectionIndex: idx,
		SectionCount: count,
		Step:         fmt.Sprintf("Step %d of %d", idx+1, count),
		Progress:     int(math.Floor(float64(idx+1)/float64(count)*100 + 0.5)),
		Section: SectionHeader{
			ID:          section.ID,
			Title:       section.Title,
			Description: section.Description,
		},
		Questions:  visible,
		Missing:    missing,
		CanAdvance: len(missing) == 0 && !s.Completed(),
		IsLast:     idx == count-1,
		Status:     s.Status,
	}, nil
}
