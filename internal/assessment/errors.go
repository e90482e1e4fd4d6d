package assessment

import "github.com/rotisserie/eris"

var (
	ErrUnknownQuestion   = eris.New("unknown question")
	ErrNotInSection      = eris.New("question is not in the current section")
	ErrQuestionHidden    = eris.New("question is not visible")
	ErrTypeMismatch      = eris.New("value does not match question type")
	ErrOutOfRange        = eris.New("value out of range")
	ErrUnknownOption     = eris.New("value is not one of the question options")
	ErrSectionIncomplete = eris.New("required questions in this section are unanswered")
	ErrAtFirstSection    = eris.New("already at the first section")
	ErrUseFinish         = eris.New("last section must be finished, not advanced")
	ErrNotLastSection    = eris.New("finish is only allowed on the last section")
	ErrSessionCompleted  = eris.New("session is already completed")
	ErrUnknownEvent      = eris.New("unknown session event")
	ErrEmptyCatalog      = eris.New("catalog has no sections")
)
