package assessment

import (
	"encoding/json"
	"errors"

	"github.com/rotisserie/eris"

	"vantageassess/internal/model"
)

const (
	RatingMin = 1
	RatingMax = 10
)

// RatingBounds returns the inclusive scale of a rating question
func RatingBounds(q *model.Question) (int, int) {
	lo, hi := RatingMin, RatingMax
	if q.ScaleMin != nil {
		lo = *q.ScaleMin
	}
	if q.ScaleMax != nil {
		hi = *q.ScaleMax
	}
	return lo, hi
}

// CoerceAnswer converts a raw JSON value into the answer shape the question
// declares. JSON null yields the zero Answer, which clears the entry.
func CoerceAnswer(q *model.Question, raw json.RawMessage) (model.Answer, error) {
	a, err := model.ParseAnswerJSON(raw)
	if errors.Is(err, model.ErrNumberRange) {
		return model.Answer{}, eris.Wrapf(ErrOutOfRange, "%s.%s must be within ±%d", q.Category, q.ID, model.MaxAnswerInt)
	}
	if err != nil {
		return model.Answer{}, eris.Wrapf(ErrTypeMismatch, "%s.%s: %v", q.Category, q.ID, err)
	}
	if a.IsZero() {
		return a, nil
	}
	return CheckAnswer(q, a)
}

// CheckAnswer validates an already typed answer against its question
func CheckAnswer(q *model.Question, a model.Answer) (model.Answer, error) {
	field := q.Category + "." + q.ID

	switch q.Type {
	case model.AnswerNumber:
		n, ok := a.Int()
		if !ok {
			return model.Answer{}, eris.Wrapf(ErrTypeMismatch, "%s expects an integer", field)
		}
		if n < 0 {
			return model.Answer{}, eris.Wrapf(ErrOutOfRange, "%s must not be negative, got %d", field, n)
		}
	case model.AnswerRating:
		n, ok := a.Int()
		if !ok {
			return model.Answer{}, eris.Wrapf(ErrTypeMismatch, "%s expects an integer rating", field)
		}
		lo, hi := RatingBounds(q)
		if n < lo || n > hi {
			return model.Answer{}, eris.Wrapf(ErrOutOfRange, "%s must be between %d and %d, got %d", field, lo, hi, n)
		}
	case model.AnswerText:
		if _, ok := a.Text(); !ok {
			return model.Answer{}, eris.Wrapf(ErrTypeMismatch, "%s expects text", field)
		}
	case model.AnswerChoice:
		s, ok := a.Text()
		if !ok {
			return model.Answer{}, eris.Wrapf(ErrTypeMismatch, "%s expects one option value", field)
		}
		if len(q.Options) > 0 && !q.HasOption(s) {
			return model.Answer{}, eris.Wrapf(ErrUnknownOption, "%s has no option %q", field, s)
		}
	case model.AnswerMultiChoice:
		values, ok := a.Values()
		if !ok {
			return model.Answer{}, eris.Wrapf(ErrTypeMismatch, "%s expects a list of option values", field)
		}
		for _, v := range values {
			if len(q.Options) > 0 && !q.HasOption(v) {
				return model.Answer{}, eris.Wrapf(ErrUnknownOption, "%s has no option %q", field, v)
			}
		}
	default:
		return model.Answer{}, eris.Wrapf(ErrTypeMismatch, "%s has unsupported type %q", field, q.Type)
	}
	return a, nil
}

// ApplyAnswer is the single write path for responses. It looks the question
// up in the catalog, coerces the value and returns a new snapshot.
func ApplyAnswer(cat *model.Catalog, r model.Responses, category, id string, raw json.RawMessage) (model.Responses, error) {
	q, ok := cat.Question(category, id)
	if !ok {
		return r, eris.Wrapf(ErrUnknownQuestion, "%s.%s", category, id)
	}
	a, err := CoerceAnswer(q, raw)
	if err != nil {
		return r, err
	}
	return r.With(category, id, a), nil
}

// CheckResponses validates every answer in r against the catalog. Answers to
// questions the catalog does not know are reported too.
func CheckResponses(cat *model.Catalog, r model.Responses) []error {
	var errs []error
	for category, answers := range r {
		for id, a := range answers {
			if a.IsZero() {
				continue
			}
			q, ok := cat.Question(category, id)
			if !ok {
				errs = append(errs, eris.Wrapf(ErrUnknownQuestion, "%s.%s", category, id))
				continue
			}
			if _, err := CheckAnswer(q, a); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}
