package assessment

import (
	"strconv"
	"strings"

	"vantageassess/internal/model"
)

// VisibleQuestions returns the section's questions whose visibility rule
// holds for r, in catalog order. It is recomputed on every call.
func VisibleQuestions(section model.Section, r model.Responses) []model.Question {
	visible := make([]model.Question, 0, len(section.Questions))
	for _, q := range section.Questions {
		if q.VisibleIf == nil || Holds(*q.VisibleIf, r) {
			visible = append(visible, q)
		}
	}
	return visible
}

// IsSectionComplete reports whether every visible required question has an
// answer. Zero and an empty set count as answered; an empty string does not.
func IsSectionComplete(visible []model.Question, r model.Responses) bool {
	for _, q := range visible {
		if q.Required && !isAnswered(r, q.Category, q.ID) {
			return false
		}
	}
	return true
}

// MissingRequired lists the ids of visible required questions without an answer
func MissingRequired(visible []model.Question, r model.Responses) []string {
	var missing []string
	for _, q := range visible {
		if q.Required && !isAnswered(r, q.Category, q.ID) {
			missing = append(missing, q.Category+"."+q.ID)
		}
	}
	return missing
}

func isAnswered(r model.Responses, category, id string) bool {
	a, ok := r.Get(category, id)
	if !ok {
		return false
	}
	if s, isText := a.Text(); isText && s == "" {
		return false
	}
	return true
}

// Holds evaluates a visibility rule against r. Malformed rules evaluate to
// false rather than failing.
func Holds(c model.Condition, r model.Responses) bool {
	if c.Field == "" && !c.IsComposite() {
		return false
	}
	if c.Field != "" && !holdsLeaf(c, r) {
		return false
	}
	for _, sub := range c.All {
		if !Holds(sub, r) {
			return false
		}
	}
	if len(c.Any) > 0 {
		for _, sub := range c.Any {
			if Holds(sub, r) {
				return true
			}
		}
		return false
	}
	return true
}

func holdsLeaf(c model.Condition, r model.Responses) bool {
	category, id, ok := strings.Cut(c.Field, ".")
	if !ok || category == "" || id == "" {
		return false
	}
	answer, present := r.Get(category, id)

	switch c.Op {
	case model.OpAnswered:
		return isAnswered(r, category, id)
	case model.OpUnanswered:
		return !isAnswered(r, category, id)
	case model.OpContains:
		want, ok := literalString(c.Value)
		if !ok {
			return false
		}
		if s, isText := answer.Text(); isText {
			return s == want
		}
		return answer.Contains(want)
	case model.OpEq, model.OpNe:
		eq := literalEquals(answer, present, c.Value)
		if c.Op == model.OpEq {
			return eq
		}
		return !eq
	case model.OpGt, model.OpGte, model.OpLt, model.OpLte:
		want, ok := literalNumber(c.Value)
		if !ok {
			return false
		}
		// Absent numbers read as 0.
		got := 0.0
		if present {
			n, isInt := answer.Int()
			if !isInt {
				return false
			}
			got = float64(n)
		}
		switch c.Op {
		case model.OpGt:
			return got > want
		case model.OpGte:
			return got >= want
		case model.OpLt:
			return got < want
		default:
			return got <= want
		}
	}
	return false
}

func literalEquals(answer model.Answer, present bool, value any) bool {
	if want, ok := literalNumber(value); ok {
		if !present {
			return want == 0
		}
		n, isInt := answer.Int()
		return isInt && float64(n) == want
	}
	if want, ok := literalString(value); ok {
		if !present {
			return want == ""
		}
		s, isText := answer.Text()
		return isText && s == want
	}
	return false
}

// literalNumber accepts the numeric shapes produced by YAML and JSON decoders
func literalNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string:
		return 0, false
	}
	if s, ok := v.(interface{ String() string }); ok {
		if f, err := strconv.ParseFloat(s.String(), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func literalString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
