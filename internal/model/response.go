package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/rotisserie/eris"
)

// AnswerKind is the stored shape of an Answer
type AnswerKind uint8

const (
	KindNone AnswerKind = iota
	KindInt
	KindString
	KindSet
)

// Answer holds exactly one typed value. The zero Answer means unanswered.
type Answer struct {
	kind AnswerKind
	num  int
	str  string
	set  []string
}

// IntAnswer wraps an integer (number and rating questions)
func IntAnswer(n int) Answer {
	return Answer{kind: KindInt, num: n}
}

// StringAnswer wraps a string (choice and text questions)
func StringAnswer(s string) Answer {
	return Answer{kind: KindString, str: s}
}

// SetAnswer wraps a set of option values. Duplicates are dropped, first
// occurrence wins. An empty set is still an answer.
func SetAnswer(values ...string) Answer {
	seen := make(map[string]struct{}, len(values))
	set := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		set = append(set, v)
	}
	return Answer{kind: KindSet, set: set}
}

func (a Answer) Kind() AnswerKind { return a.kind }

// IsZero reports whether the answer is absent
func (a Answer) IsZero() bool { return a.kind == KindNone }

func (a Answer) Int() (int, bool) {
	return a.num, a.kind == KindInt
}

func (a Answer) Text() (string, bool) {
	return a.str, a.kind == KindString
}

// Values returns a copy of the set
func (a Answer) Values() ([]string, bool) {
	if a.kind != KindSet {
		return nil, false
	}
	out := make([]string, len(a.set))
	copy(out, a.set)
	return out, true
}

// Contains reports whether a set answer includes v
func (a Answer) Contains(v string) bool {
	for _, s := range a.set {
		if s == v {
			return true
		}
	}
	return false
}

// Equal compares two answers. Sets compare without regard to order.
func (a Answer) Equal(b Answer) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInt:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindSet:
		if len(a.set) != len(b.set) {
			return false
		}
		for _, v := range a.set {
			if !b.Contains(v) {
				return false
			}
		}
	}
	return true
}

// Interface returns the answer as a plain Go value (int, string, []string or nil)
func (a Answer) Interface() any {
	switch a.kind {
	case KindInt:
		return a.num
	case KindString:
		return a.str
	case KindSet:
		out, _ := a.Values()
		return out
	}
	return nil
}

func (a Answer) String() string {
	return fmt.Sprint(a.Interface())
}

func (a Answer) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Interface())
}

// UnmarshalJSON accepts an integer, a string, an array of strings or null.
func (a *Answer) UnmarshalJSON(data []byte) error {
	parsed, err := ParseAnswerJSON(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAnswerJSON decodes a raw JSON value into an Answer without regard to
// any question type.
func ParseAnswerJSON(data []byte) (Answer, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Answer{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Answer{}, err
	}

	switch val := v.(type) {
	case json.Number:
		n, err := integerFromNumber(val)
		if err != nil {
			return Answer{}, err
		}
		return IntAnswer(n), nil
	case string:
		return StringAnswer(val), nil
	case []any:
		values := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return Answer{}, eris.Errorf("set items must be strings, got %T", item)
			}
			values = append(values, s)
		}
		return SetAnswer(values...), nil
	default:
		return Answer{}, eris.Errorf("unsupported answer value %T", v)
	}
}

// MaxAnswerInt bounds integer answers so scoring arithmetic cannot overflow
const MaxAnswerInt = math.MaxInt32

// ErrNumberRange is returned for integer answers outside ±MaxAnswerInt
var ErrNumberRange = eris.New("number out of range")

func integerFromNumber(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return checkAnswerInt(i, n.String())
	}
	f, err := n.Float64()
	if err != nil && !math.IsInf(f, 0) {
		return 0, err
	}
	return integerFromFloat(f, n.String())
}

func integerFromFloat(f float64, text string) (int, error) {
	if math.IsInf(f, 0) || math.Abs(f) > MaxAnswerInt {
		return 0, eris.Wrapf(ErrNumberRange, "answer %s", text)
	}
	if f != math.Trunc(f) {
		return 0, eris.Errorf("number %s is not an integer", text)
	}
	return int(f), nil
}

func checkAnswerInt(i int64, text string) (int, error) {
	if i > MaxAnswerInt || i < -MaxAnswerInt {
		return 0, eris.Wrapf(ErrNumberRange, "answer %s", text)
	}
	return int(i), nil
}

// Responses maps category -> question id -> answer.
// Values are treated as immutable snapshots; With and Without return copies.
type Responses map[string]map[string]Answer

// Get returns the answer at category.id, if any
func (r Responses) Get(category, id string) (Answer, bool) {
	a, ok := r[category][id]
	if !ok || a.IsZero() {
		return Answer{}, false
	}
	return a, true
}

// Has reports whether category.id holds any value
func (r Responses) Has(category, id string) bool {
	_, ok := r.Get(category, id)
	return ok
}

// Int returns the integer at category.id, or 0
func (r Responses) Int(category, id string) int {
	n, _ := r[category][id].Int()
	return n
}

// Text returns the string at category.id, or ""
func (r Responses) Text(category, id string) string {
	s, _ := r[category][id].Text()
	return s
}

// Contains reports whether the set at category.id includes v
func (r Responses) Contains(category, id, v string) bool {
	return r[category][id].Contains(v)
}

// With returns a copy of r with category.id set to a.
// Setting the zero Answer removes the entry.
func (r Responses) With(category, id string, a Answer) Responses {
	if a.IsZero() {
		return r.Without(category, id)
	}
	out := r.shallowCopy()
	inner := make(map[string]Answer, len(r[category])+1)
	for k, v := range r[category] {
		inner[k] = v
	}
	inner[id] = a
	out[category] = inner
	return out
}

// Without returns a copy of r with category.id removed
func (r Responses) Without(category, id string) Responses {
	out := r.shallowCopy()
	if _, ok := r[category][id]; !ok {
		return out
	}
	inner := make(map[string]Answer, len(r[category]))
	for k, v := range r[category] {
		if k != id {
			inner[k] = v
		}
	}
	out[category] = inner
	return out
}

// Clone returns a deep copy
func (r Responses) Clone() Responses {
	out := make(Responses, len(r))
	for cat, answers := range r {
		inner := make(map[string]Answer, len(answers))
		for k, v := range answers {
			inner[k] = v
		}
		out[cat] = inner
	}
	return out
}

// Count returns the number of answered questions
func (r Responses) Count() int {
	n := 0
	for _, answers := range r {
		for _, a := range answers {
			if !a.IsZero() {
				n++
			}
		}
	}
	return n
}

// Equal compares two response sets answer by answer
func (r Responses) Equal(o Responses) bool {
	if r.Count() != o.Count() {
		return false
	}
	for cat, answers := range r {
		for id, a := range answers {
			if a.IsZero() {
				continue
			}
			b, ok := o.Get(cat, id)
			if !ok || !a.Equal(b) {
				return false
			}
		}
	}
	return true
}

// UnmarshalJSON drops null entries so they read as unanswered.
func (r *Responses) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]Answer
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Responses, len(raw))
	for cat, answers := range raw {
		inner := make(map[string]Answer, len(answers))
		for id, a := range answers {
			if !a.IsZero() {
				inner[id] = a
			}
		}
		out[cat] = inner
	}
	*r = out
	return nil
}

func (r Responses) shallowCopy() Responses {
	out := make(Responses, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}
