package model

// AnswerType defines the shape of value a question accepts
type AnswerType string

const (
	AnswerChoice      AnswerType = "choice"       // One option value
	AnswerMultiChoice AnswerType = "multi-choice" // Set of option values
	AnswerNumber      AnswerType = "number"       // Integer
	AnswerText        AnswerType = "text"         // Free text
	AnswerRating      AnswerType = "rating"       // Integer 1-10
)

// Valid reports whether t is a known answer type
func (t AnswerType) Valid() bool {
	switch t {
	case AnswerChoice, AnswerMultiChoice, AnswerNumber, AnswerText, AnswerRating:
		return true
	}
	return false
}

// Option is one selectable value of a choice question.
// Weight is carried through as catalog data; scoring does not read it.
type Option struct {
	Label  string `json:"label" yaml:"label" bson:"label"`
	Value  string `json:"value" yaml:"value" bson:"value"`
	Weight *int   `json:"weight,omitempty" yaml:"weight,omitempty" bson:"weight,omitempty"`
}

// Question is a single catalog entry
type Question struct {
	ID        string     `json:"id" yaml:"id" bson:"id"`
	Label     string     `json:"label" yaml:"label" bson:"label"`
	Type      AnswerType `json:"type" yaml:"type" bson:"type"`
	Options   []Option   `json:"options,omitempty" yaml:"options,omitempty" bson:"options,omitempty"`
	Hint      string     `json:"hint,omitempty" yaml:"hint,omitempty" bson:"hint,omitempty"`
	Category  string     `json:"category" yaml:"category" bson:"category"`
	ScaleMin  *int       `json:"scaleMin,omitempty" yaml:"scaleMin,omitempty" bson:"scaleMin,omitempty"` // rating only
	ScaleMax  *int       `json:"scaleMax,omitempty" yaml:"scaleMax,omitempty" bson:"scaleMax,omitempty"` // rating only
	Required  bool       `json:"required" yaml:"required" bson:"required"`
	VisibleIf *Condition `json:"visibleIf,omitempty" yaml:"visibleIf,omitempty" bson:"visibleIf,omitempty"`
}

// HasOption reports whether value is one of the question's option values
func (q *Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Section is an ordered group of questions shown together
type Section struct {
	ID          string     `json:"id" yaml:"id" bson:"id"`
	Title       string     `json:"title" yaml:"title" bson:"title"`
	Description string     `json:"description" yaml:"description" bson:"description"`
	Questions   []Question `json:"questions" yaml:"questions" bson:"questions"`
}

// Catalog is the ordered list of sections a session walks through
type Catalog struct {
	Sections []Section `json:"sections" yaml:"sections" bson:"sections"`
}

// Question looks up a question by category and id
func (c *Catalog) Question(category, id string) (*Question, bool) {
	for si := range c.Sections {
		qs := c.Sections[si].Questions
		for qi := range qs {
			if qs[qi].Category == category && qs[qi].ID == id {
				return &qs[qi], true
			}
		}
	}
	return nil, false
}

// SectionCount returns the number of sections
func (c *Catalog) SectionCount() int {
	return len(c.Sections)
}
