package model

// ConditionOp is a comparator used by visibility rules
type ConditionOp string

const (
	OpEq         ConditionOp = "eq"
	OpNe         ConditionOp = "ne"
	OpGt         ConditionOp = "gt"
	OpGte        ConditionOp = "gte"
	OpLt         ConditionOp = "lt"
	OpLte        ConditionOp = "lte"
	OpContains   ConditionOp = "contains"   // multi-choice includes value
	OpAnswered   ConditionOp = "answered"   // no value needed
	OpUnanswered ConditionOp = "unanswered" // no value needed
)

// Condition is a serializable visibility rule.
//
// A leaf compares the answer at Field ("category.questionId") against Value.
// A composite sets All or Any instead of Field.
type Condition struct {
	Field string      `json:"field,omitempty" yaml:"field,omitempty" bson:"field,omitempty"`
	Op    ConditionOp `json:"op,omitempty" yaml:"op,omitempty" bson:"op,omitempty"`
	Value any         `json:"value,omitempty" yaml:"value,omitempty" bson:"value,omitempty"`
	All   []Condition `json:"all,omitempty" yaml:"all,omitempty" bson:"all,omitempty"`
	Any   []Condition `json:"any,omitempty" yaml:"any,omitempty" bson:"any,omitempty"`
}

// IsComposite reports whether the condition combines other conditions
func (c *Condition) IsComposite() bool {
	return len(c.All) > 0 || len(c.Any) > 0
}
