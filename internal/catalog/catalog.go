// Package catalog loads and checks the question catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"vantageassess/internal/model"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in catalog
func Default() (*model.Catalog, error) {
	return Parse(defaultYAML)
}

// Load reads a catalog from a YAML file. An empty path yields the built-in one.
func Load(path string) (*model.Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read catalog %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*model.Catalog, error) {
	var cat model.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, eris.Wrap(err, "parse catalog")
	}
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks the catalog shape. It does not require any particular
// section or question ids.
func Validate(cat *model.Catalog) error {
	var errs []string

	if len(cat.Sections) == 0 {
		errs = append(errs, "catalog has no sections")
	}

	sectionIDs := make(map[string]bool)
	questionKeys := make(map[string]*model.Question)
	for si := range cat.Sections {
		sec := &cat.Sections[si]
		if sec.ID == "" {
			errs = append(errs, fmt.Sprintf("section %d has no id", si))
		} else if sectionIDs[sec.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section id %q", sec.ID))
		}
		sectionIDs[sec.ID] = true

		for qi := range sec.Questions {
			q := &sec.Questions[qi]
			where := fmt.Sprintf("section %q question %d", sec.ID, qi)
			if q.ID == "" || q.Category == "" {
				errs = append(errs, where+": id and category are required")
				continue
			}
			key := q.Category + "." + q.ID
			if _, dup := questionKeys[key]; dup {
				errs = append(errs, fmt.Sprintf("duplicate question %s", key))
			}
			questionKeys[key] = q
			errs = append(errs, checkQuestion(key, q)...)
		}
	}

	// Rules are checked last so they may reference questions in later sections.
	for _, q := range questionKeys {
		if q.VisibleIf != nil {
			errs = append(errs, checkCondition(q.Category+"."+q.ID, *q.VisibleIf, questionKeys)...)
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("catalog: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func checkQuestion(key string, q *model.Question) []string {
	var errs []string
	if !q.Type.Valid() {
		errs = append(errs, fmt.Sprintf("%s: unknown type %q", key, q.Type))
	}
	if q.Type == model.AnswerChoice || q.Type == model.AnswerMultiChoice {
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("%s: %s question needs options", key, q.Type))
		}
		seen := make(map[string]bool)
		for _, o := range q.Options {
			if seen[o.Value] {
				errs = append(errs, fmt.Sprintf("%s: duplicate option %q", key, o.Value))
			}
			seen[o.Value] = true
		}
	}
	if (q.ScaleMin != nil || q.ScaleMax != nil) && q.Type != model.AnswerRating {
		errs = append(errs, fmt.Sprintf("%s: scale bounds only apply to rating questions", key))
	}
	if q.ScaleMin != nil && q.ScaleMax != nil && *q.ScaleMin > *q.ScaleMax {
		errs = append(errs, fmt.Sprintf("%s: scaleMin exceeds scaleMax", key))
	}
	return errs
}

func checkCondition(key string, c model.Condition, known map[string]*model.Question) []string {
	var errs []string
	if c.Field == "" && !c.IsComposite() {
		return []string{key + ": visibility rule has neither field nor all/any"}
	}
	if c.Field != "" {
		target, ok := known[c.Field]
		if !ok {
			errs = append(errs, fmt.Sprintf("%s: visibility rule references unknown question %s", key, c.Field))
		} else if c.Field == key {
			errs = append(errs, fmt.Sprintf("%s: visibility rule references itself", key))
		}
		switch c.Op {
		case model.OpAnswered, model.OpUnanswered:
		case model.OpEq, model.OpNe, model.OpContains:
			if c.Value == nil {
				errs = append(errs, fmt.Sprintf("%s: %s needs a value", key, c.Op))
			}
		case model.OpGt, model.OpGte, model.OpLt, model.OpLte:
			if ok && target.Type != model.AnswerNumber && target.Type != model.AnswerRating {
				errs = append(errs, fmt.Sprintf("%s: %s compares non-numeric question %s", key, c.Op, c.Field))
			}
			if c.Value == nil {
				errs = append(errs, fmt.Sprintf("%s: %s needs a value", key, c.Op))
			}
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown operator %q", key, c.Op))
		}
	}
	for _, sub := range c.All {
		errs = append(errs, checkCondition(key, sub, known)...)
	}
	for _, sub := range c.Any {
		errs = append(errs, checkCondition(key, sub, known)...)
	}
	return errs
}

// Lint reports soft problems: fields the scoring engine reads that the
// catalog never asks for.
func Lint(cat *model.Catalog) []string {
	var warnings []string
	for _, field := range ScoredFields {
		category, id, _ := strings.Cut(field, ".")
		if _, ok := cat.Question(category, id); !ok {
			warnings = append(warnings, fmt.Sprintf("scored field %s is not asked; it will read as 0/empty", field))
		}
	}
	return warnings
}

// ScoredFields are the response fields read by scoring, opportunity and
// visibility logic of the built-in catalog
var ScoredFields = []string{
	"technology.cloudUsage",
	"technology.itSupport",
	"readiness.changeBudget",
	"readiness.leadershipAlignment",
	"aiAutomation.dataQuality",
	"aiAutomation.currentAutomation",
	"compliance.regulatoryBurden",
	"companyProfile.employeeCount",
}
