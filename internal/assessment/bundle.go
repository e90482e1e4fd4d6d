package assessment

import (
	"encoding/json"
	"fmt"
	"time"

	"vantageassess/internal/model"
)

// Result is the derived part of a bundle
type Result struct {
	Scores        model.Scores         `json:"scores"`
	Opportunities []model.Opportunity  `json:"opportunities"`
	Roadmap       []model.RoadmapPhase `json:"roadmap"`
}

// Evaluate runs score -> opportunities -> roadmap with the default constants
func Evaluate(r model.Responses) Result {
	return defaultEngine.Evaluate(r)
}

// Evaluate runs the full pipeline. r is only read.
func (e *Engine) Evaluate(r model.Responses) Result {
	scores := e.Score(r)
	opps := e.GenerateOpportunities(r, scores)
	return Result{
		Scores:        scores,
		Opportunities: opps,
		Roadmap:       BuildRoadmap(opps),
	}
}

// NewBundle builds the exportable record. The responses are copied so the
// bundle stays independent of the caller's snapshot.
func (e *Engine) NewBundle(r model.Responses, now time.Time) model.Bundle {
	res := e.Evaluate(r)
	responses := r.Clone()
	return model.Bundle{
		AssessmentDate: now.UTC().Truncate(time.Millisecond),
		Scores:         res.Scores,
		Opportunities:  res.Opportunities,
		Roadmap:        res.Roadmap,
		Responses:      responses,
	}
}

// Mismatch is a derived field whose recorded value differs from the
// recomputed one
type Mismatch struct {
	Field      string `json:"field"`
	Recorded   string `json:"recorded"`
	Recomputed string `json:"recomputed"`
}

// Verify recomputes the derived fields from the embedded responses and
// reports every difference. The assessment date is not compared.
func (e *Engine) Verify(b model.Bundle) []Mismatch {
	res := e.Evaluate(b.Responses)
	var out []Mismatch

	add := func(field string, recorded, recomputed any) {
		out = append(out, Mismatch{
			Field:      field,
			Recorded:   fmt.Sprint(recorded),
			Recomputed: fmt.Sprint(recomputed),
		})
	}

	got, want := b.Scores, res.Scores
	if got.TechMaturity != want.TechMaturity {
		add("scores.techMaturity", got.TechMaturity, want.TechMaturity)
	}
	if got.InnovationReadiness != want.InnovationReadiness {
		add("scores.innovationReadiness", got.InnovationReadiness, want.InnovationReadiness)
	}
	if got.DataHealth != want.DataHealth {
		add("scores.dataHealth", got.DataHealth, want.DataHealth)
	}
	if got.ExecutionRisk != want.ExecutionRisk {
		add("scores.executionRisk", got.ExecutionRisk, want.ExecutionRisk)
	}
	if got.RoiPotential != want.RoiPotential {
		add("scores.roiPotential", got.RoiPotential, want.RoiPotential)
	}
	if got.FeasibilityScore != want.FeasibilityScore {
		add("scores.feasibilityScore", got.FeasibilityScore, want.FeasibilityScore)
	}

	if !sameOpportunities(b.Opportunities, res.Opportunities) {
		add("opportunities", opportunityIDs(b.Opportunities), opportunityIDs(res.Opportunities))
	}

	if len(b.Roadmap) != len(res.Roadmap) {
		add("roadmap", fmt.Sprintf("%d phases", len(b.Roadmap)), fmt.Sprintf("%d phases", len(res.Roadmap)))
	} else {
		for i := range res.Roadmap {
			if !samePhase(b.Roadmap[i], res.Roadmap[i]) {
				add(fmt.Sprintf("roadmap[%d]", i), b.Roadmap[i], res.Roadmap[i])
			}
		}
	}
	return out
}

func sameOpportunities(a, b []model.Opportunity) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func opportunityIDs(opps []model.Opportunity) []string {
	ids := make([]string, len(opps))
	for i, o := range opps {
		ids[i] = o.ID
	}
	return ids
}

func samePhase(a, b model.RoadmapPhase) bool {
	if a.Name != b.Name || a.Duration != b.Duration || len(a.Objectives) != len(b.Objectives) {
		return false
	}
	for i := range a.Objectives {
		if a.Objectives[i] != b.Objectives[i] {
			return false
		}
	}
	return true
}

// ExportFilename names an exported bundle after the export instant
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("Business_Assessment_%d.json", now.UnixMilli())
}

// MarshalBundle renders a bundle as indented JSON
func MarshalBundle(b model.Bundle) ([]byte, error) {
	if b.Responses == nil {
		b.Responses = model.Responses{}
	}
	return json.MarshalIndent(b, "", "  ")
}

// UnmarshalBundle parses an exported bundle
func UnmarshalBundle(data []byte) (model.Bundle, error) {
	var b model.Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return model.Bundle{}, err
	}
	if b.Responses == nil {
		b.Responses = model.Responses{}
	}
	return b, nil
}
