package assessment

import (
	"math"

	"vantageassess/internal/config"
	"vantageassess/internal/model"
)

// Response fields read by the engine
const (
	catTechnology = "technology"
	catReadiness  = "readiness"
	catAI         = "aiAutomation"
	catCompliance = "compliance"
)

// Engine runs the scoring, opportunity and roadmap steps with one set of
// constants. It holds no state besides its configuration and is safe for
// concurrent use.
type Engine struct {
	cfg config.Scoring
}

// NewEngine creates an engine. Use config.DefaultScoring for the stock formulas.
func NewEngine(cfg config.Scoring) *Engine {
	return &Engine{cfg: cfg}
}

var defaultEngine = NewEngine(config.DefaultScoring())

// Default returns the engine built on the stock constants
func Default() *Engine { return defaultEngine }

// Score computes the six metrics with the default constants
func Score(r model.Responses) model.Scores {
	return defaultEngine.Score(r)
}

// Score computes the six metrics. Absent inputs read as 0 or empty; values
// are not range checked here.
func (e *Engine) Score(r model.Responses) model.Scores {
	c := e.cfg

	supportScore := c.Support.Other
	switch r.Text(catTechnology, "itSupport") {
	case "internal":
		supportScore = c.Support.Internal
	case "msp":
		supportScore = c.Support.MSP
	}
	cloud := r.Int(catTechnology, "cloudUsage") * 10
	techMaturity := round(float64(cloud+supportScore) / 2)

	leadershipWeight := r.Int(catReadiness, "leadershipAlignment")
	budgetWeight := 0
	switch r.Text(catReadiness, "changeBudget") {
	case "high":
		budgetWeight = c.Budget.High
	case "med":
		budgetWeight = c.Budget.Med
	}
	totalReadiness := budgetWeight + leadershipWeight
	readiness := model.ReadinessLow
	if totalReadiness > c.Readiness.High {
		readiness = model.ReadinessHigh
	} else if totalReadiness > c.Readiness.Medium {
		readiness = model.ReadinessMedium
	}

	dataQuality := r.Int(catAI, "dataQuality") * 10

	executionRisk := math.Max(0, 100-(float64(techMaturity)*c.Risk.TechMaturity+float64(leadershipWeight*10)*c.Risk.Leadership))

	currentAuto := c.Roi.SomeAutomation
	if r.Contains(catAI, "currentAutomation", "none") {
		currentAuto = c.Roi.NoAutomation
	}
	roiPotential := round(float64(currentAuto)*c.Roi.Automation + float64(dataQuality)*c.Roi.DataQuality)

	feasibility := round((float64(techMaturity) + (20-executionRisk/5)*5) / 2)

	return model.Scores{
		TechMaturity:        techMaturity,
		InnovationReadiness: readiness,
		DataHealth:          dataQuality,
		ExecutionRisk:       executionRisk,
		RoiPotential:        roiPotential,
		FeasibilityScore:    feasibility,
	}
}

// round is half-up: 2.5 -> 3, -2.5 -> -2
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
