package assessment

import "vantageassess/internal/model"

var verdicts = map[model.Readiness]string{
	model.ReadinessHigh:   "Your organization is primed for rapid digital scaling. Focus on cutting-edge AI integration.",
	model.ReadinessMedium: "Moderate foundation. Focus on cleaning data pipelines before pursuing complex automation.",
	model.ReadinessLow:    "Caution required. Strengthen core infrastructure and leadership alignment before investing in high-risk tech.",
}

// Summarize produces the dashboard reading of a bundle
func Summarize(b model.Bundle) model.Summary {
	verdict, ok := verdicts[b.Scores.InnovationReadiness]
	if !ok {
		verdict = verdicts[model.ReadinessLow]
	}

	quickWins := make([]model.Opportunity, 0, len(b.Opportunities))
	for _, o := range b.Opportunities {
		if o.Timeframe == model.TimeframeQuickWin {
			quickWins = append(quickWins, o)
		}
	}

	techTrend := model.TrendStable
	if b.Scores.TechMaturity > 50 {
		techTrend = model.TrendUp
	}
	riskTrend := model.TrendStable
	if b.Scores.ExecutionRisk > 60 {
		riskTrend = model.TrendDown
	}

	categories := 0
	for _, answers := range b.Responses {
		if len(answers) > 0 {
			categories++
		}
	}

	return model.Summary{
		Verdict:   verdict,
		QuickWins: quickWins,
		Trends: map[string]model.Trend{
			"techMaturity":  techTrend,
			"executionRisk": riskTrend,
			"roiPotential":  model.TrendUp,
		},
		CategoryCount: categories,
	}
}
