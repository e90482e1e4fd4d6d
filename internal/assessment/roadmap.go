package assessment

import "vantageassess/internal/model"

const (
	maxQuickWinObjectives  = 3
	maxStrategicObjectives = 2
)

// BuildRoadmap buckets opportunities into exactly three phases. Empty buckets
// fall back to a fixed objective; the last phase never depends on input.
func BuildRoadmap(opps []model.Opportunity) []model.RoadmapPhase {
	quickWins := titles(opps, model.TimeframeQuickWin, maxQuickWinObjectives)
	if len(quickWins) == 0 {
		quickWins = []string{"Foundation assessment"}
	}
	strategic := titles(opps, model.TimeframeStrategic, maxStrategicObjectives)
	if len(strategic) == 0 {
		strategic = []string{"Infrastructure optimization"}
	}

	return []model.RoadmapPhase{
		{Name: "Stabilization", Duration: "0 – 3 Months", Objectives: quickWins},
		{Name: "Scale", Duration: "4 – 9 Months", Objectives: strategic},
		{Name: "Innovation", Duration: "10 – 12+ Months", Objectives: []string{"Advanced AI Pilot", "Automated Predictive Analytics"}},
	}
}

func titles(opps []model.Opportunity, tf model.Timeframe, limit int) []string {
	var out []string
	for _, o := range opps {
		if o.Timeframe != tf {
			continue
		}
		out = append(out, o.Title)
		if len(out) == limit {
			break
		}
	}
	return out
}
