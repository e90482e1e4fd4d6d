package assessment

import "vantageassess/internal/model"

var (
	oppCloud = model.Opportunity{
		ID:          "opp1",
		Title:       "Modernize Cloud Infrastructure",
		Priority:    model.PriorityHigh,
		Category:    "Infrastructure",
		Description: "Your current cloud maturity is low. Migrating legacy workloads can reduce costs and increase agility.",
		Timeframe:   model.TimeframeStrategic,
	}
	oppAutomation = model.Opportunity{
		ID:          "opp2",
		Title:       "Deploy Low-Code Workflow Automation",
		Priority:    model.PriorityHigh,
		Category:    "Operations",
		Description: "Implement tools like Zapier to connect fragmented processes and save 10+ hours per week.",
		Timeframe:   model.TimeframeQuickWin,
	}
	oppData = model.Opportunity{
		ID:          "opp3",
		Title:       "Data Governance Initiative",
		Priority:    model.PriorityMedium,
		Category:    "Data",
		Description: "Clean and centralize operational data to prepare for advanced AI implementation.",
		Timeframe:   model.TimeframeStrategic,
	}
	oppCompliance = model.Opportunity{
		ID:          "opp4",
		Title:       "Security Compliance Audit",
		Priority:    model.PriorityHigh,
		Category:    "Compliance",
		Description: "Strengthen cybersecurity protocols to meet industry standards and mitigate risk.",
		Timeframe:   model.TimeframeQuickWin,
	}
)

// GenerateOpportunities applies the rules with the default constants
func GenerateOpportunities(r model.Responses, s model.Scores) []model.Opportunity {
	return defaultEngine.GenerateOpportunities(r, s)
}

// GenerateOpportunities evaluates the four rules in fixed order against the
// same snapshot. The result is never re-sorted and may be empty.
func (e *Engine) GenerateOpportunities(r model.Responses, s model.Scores) []model.Opportunity {
	cut := e.cfg.Opportunities
	opps := make([]model.Opportunity, 0, 4)

	if s.TechMaturity < cut.CloudTechMaturity {
		opps = append(opps, oppCloud)
	}
	if r.Contains(catAI, "currentAutomation", "none") {
		opps = append(opps, oppAutomation)
	}
	if s.DataHealth < cut.DataHealth {
		opps = append(opps, oppData)
	}
	if r.Text(catCompliance, "regulatoryBurden") == "heavy" && s.TechMaturity < cut.ComplianceTechMaturity {
		opps = append(opps, oppCompliance)
	}
	return opps
}
