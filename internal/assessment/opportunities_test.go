package assessment

import (
	"reflect"
	"testing"

	"vantageassess/internal/config"
	"vantageassess/internal/model"
)

func ids(opps []model.Opportunity) []string {
	out := make([]string, 0, len(opps))
	for _, o := range opps {
		out = append(out, o.ID)
	}
	return out
}

func TestGenerateOpportunities(t *testing.T) {
	tests := []struct {
		name string
		r    model.Responses
		want []string
	}{
		{
			name: "only automation none answered",
			r:    responses("aiAutomation.currentAutomation", []string{"none"}),
			want: []string{"opp1", "opp2", "opp3"},
		},
		{
			name: "heavy regulation with low maturity",
			r: responses(
				"technology.cloudUsage", 6,
				"technology.itSupport", "none",
				"compliance.regulatoryBurden", "heavy",
			),
			want: []string{"opp1", "opp3", "opp4"},
		},
		{
			name: "heavy regulation with maturity at seventy",
			r: responses(
				"technology.cloudUsage", 4,
				"technology.itSupport", "internal",
				"aiAutomation.dataQuality", 6,
				"compliance.regulatoryBurden", "heavy",
			),
			want: []string{},
		},
		{
			name: "mature organisation fires nothing",
			r: responses(
				"technology.cloudUsage", 10,
				"technology.itSupport", "internal",
				"aiAutomation.dataQuality", 10,
				"aiAutomation.currentAutomation", []string{"dev", "ai"},
				"compliance.regulatoryBurden", "light",
			),
			want: []string{},
		},
		{
			name: "every rule fires in fixed order",
			r: responses(
				"aiAutomation.currentAutomation", []string{"ai", "none"},
				"compliance.regulatoryBurden", "heavy",
			),
			want: []string{"opp1", "opp2", "opp3", "opp4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateOpportunities(tt.r, Score(tt.r))
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("GenerateOpportunities() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestAutomationOpportunityIsQuickWin(t *testing.T) {
	r := responses("aiAutomation.currentAutomation", []string{"none"})
	for _, o := range GenerateOpportunities(r, Score(r)) {
		if o.Title == "Deploy Low-Code Workflow Automation" {
			if o.Timeframe != model.TimeframeQuickWin {
				t.Errorf("Timeframe = %q, want %q", o.Timeframe, model.TimeframeQuickWin)
			}
			return
		}
	}
	t.Fatal("automation opportunity not generated")
}

func TestComplianceAuditAtMaturityForty(t *testing.T) {
	r := responses("compliance.regulatoryBurden", "heavy")
	scores := model.Scores{TechMaturity: 40, DataHealth: 80}

	got := GenerateOpportunities(r, scores)
	if !reflect.DeepEqual(ids(got), []string{"opp1", "opp4"}) {
		t.Fatalf("GenerateOpportunities() = %v, want [opp1 opp4]", ids(got))
	}
	if got[1].Title != "Security Compliance Audit" || got[1].Priority != model.PriorityHigh {
		t.Errorf("opp4 = %+v", got[1])
	}
}

func TestGenerateOpportunitiesIgnoresPriorityOrder(t *testing.T) {
	r := responses("aiAutomation.currentAutomation", []string{"none"})
	got := GenerateOpportunities(r, model.Scores{TechMaturity: 90, DataHealth: 10})

	// opp3 (Medium) stays after opp2 (High) because rule order wins.
	if !reflect.DeepEqual(ids(got), []string{"opp2", "opp3"}) {
		t.Errorf("GenerateOpportunities() = %v, want [opp2 opp3]", ids(got))
	}
}

func TestEngineOpportunityCutoffs(t *testing.T) {
	cfg := config.DefaultScoring()
	cfg.Opportunities.CloudTechMaturity = 95
	e := NewEngine(cfg)

	got := e.GenerateOpportunities(model.Responses{}, model.Scores{TechMaturity: 90, DataHealth: 100})
	if !reflect.DeepEqual(ids(got), []string{"opp1"}) {
		t.Errorf("GenerateOpportunities() = %v, want [opp1]", ids(got))
	}
}
