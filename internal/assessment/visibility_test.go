package assessment

import (
	"testing"

	"vantageassess/internal/catalog"
	"vantageassess/internal/model"
)

func defaultCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	return cat
}

func sectionByID(t *testing.T, cat *model.Catalog, id string) model.Section {
	t.Helper()
	for _, s := range cat.Sections {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("section %q not in catalog", id)
	return model.Section{}
}

func visibleIDs(qs []model.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestEnterpriseIntegrationVisibility(t *testing.T) {
	tech := sectionByID(t, defaultCatalog(t), "technology")

	tests := []struct {
		name        string
		r           model.Responses
		wantVisible bool
	}{
		{"employee count absent", model.Responses{}, false},
		{"employee count zero", responses("companyProfile.employeeCount", 0), false},
		{"employee count nine", responses("companyProfile.employeeCount", 9), false},
		{"employee count ten", responses("companyProfile.employeeCount", 10), true},
		{"employee count large", responses("companyProfile.employeeCount", 250), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := false
			for _, id := range visibleIDs(VisibleQuestions(tech, tt.r)) {
				if id == "enterpriseIntegration" {
					got = true
				}
			}
			if got != tt.wantVisible {
				t.Errorf("enterpriseIntegration visible = %v, want %v", got, tt.wantVisible)
			}
		})
	}
}

func TestVisibleQuestionsKeepsCatalogOrder(t *testing.T) {
	tech := sectionByID(t, defaultCatalog(t), "technology")
	got := visibleIDs(VisibleQuestions(tech, responses("companyProfile.employeeCount", 12)))
	want := []string{"cloudUsage", "itSupport", "enterpriseIntegration"}
	if len(got) != len(want) {
		t.Fatalf("VisibleQuestions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("VisibleQuestions()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestIsSectionComplete(t *testing.T) {
	cat := defaultCatalog(t)
	compliance := sectionByID(t, cat, "compliance")
	ai := sectionByID(t, cat, "aiAutomation")

	tests := []struct {
		name    string
		section model.Section
		r       model.Responses
		want    bool
	}{
		{
			name:    "nothing answered",
			section: compliance,
			r:       model.Responses{},
			want:    false,
		},
		{
			name:    "hidden required detail does not block",
			section: compliance,
			r:       responses("compliance.dataSecurity", "high", "compliance.regulatoryBurden", "light"),
			want:    true,
		},
		{
			name:    "visible required detail blocks",
			section: compliance,
			r:       responses("compliance.dataSecurity", "high", "compliance.regulatoryBurden", "heavy"),
			want:    false,
		},
		{
			name:    "empty string does not count",
			section: compliance,
			r: responses(
				"compliance.dataSecurity", "high",
				"compliance.regulatoryBurden", "heavy",
				"compliance.complianceDetail", "",
			),
			want: false,
		},
		{
			name:    "detail answered",
			section: compliance,
			r: responses(
				"compliance.dataSecurity", "high",
				"compliance.regulatoryBurden", "heavy",
				"compliance.complianceDetail", "HIPAA",
			),
			want: true,
		},
		{
			name:    "empty selection counts as answered",
			section: ai,
			r:       responses("aiAutomation.currentAutomation", []string{}, "aiAutomation.dataQuality", 3),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := VisibleQuestions(tt.section, tt.r)
			if got := IsSectionComplete(visible, tt.r); got != tt.want {
				t.Errorf("IsSectionComplete() = %v, want %v (missing %v)", got, tt.want, MissingRequired(visible, tt.r))
			}
		})
	}
}

func TestZeroCountsAsAnswered(t *testing.T) {
	section := model.Section{Questions: []model.Question{
		{ID: "n", Category: "c", Type: model.AnswerNumber, Required: true},
	}}
	r := responses("c.n", 0)
	if !IsSectionComplete(VisibleQuestions(section, r), r) {
		t.Error("IsSectionComplete() = false for numeric zero, want true")
	}
}

func TestHolds(t *testing.T) {
	r := responses(
		"companyProfile.employeeCount", 15,
		"compliance.regulatoryBurden", "heavy",
		"aiAutomation.currentAutomation", []string{"dev", "ai"},
		"compliance.complianceDetail", "",
	)

	tests := []struct {
		name string
		c    model.Condition
		want bool
	}{
		{"gte int literal", model.Condition{Field: "companyProfile.employeeCount", Op: model.OpGte, Value: 10}, true},
		{"lt float literal", model.Condition{Field: "companyProfile.employeeCount", Op: model.OpLt, Value: 15.5}, true},
		{"gt against text", model.Condition{Field: "compliance.regulatoryBurden", Op: model.OpGt, Value: 1}, false},
		{"eq string", model.Condition{Field: "compliance.regulatoryBurden", Op: model.OpEq, Value: "heavy"}, true},
		{"ne string", model.Condition{Field: "compliance.regulatoryBurden", Op: model.OpNe, Value: "heavy"}, false},
		{"eq absent number reads zero", model.Condition{Field: "readiness.leadershipAlignment", Op: model.OpEq, Value: 0}, true},
		{"contains set member", model.Condition{Field: "aiAutomation.currentAutomation", Op: model.OpContains, Value: "ai"}, true},
		{"contains missing member", model.Condition{Field: "aiAutomation.currentAutomation", Op: model.OpContains, Value: "none"}, false},
		{"answered", model.Condition{Field: "compliance.regulatoryBurden", Op: model.OpAnswered}, true},
		{"empty string is unanswered", model.Condition{Field: "compliance.complianceDetail", Op: model.OpUnanswered}, true},
		{"malformed field", model.Condition{Field: "employeeCount", Op: model.OpGte, Value: 1}, false},
		{"unknown operator", model.Condition{Field: "companyProfile.employeeCount", Op: "between", Value: 1}, false},
		{"empty rule", model.Condition{}, false},
		{
			name: "all",
			c: model.Condition{All: []model.Condition{
				{Field: "companyProfile.employeeCount", Op: model.OpGte, Value: 10},
				{Field: "compliance.regulatoryBurden", Op: model.OpEq, Value: "heavy"},
			}},
			want: true,
		},
		{
			name: "any with one match",
			c: model.Condition{Any: []model.Condition{
				{Field: "companyProfile.employeeCount", Op: model.OpGte, Value: 100},
				{Field: "compliance.regulatoryBurden", Op: model.OpEq, Value: "heavy"},
			}},
			want: true,
		},
		{
			name: "any without match",
			c: model.Condition{Any: []model.Condition{
				{Field: "companyProfile.employeeCount", Op: model.OpGte, Value: 100},
			}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Holds(tt.c, r); got != tt.want {
				t.Errorf("Holds() = %v, want %v", got, tt.want)
			}
		})
	}
}
