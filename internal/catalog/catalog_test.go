package catalog

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if cat.SectionCount() != 5 {
		t.Errorf("SectionCount() = %d, want 5", cat.SectionCount())
	}
	if warnings := Lint(cat); len(warnings) != 0 {
		t.Errorf("Lint() = %v, want no warnings", warnings)
	}

	q, ok := cat.Question("technology", "cloudUsage")
	if !ok {
		t.Fatal("technology.cloudUsage missing")
	}
	if q.ScaleMin == nil || *q.ScaleMin != 0 {
		t.Errorf("cloudUsage scaleMin = %v, want 0", q.ScaleMin)
	}

	q, _ = cat.Question("technology", "itSupport")
	if len(q.Options) != 3 || q.Options[0].Weight == nil || *q.Options[0].Weight != 10 {
		t.Errorf("itSupport options = %+v", q.Options)
	}
}

const minimal = `
sections:
  - id: first
    title: First
    questions:
      - id: size
        category: profile
        label: Size
        type: number
        required: true
      - id: detail
        category: profile
        label: Detail
        type: text
        required: true
        visibleIf: {field: profile.size, op: gt, value: 3}
`

func TestParseMinimal(t *testing.T) {
	cat, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	q, _ := cat.Question("profile", "detail")
	if q.VisibleIf == nil || q.VisibleIf.Field != "profile.size" {
		t.Errorf("VisibleIf = %+v", q.VisibleIf)
	}
	if len(Lint(cat)) != len(ScoredFields) {
		t.Errorf("Lint() = %v, want one warning per scored field", Lint(cat))
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr string
	}{
		{"unknown type", "type: number", "type: slider", `unknown type "slider"`},
		{"duplicate question", "id: detail", "id: size", "duplicate question profile.size"},
		{"unknown rule field", "field: profile.size", "field: profile.revenue", "unknown question profile.revenue"},
		{"self reference", "field: profile.size, op: gt", "field: profile.detail, op: gt", "references itself"},
		{"unknown operator", "op: gt", "op: between", `unknown operator "between"`},
		{"scale on number", "type: number", "type: number\n        scaleMax: 5", "scale bounds only apply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(minimal, tt.from, tt.to, 1)
			_, err := Parse([]byte(doc))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Parse([]byte("sections: []")); err == nil {
		t.Error("Parse(empty) error = nil")
	}
}
