package validator

import (
	"strings"
	"testing"
)

const validBundle = `{
  "assessmentDate": "2026-03-01T12:00:00Z",
  "scores": {
    "techMaturity": 10,
    "innovationReadiness": "Low",
    "dataHealth": 0,
    "executionRisk": 94,
    "roiPotential": 28,
    "feasibilityScore": 8
  },
  "opportunities": [
    {
      "id": "opp1",
      "title": "Cloud Migration Strategy",
      "priority": "High",
      "category": "Infrastructure",
      "description": "Move on-premise workloads to a cloud platform.",
      "timeframe": "Strategic"
    }
  ],
  "roadmap": [
    {"name": "Stabilization", "duration": "0 – 3 Months", "objectives": ["Foundation assessment"]},
    {"name": "Scale", "duration": "4 – 9 Months", "objectives": ["Cloud Migration Strategy"]},
    {"name": "Innovation", "duration": "10 – 12+ Months", "objectives": ["Advanced Analytics"]}
  ],
  "responses": {
    "technology": {"cloudUsage": 3, "itSupport": "none"},
    "aiAutomation": {"currentAutomation": ["none"]}
  }
}`

func TestValidateBundle(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("valid bundle", func(t *testing.T) {
		result := v.ValidateBundle([]byte(validBundle))
		if !result.Valid {
			t.Errorf("ValidateBundle() valid = false, errors = %+v", result.Violations)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		result := v.ValidateBundle([]byte(`{"scores":`))
		if result.Valid {
			t.Fatal("ValidateBundle() valid = true, want false")
		}
		if len(result.Violations) != 1 || result.Violations[0].Path != "/" {
			t.Errorf("errors = %+v, want one root error", result.Violations)
		}
	})

	tests := []struct {
		name     string
		from, to string
		wantPath string
	}{
		{"fractional score", `"techMaturity": 10,`, `"techMaturity": 10.5,`, "/scores/techMaturity"},
		{"unknown readiness", `"innovationReadiness": "Low"`, `"innovationReadiness": "Extreme"`, "/scores/innovationReadiness"},
		{"bad timeframe", `"timeframe": "Strategic"`, `"timeframe": "Someday"`, "/opportunities/0/timeframe"},
		{"unknown opportunity id", `"id": "opp1"`, `"id": "opp9"`, "/opportunities/0/id"},
		{"object answer", `"itSupport": "none"`, `"itSupport": {"kind": "none"}`, "/responses/technology/itSupport"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(validBundle, tt.from, tt.to, 1)
			result := v.ValidateBundle([]byte(doc))
			if result.Valid {
				t.Fatal("ValidateBundle() valid = true, want false")
			}
			found := false
			for _, e := range result.Violations {
				if strings.HasPrefix(e.Path, tt.wantPath) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error at %s; got %+v", tt.wantPath, result.Violations)
			}
		})
	}

	t.Run("violations ordered by path", func(t *testing.T) {
		doc := strings.Replace(validBundle, `"timeframe": "Strategic"`, `"timeframe": "Someday"`, 1)
		doc = strings.Replace(doc, `"innovationReadiness": "Low"`, `"innovationReadiness": "Extreme"`, 1)
		result := v.ValidateBundle([]byte(doc))
		if len(result.Violations) < 2 {
			t.Fatalf("violations = %+v, want at least 2", result.Violations)
		}
		for i := 1; i < len(result.Violations); i++ {
			if result.Violations[i-1].Path > result.Violations[i].Path {
				t.Errorf("violations out of order: %+v", result.Violations)
			}
		}
	})

	t.Run("missing roadmap", func(t *testing.T) {
		result := v.ValidateBundle([]byte(`{"assessmentDate":"2026-03-01T12:00:00Z","scores":{},"opportunities":[],"responses":{}}`))
		if result.Valid {
			t.Error("ValidateBundle() valid = true, want false")
		}
	})
}

func TestPointer(t *testing.T) {
	tests := []struct {
		location []string
		want     string
	}{
		{nil, "/"},
		{[]string{"scores", "techMaturity"}, "/scores/techMaturity"},
		{[]string{"responses", "a/b", "c~d"}, "/responses/a~1b/c~0d"},
	}
	for _, tt := range tests {
		if got := pointer(tt.location); got != tt.want {
			t.Errorf("pointer(%q) = %q, want %q", tt.location, got, tt.want)
		}
	}
}
