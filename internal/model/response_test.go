package model

import (
	"encoding/json"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestAnswerJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Answer
		want string
	}{
		{"int", IntAnswer(7), `7`},
		{"zero", IntAnswer(0), `0`},
		{"string", StringAnswer("msp"), `"msp"`},
		{"empty string", StringAnswer(""), `""`},
		{"set", SetAnswer("dev", "ai"), `["dev","ai"]`},
		{"empty set", SetAnswer(), `[]`},
		{"absent", Answer{}, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}

			var back Answer
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !back.Equal(tt.in) {
				t.Errorf("Unmarshal() = %v, want %v", back, tt.in)
			}
		})
	}
}

func TestParseAnswerJSONRejects(t *testing.T) {
	for _, raw := range []string{`1.5`, `true`, `{"a":1}`, `[1,2]`, `[`} {
		if _, err := ParseAnswerJSON([]byte(raw)); err == nil {
			t.Errorf("ParseAnswerJSON(%s) error = nil, want error", raw)
		}
	}
}

func TestParseAnswerJSONRange(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{`2147483647`, MaxAnswerInt, false},
		{`-2147483647`, -MaxAnswerInt, false},
		{`2e3`, 2000, false},
		{`2147483648`, 0, true},
		{`1e20`, 0, true},
		{`-1e20`, 0, true},
		{`9223372036854775808`, 0, true},
		{`1e400`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			a, err := ParseAnswerJSON([]byte(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, ErrNumberRange) {
					t.Fatalf("ParseAnswerJSON(%s) error = %v, want ErrNumberRange", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAnswerJSON(%s) error = %v", tt.raw, err)
			}
			if n, ok := a.Int(); !ok || n != tt.want {
				t.Errorf("ParseAnswerJSON(%s) = %v, want %d", tt.raw, a, tt.want)
			}
		})
	}
}

func TestResponsesUnmarshalRejectsHugeNumber(t *testing.T) {
	var r Responses
	err := json.Unmarshal([]byte(`{"technology":{"cloudUsage":1e20}}`), &r)
	if !errors.Is(err, ErrNumberRange) {
		t.Fatalf("Unmarshal() error = %v, want ErrNumberRange", err)
	}
}

func TestAnswerBSONRejectsHugeDouble(t *testing.T) {
	data, err := bson.Marshal(bson.M{"a": 1e20})
	if err != nil {
		t.Fatalf("bson.Marshal() error = %v", err)
	}
	var out struct {
		A Answer `bson:"a"`
	}
	if err := bson.Unmarshal(data, &out); !errors.Is(err, ErrNumberRange) {
		t.Errorf("bson.Unmarshal() error = %v, want ErrNumberRange", err)
	}
}

func TestResponsesWithIsCopyOnWrite(t *testing.T) {
	base := Responses{}.With("technology", "cloudUsage", IntAnswer(4))
	next := base.With("technology", "itSupport", StringAnswer("msp"))

	if base.Has("technology", "itSupport") {
		t.Error("With() modified the receiver")
	}
	if next.Int("technology", "cloudUsage") != 4 || next.Text("technology", "itSupport") != "msp" {
		t.Errorf("With() result = %v", next)
	}

	cleared := next.With("technology", "cloudUsage", Answer{})
	if cleared.Has("technology", "cloudUsage") {
		t.Error("zero Answer did not clear the entry")
	}
	if !next.Has("technology", "cloudUsage") {
		t.Error("clearing modified the receiver")
	}
}

func TestResponsesDefaults(t *testing.T) {
	var r Responses
	if r.Int("technology", "cloudUsage") != 0 {
		t.Error("absent Int != 0")
	}
	if r.Text("readiness", "changeBudget") != "" {
		t.Error("absent Text != \"\"")
	}
	if r.Contains("aiAutomation", "currentAutomation", "none") {
		t.Error("absent set contains a value")
	}
	// wrong kind reads as default too
	r = r.With("technology", "cloudUsage", StringAnswer("8"))
	if r.Int("technology", "cloudUsage") != 0 {
		t.Error("string answer read as int")
	}
}

func TestResponsesUnmarshalDropsNull(t *testing.T) {
	var r Responses
	if err := json.Unmarshal([]byte(`{"technology":{"cloudUsage":null,"itSupport":"internal"}}`), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if r.Has("technology", "cloudUsage") {
		t.Error("null answer kept")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestResponsesBSONRoundTrip(t *testing.T) {
	type doc struct {
		Responses Responses `bson:"responses"`
	}
	in := doc{Responses: Responses{}.
		With("companyProfile", "employeeCount", IntAnswer(12)).
		With("technology", "itSupport", StringAnswer("internal")).
		With("aiAutomation", "currentAutomation", SetAnswer("none"))}

	data, err := bson.Marshal(in)
	if err != nil {
		t.Fatalf("bson.Marshal() error = %v", err)
	}
	var out doc
	if err := bson.Unmarshal(data, &out); err != nil {
		t.Fatalf("bson.Unmarshal() error = %v", err)
	}
	if !out.Responses.Equal(in.Responses) {
		t.Errorf("round trip = %v, want %v", out.Responses, in.Responses)
	}
}
