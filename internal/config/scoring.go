package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Scoring holds the business constants used by the scoring engine and the
// opportunity rules. DefaultScoring reproduces the published formulas.
type Scoring struct {
	Support       SupportScores     `yaml:"support" json:"support"`
	Budget        BudgetWeights     `yaml:"budget" json:"budget"`
	Readiness     ReadinessCutoffs  `yaml:"readiness" json:"readiness"`
	Risk          RiskWeights       `yaml:"risk" json:"risk"`
	Roi           RoiWeights        `yaml:"roi" json:"roi"`
	Opportunities OpportunityCutoff `yaml:"opportunities" json:"opportunities"`
}

// SupportScores maps technology.itSupport to a 0-100 score
type SupportScores struct {
	Internal int `yaml:"internal" json:"internal"`
	MSP      int `yaml:"msp" json:"msp"`
	Other    int `yaml:"other" json:"other"`
}

// BudgetWeights maps readiness.changeBudget to a readiness weight
type BudgetWeights struct {
	High int `yaml:"high" json:"high"`
	Med  int `yaml:"med" json:"med"`
}

// ReadinessCutoffs are strict lower bounds on budget + leadership
type ReadinessCutoffs struct {
	High   int `yaml:"high" json:"high"`
	Medium int `yaml:"medium" json:"medium"`
}

// RiskWeights blend tech maturity and leadership alignment into risk
type RiskWeights struct {
	TechMaturity float64 `yaml:"techMaturity" json:"techMaturity"`
	Leadership   float64 `yaml:"leadership" json:"leadership"`
}

// RoiWeights blend automation headroom and data quality into ROI
type RoiWeights struct {
	Automation     float64 `yaml:"automation" json:"automation"`
	DataQuality    float64 `yaml:"dataQuality" json:"dataQuality"`
	NoAutomation   int     `yaml:"noAutomation" json:"noAutomation"`
	SomeAutomation int     `yaml:"someAutomation" json:"someAutomation"`
}

// OpportunityCutoff are the strict upper bounds that trigger each rule
type OpportunityCutoff struct {
	CloudTechMaturity      int `yaml:"cloudTechMaturity" json:"cloudTechMaturity"`
	DataHealth             int `yaml:"dataHealth" json:"dataHealth"`
	ComplianceTechMaturity int `yaml:"complianceTechMaturity" json:"complianceTechMaturity"`
}

// DefaultScoring returns the stock constants
func DefaultScoring() Scoring {
	return Scoring{
		Support:   SupportScores{Internal: 100, MSP: 80, Other: 20},
		Budget:    BudgetWeights{High: 10, Med: 6},
		Readiness: ReadinessCutoffs{High: 15, Medium: 8},
		Risk:      RiskWeights{TechMaturity: 0.6, Leadership: 0.4},
		Roi: RoiWeights{
			Automation:     0.7,
			DataQuality:    0.3,
			NoAutomation:   100,
			SomeAutomation: 40,
		},
		Opportunities: OpportunityCutoff{
			CloudTechMaturity:      50,
			DataHealth:             60,
			ComplianceTechMaturity: 70,
		},
	}
}

// LoadScoring reads a YAML override. Keys missing from the file keep their
// default values.
func LoadScoring(path string) (Scoring, error) {
	cfg := DefaultScoring()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, eris.Wrapf(err, "read scoring config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, eris.Wrapf(err, "parse scoring config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges so every score stays within 0-100
func (s Scoring) Validate() error {
	var errs []string

	bounded := []struct {
		name  string
		value int
	}{
		{"support.internal", s.Support.Internal},
		{"support.msp", s.Support.MSP},
		{"support.other", s.Support.Other},
		{"roi.noAutomation", s.Roi.NoAutomation},
		{"roi.someAutomation", s.Roi.SomeAutomation},
	}
	for _, b := range bounded {
		if b.value < 0 || b.value > 100 {
			errs = append(errs, fmt.Sprintf("%s must be between 0 and 100, got %d", b.name, b.value))
		}
	}

	if s.Budget.High < 0 || s.Budget.Med < 0 {
		errs = append(errs, "budget weights must be >= 0")
	}
	if s.Readiness.Medium < 0 || s.Readiness.High < s.Readiness.Medium {
		errs = append(errs, "readiness.high must be >= readiness.medium >= 0")
	}
	if s.Risk.TechMaturity < 0 || s.Risk.Leadership < 0 {
		errs = append(errs, "risk weights must be >= 0")
	}
	if sum := s.Roi.Automation + s.Roi.DataQuality; s.Roi.Automation < 0 || s.Roi.DataQuality < 0 || sum > 1.0001 {
		errs = append(errs, fmt.Sprintf("roi weights must be >= 0 and sum to at most 1, got %.2f", sum))
	}

	if len(errs) > 0 {
		return eris.Errorf("scoring: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
