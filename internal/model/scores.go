package model

import "time"

// Readiness is the innovation readiness tier
type Readiness string

const (
	ReadinessLow    Readiness = "Low"
	ReadinessMedium Readiness = "Medium"
	ReadinessHigh   Readiness = "High"
)

// Scores are derived from responses and never stored on their own
type Scores struct {
	TechMaturity        int       `json:"techMaturity" bson:"techMaturity"`
	InnovationReadiness Readiness `json:"innovationReadiness" bson:"innovationReadiness"`
	DataHealth          int       `json:"dataHealth" bson:"dataHealth"`
	ExecutionRisk       float64   `json:"executionRisk" bson:"executionRisk"` // higher is riskier
	RoiPotential        int       `json:"roiPotential" bson:"roiPotential"`
	FeasibilityScore    int       `json:"feasibilityScore" bson:"feasibilityScore"`
}

// Priority of an opportunity
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Timeframe decides which roadmap phase an opportunity lands in
type Timeframe string

const (
	TimeframeQuickWin  Timeframe = "Quick Win"
	TimeframeStrategic Timeframe = "Strategic"
)

// Opportunity is a recommended initiative
type Opportunity struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Priority    Priority  `json:"priority" bson:"priority"`
	Category    string    `json:"category" bson:"category"`
	Description string    `json:"description" bson:"description"`
	Timeframe   Timeframe `json:"timeframe" bson:"timeframe"`
}

// RoadmapPhase is one time-boxed block of the action plan
type RoadmapPhase struct {
	Name       string   `json:"name" bson:"name"`
	Duration   string   `json:"duration" bson:"duration"`
	Objectives []string `json:"objectives" bson:"objectives"`
}

// Bundle is the exported result of a finished assessment
type Bundle struct {
	AssessmentDate time.Time      `json:"assessmentDate" bson:"assessmentDate"`
	Scores         Scores         `json:"scores" bson:"scores"`
	Opportunities  []Opportunity  `json:"opportunities" bson:"opportunities"`
	Roadmap        []RoadmapPhase `json:"roadmap" bson:"roadmap"`
	Responses      Responses      `json:"responses" bson:"responses"`
}
