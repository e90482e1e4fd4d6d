package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vantageassess/internal/assessment"
	"vantageassess/internal/config"
	"vantageassess/internal/model"
	"vantageassess/internal/repository"
)

// sample profiles archived as reports so the dashboard has data
var profiles = []struct {
	name      string
	responses model.Responses
}{
	{
		name: "Cloud-native services firm",
		responses: model.Responses{}.
			With("companyProfile", "employeeCount", model.IntAnswer(40)).
			With("companyProfile", "industryType", model.StringAnswer("services")).
			With("technology", "cloudUsage", model.IntAnswer(8)).
			With("technology", "itSupport", model.StringAnswer("internal")).
			With("technology", "enterpriseIntegration", model.IntAnswer(7)).
			With("readiness", "changeBudget", model.StringAnswer("high")).
			With("readiness", "leadershipAlignment", model.IntAnswer(8)).
			With("aiAutomation", "currentAutomation", model.SetAnswer("low-code", "ai")).
			With("aiAutomation", "dataQuality", model.IntAnswer(8)).
			With("compliance", "dataSecurity", model.StringAnswer("high")).
			With("compliance", "regulatoryBurden", model.StringAnswer("light")),
	},
	{
		name: "Small retailer, no automation",
		responses: model.Responses{}.
			With("companyProfile", "employeeCount", model.IntAnswer(6)).
			With("companyProfile", "industryType", model.StringAnswer("retail")).
			With("technology", "cloudUsage", model.IntAnswer(3)).
			With("technology", "itSupport", model.StringAnswer("msp")).
			With("readiness", "changeBudget", model.StringAnswer("none")).
			With("readiness", "leadershipAlignment", model.IntAnswer(5)).
			With("aiAutomation", "currentAutomation", model.SetAnswer("none")).
			With("aiAutomation", "dataQuality", model.IntAnswer(4)).
			With("compliance", "dataSecurity", model.StringAnswer("low")).
			With("compliance", "regulatoryBurden", model.StringAnswer("moderate")),
	},
	{
		name: "Regulated clinic on-premise",
		responses: model.Responses{}.
			With("companyProfile", "employeeCount", model.IntAnswer(25)).
			With("companyProfile", "industryType", model.StringAnswer("healthcare")).
			With("technology", "cloudUsage", model.IntAnswer(6)).
			With("technology", "itSupport", model.StringAnswer("none")).
			With("technology", "enterpriseIntegration", model.IntAnswer(3)).
			With("readiness", "changeBudget", model.StringAnswer("med")).
			With("readiness", "leadershipAlignment", model.IntAnswer(3)).
			With("aiAutomation", "currentAutomation", model.SetAnswer("dev")).
			With("aiAutomation", "dataQuality", model.IntAnswer(5)).
			With("compliance", "dataSecurity", model.StringAnswer("med")).
			With("compliance", "regulatoryBurden", model.StringAnswer("heavy")).
			With("compliance", "complianceDetail", model.StringAnswer("HIPAA")),
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()

	scoring, err := config.LoadScoring(cfg.ScoringPath)
	if err != nil {
		log.Fatalf("Failed to load scoring config: %v", err)
	}
	engine := assessment.NewEngine(scoring)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewReportRepo(client.Database(cfg.MongoDB))

	now := time.Now().UTC()
	for i, p := range profiles {
		bundle := engine.NewBundle(p.responses, now.Add(-time.Duration(len(profiles)-i)*time.Hour))
		report := &model.Report{
			ID:        uuid.NewString(),
			Bundle:    bundle,
			Summary:   assessment.Summarize(bundle),
			CreatedAt: bundle.AssessmentDate,
		}
		if err := repo.Save(ctx, report); err != nil {
			log.Fatalf("Failed to insert report for %q: %v", p.name, err)
		}
		fmt.Printf("Seeded %-32s id=%s readiness=%s opportunities=%d\n",
			p.name, report.ID, bundle.Scores.InnovationReadiness, len(bundle.Opportunities))
	}
}
