package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"vantageassess/internal/assessment"
	"vantageassess/internal/catalog"
	"vantageassess/internal/config"
	"vantageassess/internal/model"
)

var (
	catalogPath string
	scoringPath string
)

var rootCmd = &cobra.Command{
	Use:   "assess",
	Short: "Offline tools for business maturity assessments",
	Long: `Score response snapshots, verify exported assessment bundles and
inspect the questionnaire catalog without running the server.

CATALOG_PATH and SCORING_CONFIG_PATH are honoured when the flags are unset.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (default: embedded catalog)")
	rootCmd.PersistentFlags().StringVar(&scoringPath, "scoring", "", "Scoring constants YAML file (default: built-in constants)")
}

func main() {
	// .env is optional for the CLI
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadCatalog() (*model.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = os.Getenv("CATALOG_PATH")
	}
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func loadEngine() (*assessment.Engine, error) {
	path := scoringPath
	if path == "" {
		path = os.Getenv("SCORING_CONFIG_PATH")
	}
	cfg, err := config.LoadScoring(path)
	if err != nil {
		return nil, eris.Wrap(err, "scoring config")
	}
	return assessment.NewEngine(cfg), nil
}
