package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"vantageassess/internal/catalog"
)

var catalogShowJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the questionnaire catalog",
}

var catalogLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate the catalog and warn about unscored gaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		warnings := catalog.Lint(cat)
		for _, w := range warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		questions := 0
		for _, s := range cat.Sections {
			questions += len(s.Questions)
		}
		fmt.Fprintf(out, "%d sections, %d questions, %d warnings\n", cat.SectionCount(), questions, len(warnings))
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		var data []byte
		if catalogShowJSON {
			data, err = json.MarshalIndent(cat, "", "  ")
		} else {
			data, err = yaml.Marshal(cat)
		}
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	catalogShowCmd.Flags().BoolVar(&catalogShowJSON, "json", false, "Print JSON instead of YAML")
	catalogCmd.AddCommand(catalogLintCmd, catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}
