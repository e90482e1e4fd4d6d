package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"vantageassess/internal/assessment"
	"vantageassess/internal/validator"
)

var errBundleInvalid = eris.New("bundle did not verify")

var verifyCmd = &cobra.Command{
	Use:   "verify <bundle.json>",
	Short: "Check an exported bundle's scores against its responses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		v, err := validator.New()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result := v.ValidateBundle(data); !result.Valid {
			for _, e := range result.Violations {
				fmt.Fprintf(out, "schema %s: %s\n", e.Path, e.Message)
			}
			return errBundleInvalid
		}

		b, err := assessment.UnmarshalBundle(data)
		if err != nil {
			return err
		}
		mismatches := engine.Verify(b)
		for _, m := range mismatches {
			fmt.Fprintf(out, "%s: recorded %s, recomputed %s\n", m.Field, m.Recorded, m.Recomputed)
		}
		if len(mismatches) > 0 {
			return errBundleInvalid
		}
		fmt.Fprintf(out, "%s: ok (%d answers, readiness %s)\n", args[0], b.Responses.Count(), b.Scores.InnovationReadiness)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
