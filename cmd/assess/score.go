package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"vantageassess/internal/assessment"
	"vantageassess/internal/model"
)

var (
	scoreInput  string
	scoreOutDir string
	scoreAt     string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Build an assessment bundle from a responses snapshot",
	Long: `Reads a responses object ({"<category>": {"<questionId>": value}}) from
--input or stdin and writes the bundle. With --out-dir the bundle is saved
under its export file name instead of printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		in := io.Reader(cmd.InOrStdin())
		if scoreInput != "" && scoreInput != "-" {
			f, err := os.Open(scoreInput)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		now := time.Now()
		if scoreAt != "" {
			if now, err = time.Parse(time.RFC3339, scoreAt); err != nil {
				return eris.Wrap(err, "--at")
			}
		}

		r, err := readResponses(in)
		if err != nil {
			return err
		}
		for _, warning := range assessment.CheckResponses(cat, r) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", warning)
		}

		data, err := assessment.MarshalBundle(engine.NewBundle(r, now))
		if err != nil {
			return err
		}

		if scoreOutDir == "" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}
		path := filepath.Join(scoreOutDir, assessment.ExportFilename(now))
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "Responses JSON file (default: stdin)")
	scoreCmd.Flags().StringVar(&scoreOutDir, "out-dir", "", "Directory to write Business_Assessment_<millis>.json into")
	scoreCmd.Flags().StringVar(&scoreAt, "at", "", "Assessment timestamp (RFC 3339, default: now)")
	rootCmd.AddCommand(scoreCmd)
}

func readResponses(in io.Reader) (model.Responses, error) {
	var r model.Responses
	if err := json.NewDecoder(in).Decode(&r); err != nil {
		return nil, eris.Wrap(err, "decode responses")
	}
	if r == nil {
		r = model.Responses{}
	}
	return r, nil
}
