package service

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"vantageassess/internal/assessment"
	"vantageassess/internal/model"
	"vantageassess/internal/repository"
	"vantageassess/internal/validator"
)

// Verification is the outcome of checking an uploaded bundle
type Verification struct {
	Valid        bool                  `json:"valid"`
	SchemaErrors []validator.Violation `json:"schemaErrors,omitempty"`
	Mismatches   []assessment.Mismatch `json:"mismatches,omitempty"`
	// AnswerErrors lists responses the questionnaire would not have accepted.
	// They do not make a bundle invalid.
	AnswerErrors []string           `json:"answerErrors,omitempty"`
	Recomputed   *assessment.Result `json:"recomputed,omitempty"`
}

// Evaluation is a stateless scoring of a responses snapshot
type Evaluation struct {
	Bundle   model.Bundle  `json:"bundle"`
	Summary  model.Summary `json:"summary"`
	Warnings []string      `json:"warnings,omitempty"`
}

// ReportService handles archived reports and bundle checks
type ReportService struct {
	catalog   *model.Catalog
	engine    *assessment.Engine
	reports   repository.ReportRepo
	validator *validator.Validator
	now       func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	catalog *model.Catalog,
	engine *assessment.Engine,
	reports repository.ReportRepo,
	v *validator.Validator,
) *ReportService {
	return &ReportService{
		catalog:   catalog,
		engine:    engine,
		reports:   reports,
		validator: v,
		now:       time.Now,
	}
}

// Get returns an archived report
func (s *ReportService) Get(ctx context.Context, id string) (*model.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load report %s", id)
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// ListRecent returns the newest archived reports
func (s *ReportService) ListRecent(ctx context.Context, limit int64) ([]*model.Report, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	reports, err := s.reports.ListRecent(ctx, limit)
	if err != nil {
		return nil, eris.Wrap(err, "failed to list reports")
	}
	if reports == nil {
		reports = []*model.Report{}
	}
	return reports, nil
}

// Export renders a report's bundle as a downloadable file
func (s *ReportService) Export(ctx context.Context, id string) (string, []byte, error) {
	report, err := s.Get(ctx, id)
	if err != nil {
		return "", nil, err
	}
	data, err := assessment.MarshalBundle(report.Bundle)
	if err != nil {
		return "", nil, eris.Wrapf(err, "failed to encode report %s", id)
	}
	return assessment.ExportFilename(s.now()), data, nil
}

// Verify checks an uploaded bundle against the schema and recomputes its
// derived fields from the embedded responses
func (s *ReportService) Verify(data []byte) (*Verification, error) {
	if result := s.validator.ValidateBundle(data); !result.Valid {
		return &Verification{Valid: false, SchemaErrors: result.Violations}, nil
	}

	bundle, err := assessment.UnmarshalBundle(data)
	if err != nil {
		// schema accepted it, so this is a decoding gap rather than bad input
		return nil, eris.Wrapf(ErrInvalidBundle, "decode: %v", err)
	}

	result := s.engine.Evaluate(bundle.Responses)
	mismatches := s.engine.Verify(bundle)
	return &Verification{
		Valid:        len(mismatches) == 0,
		Mismatches:   mismatches,
		AnswerErrors: errorStrings(assessment.CheckResponses(s.catalog, bundle.Responses)),
		Recomputed:   &result,
	}, nil
}

// Evaluate scores a responses snapshot without storing anything
func (s *ReportService) Evaluate(r model.Responses) *Evaluation {
	if r == nil {
		r = model.Responses{}
	}
	bundle := s.engine.NewBundle(r, s.now())
	return &Evaluation{
		Bundle:   bundle,
		Summary:  assessment.Summarize(bundle),
		Warnings: errorStrings(assessment.CheckResponses(s.catalog, r)),
	}
}

func errorStrings(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}
