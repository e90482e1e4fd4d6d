package mock

import (
	"context"
	"sort"
	"sync"

	"vantageassess/internal/model"
	"vantageassess/internal/repository"
)

// ReportRepo is an in-memory repository.ReportRepo for testing
type ReportRepo struct {
	mu      sync.RWMutex
	reports map[string]*model.Report
}

var _ repository.ReportRepo = (*ReportRepo)(nil)

// NewReportRepo creates an empty repository
func NewReportRepo() *ReportRepo {
	return &ReportRepo{reports: make(map[string]*model.Report)}
}

func (r *ReportRepo) Save(ctx context.Context, report *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *report
	r.reports[report.ID] = &stored
	return nil
}

func (r *ReportRepo) GetByID(ctx context.Context, id string) (*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	out := *report
	return &out, nil
}

func (r *ReportRepo) GetBySession(ctx context.Context, sessionID string) (*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, report := range r.reports {
		if report.SessionID == sessionID {
			out := *report
			return &out, nil
		}
	}
	return nil, nil
}

func (r *ReportRepo) ListRecent(ctx context.Context, limit int64) ([]*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*model.Report
	for _, report := range r.reports {
		out := *report
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}
