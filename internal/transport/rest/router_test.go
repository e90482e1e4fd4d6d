package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vantageassess/internal/assessment"
	cachemock "vantageassess/internal/cache/mock"
	"vantageassess/internal/catalog"
	repomock "vantageassess/internal/repository/mock"
	"vantageassess/internal/service"
	"vantageassess/internal/transport/ws"
	"vantageassess/internal/validator"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	v, err := validator.New()
	if err != nil {
		t.Fatalf("validator.New() error = %v", err)
	}
	repo := repomock.NewReportRepo()
	engine := assessment.Default()
	hub := ws.NewHub()

	sessions := service.NewSessionService(cat, engine, cachemock.NewSessionCache(), repo)
	sessions.SetBroadcaster(hub)

	return NewRouter(&Container{
		SessionService:     sessions,
		ReportService:      service.NewReportService(cat, engine, repo, v),
		WSHub:              hub,
		CORSAllowedOrigins: "*",
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouterRoutes(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"health", "GET", "/health", "", http.StatusOK},
		{"catalog", "GET", "/v1/catalog", "", http.StatusOK},
		{"preflight", "OPTIONS", "/v1/sessions", "", http.StatusNoContent},
		{"verify is not a report id", "POST", "/v1/reports/verify", `{}`, http.StatusOK},
		{"list reports", "GET", "/v1/reports", "", http.StatusOK},
		{"unknown report", "GET", "/v1/reports/nope", "", http.StatusNotFound},
		{"abandon unknown session", "DELETE", "/v1/sessions/nope", "", http.StatusNotFound},
		{"report of unknown session", "GET", "/v1/sessions/nope/report", "", http.StatusNotFound},
		{"unknown session socket", "GET", "/v1/ws/sessions/nope", "", http.StatusNotFound},
		{"evaluate", "POST", "/v1/evaluate", `{"responses": {}}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d, body = %s", tt.method, tt.path, w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRouterAssessmentFlow(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, "POST", "/v1/sessions", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("start status = %d, body = %s", w.Code, w.Body.String())
	}
	var state service.SessionState
	if err := json.NewDecoder(w.Body).Decode(&state); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	base := "/v1/sessions/" + state.Session.ID

	sections := [][][3]string{
		{{"companyProfile", "employeeCount", `4`}, {"companyProfile", "industryType", `"retail"`}},
		{{"technology", "cloudUsage", `2`}, {"technology", "itSupport", `"none"`}},
		{{"readiness", "changeBudget", `"none"`}, {"readiness", "leadershipAlignment", `3`}},
		{{"aiAutomation", "currentAutomation", `["none"]`}, {"aiAutomation", "dataQuality", `3`}},
		{{"compliance", "dataSecurity", `"low"`}, {"compliance", "regulatoryBurden", `"moderate"`}},
	}
	for i, answers := range sections {
		for _, a := range answers {
			w := do(t, h, "PUT", base+"/answers/"+a[0]+"/"+a[1], `{"value": `+a[2]+`}`)
			if w.Code != http.StatusOK {
				t.Fatalf("answer %s.%s status = %d, body = %s", a[0], a[1], w.Code, w.Body.String())
			}
		}
		if i < len(sections)-1 {
			if w := do(t, h, "POST", base+"/next", ""); w.Code != http.StatusOK {
				t.Fatalf("next from section %d status = %d, body = %s", i, w.Code, w.Body.String())
			}
		}
	}

	w = do(t, h, "POST", base+"/finish", "")
	if w.Code != http.StatusOK {
		t.Fatalf("finish status = %d, body = %s", w.Code, w.Body.String())
	}
	var report struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	w = do(t, h, "GET", "/v1/reports/"+report.ID+"/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d, body = %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Business_Assessment_") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	w = do(t, h, "POST", "/v1/reports/verify", w.Body.String())
	var result service.Verification
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !result.Valid {
		t.Errorf("exported bundle did not verify: %+v", result)
	}

	if w := do(t, h, "POST", base+"/back", ""); w.Code != http.StatusConflict {
		t.Errorf("back after finish status = %d, want %d", w.Code, http.StatusConflict)
	}

	if w := do(t, h, "DELETE", base, ""); w.Code != http.StatusNoContent {
		t.Fatalf("abandon status = %d, body = %s", w.Code, w.Body.String())
	}
	if w := do(t, h, "GET", base, ""); w.Code != http.StatusNotFound {
		t.Errorf("get after abandon status = %d, want %d", w.Code, http.StatusNotFound)
	}
	w = do(t, h, "GET", base+"/report", "")
	if w.Code != http.StatusOK {
		t.Fatalf("session report status = %d, body = %s", w.Code, w.Body.String())
	}
	var archived struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(w.Body).Decode(&archived); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if archived.ID != report.ID {
		t.Errorf("session report id = %q, want %q", archived.ID, report.ID)
	}
}
