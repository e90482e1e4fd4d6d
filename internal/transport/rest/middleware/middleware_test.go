package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    string
		origin     string
		method     string
		wantOrigin string
		wantVary   bool
		wantStatus int
	}{
		{"wildcard", "*", "https://a.example", "GET", "*", false, http.StatusTeapot},
		{"default is wildcard", "", "https://a.example", "GET", "*", false, http.StatusTeapot},
		{"listed origin", "https://a.example, https://b.example", "https://b.example", "GET", "https://b.example", true, http.StatusTeapot},
		{"unlisted origin", "https://a.example", "https://evil.example", "GET", "", false, http.StatusTeapot},
		{"preflight", "*", "https://a.example", "OPTIONS", "*", false, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CORS(CORSConfig{AllowedOrigins: tt.allowed})(okHandler())
			req := httptest.NewRequest(tt.method, "/v1/catalog", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if got := w.Header().Get("Vary") == "Origin"; got != tt.wantVary {
				t.Errorf("Vary: Origin = %v, want %v", got, tt.wantVary)
			}
		})
	}
}

func TestLoggerKeepsStatus(t *testing.T) {
	w := httptest.NewRecorder()
	Logger(okHandler()).ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
}
