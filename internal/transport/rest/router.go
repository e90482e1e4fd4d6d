package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"vantageassess/internal/service"
	"vantageassess/internal/transport/rest/handler"
	"vantageassess/internal/transport/rest/middleware"
	"vantageassess/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	SessionService     *service.SessionService
	ReportService      *service.ReportService
	WSHub              *ws.Hub
	CORSAllowedOrigins string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(c.SessionService.Catalog())
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	wsHandler := ws.NewHandler(c.WSHub, c.SessionService)

	// CORS first so preflights never reach the routes
	r.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: c.CORSAllowedOrigins}))
	r.Use(middleware.Logger)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/catalog", catalogHandler.Get).Methods("GET", "OPTIONS")

	v1.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}", sessionHandler.Abandon).Methods("DELETE")
	v1.HandleFunc("/sessions/{id}/answers/{category}/{questionId}", sessionHandler.Answer).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/next", sessionHandler.Next).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/back", sessionHandler.Back).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/finish", sessionHandler.Finish).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/report", sessionHandler.Report).Methods("GET", "OPTIONS")

	// verify is registered before {id} so it is not taken for a report id
	v1.HandleFunc("/reports/verify", reportHandler.Verify).Methods("POST", "OPTIONS")
	v1.HandleFunc("/reports", reportHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/reports/{id}", reportHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/reports/{id}/export", reportHandler.Export).Methods("GET", "OPTIONS")

	v1.HandleFunc("/evaluate", reportHandler.Evaluate).Methods("POST", "OPTIONS")

	// WebSocket routes
	v1.HandleFunc("/ws/sessions/{id}", wsHandler.SessionWS).Methods("GET")

	return r
}
