package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"vantageassess/internal/assessment"
	"vantageassess/internal/cache"
	"vantageassess/internal/service"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps domain errors onto HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrReportNotFound),
		errors.Is(err, assessment.ErrUnknownQuestion):
		return http.StatusNotFound

	case errors.Is(err, assessment.ErrSectionIncomplete),
		errors.Is(err, assessment.ErrAtFirstSection),
		errors.Is(err, assessment.ErrUseFinish),
		errors.Is(err, assessment.ErrNotLastSection),
		errors.Is(err, assessment.ErrSessionCompleted),
		errors.Is(err, assessment.ErrNotInSection),
		errors.Is(err, assessment.ErrQuestionHidden),
		errors.Is(err, cache.ErrConflict):
		return http.StatusConflict

	case errors.Is(err, assessment.ErrTypeMismatch),
		errors.Is(err, assessment.ErrOutOfRange),
		errors.Is(err, assessment.ErrUnknownOption),
		errors.Is(err, assessment.ErrUnknownEvent),
		errors.Is(err, service.ErrInvalidBundle):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
