package http

import (
	"net/http"

	"github.com/mind-engage/mindengage-english/internal/question"
)

const apiVersion = "1.0.0"

// HealthInfo describes what the running service has available.
type HealthInfo struct {
	Store    question.Store
	STTModel string // empty when no speech backend is configured
}

// GET /
func RootHandler(info HealthInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":           "English Learning API",
			"version":           apiVersion,
			"whisper_available": info.STTModel != "",
		})
	}
}

// GET /health
func HealthHandler(info HealthInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		model := info.STTModel
		if model == "" {
			model = "unavailable"
		}
		n, err := info.Store.Count(r.Context())
		if err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status":        "unhealthy",
				"whisper_model": model,
				"error":         err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":           "healthy",
			"whisper_model":    model,
			"questions_loaded": n,
		})
	}
}
