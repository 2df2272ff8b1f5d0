package http

import (
	"net/http"
	"strconv"

	"github.com/mind-engage/mindengage-english/internal/audit"
)

// AuditEventsHandler pages through the catalog change log.
// GET /audit/events?after=<seq>&limit=<n>
func AuditEventsHandler(repo *audit.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		after, err := strconv.ParseInt(r.URL.Query().Get("after"), 10, 64)
		if err != nil {
			after = 0
		}
		events, err := repo.Since(r.Context(), after, parseIntDefault(r.URL.Query().Get("limit"), 100))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, events)
	}
}
