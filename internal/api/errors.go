package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/spacesedan/newslens/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("[API] Failed to encode response", slog.String("error", err.Error()))
	}
}

// writeError writes the {"detail": ...} error envelope.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}
