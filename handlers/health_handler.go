package handlers

import (
	"net/http"
	"time"
)

const Version = "1.0.0"

type HealthHandler struct {
	Started time.Time
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.Started).Seconds(),
		"version":   Version,
	})
}
