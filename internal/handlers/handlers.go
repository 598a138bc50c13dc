package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vangoframework/uikit/internal/config"
	"github.com/vangoframework/uikit/internal/metrics"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config  *config.Config
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) *Handlers {
	return &Handlers{
		config:  cfg,
		metrics: m,
		logger:  logger,
	}
}

// writeJSON encodes v with the given status. Encoding failures are logged;
// the status line has already been sent by then.
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
