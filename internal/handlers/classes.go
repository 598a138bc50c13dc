package handlers

import (
	"net/http"

	"github.com/vangoframework/uikit/app/components/ui"
)

// ButtonClassesResponse is the body of GET /api/button-classes.
type ButtonClassesResponse struct {
	Variant   string `json:"variant"`
	Size      string `json:"size"`
	ClassName string `json:"className"`
	Class     string `json:"class"`
}

// ButtonClasses resolves the button class string for the query's variant,
// size and className. Unknown values are passed through and contribute nothing.
func (h *Handlers) ButtonClasses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cfg := ui.ButtonVariantsConfig{
		Variant:   ui.ButtonVariant(q.Get("variant")),
		Size:      ui.ButtonSize(q.Get("size")),
		ClassName: q.Get("className"),
	}

	h.metrics.ObserveButton(cfg.Variant, cfg.Size)
	h.logger.Debug("resolved button classes",
		"variant", cfg.Variant,
		"size", cfg.Size,
		"known_variant", cfg.Variant.Valid(),
		"known_size", cfg.Size.Valid(),
	)

	h.writeJSON(w, http.StatusOK, ButtonClassesResponse{
		Variant:   string(cfg.Variant),
		Size:      string(cfg.Size),
		ClassName: cfg.ClassName,
		Class:     ui.ButtonVariants(cfg),
	})
}

// CNResponse is the body of GET /api/cn.
type CNResponse struct {
	Class string `json:"class"`
}

// CN joins every repeated c query value, eliding empty ones.
func (h *Handlers) CN(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, CNResponse{Class: ui.CN(r.URL.Query()["c"]...)})
}
