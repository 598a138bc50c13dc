package handlers

import (
	"net/http"

	"github.com/vangoframework/uikit/internal/templates/pages"
)

// Home renders the variant gallery.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.GalleryData{ClassName: r.URL.Query().Get("className")}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Gallery(data).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render gallery", "error", err)
	}
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}
