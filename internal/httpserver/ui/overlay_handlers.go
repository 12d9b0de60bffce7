package ui

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	custommw "finitefield.org/landing-web/internal/httpserver/middleware"
	"finitefield.org/landing-web/internal/observability"
	"finitefield.org/landing-web/internal/overlay"
	"finitefield.org/landing-web/internal/views"
)

const (
	eventOverlayOpened = "overlay:opened"
	eventOverlayClosed = "overlay:closed"
)

// OverlayOpen renders the overlay fragment swapped into #overlay-root. Plain
// navigation is redirected to the full page with the overlay open.
func (h *Handlers) OverlayOpen(w http.ResponseWriter, r *http.Request) {
	kind, err := overlay.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		if !errors.Is(err, overlay.ErrUnknownKind) {
			observability.FromContext(r.Context()).Warn("overlay kind", zap.Error(err))
		}
		http.NotFound(w, r)
		return
	}
	if !custommw.WantsFragment(r.Context()) {
		http.Redirect(w, r, "/?overlay="+kind.String(), http.StatusSeeOther)
		return
	}

	data, ok := h.pageData(w, r)
	if !ok {
		return
	}
	info := custommw.HTMXInfoFromContext(r.Context())
	// links must point back at the page the fragment lands on, not at this
	// endpoint.
	data.Links = views.ServerLinks(pagePath(info.CurrentURL))
	data.Host = overlay.NewPageHost(kind.String())
	observability.Annotate(r.Context(), zap.String("overlay", kind.String()))

	retarget(w, info)
	w.Header().Set("HX-Trigger", eventOverlayOpened)
	h.render(w, r, views.Overlays(data))
}

// OverlayClose empties #overlay-root and tells the page to release the
// scroll lock.
func (h *Handlers) OverlayClose(w http.ResponseWriter, r *http.Request) {
	if !custommw.WantsFragment(r.Context()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	retarget(w, custommw.HTMXInfoFromContext(r.Context()))
	w.Header().Set("HX-Trigger", eventOverlayClosed)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
}

// retarget redirects the swap to the overlay root when the triggering element
// aimed somewhere else.
func retarget(w http.ResponseWriter, info custommw.HTMXInfo) {
	if info.Target == "" || info.Target == views.OverlayRootID {
		return
	}
	w.Header().Set("HX-Retarget", "#"+views.OverlayRootID)
	w.Header().Set("HX-Reswap", "innerHTML")
}
