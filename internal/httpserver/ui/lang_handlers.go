package ui

import (
	"net/http"

	"go.uber.org/zap"

	custommw "finitefield.org/landing-web/internal/httpserver/middleware"
	"finitefield.org/landing-web/internal/lang"
	"finitefield.org/landing-web/internal/observability"
)

// LangToggle flips the session locale and sends the visitor back to the page
// they came from.
func (h *Handlers) LangToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := custommw.SessionFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	next := lang.FromContext(ctx).Toggle()
	sess.SetLocale(next.Code())
	observability.Annotate(ctx, zap.String("locale_selected", next.Code()))

	if custommw.IsHTMXRequest(ctx) {
		current := custommw.HTMXInfoFromContext(ctx).CurrentURL
		if hasLocaleParam(current) {
			w.Header().Set("HX-Redirect", returnPath(current))
		} else {
			w.Header().Set("HX-Refresh", "true")
		}
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, returnPath(r.PostFormValue("return_to")), http.StatusSeeOther)
}
