package ui

import (
	"net/http"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	custommw "finitefield.org/landing-web/internal/httpserver/middleware"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/lang"
	"finitefield.org/landing-web/internal/observability"
	"finitefield.org/landing-web/internal/overlay"
	"finitefield.org/landing-web/internal/views"
)

// Dependencies collects what the page handlers need.
type Dependencies struct {
	Catalog *i18n.Catalog
	Now     func() time.Time
}

// Handlers exposes HTTP handlers for landing pages and overlay fragments.
type Handlers struct {
	catalog *i18n.Catalog
	now     func() time.Time
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Handlers{
		catalog: deps.Catalog,
		now:     now,
	}
}

// Home renders the landing page of the resolved site. ?overlay=project|chat
// renders the page with that overlay already open.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	data, ok := h.pageData(w, r)
	if !ok {
		return
	}
	data.Host = overlay.NewPageHost(r.URL.Query().Get("overlay"))
	h.render(w, r, views.Page(data))
}

func (h *Handlers) pageData(w http.ResponseWriter, r *http.Request) (views.PageData, bool) {
	ctx := r.Context()
	site, ok := custommw.SiteFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return views.PageData{}, false
	}
	data := views.NewPageData(site, lang.FromContext(ctx), h.catalog)
	data.CSRFToken = custommw.CSRFTokenFromContext(ctx)
	data.Year = h.now().Year()
	data.Links = views.ServerLinks(r.URL.Path)
	return data, true
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, node g.Node) {
	templ.Handler(views.Component(node), templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			observability.FromContext(r.Context()).Error("render failed", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Robots allows crawling of pages and keeps fragments out of the index.
func Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte("User-agent: *\nAllow: /\nDisallow: /overlays/\nDisallow: /lang/\n"))
}
