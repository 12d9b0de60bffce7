package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"finitefield.org/landing-web/internal/config"
	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/observability"
)

const siteContextKey contextKey = "landing.site"

// SiteResolver maps a normalised host onto the site serving it.
type SiteResolver interface {
	Resolve(host string) *content.Site
}

// Site attaches the site serving the request host. Unknown hosts get the
// default site; an empty registry answers 503.
func Site(sites SiteResolver) func(http.Handler) http.Handler {
	if sites == nil {
		panic("site resolver is required")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, err := config.NormalizeHost(r.Host)
			if err != nil {
				host = ""
			}
			site := sites.Resolve(host)
			if site == nil {
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			}
			observability.Annotate(r.Context(), zap.String("site", site.ID()))

			ctx := context.WithValue(r.Context(), siteContextKey, site)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SiteFromContext returns the site resolved for this request.
func SiteFromContext(ctx context.Context) (*content.Site, bool) {
	if ctx == nil {
		return nil, false
	}
	site, ok := ctx.Value(siteContextKey).(*content.Site)
	return site, ok && site != nil
}
