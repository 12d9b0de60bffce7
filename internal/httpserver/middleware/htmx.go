package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const htmxContextKey contextKey = "htmx.info"

// HTMXInfo holds the HX-* request headers the handlers act on.
type HTMXInfo struct {
	IsHTMX     bool
	CurrentURL string
	Target     string
	// HistoryRestore is set when htmx missed its history cache and needs the
	// full page instead of a fragment.
	HistoryRestore bool
}

// Fragment reports whether the response may be a partial swap.
func (i HTMXInfo) Fragment() bool {
	return i.IsHTMX && !i.HistoryRestore
}

// HTMX reads the HX-* headers into the request context.
func HTMX() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := HTMXInfo{
				IsHTMX:         isTrue(r.Header.Get("HX-Request")),
				CurrentURL:     r.Header.Get("HX-Current-URL"),
				Target:         r.Header.Get("HX-Target"),
				HistoryRestore: isTrue(r.Header.Get("HX-History-Restore-Request")),
			}
			w.Header().Add("Vary", "HX-Request")
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), htmxContextKey, info)))
		})
	}
}

func isTrue(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// HTMXInfoFromContext returns the zero value outside the HTMX middleware.
func HTMXInfoFromContext(ctx context.Context) HTMXInfo {
	info, _ := ctx.Value(htmxContextKey).(HTMXInfo)
	return info
}

// IsHTMXRequest reports whether htmx issued the request.
func IsHTMXRequest(ctx context.Context) bool {
	return HTMXInfoFromContext(ctx).IsHTMX
}

// WantsFragment reports whether the request can be answered with a partial.
func WantsFragment(ctx context.Context) bool {
	return HTMXInfoFromContext(ctx).Fragment()
}

// NoStore marks responses as uncacheable. Overlay fragments and redirects
// depend on the session, so shared caches must not keep them.
func NoStore() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
	}
}

// Private lets browsers revalidate pages while keeping them out of shared
// caches, since the rendered locale comes from the session cookie.
func Private() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "private, no-cache")
			w.Header().Add("Vary", "Cookie")
			next.ServeHTTP(w, r)
		})
	}
}
