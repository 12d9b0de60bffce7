package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/lang"
	"finitefield.org/landing-web/internal/observability"
)

// LocaleParam selects a locale explicitly, e.g. /?hl=en.
const LocaleParam = "hl"

// Locale resolves the active locale and stores it on the request context as a
// lang.Context. Precedence: the hl query parameter, the session, then
// Accept-Language when the site negotiates, then the primary locale. Explicit
// choices are remembered in the session.
func Locale() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			site, ok := SiteFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			pair := site.Pair()
			sess, hasSession := SessionFromContext(r.Context())

			current, explicit := pair.Lookup(r.URL.Query().Get(LocaleParam))
			switch {
			case explicit:
				if hasSession {
					sess.SetLocale(pair.Code(current))
				}
			case hasSession && sess.Locale() != "":
				current, _ = pair.Lookup(sess.Locale())
			case site.NegotiateLanguage():
				current = pair.Match(r.Header.Get("Accept-Language"))
				w.Header().Add("Vary", "Accept-Language")
			default:
				current = content.Primary
			}

			lc := lang.New(pair).With(current)
			w.Header().Set("Content-Language", lc.Code())
			observability.Annotate(r.Context(), zap.String("locale", lc.Code()))

			next.ServeHTTP(w, r.WithContext(lang.WithContext(r.Context(), lc)))
		})
	}
}
