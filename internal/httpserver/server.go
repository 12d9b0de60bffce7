package httpserver

import (
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/landing-web/internal/content"
	custommw "finitefield.org/landing-web/internal/httpserver/middleware"
	"finitefield.org/landing-web/internal/httpserver/ui"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/observability"
	"finitefield.org/landing-web/internal/session"
	"finitefield.org/landing-web/internal/views"
	"finitefield.org/landing-web/public"
)

const staticMaxAge = 7 * 24 * time.Hour

// Config holds runtime options for the landing HTTP server.
type Config struct {
	Address  string
	Sites    *content.Store
	Catalog  *i18n.Catalog
	Sessions *session.Manager
	Logger   *zap.Logger
	// Static overrides the embedded assets served under /static/.
	Static  fs.FS
	DevMode bool
	Now     func() time.Time

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	if cfg.Sites == nil || len(cfg.Sites.Sites()) == 0 {
		return nil, errors.New("httpserver: at least one site is required")
	}
	if cfg.Catalog == nil {
		return nil, errors.New("httpserver: catalog is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("httpserver: session manager is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	staticContent := cfg.Static
	if staticContent == nil {
		var err error
		if staticContent, err = public.StaticFS(); err != nil {
			return nil, err
		}
	}
	maxAge := staticMaxAge
	if cfg.DevMode {
		maxAge = 0
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.RequestLogger(logger))
	router.Use(observability.Recovery(logger))
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(30 * time.Second))

	router.Get("/healthz", ui.Healthz)
	router.Get("/robots.txt", ui.Robots)
	router.Handle("/static/*", http.StripPrefix("/static", custommw.Assets(staticContent, maxAge)))

	handlers := ui.NewHandlers(ui.Dependencies{
		Catalog: cfg.Catalog,
		Now:     cfg.Now,
	})
	mountPageRoutes(router, cfg, handlers)

	return &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       durationOr(cfg.ReadTimeout, 10*time.Second),
		WriteTimeout:      durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:       durationOr(cfg.IdleTimeout, 60*time.Second),
	}, nil
}

func mountPageRoutes(router chi.Router, cfg Config, h *ui.Handlers) {
	router.Group(func(r chi.Router) {
		r.Use(custommw.HTMX())
		r.Use(custommw.Site(cfg.Sites))
		r.Use(custommw.Session(cfg.Sessions))
		r.Use(custommw.Locale())
		r.Use(custommw.CSRF(custommw.CSRFConfig{FieldName: views.CSRFField}))

		r.With(custommw.Private()).Get("/", h.Home)
		r.Route("/overlays", func(r chi.Router) {
			r.Use(custommw.NoStore())
			r.Get("/close", h.OverlayClose)
			r.Get("/{kind}", h.OverlayOpen)
		})
		r.With(custommw.NoStore()).Post("/lang/toggle", h.LangToggle)
	})
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
