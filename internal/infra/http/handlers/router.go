package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aprilandbutter/storefront/internal/infra/http/middleware"
)

type RouterDeps struct {
	Contact        *ContactHandler
	Overlay        *OverlayHandler
	Pages          *PageHandler
	Health         *HealthHandler
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
	AccessLog      bool
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if d.AccessLog {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	limit := func(h http.HandlerFunc) http.Handler {
		if d.RateLimiter == nil {
			return h
		}
		return d.RateLimiter.Limit(h)
	}

	r.Get("/health", d.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/about", d.Pages.About)
	r.Get("/visit-us", d.Pages.VisitUs)
	r.Get("/contact/info", d.Pages.ContactInfo)

	r.Method(http.MethodPost, "/contact", limit(d.Contact.Submit))
	r.Route("/contact/forms", func(r chi.Router) {
		r.Method(http.MethodPost, "/", limit(d.Contact.OpenForm))
		r.Get("/{formID}", d.Contact.GetForm)
		r.Delete("/{formID}", d.Contact.CloseForm)
		r.Patch("/{formID}/fields/{field}", d.Contact.UpdateField)
		r.Method(http.MethodPost, "/{formID}/submit", limit(d.Contact.SubmitForm))
	})

	r.Route("/overlay/sessions", func(r chi.Router) {
		r.Method(http.MethodPost, "/", limit(d.Overlay.Open))
		r.Get("/{sessionID}", d.Overlay.Get)
		r.Delete("/{sessionID}", d.Overlay.Close)
		r.Put("/{sessionID}/query", d.Overlay.SetQuery)
		r.Post("/{sessionID}/saves/{slug}", d.Overlay.Save)
	})

	return r
}
