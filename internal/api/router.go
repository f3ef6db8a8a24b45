package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"

	"github.com/jkmfoundation/site-api/internal/api/handler"
	"github.com/jkmfoundation/site-api/internal/api/middleware"
)

// RouterDeps holds all dependencies needed by the router. Nil services leave
// their routes unregistered.
type RouterDeps struct {
	DBPinger      handler.DBPinger
	Version       string
	OpenAPISpec   []byte
	Golf          handler.GolfRegistrar
	Contact       handler.ContactSubmitter
	Newsletter    handler.NewsletterSubscriber
	Marathon      handler.MarathonSubmitter
	Donations     handler.DonationTotaler
	StaticDir     string
	AllowedOrigin string
	ForceHTTPS    bool
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.RequireHTTPS(deps.ForceHTTPS))
	if deps.AllowedOrigin != "" {
		r.Use(middleware.CORS(deps.AllowedOrigin))
	}

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec)
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
	}

	if deps.Donations != nil {
		donationHandler := handler.NewDonationHandler(deps.Donations)
		r.Get("/api/donations/total", donationHandler.Total)
	}

	if deps.Contact != nil && deps.Newsletter != nil && deps.Marathon != nil {
		formHandler := handler.NewFormHandler(deps.Contact, deps.Newsletter, deps.Marathon)
		r.Post("/submit-form", formHandler.Contact)
		r.Post("/newsletter-subscribe", formHandler.Newsletter)
		r.Post("/submit-marathon-form", formHandler.Marathon)
	}

	if deps.Golf != nil {
		golfHandler := handler.NewGolfHandler(deps.Golf)
		r.Post("/submit-golf-4some-form", golfHandler.Register)
	}

	if deps.StaticDir != "" {
		staticHandler := handler.NewStaticHandler(deps.StaticDir)
		r.Get("/", staticHandler.Index)
		r.Get("/*", staticHandler.Assets)
	}

	return r
}
