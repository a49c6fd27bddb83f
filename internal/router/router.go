package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/RigobertoEHA1/chismezon/internal/middleware"
	"github.com/RigobertoEHA1/chismezon/internal/middleware/metrics"
	"github.com/RigobertoEHA1/chismezon/internal/setup"
)

// New creates and configures the mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()
	cfg := deps.Config

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	// setup CORS for the frontend
	r.Use(handlers.CORS(
		handlers.AllowedOrigins(cfg.Public.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	))

	// JSON API only, no scripts/styles needed
	apiCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeadersWithCSP(cfg.Public.SecureCookies, apiCSP))

	r.Use(metrics.Middleware)

	// Every visitor gets the anonymous device token the vote gate keys on
	r.Use(mw.DeviceToken(cfg.Public.SecureCookies))

	// Add a wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Uploaded media is public by URL
	r.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(deps.Media.Root()))))

	v1 := r.PathPrefix("/v1").Subrouter()

	// Auth routes
	auth := v1.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", h.Login).Methods("POST")
	auth.HandleFunc("/logout", h.Logout).Methods("POST")
	auth.Handle("/me", mw.WithAuthState(deps.Jwt)(http.HandlerFunc(h.Me))).Methods("GET")

	// Public reads and anonymous writes
	v1.HandleFunc("/noticias", h.GetAllNews).Methods("GET")
	v1.HandleFunc("/noticias/{id}", h.GetNews).Methods("GET")
	v1.HandleFunc("/noticias/{id}/comentarios", h.GetComments).Methods("GET")
	v1.HandleFunc("/noticias/{id}/comentarios", h.CreateComment).Methods("POST")
	v1.HandleFunc("/noticias/{id}/reaccion", h.GetReaction).Methods("GET")
	v1.HandleFunc("/noticias/{id}/reaccion", h.CastReaction).Methods("POST")

	// Admin routes
	adminOnly := mw.AdminOnly(deps.Jwt)
	v1.Handle("/noticias", adminOnly(http.HandlerFunc(h.CreateNews))).Methods("POST")
	v1.Handle("/noticias/{id}", adminOnly(http.HandlerFunc(h.UpdateNews))).Methods("PUT")
	v1.Handle("/noticias/{id}", adminOnly(http.HandlerFunc(h.DeleteNews))).Methods("DELETE")
	v1.Handle("/admin/uploads", adminOnly(http.HandlerFunc(h.Upload))).Methods("POST")

	return r
}
