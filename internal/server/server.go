package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/hongminglow/finance-be/internal/auth"
	"github.com/hongminglow/finance-be/internal/config"
	"github.com/hongminglow/finance-be/internal/dashboard"
	"github.com/hongminglow/finance-be/internal/http/handlers"
	"github.com/hongminglow/finance-be/internal/middleware"
	"github.com/hongminglow/finance-be/internal/rates"
	"github.com/hongminglow/finance-be/internal/receipts"
	"github.com/hongminglow/finance-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, uploads *receipts.Store) *Server {
	api := http.NewServeMux()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	gate := middleware.NewGate(tokens, store)

	handlers.NewHealthHandler(time.Now()).Register(api)
	handlers.NewUserHandler(store, tokens, dashboard.NewAggregator(store, store)).Register(api, gate)
	handlers.NewAssetHandler(store).Register(api, gate)
	handlers.NewTransactionHandler(store, uploads, cfg.MaxUploadBytes()).Register(api, gate)
	fetcher := rates.NewFetcher(cfg.CoinAPIURL, cfg.CoinAPIKey, store, nil)
	handlers.NewCryptoHandler(store, fetcher).Register(api, gate)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("GET "+receipts.URLPrefix, http.StripPrefix(receipts.URLPrefix, noListing(http.FileServer(http.Dir(uploads.Dir())))))

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(root))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Handler exposes the fully wrapped router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.inner.Handler
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}

// noListing hides directory indexes so receipts can only be fetched by exact name.
func noListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
