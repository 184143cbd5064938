// Package server wires the HTTP surface: CORS, optional bearer auth, the
// health probe, and the versioned API.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/nextlevelsbs/sopbuilder/config"
	"github.com/nextlevelsbs/sopbuilder/server/api"
)

const Version = "1.0.0"

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:8080",
	"https://nextlevelsbs.com",
	"https://www.nextlevelsbs.com",
}

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/api/health", handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware(cfg))

		h.Attach(r)
	})

	return &Server{
		Config: cfg,

		handler: otelhttp.NewHandler(r, "server"),
	}, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe runs the server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.Address,
		Handler: s.handler,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	w.Write([]byte(`{"status": "healthy", "version": "` + Version + `", "services": {"api": "operational", "llm_providers": "operational", "pdf_generation": "operational"}}`))
}

func allowedOrigins() []string {
	if val := os.Getenv("CORS_ORIGINS"); val != "" {
		var origins []string

		for _, origin := range strings.Split(val, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}

		return origins
	}

	return defaultOrigins
}

// authMiddleware rejects requests no configured authorizer accepts. Without
// authorizers the API stays open.
func authMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(cfg.Authorizers) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			for _, authorizer := range cfg.Authorizers {
				ctx, err := authorizer.Authenticate(r.Context(), r)

				if err == nil {
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
		})
	}
}
