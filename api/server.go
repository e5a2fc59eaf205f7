package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/dreamcraft-eng/dreamcraft-backend/auth"
	"github.com/dreamcraft-eng/dreamcraft-backend/config"
	"github.com/dreamcraft-eng/dreamcraft-backend/database"
	"github.com/dreamcraft-eng/dreamcraft-backend/storage"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(cfg config.Config, database database.Database, store storage.Store) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", cfg.Port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	router := newRouter(cfg, database, issuer, store)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

func newRouter(cfg config.Config, database database.Database, issuer auth.TokenIssuer, store storage.Store) *chi.Mux {
	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(ColoredHTTPLoggingMiddleware)

	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	handlers := initializeHandlers(database, issuer, store)
	authMiddleware := newAuthMiddleware(issuer, database.UserRepo())

	setupRoutes(chiRouter, handlers, authMiddleware)

	if diskStore, ok := store.(*storage.DiskStore); ok {
		serveUploads(chiRouter, cfg.UploadPath, diskStore.Dir())
	}

	return chiRouter
}

// serveUploads exposes the local upload directory as static files.
func serveUploads(r chi.Router, publicPath, dir string) {
	fileServer := http.StripPrefix(publicPath, http.FileServer(http.Dir(dir)))
	r.Get(publicPath+"/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
