// Package server sets up the HTTP server, router, and all route definitions.
//
// This package is the "wiring" layer — the composition root where the whole
// dependency chain is assembled in one place:
//
//	sqlite.DB → UserService/RecipeService → UserHandler/RecipeHandler → routes
//
// Each layer only receives what it needs: services get repository
// interfaces, handlers get services, the router gets handlers.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Shubhangisharma21/CookerHelper/internal/auth"
	"github.com/Shubhangisharma21/CookerHelper/internal/handler"
	"github.com/Shubhangisharma21/CookerHelper/internal/middleware"
	sqliteRepo "github.com/Shubhangisharma21/CookerHelper/internal/repository/sqlite"
	"github.com/Shubhangisharma21/CookerHelper/internal/service"
)

// Config holds server configuration, loaded from the environment in
// cmd/server. JWTSecret and DBPath are the two required external
// collaborators; Port defaults to 5000.
type Config struct {
	Port      int
	DBPath    string
	JWTSecret string
}

// Server owns the router and the database connection. The DB is closed
// during graceful shutdown so the WAL is flushed and the file lock released.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server: opens the database, builds the service and handler
// chain, and wires the routes.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
//
//	GET    /                → health text (public)
//	POST   /users/register  → create account (public)
//	POST   /users/login     → issue bearer token (public)
//	GET    /users/profile   → caller's record (bearer)
//	GET    /recipes         → all recipes, any owner (public)
//	POST   /recipes         → create (bearer)
//	GET    /recipes/my      → caller's recipes (bearer)
//	PUT    /recipes/{id}    → partial update, owner-scoped (bearer)
//	DELETE /recipes/{id}    → delete, owner-scoped (bearer)
//
// MIDDLEWARE ORDER MATTERS — ours:
//  1. RequestID — assigns unique ID to each request (for tracing)
//  2. RealIP — extracts real client IP from proxy headers
//  3. Recoverer — catches panics and returns 500 instead of crashing
//  4. Logger — logs each request with timing info
//
// Auth is per-route-group, not global: the public read endpoints must work
// without a token.
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	tokens, err := auth.NewTokenService(s.config.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()

	userService := service.NewUserService(s.db.Users(), passwords, tokens, s.logger)
	recipeService := service.NewRecipeService(s.db, s.logger)

	userHandler := handler.NewUserHandler(userService, s.logger)
	recipeHandler := handler.NewRecipeHandler(recipeService, s.logger)

	requireAuth := auth.RequireAuth(tokens)

	// Health check — plain text, mirrors what the frontend pings.
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Backend is running"))
	})

	s.router.Route("/users", func(r chi.Router) {
		r.Post("/register", userHandler.HandleRegister)
		r.Post("/login", userHandler.HandleLogin)
		r.With(requireAuth).Get("/profile", userHandler.HandleProfile)
	})

	s.router.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipeHandler.HandleListAll) // public — deliberately unscoped

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", recipeHandler.HandleCreate)
			r.Get("/my", recipeHandler.HandleListMine)
			r.Put("/{id}", recipeHandler.HandleUpdate)
			r.Delete("/{id}", recipeHandler.HandleDelete)
		})
	})

	return nil
}

// Handler exposes the configured router. Tests mount it on httptest.Server
// instead of going through Start's listen/shutdown loop.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the server's database connection. Start does this itself;
// callers using Handler() directly (tests) should defer Close.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the HTTP server and handles graceful shutdown.
//
// GRACEFUL SHUTDOWN:
//  1. Stop accepting new HTTP connections
//  2. Wait for in-flight requests to finish (30s timeout)
//  3. Close the database connection (flushes WAL, releases file lock)
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		// Give in-flight requests 30 seconds to complete
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
