package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/database"
	"bookshelf/internal/handlers"
	"bookshelf/internal/middleware"
	"bookshelf/internal/session"
	"bookshelf/internal/views"

	"github.com/rs/cors"
)

func main() {
	cfg := config.MustLoad()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags)

	db, err := database.Init(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	renderer, err := views.New()
	if err != nil {
		logger.Fatalf("Failed to load templates: %v", err)
	}

	router := handlers.NewRouter(handlers.Options{
		DB:                db,
		Sessions:          session.NewManager(cfg.Session.Secret, cfg.Session.MaxAge, cfg.Session.SecureCookie),
		Views:             renderer,
		Catalog:           catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.APIKey, cfg.Catalog.Timeout),
		CatalogMaxResults: cfg.Catalog.MaxResults,
		Logger:            logger,
	})

	// Cookies carry the session, so origins must be listed explicitly.
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	requestLogger := middleware.RequestLogger(log.New(os.Stdout, "[http] ", log.LstdFlags))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           requestLogger(c.Handler(router)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Printf("Server starting on http://%s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-done
	logger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Printf("Failed to gracefully shutdown server: %v", err)
	}
	logger.Println("Server stopped")
}
