package handlers

import (
	"log"
	"net/http"

	"bookshelf/internal/database"
	"bookshelf/internal/middleware"
	"bookshelf/internal/services"
	"bookshelf/internal/session"
	"bookshelf/internal/views"
)

type Options struct {
	DB                *database.DB
	Sessions          *session.Manager
	Views             *views.Renderer
	Catalog           services.VolumeSource
	CatalogMaxResults int
	Logger            *log.Logger
}

func NewRouter(opts Options) *http.ServeMux {
	authMiddleware := middleware.NewAuthMiddleware(opts.Sessions)
	authHandler := NewAuthHandler(opts.DB, opts.Sessions, opts.Views, opts.Logger)
	bookHandler := NewBookHandler(opts.DB, opts.Sessions, opts.Views, opts.Logger)
	searchHandler := NewSearchHandler(opts.Catalog, opts.CatalogMaxResults, opts.Logger)
	healthHandler := NewHealthHandler(opts.DB)

	router := http.NewServeMux()

	router.HandleFunc("GET /login", authHandler.LoginForm)
	router.HandleFunc("POST /login", authHandler.Login)
	router.HandleFunc("GET /signup", authHandler.SignupForm)
	router.HandleFunc("POST /signup", authHandler.Signup)
	router.HandleFunc("GET /logout", authHandler.Logout)
	router.HandleFunc("GET /healthz", healthHandler.Check)

	router.Handle("GET /{$}", authMiddleware.RequireAuthFunc(bookHandler.Index))
	router.Handle("GET /add", authMiddleware.RequireAuthFunc(bookHandler.AddForm))
	router.Handle("POST /add", authMiddleware.RequireAuthFunc(bookHandler.Add))
	router.Handle("GET /details/{id}", authMiddleware.RequireAuthFunc(bookHandler.Details))
	router.Handle("POST /details/{id}", authMiddleware.RequireAuthFunc(bookHandler.Edit))
	router.Handle("POST /delete/{id}", authMiddleware.RequireAuthFunc(bookHandler.Delete))
	router.Handle("GET /search_books", authMiddleware.RequireAuthFunc(searchHandler.Search))

	return router
}
