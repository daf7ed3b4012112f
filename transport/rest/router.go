package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires every route. Mutating game routes require a bearer token.
func NewRouter(handlers *Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/ping", pingHandler)

	router.Post("/players", handlers.signUp)
	router.Post("/sessions", handlers.signIn)
	router.Get("/leaderboard", handlers.leaderboard)

	router.Get("/seasons/active", handlers.activeSeason)
	router.Get("/seasons/{id}/standings", handlers.standings)

	router.Get("/games", handlers.listOpenGames)
	router.Get("/games/{id}", handlers.getGame)

	router.Group(func(r chi.Router) {
		r.Use(authenticate(handlers.logger, handlers.players))

		r.Get("/players/me", handlers.me)
		r.Post("/seasons", handlers.createSeason)

		r.Post("/games", handlers.createGame)
		r.Post("/games/{id}/players", handlers.joinGame)
		r.Post("/games/{id}/moves", handlers.makeTurn)
		r.Delete("/games/{id}", handlers.deleteGame)
	})

	return router
}
