package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.live)
		r.Post("/jwt", h.createSession)
		r.Post("/logout", h.destroySession)
		r.Get("/totalPostsCount", h.totalPostsCount)
		r.Get("/allItems", h.listItems)
		r.Get("/filteredItems", h.filteredItems)
		r.Get("/latestPosts", h.latestPosts)
	})

	// routes that require a valid session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/allItems", h.createItem)
		r.Post("/allRecovered", h.createRecovered)
		r.Get("/items/{id}", h.getItem)
		r.Patch("/items/{id}", h.updateItem)
		r.Delete("/items/{id}", h.deleteItem)

		// per-user listings additionally check that the requested owner
		// matches the authenticated session
		r.Group(func(r chi.Router) {
			r.Use(h.requireOwner)

			r.Get("/myItems", h.myItems)
			r.Get("/allRecovered", h.listRecovered)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
