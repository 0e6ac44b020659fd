// internal/app/features/home/routes.go
package home

import (
	"github.com/go-chi/chi/v5"

	uierrors "github.com/guichet-ga/guichet/internal/app/features/errors"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRoot)
	r.Get("/services", h.ServeServices)
	r.Get("/aide", h.ServeAide)

	// Mounted at the site root, so stray paths land here.
	r.NotFound(uierrors.RenderNotFound)
	return r
}
