// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
)

// RenderUnavailable shows a friendly "service indisponible" page with
// a 503 status. Used when the database cannot be reached.
func RenderUnavailable(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/"
	}

	w.WriteHeader(http.StatusServiceUnavailable)
	templates.Render(w, r, "error_auth", pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Service indisponible", ""),
		Message: "Le service est temporairement indisponible. Veuillez réessayer dans quelques instants.",
		BackURL: backURL,
	})
}

// RenderNotFound shows a friendly 404 page.
func RenderNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_auth", pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page introuvable", ""),
		Message: "La page demandée n'existe pas.",
		BackURL: "/",
	})
}
