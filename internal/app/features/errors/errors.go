// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
	BackURL string
}

// Handler is the errors feature handler. No DB needed; it just
// renders templates.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Error codes carried in the ?error= query parameter.
const (
	CodeCredentialsSignin = "CredentialsSignin"
	CodeAccessDenied      = "AccessDenied"
	CodeSessionExpired    = "SessionExpired"
)

func messageFor(code string) string {
	switch code {
	case CodeCredentialsSignin:
		return "Email ou mot de passe incorrect."
	case CodeAccessDenied:
		return "Vous n'avez pas accès à cette page."
	case CodeSessionExpired:
		return "Votre session a expiré. Veuillez vous reconnecter."
	default:
		return "Une erreur est survenue lors de l'authentification."
	}
}

// ServeAuthError renders the authentication error page.
// GET /auth/erreur?error=<code>
func (h *Handler) ServeAuthError(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Erreur d'authentification", ""),
		Message: messageFor(query.Get(r, "error")),
		BackURL: "/auth/connexion",
	}

	templates.Render(w, r, "error_auth", data)
}
