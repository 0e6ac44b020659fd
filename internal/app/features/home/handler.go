// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/guichet-ga/guichet/internal/app/system/policy"
	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the public site pages.
type Handler struct {
	Policy *policy.Policy
	Log    *zap.Logger
}

func NewHandler(pol *policy.Policy, logger *zap.Logger) *Handler {
	return &Handler{
		Policy: pol,
		Log:    logger,
	}
}

// service is one entry of the public service catalogue.
type service struct {
	Name        string
	Description string
}

// The catalogue is static for now; a services collection comes later
// with the demandes module.
var services = []service{
	{"Acte de naissance", "Demande de copie intégrale ou d'extrait d'acte de naissance."},
	{"Casier judiciaire", "Demande d'extrait de casier judiciaire (bulletin n°3)."},
	{"Carte nationale d'identité", "Première demande ou renouvellement de la CNI."},
	{"Certificat de nationalité", "Délivrance du certificat de nationalité."},
}

func (h *Handler) baseVM(r *http.Request, title string) viewdata.BaseVM {
	dash := ""
	if claims, ok := session.CurrentClaims(r); ok {
		dash = h.Policy.DefaultPath(claims.Role)
	}
	return viewdata.NewBaseVM(r, title, dash)
}

// ServeRoot handles GET /, the landing page.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Services []service
	}{
		BaseVM:   h.baseVM(r, "Accueil"),
		Services: services,
	}

	templates.Render(w, r, "home", data)
}

// ServeServices handles GET /services, the service catalogue.
func (h *Handler) ServeServices(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Services []service
	}{
		BaseVM:   h.baseVM(r, "Services"),
		Services: services,
	}

	templates.Render(w, r, "home_services", data)
}

// ServeAide handles GET /aide, the help page.
func (h *Handler) ServeAide(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: h.baseVM(r, "Aide"),
	}

	templates.Render(w, r, "home_aide", data)
}
