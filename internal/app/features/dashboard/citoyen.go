// internal/app/features/dashboard/citoyen.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
	"go.uber.org/zap"
)

type citoyenData struct {
	viewdata.BaseVM
	IsVerified bool
}

// ServeCitoyen handles GET /citoyen/dashboard.
func (h *Handler) ServeCitoyen(w http.ResponseWriter, r *http.Request) {
	c, ok := h.claims(w, r)
	if !ok {
		return
	}

	data := citoyenData{
		BaseVM:     viewdata.NewBaseVM(r, "Espace citoyen", "/citoyen/dashboard"),
		IsVerified: c.IsVerified,
	}

	h.Log.Debug("citoyen dashboard served", zap.String("user_id", c.UserID))

	templates.Render(w, r, "citoyen_dashboard", data)
}
