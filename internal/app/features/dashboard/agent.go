// internal/app/features/dashboard/agent.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
	"go.uber.org/zap"
)

type agentData struct {
	viewdata.BaseVM
}

// ServeAgent handles GET /agent/dashboard. The demandes queue will
// land here once the demandes module exists; for now the page shows
// the agent's identity and organization.
func (h *Handler) ServeAgent(w http.ResponseWriter, r *http.Request) {
	c, ok := h.claims(w, r)
	if !ok {
		return
	}

	data := agentData{
		BaseVM: viewdata.NewBaseVM(r, "Espace agent", "/agent/dashboard"),
	}

	h.Log.Debug("agent dashboard served", zap.String("user_id", c.UserID))

	templates.Render(w, r, "agent_dashboard", data)
}
