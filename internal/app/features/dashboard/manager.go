// internal/app/features/dashboard/manager.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	metricsstore "github.com/guichet-ga/guichet/internal/app/store/metrics"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type managerData struct {
	viewdata.BaseVM
	AgentsCount int64
}

// ServeManager handles GET /manager/dashboard.
func (h *Handler) ServeManager(w http.ResponseWriter, r *http.Request) {
	c, ok := h.claims(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()

	var agents int64
	if c.OrganizationID != "" {
		if orgID, err := primitive.ObjectIDFromHex(c.OrganizationID); err == nil {
			agents = metricsstore.FetchOrgAgentCount(ctx, h.DB, orgID)
		}
	}

	data := managerData{
		BaseVM:      viewdata.NewBaseVM(r, "Espace manager", "/manager/dashboard"),
		AgentsCount: agents,
	}

	h.Log.Debug("manager dashboard served", zap.String("user_id", c.UserID))

	templates.Render(w, r, "manager_dashboard", data)
}
