// internal/app/features/dashboard/admin.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/guichet-ga/guichet/internal/app/store/audit"
	metricsstore "github.com/guichet-ga/guichet/internal/app/store/metrics"
	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
	"go.uber.org/zap"
)

type adminData struct {
	viewdata.BaseVM
	National bool

	OrganizationsCount int64
	AdminsCount        int64
	ManagersCount      int64
	AgentsCount        int64
	CitizensCount      int64
	FailedLogins24     int64

	RecentEvents []audit.Entry
}

func (h *Handler) serveSuperAdmin(w http.ResponseWriter, r *http.Request, c *session.Claims) {
	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()

	counts := metricsstore.FetchDashboardCounts(ctx, h.DB)

	recent, err := audit.New(h.DB).GetRecent(ctx, 10)
	if err != nil {
		h.Log.Warn("recent audit query failed", zap.Error(err))
	}

	data := adminData{
		BaseVM:             viewdata.NewBaseVM(r, "Tableau de bord", "/admin/dashboard"),
		National:           true,
		OrganizationsCount: counts.Organizations,
		AdminsCount:        counts.Admins,
		ManagersCount:      counts.Managers,
		AgentsCount:        counts.Agents,
		CitizensCount:      counts.Citizens,
		FailedLogins24:     counts.FailedLogins24,
		RecentEvents:       recent,
	}

	h.Log.Debug("super admin dashboard served", zap.String("user_id", c.UserID))

	templates.Render(w, r, "admin_dashboard", data)
}

func (h *Handler) serveOrgAdmin(w http.ResponseWriter, r *http.Request, c *session.Claims) {
	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()

	counts := metricsstore.FetchDashboardCounts(ctx, h.DB)

	data := adminData{
		BaseVM:         viewdata.NewBaseVM(r, "Tableau de bord", "/admin/dashboard"),
		ManagersCount:  counts.Managers,
		AgentsCount:    counts.Agents,
		CitizensCount:  counts.Citizens,
		FailedLogins24: counts.FailedLogins24,
	}

	h.Log.Debug("admin dashboard served", zap.String("user_id", c.UserID))

	templates.Render(w, r, "admin_dashboard", data)
}
