// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"
	"time"

	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const dashboardTimeout = 10 * time.Second

type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}

// claims pulls the session claims the gate placed in context. The gate
// guarantees their presence on every dashboard route, so a miss is a
// wiring bug; the redirect keeps it harmless.
func (h *Handler) claims(w http.ResponseWriter, r *http.Request) (*session.Claims, bool) {
	c, ok := session.CurrentClaims(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil, false
	}
	return c, true
}

// ServeAdmin handles GET /admin/dashboard. SUPER_ADMIN gets the
// national view, ADMIN and MANAGER the organization view.
func (h *Handler) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	c, ok := h.claims(w, r)
	if !ok {
		return
	}

	if c.Role == models.RoleSuperAdmin {
		h.serveSuperAdmin(w, r, c)
		return
	}
	h.serveOrgAdmin(w, r, c)
}
