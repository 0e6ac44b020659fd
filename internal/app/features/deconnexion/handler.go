// internal/app/features/deconnexion/handler.go
package deconnexion

import (
	"net/http"

	"github.com/guichet-ga/guichet/internal/app/system/auditlog"
	"github.com/guichet-ga/guichet/internal/app/system/auth"
	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	Auth     *auth.Authenticator
	Sessions *session.Manager
	Log      *zap.Logger
}

func NewHandler(authn *auth.Authenticator, sessions *session.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:     authn,
		Sessions: sessions,
		Log:      logger,
	}
}

// ServeLogout handles GET and POST /auth/deconnexion. Idempotent: with
// no valid session it still clears the cookie and redirects home, and
// only a real logout produces an audit entry.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	claims, err := h.Sessions.ReadRequest(r)
	if err == nil {
		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "logout")
		defer cancel()
		h.Auth.Logout(auditlog.WithRequestInfo(ctx, r), claims)
	} else if h.Sessions.TokenFromRequest(r) != "" {
		h.Log.Debug("logout with invalid session token")
	}

	h.Sessions.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
