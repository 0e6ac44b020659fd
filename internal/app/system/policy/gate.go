package policy

import (
	"net/http"
	"net/url"

	"github.com/guichet-ga/guichet/internal/app/system/session"
	"go.uber.org/zap"
)

// Gate is the single authorization middleware for the portal. For each
// request it decides one of three outcomes:
//
//   - public path: pass through untouched
//   - no valid session on a protected path: 303 to the login page with
//     the original path+query in callbackUrl
//   - valid session but role not allowed here: 303 to the role's own
//     dashboard (never a 403 page)
//
// Requests that pass carry the session claims in context for handlers.
func Gate(p *Policy, sessions *session.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if p.IsPublic(path) {
				// Even on public pages, a valid session is useful for
				// the nav bar. Invalid tokens are simply ignored here.
				if claims, err := sessions.ReadRequest(r); err == nil {
					r = session.WithClaims(r, claims)
				}
				next.ServeHTTP(w, r)
				return
			}

			claims, err := sessions.ReadRequest(r)
			if err != nil {
				dest := "/auth/connexion?callbackUrl=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, dest, http.StatusSeeOther)
				return
			}

			if !p.Allows(claims.Role, path) {
				logger.Debug("route denied for role",
					zap.String("path", path),
					zap.String("role", string(claims.Role)),
					zap.String("user_id", claims.UserID))
				http.Redirect(w, r, p.DefaultPath(claims.Role), http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, session.WithClaims(r, claims))
		})
	}
}
