// internal/app/features/connexion/handler.go
package connexion

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/guichet-ga/guichet/internal/app/system/auditlog"
	"github.com/guichet-ga/guichet/internal/app/system/auth"
	"github.com/guichet-ga/guichet/internal/app/system/policy"
	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/app/system/timeouts"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// French UI messages. Credential failures share one message so the
// form never reveals whether the email exists.
const (
	msgBadCredentials   = "Email ou mot de passe incorrect."
	msgStoreUnavailable = "Le service est temporairement indisponible. Veuillez réessayer dans quelques instants."
	msgMissingFields    = "Veuillez renseigner votre email et votre mot de passe."
)

type Handler struct {
	Auth     *auth.Authenticator
	Sessions *session.Manager
	Policy   *policy.Policy
	Log      *zap.Logger
}

func NewHandler(authn *auth.Authenticator, sessions *session.Manager, pol *policy.Policy, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:     authn,
		Sessions: sessions,
		Policy:   pol,
		Log:      logger,
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error       string
	Email       string
	CallbackURL string
}

// ServeLogin handles GET /auth/connexion. A visitor who already holds
// a valid session is sent straight to their dashboard.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if claims, err := h.Sessions.ReadRequest(r); err == nil {
		http.Redirect(w, r, h.Policy.DefaultPath(claims.Role), http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "connexion", loginFormData{
		BaseVM:      viewdata.NewBaseVM(r, "Connexion", ""),
		CallbackURL: query.Get(r, "callbackUrl"),
	})
}

// HandleLoginPost handles POST /auth/connexion.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	callback := r.PostFormValue("callbackUrl")

	if email == "" || password == "" {
		h.renderError(w, r, msgMissingFields, email, callback)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "login")
	defer cancel()
	ctx = auditlog.WithRequestInfo(ctx, r)

	claims, err := h.Auth.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrStoreUnavailable) {
			h.renderError(w, r, msgStoreUnavailable, email, callback)
			return
		}
		h.renderError(w, r, msgBadCredentials, email, callback)
		return
	}

	token, err := h.Sessions.Issue(*claims)
	if err != nil {
		h.Log.Error("issue session token failed",
			zap.String("user_id", claims.UserID), zap.Error(err))
		h.renderError(w, r, msgStoreUnavailable, email, callback)
		return
	}
	h.Sessions.SetCookie(w, token)

	// Only same-site relative targets are honored; anything else falls
	// back to the role's dashboard.
	dest := urlutil.SafeReturn(callback, "", h.Policy.DefaultPath(claims.Role))
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, msg, email, callback string) {
	templates.Render(w, r, "connexion", loginFormData{
		BaseVM:      viewdata.NewBaseVM(r, "Connexion", ""),
		Error:       msg,
		Email:       email,
		CallbackURL: callback,
	})
}
