// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	connexionfeature "github.com/guichet-ga/guichet/internal/app/features/connexion"
	contactfeature "github.com/guichet-ga/guichet/internal/app/features/contact"
	dashboardfeature "github.com/guichet-ga/guichet/internal/app/features/dashboard"
	deconnexionfeature "github.com/guichet-ga/guichet/internal/app/features/deconnexion"
	errorsfeature "github.com/guichet-ga/guichet/internal/app/features/errors"
	healthfeature "github.com/guichet-ga/guichet/internal/app/features/health"
	homefeature "github.com/guichet-ga/guichet/internal/app/features/home"
	journalfeature "github.com/guichet-ga/guichet/internal/app/features/journal"
	utilisateursfeature "github.com/guichet-ga/guichet/internal/app/features/utilisateurs"
	"github.com/guichet-ga/guichet/internal/app/store/audit"
	organizationstore "github.com/guichet-ga/guichet/internal/app/store/organizations"
	userstore "github.com/guichet-ga/guichet/internal/app/store/users"
	"github.com/guichet-ga/guichet/internal/app/system/auditlog"
	"github.com/guichet-ga/guichet/internal/app/system/auth"
	"github.com/guichet-ga/guichet/internal/app/system/policy"
	"github.com/guichet-ga/guichet/internal/app/system/session"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. The portal builds the session
// manager, the authenticator and the authorization gate, then mounts
// the public pages, the auth flows and the role-scoped areas.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessions, err := session.NewManager(appCfg.SessionSecret, appCfg.SessionLifetime,
		appCfg.SessionCookie, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	db := deps.MongoDatabase
	recorder := auditlog.New(audit.New(db), logger, appCfg.AuditLogAuth)
	authn := auth.NewAuthenticator(userstore.New(db), organizationstore.New(db), recorder, logger)
	pol := policy.Default()

	r := chi.NewRouter()

	// Single authorization gate: public paths pass, everything else
	// needs a valid session and an allowed role.
	r.Use(policy.Gate(pol, sessions, logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(pol, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	contactHandler := contactfeature.NewHandler(logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Authentication
	connexionHandler := connexionfeature.NewHandler(authn, sessions, pol, logger)
	r.Mount("/auth/connexion", connexionfeature.Routes(connexionHandler))

	deconnexionHandler := deconnexionfeature.NewHandler(authn, sessions, logger)
	r.Mount("/auth/deconnexion", deconnexionfeature.Routes(deconnexionHandler))

	errorsHandler := errorsfeature.NewHandler()
	r.Get("/auth/erreur", errorsHandler.ServeAuthError)

	// Role-scoped dashboards. The gate has already checked the role;
	// handlers only read claims from context.
	dashboardHandler := dashboardfeature.NewHandler(db, logger)
	r.Get("/admin/dashboard", dashboardHandler.ServeAdmin)
	r.Get("/manager/dashboard", dashboardHandler.ServeManager)
	r.Get("/agent/dashboard", dashboardHandler.ServeAgent)
	r.Get("/citoyen/dashboard", dashboardHandler.ServeCitoyen)

	// Admin surfaces
	usersHandler := utilisateursfeature.NewHandler(db, logger)
	r.Mount("/admin/utilisateurs", utilisateursfeature.Routes(usersHandler))

	journalHandler := journalfeature.NewHandler(db, logger)
	r.Mount("/admin/journal", journalfeature.Routes(journalHandler))

	return r, nil
}
