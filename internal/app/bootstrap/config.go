// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the portal.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_cookie, etc.
//   - Environment variables: GUICHET_MONGO_URI, GUICHET_SESSION_COOKIE, etc.
//   - Command-line flags: --mongo_uri, --session_cookie, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "guichet", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session token signing key (must be strong in production)"},
	{Name: "session_cookie", Default: "guichet-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_lifetime", Default: "720h", Desc: "Session token lifetime (e.g., 720h for 30 days)"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: "all", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Demo data
	{Name: "seed_demo", Default: false, Desc: "Seed demo accounts on startup when the users collection is empty"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, GUICHET_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GUICHET", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionSecret:   appValues.String("session_secret"),
		SessionCookie:   appValues.String("session_cookie"),
		SessionDomain:   appValues.String("session_domain"),
		SessionLifetime: appValues.Duration("session_lifetime", 720*time.Hour),

		AuditLogAuth: appValues.String("audit_log_auth"),

		SeedDemo: appValues.Bool("seed_demo"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI format is checked early, before attempting to
// connect, and a production run refuses the development session secret.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.SessionLifetime <= 0 {
		return fmt.Errorf("session_lifetime must be positive, got %s", appCfg.SessionLifetime)
	}

	if coreCfg.Env == "prod" && appCfg.SessionSecret == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("session_secret must be changed for production")
	}

	switch appCfg.AuditLogAuth {
	case "all", "db", "log", "off":
	default:
		return fmt.Errorf("audit_log_auth must be one of all|db|log|off, got %q", appCfg.AuditLogAuth)
	}

	return nil
}
