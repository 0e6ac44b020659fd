// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session token configuration
	SessionSecret   string        // HMAC key for signing session tokens (must be strong in production)
	SessionCookie   string        // Cookie name carrying the session token
	SessionDomain   string        // Cookie domain (blank means current host)
	SessionLifetime time.Duration // How long issued tokens stay valid

	// Audit logging: "all" (db+log), "db", "log", or "off"
	AuditLogAuth string

	// Seed demo accounts on startup when the users collection is empty
	SeedDemo bool
}
