// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS); AppConfig is
// everything specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// API token configuration
	JWTSecret string        // Secret for signing bearer tokens (must be strong in production)
	TokenTTL  time.Duration // Bearer token lifetime

	// Login rate limiting
	LoginIPLimit     int           // Attempts per IP per window
	LoginIPWindow    time.Duration // Per-IP window
	LoginEmailLimit  int           // Attempts per email per window
	LoginEmailWindow time.Duration // Per-email window

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (empty disables outbound mail)
	MailSMTPPort int    // SMTP server port
	MailSMTPUser string // SMTP username
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address

	// Bootstrap admin (mentora) created on startup when absent
	AdminEmail    string
	AdminName     string
	AdminPassword string
}
