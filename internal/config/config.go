package config // package config loads application configuration from environment variables

import (
	"log"  // log is used to report configuration errors and halt execution
	"os"   // os provides access to environment variables
	"time" // time expresses the upstream request timeout
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The service owns no database: everything it
// renders is fetched per request from the upstream EMS API named here.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	UpstreamBaseURL string        // base URL of the upstream EMS API
	UpstreamTimeout time.Duration // per-request timeout for upstream calls
	JWTSecret       string        // HS256 secret shared with the upstream token issuer; empty disables local verification
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message. JWT_SECRET is
// optional: without it every credentialed request resolves its viewer
// through the upstream /profile endpoint instead of a local token check.
func Load() Config {
	return Config{
		Env:             must("APP_ENV"),           // environment (dev/test/prod)
		Port:            must("APP_PORT"),          // port to bind the HTTP server
		UpstreamBaseURL: must("UPSTREAM_BASE_URL"), // EMS API root, e.g. https://ems-backend-9cfa.onrender.com
		UpstreamTimeout: envDurDefault("UPSTREAM_TIMEOUT", 15*time.Second),
		JWTSecret:       os.Getenv("JWT_SECRET"), // optional shared signing secret
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// envDurDefault parses an optional duration variable, falling back to the
// given default when unset or malformed.
func envDurDefault(key string, d time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return d
	}
	dur, err := time.ParseDuration(v)
	if err != nil || dur <= 0 {
		return d
	}
	return dur
}
