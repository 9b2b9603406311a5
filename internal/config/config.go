package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Secrets stay strings; durations are parsed so
// the rest of the code never re-reads the environment.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name

	JWTSecret string // secret used to verify JWTs issued upstream

	PayMode         string        // gateway mode: "test" or "prod"
	PayCID          string        // merchant code registered with the gateway
	PaySecretKey    string        // production gateway secret
	PaySecretKeyDev string        // test-mode gateway secret
	PayBaseURL      string        // gateway API root (optional override)
	PayApprovalURL  string        // redirect target after authorization
	PayCancelURL    string        // redirect target when the user aborts
	PayFailURL      string        // redirect target on gateway failure
	PayTimeout      time.Duration // per-request gateway timeout
	PendingTTL      time.Duration // lifetime of staged payment contexts
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:    must("APP_ENV"),
		Port:   must("APP_PORT"),
		DBUser: must("DB_USER"),
		DBPass: os.Getenv("DB_PASS"), // empty allowed
		DBHost: must("DB_HOST"),
		DBPort: must("DB_PORT"),
		DBName: must("DB_NAME"),

		JWTSecret: must("JWT_SECRET"),

		PayMode:         envStr("PAY_MODE", "test"),
		PayCID:          must("PAY_CID"),
		PaySecretKey:    os.Getenv("PAY_SECRET_KEY"),     // required only in prod mode
		PaySecretKeyDev: os.Getenv("PAY_SECRET_KEY_DEV"), // required only in test mode
		PayBaseURL:      os.Getenv("PAY_BASE_URL"),       // empty selects the gateway default
		PayApprovalURL:  must("PAY_APPROVAL_URL"),
		PayCancelURL:    must("PAY_CANCEL_URL"),
		PayFailURL:      must("PAY_FAIL_URL"),
		PayTimeout:      envDur("PAY_TIMEOUT", 10*time.Second),
		PendingTTL:      envDur("PAY_PENDING_TTL", 15*time.Minute),
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
