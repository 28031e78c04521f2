// Package config reads process settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the server.
type Config struct {
	Addr        string
	WebDir      string
	DatabaseURL string
	MongoURI    string
	MongoDB     string
	CORSOrigins []string

	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	SessionTTL  time.Duration
	DisableAuth bool
	// TrustForwardAuth accepts the Remote-User header set by a fronting
	// auth proxy. Only enable it when the proxy strips that header from
	// client requests.
	TrustForwardAuth bool
}

// SSOEnabled reports whether enough OIDC settings are present to offer SSO.
func (c *Config) SSOEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. Missing files are skipped; variables already set in the
// environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	c := &Config{
		Addr:             env("ADDR", ":8080"),
		WebDir:           env("WEB_DIR", "web"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          env("MONGO_DB", "fitplan"),
		CORSOrigins:      splitList(os.Getenv("CORS_ORIGINS")),
		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
	}

	ttl, err := time.ParseDuration(env("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("SESSION_TTL: must be positive, got %s", ttl)
	}
	c.SessionTTL = ttl

	if c.DisableAuth, err = envBool("DISABLE_AUTH"); err != nil {
		return nil, err
	}
	if c.TrustForwardAuth, err = envBool("TRUST_FORWARD_AUTH"); err != nil {
		return nil, err
	}
	return c, nil
}

// envBool parses an optional boolean variable; unset means false.
func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
