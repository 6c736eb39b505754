// Package config provides centralized configuration for the Swag Labs
// browser suite. It loads settings from the environment (optionally
// seeded from a .env file), validates them, and carries the fixed
// catalogue of target-system user profiles.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the public deployment of the storefront under test.
	DefaultBaseURL = "https://www.saucedemo.com"

	// DefaultTimeout is the process-wide wait budget for a single
	// condition, matching the reference deployment's 40s.
	DefaultTimeout = 40 * time.Second

	// DefaultLoginSettleTimeout bounds one attempt of the login-click
	// race. The performance_glitch_user takes about 5s to navigate, so
	// anything shorter forces pointless retries.
	DefaultLoginSettleTimeout = 6 * time.Second

	// DefaultLoginClickAttempts caps the login-click retry loop.
	DefaultLoginClickAttempts = 3
)

// Config holds all suite configuration.
type Config struct {
	// BaseURL is the storefront root, without a trailing slash.
	BaseURL string

	// Headless controls browser visibility; set HEADLESS=false to watch.
	Headless bool

	// SlowMo inserts a delay between driver operations, for debugging.
	SlowMo time.Duration

	// Timeout is the default per-condition wait budget.
	Timeout time.Duration

	// LoginSettleTimeout is the per-attempt budget of the login-click race.
	LoginSettleTimeout time.Duration

	// LoginClickAttempts caps the login-click retry loop.
	LoginClickAttempts int
}

// ValidationError collects every configuration issue found during Load.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present; real environment
// variables win.
func Load() (*Config, error) {
	// Missing .env is the normal case in CI.
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:            strings.TrimSuffix(envOr("BASE_URL", DefaultBaseURL), "/"),
		Headless:           os.Getenv("HEADLESS") != "false",
		Timeout:            DefaultTimeout,
		LoginSettleTimeout: DefaultLoginSettleTimeout,
		LoginClickAttempts: DefaultLoginClickAttempts,
	}

	var issues []string

	if raw := os.Getenv("SLOW_MO_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			issues = append(issues, fmt.Sprintf("SLOW_MO_MS must be a non-negative integer, got %q", raw))
		} else {
			cfg.SlowMo = time.Duration(ms) * time.Millisecond
		}
	}

	if raw := os.Getenv("TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			issues = append(issues, fmt.Sprintf("TIMEOUT_SECONDS must be a positive integer, got %q", raw))
		} else {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	if raw := os.Getenv("LOGIN_SETTLE_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			issues = append(issues, fmt.Sprintf("LOGIN_SETTLE_SECONDS must be a positive integer, got %q", raw))
		} else {
			cfg.LoginSettleTimeout = time.Duration(secs) * time.Second
		}
	}

	if raw := os.Getenv("LOGIN_CLICK_ATTEMPTS"); raw != "" {
		attempts, err := strconv.Atoi(raw)
		if err != nil || attempts <= 0 {
			issues = append(issues, fmt.Sprintf("LOGIN_CLICK_ATTEMPTS must be a positive integer, got %q", raw))
		} else {
			cfg.LoginClickAttempts = attempts
		}
	}

	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		issues = append(issues, fmt.Sprintf("BASE_URL must be an absolute URL, got %q", cfg.BaseURL))
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Errors: issues}
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Credentials is one (username, password) pair accepted or rejected by
// the storefront's login form.
type Credentials struct {
	Username string
	Password string
}

// Password shared by every documented profile of the demo deployment.
const Password = "secret_sauce"

// The documented user profiles and their distinct behaviors on submission.
var (
	StandardUser          = Credentials{Username: "standard_user", Password: Password}
	LockedOutUser         = Credentials{Username: "locked_out_user", Password: Password}
	ProblemUser           = Credentials{Username: "problem_user", Password: Password}
	PerformanceGlitchUser = Credentials{Username: "performance_glitch_user", Password: Password}
	ErrorUser             = Credentials{Username: "error_user", Password: Password}
	VisualUser            = Credentials{Username: "visual_user", Password: Password}
)

// Creds looks up a documented profile by username.
func Creds(username string) (Credentials, bool) {
	for _, c := range []Credentials{
		StandardUser, LockedOutUser, ProblemUser,
		PerformanceGlitchUser, ErrorUser, VisualUser,
	} {
		if c.Username == username {
			return c, true
		}
	}
	return Credentials{}, false
}
