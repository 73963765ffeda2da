package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SiteTitle string // header and <title> suffix
	Dev       bool   // dev mode: ephemeral session keys, insecure cookies allowed

	// Sessions
	SessionHashKey    string        // securecookie HMAC key, >= 32 bytes
	SessionBlockKey   string        // optional AES key (16, 24 or 32 bytes)
	SessionCookieName string        // ex: "devdocs_session"
	SessionSecure     bool          // Secure flag on the cookie
	SessionTTL        time.Duration // lifetime of a session (default: 720h)
	SessionGCInterval time.Duration // memory store sweep interval (default: 10m)
	LoginBurst        int           // login attempts allowed at once per IP
	LoginRefillPerMin int           // login tokens regained per minute per IP

	// Redis (optional; empty RedisAddr => in-memory session store)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict /readyz and /metrics to these networks
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

// RedisEnabled reports whether sessions are stored in Redis.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func Load() *Config {
	dev := mustBool("DEVDOCS_DEV", false)

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("DEVDOCS_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("DEVDOCS_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("DEVDOCS_LOG_LEVEL", "info"),
		PrettyLog: mustBool("DEVDOCS_PRETTY_LOG", true),

		SiteTitle: getenv("DEVDOCS_SITE_TITLE", "Dev Docs"),
		Dev:       dev,

		// Sessions
		SessionBlockKey:   getenv("DEVDOCS_SESSION_BLOCK_KEY", ""),
		SessionCookieName: getenv("DEVDOCS_SESSION_COOKIE", "devdocs_session"),
		SessionSecure:     mustBool("DEVDOCS_SESSION_SECURE", !dev),
		SessionTTL:        mustDuration("DEVDOCS_SESSION_TTL", 720*time.Hour),
		SessionGCInterval: mustDuration("DEVDOCS_SESSION_GC_INTERVAL", 10*time.Minute),
		LoginBurst:        getenvInt("DEVDOCS_LOGIN_BURST", 5),
		LoginRefillPerMin: getenvInt("DEVDOCS_LOGIN_REFILL_PER_MIN", 10),

		// Redis settings
		RedisAddr:           getenv("DEVDOCS_REDIS_ADDR", ""),
		RedisUser:           getenv("DEVDOCS_REDIS_USERNAME", ""),
		RedisPassword:       getenv("DEVDOCS_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("DEVDOCS_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("DEVDOCS_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("DEVDOCS_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("DEVDOCS_TRUST_PROXY", false),
	}

	// Dev mode falls back to an ephemeral key generated at startup
	if dev {
		cfg.SessionHashKey = getenv("DEVDOCS_SESSION_HASH_KEY", "")
	} else {
		cfg.SessionHashKey = requireEnv("DEVDOCS_SESSION_HASH_KEY")
	}

	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	return cfg
}

func (c *Config) validate() error {
	if c.SessionHashKey != "" && len(c.SessionHashKey) < 32 {
		return fmt.Errorf("DEVDOCS_SESSION_HASH_KEY must be at least 32 bytes, got %d", len(c.SessionHashKey))
	}
	switch len(c.SessionBlockKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("DEVDOCS_SESSION_BLOCK_KEY must be 16, 24 or 32 bytes, got %d", len(c.SessionBlockKey))
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("DEVDOCS_SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.SessionGCInterval <= 0 {
		return fmt.Errorf("DEVDOCS_SESSION_GC_INTERVAL must be positive, got %s", c.SessionGCInterval)
	}
	if c.LoginBurst < 1 || c.LoginRefillPerMin < 1 {
		return fmt.Errorf("DEVDOCS_LOGIN_BURST and DEVDOCS_LOGIN_REFILL_PER_MIN must be >= 1")
	}
	return nil
}

// Redacted returns a copy safe to log.
func (c *Config) Redacted() Config {
	cp := *c
	const redacted = "***REDACTED***"
	if cp.SessionHashKey != "" {
		cp.SessionHashKey = redacted
	}
	if cp.SessionBlockKey != "" {
		cp.SessionBlockKey = redacted
	}
	if cp.RedisPassword != "" {
		cp.RedisPassword = redacted
	}
	if cp.RedisUser != "" {
		cp.RedisUser = redacted
	}
	return cp
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
