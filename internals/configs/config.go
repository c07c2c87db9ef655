package configs

import (
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var DefaultCorsOrigins = []string{
	"http://localhost:8788",
	"http://localhost:3004",
	"http://localhost:3000",
	"http://127.0.0.1:8788",
	"http://127.0.0.1:3004",
	"http://127.0.0.1:3000",
}

const (
	AuthModeBearer = "bearer"
	AuthModeStatic = "static"
	AuthModeJWT    = "jwt"
)

type AppConfig struct {
	Environment string
	Port        string

	DatabaseURL string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	AuthMode     string
	APITokenHash string
	JWTSecret    string

	CorsOrigins []string
	Locale      string

	LogLevel  string
	LogFormat string

	StatsCron string
}

// App is filled by LoadEnv.
var App AppConfig

// =======================
// ENV LOADER
// =======================

// LoadEnv reads .env (skipped in production where the platform injects the env) and
// snapshots the configuration into App. It reports whether a .env file was loaded.
func LoadEnv() bool {
	loaded := false
	if os.Getenv("APP_ENV") != "production" {
		loaded = godotenv.Load() == nil
	}
	App = FromEnv()
	return loaded
}

func FromEnv() AppConfig {
	return AppConfig{
		Environment: GetEnv("APP_ENV", "development"),
		Port:        GetEnv("PORT", "8787"),

		DatabaseURL: GetEnv("DATABASE_URL"),
		DBUser:      GetEnv("DB_USER", "postgres"),
		DBPassword:  GetEnv("DB_PASSWORD"),
		DBHost:      GetEnv("DB_HOST", "localhost"),
		DBPort:      GetEnv("DB_PORT", "5432"),
		DBName:      GetEnv("DB_NAME", "mentoring"),
		DBSSLMode:   GetEnv("DB_SSLMODE", "disable"),

		AuthMode:     strings.ToLower(GetEnv("AUTH_MODE", AuthModeBearer)),
		APITokenHash: GetEnv("API_TOKEN_HASH"),
		JWTSecret:    GetEnv("JWT_SECRET"),

		CorsOrigins: SplitList(GetEnv("CORS_ALLOW_ORIGINS"), DefaultCorsOrigins),
		Locale:      GetEnv("APP_LOCALE", "en"),

		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "json"),

		StatsCron: GetEnv("STATS_CRON", "@every 1m"),
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// SplitList parses a comma separated env value; blank input yields fallback.
func SplitList(raw string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}

// DSN returns DATABASE_URL when set, otherwise a URL built from the DB_* parts with a
// server side statement timeout matching the request timeout.
func (c AppConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	q.Set("application_name", "mentoring")
	q.Set("options", "-c statement_timeout=5000")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}
