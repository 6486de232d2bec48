package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	// BaseURL is the address of the ordering backend.
	BaseURL string

	// LegacyBaseURL hosts the alternate deployment that still serves the
	// /api/users and /api/user paths.
	LegacyBaseURL string

	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration

	// TokenPath is where the remembered session token is kept.
	TokenPath string
)

const (
	defaultBaseURL       = "http://localhost:5555"
	defaultLegacyBaseURL = "https://api-test-ouk9.onrender.com"
	defaultTimeout       = 15 * time.Second
)

func Init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Fatalf("failed to load .env: %v", err)
	}

	BaseURL = envOr("COMANDA_API_URL", defaultBaseURL)
	LegacyBaseURL = envOr("COMANDA_LEGACY_API_URL", defaultLegacyBaseURL)

	RequestTimeout = defaultTimeout
	if raw := os.Getenv("COMANDA_REQUEST_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			logrus.Fatalf("invalid COMANDA_REQUEST_TIMEOUT %q: %v", raw, err)
		}
		RequestTimeout = d
	}

	TokenPath = os.Getenv("COMANDA_TOKEN_PATH")
	if TokenPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			logrus.Fatalf("cannot resolve config dir for token file: %v", err)
		}
		TokenPath = filepath.Join(dir, "comanda", "token")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
