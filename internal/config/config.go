package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	LocalDBPath      string
	OnlineDBHost     string
	OnlineDBPort     string
	OnlineDBUser     string
	OnlineDBPassword string
	OnlineDBName     string
	JWTSecret        string
	ServerPort       string
	UploadDir        string
	ProbeTimeoutMS   string
}

func Load() *Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	return &Config{
		LocalDBPath:      getEnv("LOCAL_DB_PATH", "local.db"),
		OnlineDBHost:     getEnv("ONLINE_DB_HOST", ""),
		OnlineDBPort:     getEnv("ONLINE_DB_PORT", "5432"),
		OnlineDBUser:     getEnv("ONLINE_DB_USER", "postgres"),
		OnlineDBPassword: getEnv("ONLINE_DB_PASSWORD", "postgres"),
		OnlineDBName:     getEnv("ONLINE_DB_NAME", "quizhub"),
		JWTSecret:        getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		ProbeTimeoutMS:   getEnv("ONLINE_PROBE_TIMEOUT_MS", "500"),
	}
}

// OnlineConfigured reports whether a shared/online store was set up at all.
func (c *Config) OnlineConfigured() bool {
	return c.OnlineDBHost != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
