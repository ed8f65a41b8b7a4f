package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	Addr        string // listen address
	StoreDriver string // "sqlite" (local) or "postgres" (remote)
	SQLitePath  string // path to the local SQLite database file
	DatabaseURL string // postgres DSN for the remote store
	UploadMode  string // "simulated" or "stored"
}

// Load reads configuration from the environment, loading a .env file
// first if one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:        getenv("GEARHUB_ADDR", ":8080"),
		StoreDriver: getenv("GEARHUB_STORE", "sqlite"),
		SQLitePath:  getenv("GEARHUB_SQLITE_PATH", "gearhub.sqlite3"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		UploadMode:  getenv("GEARHUB_UPLOADS", "simulated"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
