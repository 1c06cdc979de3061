package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Config carries the handful of knobs the portal reads at startup.
type Config struct {
	Addr         string
	StoreBackend string // "postgres" (default) or "memory"
	DatabaseURL  string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		Addr:         ":" + getenv("PORT", "8080"),
		StoreBackend: getenv("STORE", "postgres"),
		DatabaseURL:  getenv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=school sslmode=disable"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB opens and pings the Postgres pool. A store that cannot be reached
// at startup is fatal for the process; the caller decides that.
func OpenDB(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err := db.Ping(); err != nil {
		return nil, err
	}
	log.Println("Database connected successfully")
	return db, nil
}
