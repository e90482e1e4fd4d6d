package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds process settings read from the environment
type Config struct {
	Port               string
	MongoURI           string
	MongoDB            string
	RedisAddr          string
	SessionTTL         time.Duration
	CatalogPath        string // empty means the embedded default catalog
	ScoringPath        string // empty means DefaultScoring
	CORSAllowedOrigins string
}

type envVar struct {
	name         string
	defaultValue string
}

var envVars = []envVar{
	{"PORT", "8080"},
	{"MONGO_URI", "mongodb://localhost:27017"},
	{"MONGO_DB", "vantage"},
	{"REDIS_URI", "localhost:6379"},
	{"SESSION_TTL", "24h"},
	{"CATALOG_PATH", ""},
	{"SCORING_CONFIG_PATH", ""},
	{"CORS_ALLOWED_ORIGINS", "*"},
}

// Load reads the configuration from the environment
func Load() *Config {
	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil || ttl <= 0 {
		log.Printf("Warning: invalid SESSION_TTL %q, using 24h", os.Getenv("SESSION_TTL"))
		ttl = 24 * time.Hour
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGO_DB", "vantage"),
		RedisAddr:          strings.TrimPrefix(getEnv("REDIS_URI", "localhost:6379"), "redis://"),
		SessionTTL:         ttl,
		CatalogPath:        getEnv("CATALOG_PATH", ""),
		ScoringPath:        getEnv("SCORING_CONFIG_PATH", ""),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

// LogSummary prints every known variable and whether it was defaulted
func LogSummary() {
	log.Println("=== Vantage Configuration ===")
	for _, ev := range envVars {
		value := os.Getenv(ev.name)
		switch {
		case value != "" && strings.Contains(ev.name, "URI"):
			log.Printf("  %s: (set)", ev.name)
		case value != "":
			log.Printf("  %s: %s", ev.name, value)
		case ev.defaultValue == "":
			log.Printf("  %s: (embedded default)", ev.name)
		default:
			log.Printf("  %s: %s (default)", ev.name, ev.defaultValue)
		}
	}
	log.Println("=============================")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
