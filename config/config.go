package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

// Config holds every process-wide setting. Loaded once at startup,
// never mutated afterwards.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"NODE_ENV" envDefault:"development"`
	DistDir     string `env:"DIST_DIR" envDefault:"dist"`

	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB" envDefault:"tripsculptor"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Third-party API credentials. No defaults on purpose.
	GeminiAPIKey   string `env:"GEMINI_API_KEY"`
	MakcorpsAPIKey string `env:"MAKCORPS_API_KEY"`
	RapidAPIKey    string `env:"RAPIDAPI_KEY"`

	// Upstream endpoints, overridable for local stubs.
	GeminiBaseURL   string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	MakcorpsBaseURL string `env:"MAKCORPS_BASE_URL" envDefault:"https://api.makcorps.com"`
	GeocodeBaseURL  string `env:"GEOCODE_BASE_URL" envDefault:"https://google-maps-geocoding.p.rapidapi.com"`
}

// Load reads .env (if present) plus the process environment into Cfg.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	if Cfg.GeminiAPIKey == "" {
		log.Println("WARN: GEMINI_API_KEY is not set, itinerary generation will not work")
	}
	if Cfg.MakcorpsAPIKey == "" {
		log.Println("WARN: MAKCORPS_API_KEY is not set, hotel search will not work")
	}
	if Cfg.RapidAPIKey == "" {
		log.Println("WARN: RAPIDAPI_KEY is not set, geocoding will not work")
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
