package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server struct {
		Host        string   `yaml:"host" env:"HOST" env-default:"0.0.0.0"`
		Port        string   `yaml:"port" env:"PORT" env-default:"8080"`
		CORSOrigins []string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite3"`
		URL    string `yaml:"url" env:"DATABASE_URL" env-default:"books.db"`
	} `yaml:"database"`

	Session struct {
		Secret       string        `yaml:"secret" env:"SESSION_SECRET" env-required:"true"`
		MaxAge       time.Duration `yaml:"max_age" env:"SESSION_MAX_AGE" env-default:"24h"`
		SecureCookie bool          `yaml:"secure_cookie" env:"SESSION_SECURE_COOKIE" env-default:"false"`
	} `yaml:"session"`

	Catalog struct {
		URL        string        `yaml:"url" env:"CATALOG_URL" env-default:"https://www.googleapis.com/books/v1/volumes"`
		APIKey     string        `yaml:"api_key" env:"CATALOG_API_KEY"`
		MaxResults int           `yaml:"max_results" env:"CATALOG_MAX_RESULTS" env-default:"5"`
		Timeout    time.Duration `yaml:"timeout" env:"CATALOG_TIMEOUT" env-default:"10s"`
	} `yaml:"catalog"`
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Load reads .env (when present), then the YAML file named by CONFIG_PATH
// (when set), then the environment. Environment values win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if cfg.Catalog.MaxResults <= 0 {
		return nil, fmt.Errorf("CATALOG_MAX_RESULTS must be positive, got %d", cfg.Catalog.MaxResults)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}
