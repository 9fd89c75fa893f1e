package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	GitHub   GitHubConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Path string
}

// AuthConfig maps caller addresses to the bearer tokens that prove control
// of those addresses.
type AuthConfig struct {
	CallerTokens map[string]string
}

type GitHubConfig struct {
	APIToken string
}

type WorkerConfig struct {
	// EnrichmentInterval is the cache-warming period in minutes for the
	// GitHub enrichment worker. Zero disables the worker.
	EnrichmentInterval int
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./registry.db"),
		},
		Auth: AuthConfig{
			CallerTokens: parseCallerTokens(getEnv("CALLER_TOKENS", "")),
		},
		GitHub: GitHubConfig{
			APIToken: getEnv("GITHUB_API_TOKEN", ""),
		},
		Worker: WorkerConfig{
			EnrichmentInterval: getEnvAsInt("ENRICHMENT_INTERVAL_MINUTES", 30),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// parseCallerTokens parses "address:token,address:token" pairs.
// Malformed pairs are skipped.
func parseCallerTokens(raw string) map[string]string {
	tokens := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		tokens[parts[0]] = parts[1]
	}
	return tokens
}
