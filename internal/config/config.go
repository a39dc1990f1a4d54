// Package config loads the assistant's configuration from the environment
// (with .env support for local development) and an optional YAML file that
// carries domain data: the city override table and the recommendation rule
// set.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jmbarreiro1/mcp-weather/internal/recommend"
	"github.com/jmbarreiro1/mcp-weather/internal/weather"
)

// AppConfig holds everything the binaries need at startup.
type AppConfig struct {
	Port            string
	RedisAddr       string
	AccuWeatherKey  string
	GeminiAPIKey    string
	GeminiModel     string
	OllamaHost      string
	OllamaModel     string
	DefaultLanguage string

	Resolver  weather.ResolverConfig
	Recommend recommend.Config
}

// fileConfig is the shape of config.yaml.
type fileConfig struct {
	Cities    weather.ResolverConfig `yaml:"cities"`
	Recommend recommend.Config       `yaml:"recommend"`
}

// Load reads the environment and, when present, the YAML config file named by
// CONFIG_FILE (default config.yaml). A missing file is fine; the built-in
// defaults apply.
func Load() (*AppConfig, error) {
	// In a container the environment is provided directly; locally a .env
	// file keeps keys out of the shell history.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{
		Port:            envOr("PORT", "8080"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		AccuWeatherKey:  os.Getenv("ACCUWEATHER_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     envOr("GEMINI_MODEL", "gemini-1.5-flash"),
		OllamaHost:      os.Getenv("OLLAMA_HOST"),
		OllamaModel:     envOr("OLLAMA_MODEL", "llama3"),
		DefaultLanguage: envOr("DEFAULT_LANGUAGE", "en-us"),
	}

	path := envOr("CONFIG_FILE", "config.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No config file at %s, using built-in defaults.", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Resolver = fc.Cities
	cfg.Recommend = fc.Recommend
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
