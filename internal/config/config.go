package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
)

type StoreConfig struct {
	Backend       Backend       `yaml:"backend"`
	Path          string        `yaml:"path,omitempty"`
	RedisAddr     string        `yaml:"redisAddr,omitempty"`
	RedisPassword string        `yaml:"redisPassword,omitempty"`
	RedisDB       int           `yaml:"redisDB,omitempty"`
	KeyPrefix     string        `yaml:"keyPrefix,omitempty"`
	TTL           time.Duration `yaml:"ttl,omitempty"`
}

type Config struct {
	Store          StoreConfig `yaml:"store"`
	View           string      `yaml:"view"`
	ShowAllOptions bool        `yaml:"showAllOptions"`
	LogLevel       string      `yaml:"logLevel"`
	Format         string      `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			KeyPrefix: "itinerary:override",
		},
		View:     "grouped",
		LogLevel: "warn",
		Format:   "json",
	}
}

// Load layers defaults, an optional .env file, the YAML config file and
// environment variables, in that order.
func Load() *Config {
	cfg := DefaultConfig()

	_ = godotenv.Load()

	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	if v := os.Getenv("ITINERARY_STORE"); v != "" {
		cfg.WithBackend(v)
	}
	if v := os.Getenv("ITINERARY_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("ITINERARY_REDIS_ADDR"); v != "" {
		cfg.Store.RedisAddr = v
	}
	if v := os.Getenv("ITINERARY_REDIS_PASSWORD"); v != "" {
		cfg.Store.RedisPassword = v
	}
	if v := os.Getenv("ITINERARY_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Store.RedisDB = db
		}
	}
	if v := os.Getenv("ITINERARY_OVERRIDE_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Store.TTL = ttl
		}
	}
	if v := os.Getenv("ITINERARY_VIEW"); v != "" {
		cfg.View = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}

func (c *Config) WithBackend(backend string) *Config {
	if backend == "" {
		return c
	}
	switch strings.ToLower(backend) {
	case "memory":
		c.Store.Backend = BackendMemory
	case "file":
		c.Store.Backend = BackendFile
	case "redis":
		c.Store.Backend = BackendRedis
	default:
		c.Store.Backend = Backend(backend)
	}
	return c
}

func (c *Config) WithView(view string) *Config {
	if view != "" {
		c.View = strings.ToLower(view)
	}
	return c
}

func (c *Config) WithFormat(format string) *Config {
	if format != "" {
		c.Format = strings.ToLower(format)
	}
	return c
}

func configPath() string {
	if p := os.Getenv("ITINERARY_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".config", "beetlebot", "itinerary.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
