package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingCredential is returned when a required CMS identifier or token is not configured.
var ErrMissingCredential = errors.New("missing sanity credential")

// Config holds all configuration for the migrator
type Config struct {
	Sanity   SanityConfig   `mapstructure:"sanity"`
	Legacy   LegacyConfig   `mapstructure:"legacy"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// SanityConfig holds CMS API configuration
type SanityConfig struct {
	ProjectID            string `mapstructure:"project_id"`
	Dataset              string `mapstructure:"dataset"`
	APIVersion           string `mapstructure:"api_version"`
	APIHost              string `mapstructure:"api_host"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`

	// Authentication
	WriteToken string `mapstructure:"write_token"`
	ReadToken  string `mapstructure:"read_token"`
}

// BaseURL returns the API host for the configured project.
func (c SanityConfig) BaseURL() string {
	if c.APIHost != "" {
		return strings.TrimRight(c.APIHost, "/")
	}
	return fmt.Sprintf("https://%s.api.sanity.io", c.ProjectID)
}

// LegacyConfig describes where the static site lives on disk
type LegacyConfig struct {
	Root         string `mapstructure:"root"`
	IndexFile    string `mapstructure:"index_file"`
	BrochureFile string `mapstructure:"brochure_file"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DatabaseConfig enables the Postgres snapshot of published documents when Host is set
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// RedisConfig enables the publish ledger when Host is set
type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	Database  int    `mapstructure:"database"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// envAliases lists the environment variables read for each key, highest priority first.
var envAliases = map[string][]string{
	"sanity.project_id":  {"NEXT_PUBLIC_SANITY_PROJECT_ID", "SANITY_STUDIO_PROJECT_ID", "SANITY_PROJECT_ID"},
	"sanity.dataset":     {"NEXT_PUBLIC_SANITY_DATASET", "SANITY_STUDIO_DATASET", "SANITY_DATASET"},
	"sanity.api_version": {"SANITY_STUDIO_API_VERSION", "NEXT_PUBLIC_SANITY_API_VERSION", "SANITY_API_VERSION"},
	"sanity.write_token": {"SANITY_STUDIO_WRITE_TOKEN", "SANITY_WRITE_TOKEN", "SANITY_API_WRITE_TOKEN", "SANITY_API_TOKEN"},
	"sanity.read_token":  {"SANITY_API_READ_TOKEN", "SANITY_STUDIO_READ_TOKEN"},
}

// Load reads .env files from dir, an optional config.yaml and the process environment.
func Load(dir string) (*Config, error) {
	if err := LoadEnvFiles(dir, ".env.local", ".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	setDefaults(v)

	// Explicit bindings only: AutomaticEnv would be consulted before the alias lists.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range v.AllKeys() {
		if _, aliased := envAliases[key]; aliased {
			continue
		}
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate reports configuration errors that must stop the run before any remote call.
func (c *Config) Validate() error {
	var missing []string
	if c.Sanity.ProjectID == "" {
		missing = append(missing, "project id")
	}
	if c.Sanity.Dataset == "" {
		missing = append(missing, "dataset")
	}
	if c.Sanity.WriteToken == "" {
		missing = append(missing, "write token")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s (check .env.local)", ErrMissingCredential, strings.Join(missing, ", "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sanity.dataset", "production")
	v.SetDefault("sanity.api_version", "2025-01-01")
	v.SetDefault("sanity.api_host", "")
	v.SetDefault("sanity.timeout", 60)
	v.SetDefault("sanity.max_retries", 3)
	v.SetDefault("sanity.max_requests_per_second", 20)

	v.SetDefault("legacy.root", "old-html-site/public_html")
	v.SetDefault("legacy.index_file", "index.html")
	v.SetDefault("legacy.brochure_file", "Hybrid_Solutions_Brochure.pdf")

	v.SetDefault("log.level", "info")

	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "migrator")
	v.SetDefault("database.user", "migrator")
	v.SetDefault("database.password", "")

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.key_prefix", "migrator:ledger:")
}
