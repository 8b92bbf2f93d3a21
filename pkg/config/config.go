package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env         string            `yaml:"env"`
	LogLevel    string            `yaml:"log_level"`
	Server      ServerConfig      `yaml:"server"`
	Zillow      UpstreamConfig    `yaml:"zillow"`
	Redfin      RedfinConfig      `yaml:"redfin"`
	WordPress   WordPressConfig   `yaml:"wordpress"`
	Aggregation AggregationConfig `yaml:"aggregation"`
	Export      ExportConfig      `yaml:"export"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	JWT         struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
}

type ServerConfig struct {
	Port               int `yaml:"port"`
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	RateLimitBurst     int `yaml:"rate_limit_burst"`
}

// UpstreamConfig describes one RapidAPI-style host.
type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	Host           string `yaml:"host"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (c UpstreamConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type RedfinConfig struct {
	UpstreamConfig    `yaml:",inline"`
	DefaultRegionID   string `yaml:"default_region_id"`
	DefaultSoldWithin string `yaml:"default_sold_within"`
}

type WordPressConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type AggregationConfig struct {
	UseSampleData    bool `yaml:"use_sample_data"`
	MapPropertyTypes bool `yaml:"map_property_types"`
	CacheTTLMinutes  int  `yaml:"cache_ttl_minutes"`
}

type ExportConfig struct {
	Path     string `yaml:"path"`
	OnSearch bool   `yaml:"on_search"`
}

type DatabaseConfig struct {
	Enabled bool   `yaml:"enabled"`
	URI     string `yaml:"uri"`
	DBName  string `yaml:"dbname"`
}

type RedisConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	Password    string `yaml:"password"`
	DB          int    `yaml:"db"`
	TLSEnabled  bool   `yaml:"tls_enabled"`
	TLSCertFile string `yaml:"tls_cert_file"`
}

// Default returns a Config populated with production defaults. YAML values
// and environment variables are layered on top of it.
func Default() *Config {
	cfg := &Config{
		Env:      "development",
		LogLevel: "INFO",
		Server: ServerConfig{
			Port:               8080,
			RateLimitPerMinute: 100,
			RateLimitBurst:     10,
		},
		Zillow: UpstreamConfig{
			BaseURL:        "https://zillow69.p.rapidapi.com",
			Host:           "zillow69.p.rapidapi.com",
			TimeoutSeconds: 30,
		},
		Redfin: RedfinConfig{
			UpstreamConfig: UpstreamConfig{
				BaseURL:        "https://redfin-com-data.p.rapidapi.com",
				Host:           "redfin-com-data.p.rapidapi.com",
				TimeoutSeconds: 30,
			},
			DefaultRegionID:   "6_2446",
			DefaultSoldWithin: "30",
		},
		WordPress: WordPressConfig{
			BaseURL:        "https://hawaiieliterealestate.com/wp-json/wp/v2",
			TimeoutSeconds: 30,
		},
		Aggregation: AggregationConfig{
			MapPropertyTypes: true,
			CacheTTLMinutes:  15,
		},
		Export: ExportConfig{
			Path: "data/properties.csv",
		},
		Database: DatabaseConfig{
			DBName: "hawaiielite",
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: 6379,
		},
	}
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Override with environment variables if set
func applyEnvOverrides(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) error {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s value: %v", key, err)
			}
			*dst = n
		}
		return nil
	}
	setBool := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			*dst = strings.EqualFold(v, "true") || v == "1"
		}
	}

	setString("ENV", &cfg.Env)
	setString("LOG_LEVEL", &cfg.LogLevel)
	if err := setInt("PORT", &cfg.Server.Port); err != nil {
		return err
	}

	setString("ZILLOW_API_KEY", &cfg.Zillow.APIKey)
	setString("ZILLOW_API_HOST", &cfg.Zillow.Host)
	setString("ZILLOW_BASE_URL", &cfg.Zillow.BaseURL)
	setString("REDFIN_API_KEY", &cfg.Redfin.APIKey)
	setString("REDFIN_API_HOST", &cfg.Redfin.Host)
	setString("REDFIN_BASE_URL", &cfg.Redfin.BaseURL)
	setString("WORDPRESS_BASE_URL", &cfg.WordPress.BaseURL)

	setBool("USE_SAMPLE_DATA", &cfg.Aggregation.UseSampleData)
	setString("EXPORT_PATH", &cfg.Export.Path)

	setString("MONGO_URI", &cfg.Database.URI)
	setString("DB_NAME", &cfg.Database.DBName)
	if cfg.Database.URI != "" {
		cfg.Database.Enabled = true
	}

	setBool("REDIS_ENABLED", &cfg.Redis.Enabled)
	setString("REDIS_HOST", &cfg.Redis.Host)
	if err := setInt("REDIS_PORT", &cfg.Redis.Port); err != nil {
		return err
	}
	setString("REDIS_PASSWORD", &cfg.Redis.Password)
	if err := setInt("REDIS_DB", &cfg.Redis.DB); err != nil {
		return err
	}
	setBool("REDIS_TLS_ENABLED", &cfg.Redis.TLSEnabled)
	setString("REDIS_TLS_CERT_FILE", &cfg.Redis.TLSCertFile)

	setString("JWT_SECRET", &cfg.JWT.Secret)
	return nil
}

// Set default values
func applyDefaults(cfg *Config) {
	if cfg.Zillow.TimeoutSeconds <= 0 {
		cfg.Zillow.TimeoutSeconds = 30
	}
	if cfg.Redfin.TimeoutSeconds <= 0 {
		cfg.Redfin.TimeoutSeconds = 30
	}
	if cfg.WordPress.TimeoutSeconds <= 0 {
		cfg.WordPress.TimeoutSeconds = 30
	}
	if cfg.Redfin.DefaultRegionID == "" {
		cfg.Redfin.DefaultRegionID = "6_2446"
	}
	if cfg.Redfin.DefaultSoldWithin == "" {
		cfg.Redfin.DefaultSoldWithin = "30"
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		cfg.Server.RateLimitPerMinute = 100
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 10
	}
	if cfg.Redis.DB < 0 {
		cfg.Redis.DB = 0
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Server),
		validation.Field(&c.Zillow),
		validation.Field(&c.Redfin),
		validation.Field(&c.WordPress),
		validation.Field(&c.Export),
		validation.Field(&c.Database),
		validation.Field(&c.Redis),
	); err != nil {
		return err
	}
	if c.Database.Enabled && c.JWT.Secret == "" {
		return fmt.Errorf("jwt: secret is required when the listing store is enabled")
	}
	if c.Redis.Enabled && c.Redis.TLSEnabled && c.Redis.TLSCertFile != "" {
		if _, err := os.Stat(c.Redis.TLSCertFile); os.IsNotExist(err) {
			return fmt.Errorf("TLS certificate file does not exist: %s", c.Redis.TLSCertFile)
		}
	}
	return nil
}

func (c ServerConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

func (c UpstreamConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Host, validation.Required),
	)
}

func (c RedfinConfig) Validate() error {
	return c.UpstreamConfig.Validate()
}

func (c WordPressConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
	)
}

func (c ExportConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Path, validation.Required),
	)
}

func (c DatabaseConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.URI, validation.When(c.Enabled, validation.Required)),
		validation.Field(&c.DBName, validation.When(c.Enabled, validation.Required)),
	)
}

func (c RedisConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Host, validation.When(c.Enabled, validation.Required)),
		validation.Field(&c.Port, validation.When(c.Enabled, validation.Required, validation.Min(1), validation.Max(65535))),
		validation.Field(&c.DB, validation.Min(0)),
	)
}
