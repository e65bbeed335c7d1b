package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the generator
type Config struct {
	Site SiteConfig `mapstructure:"site"`
	API  APIConfig  `mapstructure:"api"`
}

// SiteConfig holds output-site configuration
type SiteConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	OutputDir       string `mapstructure:"output_dir"`
	ProductsSegment string `mapstructure:"products_segment"`
	SiteName        string `mapstructure:"site_name"`
}

// APIConfig holds content API configuration
type APIConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	PageSize             int    `mapstructure:"page_size"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config.yaml: run on defaults and environment overrides.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("site.base_url", "https://structon.be")
	viper.SetDefault("site.output_dir", "./web")
	viper.SetDefault("site.products_segment", "products")
	viper.SetDefault("site.site_name", "Structon")

	viper.SetDefault("api.base_url", "https://structon-production.up.railway.app/api")
	viper.SetDefault("api.page_size", 100)
	viper.SetDefault("api.timeout", 30)
	viper.SetDefault("api.max_retries", 3)
	viper.SetDefault("api.max_requests_per_second", 5)
}
