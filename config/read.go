package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. FORMGATE_LEADS_BASE_URL overrides leads.base_url
	viper.SetEnvPrefix("FORMGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Read the config file (optional in container environments where
	// everything comes from the environment)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if os.Getenv("FORMGATE_SERVER_PORT") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("server.environment", "development")

	viper.SetDefault("leads.timeout_seconds", 10)

	viper.SetDefault("email.smtp.port", 465)
	viper.SetDefault("email.smtp.use_tls", true)
	viper.SetDefault("email.smtp.timeout_seconds", 10)

	// Declared edge quotas: 5 lead submissions per 5 minutes,
	// 3 contact emails per minute, per client.
	viper.SetDefault("rate_limit.lead.max_requests", 5)
	viper.SetDefault("rate_limit.lead.window_seconds", 300)
	viper.SetDefault("rate_limit.email.max_requests", 3)
	viper.SetDefault("rate_limit.email.window_seconds", 60)

	viper.SetDefault("observability.service_name", "formgate")
	viper.SetDefault("logging.level", "info")
}
