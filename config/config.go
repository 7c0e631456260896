package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH     = "./res/config.yaml"
	CONFIG_PATH_ENV = "RAIKIRI_CONFIG"
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName    string        `yaml:"service_name" validate:"required"`
	LogLevel       string        `yaml:"loglevel" validate:"required"`
	Host           string        `yaml:"host" validate:"required"`
	Port           string        `yaml:"port" validate:"required"`
	PrivateKeyPath string        `yaml:"private_key_path" validate:"required"`
	SessionTTL     time.Duration `yaml:"session_ttl" validate:"required,gt=0"`
	SecureCookies  bool          `yaml:"secure_cookies"`
	RateLimit      RateLimit     `yaml:"rate_limit" validate:"required"`
	Database       Database      `yaml:"database" validate:"required"`
}

// RateLimit configures the per-client token buckets guarding login and
// signup. ClientIdle defaults to ten minutes when unset.
type RateLimit struct {
	RequestsPerSecond float64       `yaml:"requests_per_second" validate:"required,gt=0"`
	Burst             int           `yaml:"burst" validate:"required,gt=0"`
	ClientIdle        time.Duration `yaml:"client_idle" validate:"gte=0"`
}

// Database holds the non-secret database settings. Credentials are never
// read from this file; see Secrets.
type Database struct {
	Driver         string        `yaml:"driver" validate:"required,oneof=postgres pgx"`
	SSLMode        string        `yaml:"sslmode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" validate:"required,gt=0"`
	QueryTimeout   time.Duration `yaml:"query_timeout" validate:"required,gt=0"`
	RunMigrations  bool          `yaml:"run_migrations"`
	SecretsFile    string        `yaml:"secrets_file"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
// It unmarshals the YAML content into a ServiceConfig struct and returns it.
// If there is an error reading the file or unmarshaling the content, it returns an error.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Path returns the config file location, honouring RAIKIRI_CONFIG.
func Path() string {
	if p, ok := os.LookupEnv(CONFIG_PATH_ENV); ok && p != "" {
		return p
	}
	return CONFIG_PATH
}
