package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Names of the database secrets expected from the secret store.
const (
	SecretDBHost     = "DB_HOST"
	SecretDBPort     = "DB_PORT"
	SecretDBUser     = "DB_USER"
	SecretDBPassword = "DB_PASSWORD" // #nosec G101
	SecretDBName     = "DB_NAME"
)

var ErrMissingSecrets = errors.New("missing required secrets")

// SecretNames lists every secret the service requires.
var SecretNames = []string{SecretDBHost, SecretDBPort, SecretDBUser, SecretDBPassword, SecretDBName}

// Secrets are the database credentials supplied by the process-managed secret store.
type Secrets struct {
	Host     string `mapstructure:"DB_HOST" validate:"required"`
	Port     int    `mapstructure:"DB_PORT" validate:"required,gt=0,lte=65535"`
	User     string `mapstructure:"DB_USER" validate:"required"`
	Password string `mapstructure:"DB_PASSWORD" validate:"required"`
	Name     string `mapstructure:"DB_NAME" validate:"required"`
}

// LookupFunc resolves a single secret. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// LoadSecrets collects the database secrets from the optional YAML secrets
// file, then lets lookup override them. Missing or malformed values fail
// with an error naming every offending key; nothing falls back to a default.
func LoadSecrets(secretsFile string, lookup LookupFunc) (*Secrets, error) {
	raw := map[string]string{}

	if secretsFile != "" {
		content, err := os.ReadFile(secretsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read secrets file: %w", err)
		}
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse secrets file: %w", err)
		}
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, name := range SecretNames {
		if v, ok := lookup(name); ok {
			raw[name] = v
		}
	}

	var missing []string
	for _, name := range SecretNames {
		if strings.TrimSpace(raw[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingSecrets, strings.Join(missing, ", "))
	}

	secrets := &Secrets{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      false,
		Result:           secrets,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build secrets decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid secrets: %w", err)
	}

	if err := structValidator.New().Struct(secrets); err != nil {
		return nil, fmt.Errorf("invalid secrets: %w", err)
	}

	return secrets, nil
}
