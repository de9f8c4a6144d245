package kit

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is read from the environment, optionally seeded from a .env file.
// Keys map to upper-cased env vars: jwt_secret -> JWT_SECRET.
type Config struct {
	Port     string `mapstructure:"port" validate:"required,numeric"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`

	JWTSecret string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"gt=0"`

	AdminUser         string `mapstructure:"admin_user" validate:"required"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`

	TrustProxy bool `mapstructure:"trust_proxy"`

	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	MetricsToken   string `mapstructure:"metrics_token" validate:"required_if=MetricsEnabled true"`
}

var configDefaults = map[string]any{
	"port":                "8082",
	"log_level":           "info",
	"jwt_secret":          "",
	"token_ttl":           15 * time.Minute,
	"admin_user":          "admin",
	"admin_password_hash": "",
	"trust_proxy":         false,
	"metrics_enabled":     false,
	"metrics_token":       "",
}

var validate = validator.New()

// LoadConfig loads envFiles (missing files are skipped) into the process
// environment, then decodes and validates Config.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, def := range configDefaults {
		v.SetDefault(k, def)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
