package qmsdk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	BaseURL        string `mapstructure:"baseUrl"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`

	v *viper.Viper // instance-specific viper
}

const (
	EnvPrefix  = "QUIZMASTER"
	ConfigRoot = ".quizmaster"

	BaseUrlKey = "baseUrl"
	TimeoutKey = "timeoutSeconds"

	// DefaultTimeout bounds every API call; the server never takes longer
	// than this to answer a healthy request.
	DefaultTimeout = 30 * time.Second
)

// LoadConfig creates a new Config instance with its own viper.
// This is the only way to load config (no global state).
func LoadConfig(cfgFile string) (*Config, error) {
	// .env values become plain env vars and flow in through AutomaticEnv.
	_ = godotenv.Load()

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	} else {
		// Project config (tracked) - quizmaster.yaml in current directory
		for _, name := range []string{"quizmaster.yaml", "quizmaster.yml", ".quizmaster.yaml"} {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				if err := v.ReadInConfig(); err == nil {
					break
				}
			}
		}

		// Merge local overrides (untracked) - .quizmaster/config.yaml
		localConfigPath := filepath.Join(ConfigRoot, "config.yaml")
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("merging local config: %w", err)
			}
		}
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.v = v
	return &cfg, nil
}

// Timeout returns the configured request deadline.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetString returns a string value from the underlying viper instance.
func (c *Config) GetString(key string) string {
	if c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

// Viper returns the underlying viper instance, useful for CLI flag binding.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

func setDefaults(v *viper.Viper) {
	if !v.IsSet(BaseUrlKey) {
		v.SetDefault(BaseUrlKey, "http://localhost:5000/api")
	} else {
		normalized := strings.TrimRight(v.GetString(BaseUrlKey), "/")
		v.Set(BaseUrlKey, normalized)
	}

	if !v.IsSet(TimeoutKey) {
		v.SetDefault(TimeoutKey, int(DefaultTimeout/time.Second))
	}
}

// ConfigFileUsed returns the config file that was used (if any).
func (c *Config) ConfigFileUsed() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}
