package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	PokeAPIBaseURL string `mapstructure:"POKEAPI_BASE_URL"`
	TeamSize       int    `mapstructure:"TEAM_SIZE"`
	WinnerDir      string `mapstructure:"WINNER_DIR"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`

	// S3 sprite mirror, disabled while BucketName is empty
	BucketName   string `mapstructure:"BUCKET_NAME"`
	BucketPrefix string `mapstructure:"BUCKET_PREFIX"`
	Region       string `mapstructure:"AWS_REGION"`

	// Set by the Lambda runtime
	Handler string `mapstructure:"_HANDLER"`
}

var defaults = map[string]any{
	"POKEAPI_BASE_URL": "https://pokeapi.co/api/v2",
	"TEAM_SIZE":        6,
	"WINNER_DIR":       "Winning Team",
	"LOG_LEVEL":        "info",
	"BUCKET_NAME":      "",
	"BUCKET_PREFIX":    "battles",
	"AWS_REGION":       "",
	"_HANDLER":         "",
}

// Load reads the optional env file at path, then the environment. Environment
// values take precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.TeamSize < 1 {
		return fmt.Errorf("TEAM_SIZE must be positive, got %d", c.TeamSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

func (c *Config) MirrorToS3() bool {
	return c.BucketName != ""
}
