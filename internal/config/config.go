// Package config loads server and build settings from defaults, an optional
// portfolio.yaml, and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/niranjandahal/portfolio/internal/assets"
)

type Config struct {
	Port             string        `mapstructure:"port"`
	Prod             bool          `mapstructure:"prod"`
	BasePath         string        `mapstructure:"basePath"`
	ContentFile      string        `mapstructure:"contentFile"`
	PublicDir        string        `mapstructure:"publicDir"`
	OutputDir        string        `mapstructure:"outputDir"`
	LogLevel         string        `mapstructure:"logLevel"`
	Watch            bool          `mapstructure:"watch"`
	SessionTTL       time.Duration `mapstructure:"sessionTTL"`
	ReapInterval     time.Duration `mapstructure:"reapInterval"`
	MaxSessions      int           `mapstructure:"maxSessions"`
	ShowcaseInterval time.Duration `mapstructure:"showcaseInterval"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }

// Assets returns the path resolver for the configured mode.
func (c Config) Assets() assets.Resolver { return assets.New(c.Prod, c.BasePath) }

// Load reads cfgFile, or ./portfolio.yaml when cfgFile is empty, over the
// defaults, then applies PORTFOLIO_* environment variables. PORT and PROD
// are honoured without the prefix. A missing default file is not an error.
// used reports the file that was read, if any.
func Load(cfgFile string) (cfg Config, used string, err error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("prod", false)
	v.SetDefault("basePath", assets.DefaultBase)
	v.SetDefault("contentFile", "")
	v.SetDefault("publicDir", "./public")
	v.SetDefault("outputDir", "dist")
	v.SetDefault("logLevel", "info")
	v.SetDefault("watch", false)
	v.SetDefault("sessionTTL", 30*time.Minute)
	v.SetDefault("reapInterval", time.Minute)
	v.SetDefault("maxSessions", 1000)
	v.SetDefault("showcaseInterval", 3*time.Second)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("port", "PORTFOLIO_PORT", "PORT"); err != nil {
		return cfg, "", err
	}
	if err := v.BindEnv("prod", "PORTFOLIO_PROD", "PROD"); err != nil {
		return cfg, "", err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return cfg, "", fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, "", fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return cfg, used, nil
}
