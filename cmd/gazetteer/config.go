package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envPrefix is the environment variable prefix for every setting, e.g.
// GAZETTEER_INDEX_PATH or GAZETTEER_RESOLVE_FUZZY.
const envPrefix = "GAZETTEER"

type cliConfig struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // json or console
	} `mapstructure:"log"`

	Index struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"index"`

	Build struct {
		Sources       []string `mapstructure:"sources"`
		Supplementary []string `mapstructure:"supplementary"`
		BatchSize     int      `mapstructure:"batch_size"`
		DataDir       string   `mapstructure:"data_dir"`
		DownloadURL   string   `mapstructure:"download_url"`
	} `mapstructure:"build"`

	Resolve struct {
		MaxHitDepth      int    `mapstructure:"max_hit_depth"`
		MaxContextWindow int    `mapstructure:"max_context_window"`
		Fuzzy            bool   `mapstructure:"fuzzy"`
		FuzzyDistance    int    `mapstructure:"fuzzy_distance"`
		Admin1Codes      string `mapstructure:"admin1_codes"`
	} `mapstructure:"resolve"`

	Metrics struct {
		File string `mapstructure:"file"` // textfile collector output, empty disables
	} `mapstructure:"metrics"`
}

// newViper builds a Viper instance reading YAML with GAZETTEER_* environment
// overrides; nested keys map "." to "_".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("index.path", "./gazetteer-index/gazetteer.db")
	v.SetDefault("build.sources", []string{})
	v.SetDefault("build.supplementary", []string{})
	v.SetDefault("build.batch_size", 5000)
	v.SetDefault("build.data_dir", "./gazetteer-data")
	v.SetDefault("build.download_url", "")
	v.SetDefault("resolve.max_hit_depth", 5)
	v.SetDefault("resolve.max_context_window", 5)
	v.SetDefault("resolve.fuzzy", false)
	v.SetDefault("resolve.fuzzy_distance", 1)
	v.SetDefault("resolve.admin1_codes", "")
	v.SetDefault("metrics.file", "")
	return v
}

// loadConfig reads the YAML file at configPath (optional) and merges
// GAZETTEER_* environment overrides over the defaults.
func loadConfig(v *viper.Viper, configPath string) (*cliConfig, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}

	cfg := &cliConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

func (c *cliConfig) validate() error {
	if c.Index.Path == "" {
		return errors.New("index.path must be set")
	}
	if c.Build.BatchSize < 1 {
		return fmt.Errorf("build.batch_size %d must be positive", c.Build.BatchSize)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q must be json or console", c.Log.Format)
	}
	return nil
}

// newLogger builds a zap logger writing to stderr, leaving stdout for results.
func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encoding := "json"
	if format == "console" {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encoding = "console"
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      format == "console",
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
