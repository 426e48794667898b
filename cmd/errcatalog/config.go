package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config carries the tool's settings, merged from flags, ERRCATALOG_*
// environment variables, and an optional errcatalog.yaml in the working
// directory. The windows setting is the configuration input behind the
// URL-scheme message variant; its default comes from the --windows flag,
// which defaults to the host platform.
type config struct {
	Windows  bool   `mapstructure:"windows"`
	LogLevel string `mapstructure:"log_level"`
}

func loadConfig(flags *pflag.FlagSet) (*config, error) {
	v := viper.New()
	v.SetDefault("windows", false)
	v.SetDefault("log_level", "warn")

	v.SetEnvPrefix("ERRCATALOG")
	v.AutomaticEnv()

	if f := flags.Lookup("windows"); f != nil {
		if err := v.BindPFlag("windows", f); err != nil {
			return nil, fmt.Errorf("failed to bind windows flag: %w", err)
		}
	}
	if f := flags.Lookup("log-level"); f != nil {
		if err := v.BindPFlag("log_level", f); err != nil {
			return nil, fmt.Errorf("failed to bind log-level flag: %w", err)
		}
	}

	v.SetConfigName("errcatalog")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
