package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/pomo/internal/model"
)

const (
	defaultTime          = model.DefaultTime
	defaultSummaryFormat = model.DefaultSummaryFormat
)

var summaryFormats = []string{"json", "yaml", "none"}

// cliConfig is the resolved runtime configuration: flags over POMO_* env
// over the config file over defaults.
type cliConfig struct {
	Goal          string `mapstructure:"goal"`
	Time          string `mapstructure:"time"`
	LogFile       string `mapstructure:"log-file"`
	HistoryFile   string `mapstructure:"history-file"`
	SummaryFormat string `mapstructure:"summary-format"`
	AltScreen     bool   `mapstructure:"alt-screen"`
}

func loadCLIConfig(configPath string, cmd *cobra.Command) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("POMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("goal", "")
	v.SetDefault("time", defaultTime)
	v.SetDefault("log-file", "")
	v.SetDefault("history-file", filepath.Join(home, ".local", "share", "pomo", "history.jsonl"))
	v.SetDefault("summary-format", defaultSummaryFormat)
	v.SetDefault("alt-screen", true)

	// Only the root command defines goal/time.
	for _, key := range []string{"goal", "time"} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return cfg, fmt.Errorf("binding --%s: %w", key, err)
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "pomo", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	cfg.SummaryFormat = strings.ToLower(strings.TrimSpace(cfg.SummaryFormat))
	if !validSummaryFormat(cfg.SummaryFormat) {
		return cfg, fmt.Errorf("invalid summary-format %q (want one of %s)", cfg.SummaryFormat, strings.Join(summaryFormats, ", "))
	}

	cfg.LogFile = expandHome(cfg.LogFile, home)
	cfg.HistoryFile = expandHome(cfg.HistoryFile, home)

	return cfg, nil
}

func validSummaryFormat(f string) bool {
	for _, s := range summaryFormats {
		if f == s {
			return true
		}
	}
	return false
}

// Expand ~ in paths
func expandHome(path, home string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
