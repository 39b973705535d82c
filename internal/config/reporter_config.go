package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ReporterConfig struct {
	StaleAfterDays int `mapstructure:"stale_after_days"`
}

func (config ReporterConfig) validate() error {
	if config.StaleAfterDays <= 0 {
		return fmt.Errorf("missing variable: stale_after_days")
	}
	return nil
}

func (config ReporterConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("reporter.stale_after_days", "REPORTER_STALE_AFTER_DAYS")
}
