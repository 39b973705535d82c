package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type EmailConfig struct {
	APIKey               string  `mapstructure:"api_key"`
	Sender               string  `mapstructure:"sender"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config EmailConfig) validate() error {

	var missingFields []string

	if config.APIKey == "" {
		missingFields = append(missingFields, "api_key")
	}

	if config.Sender == "" {
		missingFields = append(missingFields, "sender")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config EmailConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("email.api_key", "SENDGRID_KEY")
	if err != nil {
		return err
	}

	return viper.BindEnv("email.sender", "EMAIL_SENDER")
}
