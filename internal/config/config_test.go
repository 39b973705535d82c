package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)

	return path
}

func TestLoadConfig(t *testing.T) {

	path := writeConfigFile(t, `
server:
  port: 8081
  metrics_port: 8080
logger:
  log_level: INFO
  app_name: jobboard
  output_file: ./logs/errors.log
db:
  connection_string: ./jobboard.db
email:
  sender: jobs@lcstaffing.com
  max_requests_per_second: 2
reporter:
  stale_after_days: 7
`)

	t.Setenv("SENDGRID_KEY", "SG.test-key")

	config, err := loadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, 8081, config.Server.Port)
	assert.Equal(t, 8080, config.Server.MetricsPort)
	assert.Equal(t, "./jobboard.db", config.DB.ConnectionString)
	assert.Equal(t, "SG.test-key", config.Email.APIKey)
	assert.Equal(t, "jobs@lcstaffing.com", config.Email.Sender)
	assert.Equal(t, float32(2), config.Email.MaxRequestsPerSecond)
	assert.Equal(t, 7, config.Reporter.StaleAfterDays)
	assert.Equal(t, LevelInfo, config.Logger.LogLevel)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {

	path := writeConfigFile(t, `
server:
  port: 8081
  metrics_port: 8080
logger:
  log_level: INFO
  app_name: jobboard
  output_file: ./logs/errors.log
db:
  connection_string: ./jobboard.db
email:
  sender: jobs@lcstaffing.com
reporter:
  stale_after_days: 7
`)

	t.Setenv("SENDGRID_KEY", "SG.test-key")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_CONNECTION_STRING", "./override.db")

	config, err := loadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, 9000, config.Server.Port)
	assert.Equal(t, "./override.db", config.DB.ConnectionString)
}

func TestLoadConfig_MissingEmailKey(t *testing.T) {

	path := writeConfigFile(t, `
server:
  port: 8081
  metrics_port: 8080
logger:
  log_level: INFO
  app_name: jobboard
  output_file: ./logs/errors.log
db:
  connection_string: ./jobboard.db
email:
  sender: jobs@lcstaffing.com
reporter:
  stale_after_days: 7
`)

	t.Setenv("SENDGRID_KEY", "")

	_, err := loadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}
