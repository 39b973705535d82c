package logger

import (
	"github.com/lcstaffing/jobboard/internal/metrics"
	log "github.com/sirupsen/logrus"
)

const ErrorTypeField = "error_type"

const (
	ErrorTypeDb       = "db"
	ErrorTypeEmailApi = "email_api"
	ErrorTypeHttp     = "http"
	ErrorTypeUnknown  = "unknown"
)

type prometheusHook struct {
}

func (h *prometheusHook) Levels() []log.Level {
	return []log.Level{log.ErrorLevel, log.FatalLevel, log.PanicLevel}
}

func (h *prometheusHook) Fire(entry *log.Entry) error {

	errorType := ErrorTypeUnknown
	if value, ok := entry.Data[ErrorTypeField].(string); ok {
		errorType = value
	}

	metrics.ErrorsCounter.WithLabelValues(errorType).Inc()
	return nil
}

func addPrometheusHook() {
	log.AddHook(&prometheusHook{})
}
