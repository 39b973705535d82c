package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/lcstaffing/jobboard/internal/config"
	log "github.com/sirupsen/logrus"
)

var logFile *os.File

func Setup(cfg config.LoggerConfig) {

	err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0755)
	if err != nil {
		log.Fatalf("failed to create log directory: %v", err)
	}

	logFile, err = os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	switch cfg.LogLevel {
	case config.LevelDebug:
		log.SetLevel(log.DebugLevel)
	case config.LevelInfo:
		log.SetLevel(log.InfoLevel)
	case config.LevelWarning:
		log.SetLevel(log.WarnLevel)
	case config.LevelError:
		log.SetLevel(log.ErrorLevel)
	case config.LevelFatal:
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	addPrometheusHook()

	if cfg.LokiURL != "" {
		addLokiHook(cfg)
	}
}

func Cleanup() {

	stopLokiHook()

	if logFile != nil {
		_ = logFile.Close()
	}
}
