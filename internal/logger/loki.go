package logger

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/lcstaffing/jobboard/internal/config"
	"github.com/lcstaffing/jobboard/pkg/loki"
	log "github.com/sirupsen/logrus"
)

type logrusAdapter struct {
}

func (l *logrusAdapter) Error(msg string, args ...any) {
	log.WithFields(log.Fields{"args": args, "source": "loki"}).Error(msg)
}

type lokiHook struct {
	pusher *loki.Pusher
}

var activeLokiHook *lokiHook

func (h *lokiHook) Fire(entry *log.Entry) error {

	if entry.Data["source"] == "loki" {
		return nil
	}

	caller := ""
	if entry.Caller != nil {
		caller = filepath.Base(entry.Caller.Function) + ":" + strconv.Itoa(entry.Caller.Line)
	}

	return h.pusher.Push(loki.Entry{
		Level:   entry.Level.String(),
		Message: entry.Message,
		Caller:  caller,
	})
}

func (h *lokiHook) Levels() []log.Level {
	return []log.Level{log.ErrorLevel, log.WarnLevel, log.InfoLevel, log.FatalLevel, log.PanicLevel}
}

func addLokiHook(cfg config.LoggerConfig) {

	pusher, err := loki.New(context.Background(), loki.Config{
		URL:      cfg.LokiURL,
		Username: cfg.LokiUser,
		Password: cfg.LokiPassword,
		Labels:   map[string]string{"app": cfg.AppName},
	}, &logrusAdapter{})
	if err != nil {
		log.Errorf("failed to enable loki logging: %v", err)
		return
	}

	activeLokiHook = &lokiHook{pusher: pusher}
	log.AddHook(activeLokiHook)
	log.Info("Loki logging enabled")
}

func stopLokiHook() {
	if activeLokiHook != nil {
		activeLokiHook.pusher.Stop()
		activeLokiHook = nil
	}
}
