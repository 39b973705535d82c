package services

import (
	"context"
	"time"

	"github.com/lcstaffing/jobboard/internal/logger"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type stalePendingCounter interface {
	CountStalePending(ctx context.Context, before time.Time) (int64, error)
}

// ApplicationsReporter surfaces applications that stayed pending past the
// configured threshold. Application records are immutable in this
// service, so the reporter only logs; acting on the backlog is up to the
// administrative system.
type ApplicationsReporter struct {
	applications   stalePendingCounter
	cron           *cron.Cron
	staleAfterDays int
}

func NewApplicationsReporter(applications stalePendingCounter, staleAfterDays int) (*ApplicationsReporter, error) {

	if staleAfterDays <= 0 {
		return nil, errors.New("stale threshold in days must be greater than zero")
	}

	r := &ApplicationsReporter{
		applications:   applications,
		cron:           cron.New(),
		staleAfterDays: staleAfterDays,
	}

	_, err := r.cron.AddFunc("0 0 * * *", r.reportStalePending)
	if err != nil {
		return nil, err
	}

	r.cron.Start()
	log.Infof("applications reporter started, stale threshold in days: %d", r.staleAfterDays)
	return r, nil
}

func (r *ApplicationsReporter) Stop() {
	r.cron.Stop()
}

func (r *ApplicationsReporter) reportStalePending() {
	cutoff := time.Now().Add(-time.Duration(r.staleAfterDays) * 24 * time.Hour)
	count, err := r.applications.CountStalePending(context.Background(), cutoff)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to count stale pending applications: %v", err)
		return
	}

	if count > 0 {
		log.Warnf("%v applications are still pending after %v days", count, r.staleAfterDays)
	}
}
