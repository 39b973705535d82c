package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/lcstaffing/jobboard/internal/api"
	"github.com/lcstaffing/jobboard/internal/clients/email"
	"github.com/lcstaffing/jobboard/internal/config"
	"github.com/lcstaffing/jobboard/internal/logger"
	"github.com/lcstaffing/jobboard/internal/metrics"
	"github.com/lcstaffing/jobboard/internal/repositories"
	"github.com/lcstaffing/jobboard/internal/services"
	log "github.com/sirupsen/logrus"
)

func runNotifier(cfg *config.Config, jobs *repositories.Jobs, users *repositories.CachedUsers, bus EventBus.Bus) {

	emailClient := email.NewClient(cfg.Email.APIKey, cfg.Email.Sender)
	if cfg.Email.MaxRequestsPerSecond > 0 {
		emailClient.SetRateLimit(cfg.Email.MaxRequestsPerSecond)
	}

	_, err := services.NewNotifier(bus, jobs, users, emailClient)
	if err != nil {
		log.Fatalf("can't create notifier: %v", err)
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	jobs := repositories.NewJobsRepository(dbContext.DB)
	users := repositories.NewCachedUsers(repositories.NewUsersRepository(dbContext.DB))
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	bus := EventBus.New()

	runNotifier(cfg, jobs, users, bus)

	reporter, err := services.NewApplicationsReporter(applications, cfg.Reporter.StaleAfterDays)
	if err != nil {
		log.Fatalf("can't create applications reporter: %v", err)
	}
	defer reporter.Stop()

	server := api.NewServer(bus, jobs, applications)
	go func() {
		if err := server.Run(cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped unexpectedly: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown failed: %v", err)
	}

	log.Info("Services stopped.")
}
