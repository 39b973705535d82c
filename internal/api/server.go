package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/lcstaffing/jobboard/internal/domain/models"
	"github.com/lcstaffing/jobboard/internal/events"
	"github.com/lcstaffing/jobboard/internal/geo"
	"github.com/lcstaffing/jobboard/internal/logger"
	"github.com/lcstaffing/jobboard/internal/metrics"
	"github.com/lcstaffing/jobboard/internal/services"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

type jobsRepository interface {
	GetActive(ctx context.Context) ([]models.Job, error)
}

type applicationsRepository interface {
	Add(ctx context.Context, application *models.Application) error
}

// Server is the ingress the mobile client talks to: the job feed and the
// application submission endpoint.
type Server struct {
	echo         *echo.Echo
	bus          EventBus.Bus
	jobs         jobsRepository
	applications applicationsRepository
	validate     *validator.Validate
}

func NewServer(bus EventBus.Bus, jobs jobsRepository, applications applicationsRepository) *Server {

	e := echo.New()
	e.HideBanner = true

	s := &Server{
		echo:         e,
		bus:          bus,
		jobs:         jobs,
		applications: applications,
		validate:     validator.New(),
	}

	e.GET("/healthz", s.health)
	e.GET("/jobs", s.getFeed)
	e.POST("/applications", s.submitApplication)

	return s
}

func (s *Server) Run(port int) error {
	return s.echo.Start(fmt.Sprintf(":%d", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// getFeed serves active postings, nearest first when the caller supplies
// lat and lon query parameters. A missing or unparsable coordinate pair
// degrades to the plain creation-time ordering; the device reporting
// "location unavailable" is not an error.
func (s *Server) getFeed(ctx echo.Context) error {

	jobs, err := s.jobs.GetActive(ctx.Request().Context())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to get active jobs: %v", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to retrieve jobs"})
	}

	requester := parseRequesterCoordinate(ctx.QueryParam("lat"), ctx.QueryParam("lon"))
	ranked := services.BuildFeed(jobs, requester)

	response := lo.Map(ranked, func(job models.RankedJob, _ int) jobResponse {
		return toJobResponse(job)
	})
	return ctx.JSON(http.StatusOK, response)
}

func parseRequesterCoordinate(lat string, lon string) *geo.Coordinate {
	if lat == "" || lon == "" {
		return nil
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return nil
	}

	return &geo.Coordinate{Latitude: latitude, Longitude: longitude}
}

func (s *Server) submitApplication(ctx echo.Context) error {

	var request submitApplicationRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	if err := s.validate.Struct(request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	application := request.toModel()
	if err := s.applications.Add(ctx.Request().Context(), application); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to save application: %v", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to save application"})
	}

	metrics.SubmissionsCounter.Inc()
	s.bus.Publish(events.ApplicationCreatedTopic, events.ApplicationCreated{Application: *application})

	return ctx.JSON(http.StatusCreated, submitApplicationResponse{ID: application.ID})
}
