package services

import (
	"math"
	"testing"

	"github.com/lcstaffing/jobboard/internal/domain/models"
	"github.com/lcstaffing/jobboard/internal/geo"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobAt(id string, latitude, longitude float64) models.Job {
	return models.Job{ID: id, Status: models.JobStatusActive, Latitude: &latitude, Longitude: &longitude}
}

func feedOrder(ranked []models.RankedJob) []string {
	return lo.Map(ranked, func(job models.RankedJob, _ int) string { return job.ID })
}

func Test_BuildFeed_WithoutRequesterIsIdentity(t *testing.T) {
	jobs := []models.Job{
		jobAt("newest", 34.0522, -118.2437),
		{ID: "no-coords", Status: models.JobStatusActive},
		jobAt("oldest", 40.7128, -74.0060),
	}

	ranked := BuildFeed(jobs, nil)

	assert.Equal(t, []string{"newest", "no-coords", "oldest"}, feedOrder(ranked))
	for _, job := range ranked {
		assert.Nil(t, job.DistanceMiles)
	}
}

func Test_BuildFeed_OrdersByDistanceAscending(t *testing.T) {
	requester := &geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060} // New York

	jobs := []models.Job{
		jobAt("los-angeles", 34.0522, -118.2437),
		jobAt("boston", 42.3601, -71.0589),
		jobAt("new-york", 40.7128, -74.0060),
	}

	ranked := BuildFeed(jobs, requester)

	assert.Equal(t, []string{"new-york", "boston", "los-angeles"}, feedOrder(ranked))
	require.NotNil(t, ranked[0].DistanceMiles)
	assert.Equal(t, 0.0, *ranked[0].DistanceMiles)
}

func Test_BuildFeed_MissingCoordinatesSortLast(t *testing.T) {
	requester := &geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	latitude := 34.0522

	jobs := []models.Job{
		{ID: "no-coords", Status: models.JobStatusActive},
		{ID: "only-latitude", Status: models.JobStatusActive, Latitude: &latitude},
		jobAt("far-but-reachable", -33.8688, 151.2093), // Sydney
	}

	ranked := BuildFeed(jobs, requester)

	assert.Equal(t, []string{"far-but-reachable", "no-coords", "only-latitude"}, feedOrder(ranked))
	assert.Equal(t, models.SentinelDistanceMiles, *ranked[1].DistanceMiles)
	assert.Equal(t, models.SentinelDistanceMiles, *ranked[2].DistanceMiles)
}

func Test_BuildFeed_TiesKeepInputOrder(t *testing.T) {
	requester := &geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	jobs := []models.Job{
		jobAt("first", 40.7128, -74.0060),
		jobAt("second", 40.7128, -74.0060),
		jobAt("third", 40.7128, -74.0060),
	}

	ranked := BuildFeed(jobs, requester)
	assert.Equal(t, []string{"first", "second", "third"}, feedOrder(ranked))
}

func Test_BuildFeed_NaNCoordinateGetsSentinel(t *testing.T) {
	requester := &geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	jobs := []models.Job{
		jobAt("broken", math.NaN(), -74.0060),
		jobAt("fine", 42.3601, -71.0589),
	}

	ranked := BuildFeed(jobs, requester)

	assert.Equal(t, []string{"fine", "broken"}, feedOrder(ranked))
	assert.Equal(t, models.SentinelDistanceMiles, *ranked[1].DistanceMiles)
}
