package services

import (
	"math"
	"sort"
	"time"

	"github.com/lcstaffing/jobboard/internal/domain/models"
	"github.com/lcstaffing/jobboard/internal/geo"
	"github.com/lcstaffing/jobboard/internal/metrics"
	"github.com/samber/lo"
)

// BuildFeed annotates postings with the distance to the requester and
// orders them nearest first. Without a requester coordinate the input
// order (creation time descending, guaranteed by the store query) is
// preserved and no distance is populated. Postings are assumed
// pre-filtered to active status; BuildFeed does not re-filter.
func BuildFeed(jobs []models.Job, requester *geo.Coordinate) []models.RankedJob {

	start := time.Now()
	defer func() {
		metrics.FeedBuildDuration.Observe(time.Since(start).Seconds())
	}()

	if requester == nil {
		return lo.Map(jobs, func(job models.Job, _ int) models.RankedJob {
			return models.RankedJob{Job: job}
		})
	}

	ranked := lo.Map(jobs, func(job models.Job, _ int) models.RankedJob {
		distance := distanceToJob(*requester, job)
		return models.RankedJob{Job: job, DistanceMiles: &distance}
	})

	// ties keep their relative input order
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].DistanceMiles < *ranked[j].DistanceMiles
	})

	return ranked
}

// distanceToJob substitutes the sentinel for postings whose distance
// cannot be computed, so they rank after every reachable posting instead
// of being dropped. A NaN result (NaN input coordinates) counts as not
// computable.
func distanceToJob(requester geo.Coordinate, job models.Job) float64 {

	if !job.HasCoordinates() {
		return models.SentinelDistanceMiles
	}

	distance := geo.DistanceMiles(requester, geo.Coordinate{
		Latitude:  *job.Latitude,
		Longitude: *job.Longitude,
	})
	if math.IsNaN(distance) {
		return models.SentinelDistanceMiles
	}
	return distance
}
