package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
)

// Job is a posting managed by the administrative system; this service
// only reads it. AccountManager and CreatedBy hold User identifiers:
// AccountManager is the preferred notification recipient, CreatedBy the
// legacy fallback.
type Job struct {
	ID             string `gorm:"primaryKey"`
	Title          string
	Description    string
	Company        string
	Status         JobStatus
	Location       *string
	Latitude       *float64
	Longitude      *float64
	Salary         *string
	Requirements   string
	ImageURL       *string
	AccountManager string
	CreatedBy      string
	CreatedAt      time.Time
}

func (j *Job) HasCoordinates() bool {
	return j.Latitude != nil && j.Longitude != nil
}

func (j *Job) SetRequirements(requirements []string) {
	j.Requirements = strings.Join(requirements, ",")
}

func (j *Job) RequirementsAsArray() []string {
	if j.Requirements == "" {
		return []string{}
	}

	return lo.Map(strings.Split(j.Requirements, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
}

// SentinelDistanceMiles is larger than any real distance on Earth; it
// pushes postings without usable coordinates to the end of a ranked feed
// without dropping them.
const SentinelDistanceMiles float64 = 999999

// RankedJob is a Job annotated with the distance to the requester.
// DistanceMiles is nil when the feed was built without a requester
// coordinate; callers must not assume a value then.
type RankedJob struct {
	Job
	DistanceMiles *float64
}

// FormatDistanceMiles renders a distance the way job cards display it.
func FormatDistanceMiles(distance float64) string {
	if distance < 0.1 {
		return "less than 0.1 miles"
	}
	return fmt.Sprintf("%.1f miles", distance)
}
