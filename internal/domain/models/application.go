package models

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

// EnglishLevel is a single value. Older form variants allowed selecting
// several levels; those records predate this service and are not read
// back, so no migration is performed.
type EnglishLevel string

const (
	EnglishLow    EnglishLevel = "low"
	EnglishMedium EnglishLevel = "medium"
	EnglishHigh   EnglishLevel = "high"
)

type ApplicationStatus string

const ApplicationStatusPending ApplicationStatus = "pending"

// Application is one submitted form. A record is created exactly once per
// submission and never updated or deleted afterwards.
type Application struct {
	ID                uint `gorm:"primaryKey"`
	Email             string
	Phone             string
	FullName          string
	BirthDate         string
	Address           string
	HasTransport      YesNo
	HasDocuments      YesNo
	HasExperience     YesNo
	EnglishLevel      EnglishLevel
	ExperienceDetails *string
	ExperienceTags    string
	ExperiencePeriod  *string
	AdditionalNotes   *string
	JobID             string
	JobTitle          string
	Status            ApplicationStatus
	CreatedAt         time.Time
}

func (a *Application) SetExperienceTags(tags []string) {
	trimmed := lo.Map(tags, func(tag string, _ int) string {
		return strings.TrimSpace(tag)
	})
	a.ExperienceTags = strings.Join(trimmed, ",")
}

func (a *Application) ExperienceTagsAsArray() []string {
	if a.ExperienceTags == "" {
		return []string{}
	}
	return strings.Split(a.ExperienceTags, ",")
}
