package api

import (
	"github.com/lcstaffing/jobboard/internal/domain/models"
)

type errorResponse struct {
	Message string `json:"message"`
}

// submitApplicationRequest mirrors the mobile form. Field-level
// constraints match the form schema; anything stricter belongs there.
type submitApplicationRequest struct {
	Email             string   `json:"email" validate:"required,email"`
	Phone             string   `json:"phone" validate:"required,numeric,min=10"`
	FullName          string   `json:"fullName" validate:"required,min=3"`
	BirthDate         string   `json:"birthDate" validate:"required"`
	Address           string   `json:"address" validate:"required,min=5"`
	HasTransport      string   `json:"hasTransport" validate:"required,oneof=yes no"`
	HasDocuments      string   `json:"hasDocuments" validate:"required,oneof=yes no"`
	HasExperience     string   `json:"hasExperience" validate:"required,oneof=yes no"`
	EnglishLevel      string   `json:"englishLevel" validate:"required,oneof=low medium high"`
	ExperienceDetails string   `json:"experienceDetails"`
	ExperienceTags    []string `json:"workExperience"`
	ExperiencePeriod  string   `json:"experiencePeriod"`
	AdditionalNotes   string   `json:"additionalNotes"`
	JobID             string   `json:"jobId" validate:"required"`
	JobTitle          string   `json:"jobTitle" validate:"required"`
}

func (r submitApplicationRequest) toModel() *models.Application {

	application := &models.Application{
		Email:             r.Email,
		Phone:             r.Phone,
		FullName:          r.FullName,
		BirthDate:         r.BirthDate,
		Address:           r.Address,
		HasTransport:      models.YesNo(r.HasTransport),
		HasDocuments:      models.YesNo(r.HasDocuments),
		HasExperience:     models.YesNo(r.HasExperience),
		EnglishLevel:      models.EnglishLevel(r.EnglishLevel),
		ExperienceDetails: optional(r.ExperienceDetails),
		ExperiencePeriod:  optional(r.ExperiencePeriod),
		AdditionalNotes:   optional(r.AdditionalNotes),
		JobID:             r.JobID,
		JobTitle:          r.JobTitle,
		Status:            models.ApplicationStatusPending,
	}
	application.SetExperienceTags(r.ExperienceTags)

	return application
}

// optional keeps "absent" distinguishable from "empty string" further
// down the pipeline.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

type submitApplicationResponse struct {
	ID uint `json:"id"`
}

type jobResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Company       string   `json:"company"`
	Location      *string  `json:"location,omitempty"`
	Salary        *string  `json:"salary,omitempty"`
	Requirements  []string `json:"requirements,omitempty"`
	ImageURL      *string  `json:"imageURL,omitempty"`
	DistanceMiles *float64 `json:"distanceMiles,omitempty"`
	Distance      string   `json:"distance,omitempty"`
}

func toJobResponse(job models.RankedJob) jobResponse {

	response := jobResponse{
		ID:            job.ID,
		Title:         job.Title,
		Description:   job.Description,
		Company:       job.Company,
		Location:      job.Location,
		Salary:        job.Salary,
		Requirements:  job.RequirementsAsArray(),
		ImageURL:      job.ImageURL,
		DistanceMiles: job.DistanceMiles,
	}

	// the formatted string is omitted for sentinel distances, matching
	// how job cards hide distance on coordinate-less postings
	if job.DistanceMiles != nil && *job.DistanceMiles < models.SentinelDistanceMiles {
		response.Distance = models.FormatDistanceMiles(*job.DistanceMiles)
	}

	return response
}
