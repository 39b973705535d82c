package repositories

import (
	"context"
	"errors"

	"github.com/lcstaffing/jobboard/internal/domain/models"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

// GetActive returns postings eligible for the feed, newest first. The
// feed builder relies on this ordering as its no-requester fallback.
func (repo *Jobs) GetActive(ctx context.Context) ([]models.Job, error) {

	var jobs []models.Job
	if err := repo.db.WithContext(ctx).
		Where("status = ?", models.JobStatusActive).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetByID returns nil without error when no record exists.
func (repo *Jobs) GetByID(ctx context.Context, id string) (*models.Job, error) {

	var job models.Job
	if err := repo.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}
