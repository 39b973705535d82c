package repositories

import (
	"context"
	"time"

	"github.com/lcstaffing/jobboard/internal/domain/models"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) Add(ctx context.Context, application *models.Application) error {
	return repo.db.WithContext(ctx).Create(application).Error
}

// CountStalePending counts pending applications created before the given
// time. Applications are immutable here, so a stale one means nobody in
// the administrative system acted on it.
func (repo *Applications) CountStalePending(ctx context.Context, before time.Time) (int64, error) {

	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.Application{}).
		Where("status = ? AND created_at < ?", models.ApplicationStatusPending, before).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
