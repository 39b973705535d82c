package repositories

import (
	"context"
	"errors"

	"github.com/lcstaffing/jobboard/internal/domain/models"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

// GetByID returns nil without error when no record exists.
func (repo *Users) GetByID(ctx context.Context, id string) (*models.User, error) {

	var user models.User
	if err := repo.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
