package repositories

import (
	"context"
	"time"

	"github.com/lcstaffing/jobboard/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
)

type userRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// CachedUsers keeps recently resolved user records in memory so a burst
// of applications to the same posting does not re-read the same record.
type CachedUsers struct {
	repo  userRepository
	cache *gocache.Cache
}

func NewCachedUsers(repo userRepository) *CachedUsers {
	return &CachedUsers{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c CachedUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	if value, found := c.cache.Get(id); found {
		user := value.(models.User)
		return &user, nil
	}

	user, err := c.repo.GetByID(ctx, id)
	if user != nil {
		if err = c.cache.Add(id, *user, gocache.DefaultExpiration); err != nil {
			return user, err
		}
	}

	return user, err
}
