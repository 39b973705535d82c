package repositories

import (
	"context"
	"testing"

	"github.com/lcstaffing/jobboard/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

type fakeUsers struct {
	users map[string]models.User
	calls int
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.calls++
	if user, ok := f.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func Test_CachedUsers_SecondReadComesFromCache(t *testing.T) {
	inner := &fakeUsers{users: map[string]models.User{
		"manager-1": {ID: "manager-1", Email: "manager@example.com"},
	}}
	cached := NewCachedUsers(inner)

	first, err := cached.GetByID(context.Background(), "manager-1")
	assert.NoError(t, err)
	second, err := cached.GetByID(context.Background(), "manager-1")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func Test_CachedUsers_MissingUserIsNotCached(t *testing.T) {
	inner := &fakeUsers{users: map[string]models.User{}}
	cached := NewCachedUsers(inner)

	user, err := cached.GetByID(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)

	_, _ = cached.GetByID(context.Background(), "ghost")
	assert.Equal(t, 2, inner.calls)
}
