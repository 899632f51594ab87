package memory

import (
	"context"
	"sync"
	"time"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.UserProfile
}

// NewUserRepository creates an empty in-memory profile store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[uuid.UUID]*entity.UserProfile),
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entity.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	r.users[user.ID] = copyUser(user)

	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return copyUser(user), nil
}

func (r *userRepository) FindUserByPhone(ctx context.Context, phone string) (*entity.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Phone == phone {
			return copyUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) SaveLocation(ctx context.Context, userID uuid.UUID, location entity.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}

	for i := range user.Locations {
		if user.Locations[i].ID == location.ID {
			user.Locations[i] = location
			user.UpdatedAt = time.Now().UTC()

			return nil
		}
	}
	user.Locations = append(user.Locations, location)
	user.UpdatedAt = time.Now().UTC()

	return nil
}

func (r *userRepository) DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}

	for i := range user.Locations {
		if user.Locations[i].ID == locationID {
			user.Locations = append(user.Locations[:i], user.Locations[i+1:]...)
			user.UpdatedAt = time.Now().UTC()

			return nil
		}
	}

	return repository.ErrLocationNotFound
}

func (r *userRepository) UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.FCMToken = token
	user.UpdatedAt = time.Now().UTC()

	return nil
}

func copyUser(user *entity.UserProfile) *entity.UserProfile {
	out := *user
	out.Locations = make([]entity.Location, len(user.Locations))
	copy(out.Locations, user.Locations)
	if user.RestaurantID != nil {
		restaurant := *user.RestaurantID
		out.RestaurantID = &restaurant
	}

	return &out
}
