package redis

import (
	"context"
	"encoding/json"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/agendaescolar/backend/domain"
	"github.com/agendaescolar/backend/repository"
)

// userCache decorates a UserRepository with a read-through Redis cache on
// GetByID. The auth gate resolves the token owner on every protected request,
// so this is the hottest lookup in the system. Writes and email lookups pass
// straight through.
type userCache struct {
	client *redislib.Client
	inner  repository.UserRepository
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

// cachedUser carries the password hash explicitly because domain.User
// excludes it from JSON.
type cachedUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUserCache wraps inner with a Redis-backed GetByID cache.
func NewUserCache(client *redislib.Client, inner repository.UserRepository, ttl time.Duration, logger *zap.Logger) repository.UserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userCache{
		client: client,
		inner:  inner,
		ttl:    ttl,
		prefix: "user:",
		logger: logger,
	}
}

func (c *userCache) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := c.inner.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	c.store(ctx, created)
	return created, nil
}

func (c *userCache) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return c.inner.GetByEmail(ctx, email)
}

func (c *userCache) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if raw, err := c.client.Get(ctx, c.key(id)).Result(); err == nil {
		var cached cachedUser
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &domain.User{
				ID:           cached.ID,
				Name:         cached.Name,
				Email:        cached.Email,
				PasswordHash: cached.PasswordHash,
				CreatedAt:    cached.CreatedAt,
			}, nil
		}
	} else if err != redislib.Nil {
		c.logger.Warn("user cache read failed", zap.Error(err))
	}

	user, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, user)
	return user, nil
}

func (c *userCache) store(ctx context.Context, user *domain.User) {
	if user == nil || user.ID == "" {
		return
	}
	payload, err := json.Marshal(cachedUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(user.ID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("user cache write failed", zap.Error(err))
	}
}

func (c *userCache) key(id string) string {
	return c.prefix + id
}
