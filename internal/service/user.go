package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-user-service/internal/core/cache"
	"go-user-service/internal/domain"
	"go-user-service/pkg/utils"
)

// UserService orchestrates account operations on top of the credential
// store. It owns no state beyond the optional read-through cache of by-id
// fetches; every concurrency concern is delegated to the store's conditional
// statements.
type UserService struct {
	repo    domain.UserRepository
	cache   *cache.Cache
	userTTL time.Duration
	log     *zap.Logger
}

func NewUserService(repo domain.UserRepository, c *cache.Cache, userTTL time.Duration, log *zap.Logger) *UserService {
	return &UserService{repo: repo, cache: c, userTTL: userTTL, log: log}
}

func userCacheKey(id uuid.UUID) string { return "user:id:" + id.String() }

// Register hashes the password and inserts a fresh active record.
// A colliding email surfaces as domain.ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, name, surname, email, password string) (*domain.User, error) {
	digest, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &domain.User{
		UserID:         uuid.New(),
		Name:           name,
		Surname:        surname,
		Email:          email,
		IsActive:       true,
		HashedPassword: digest,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("user_id", u.UserID.String()))
	return u, nil
}

// Authenticate resolves email + password to a user. Unknown email and wrong
// password both come back as (nil, nil) so callers cannot enumerate accounts.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.HashedPassword) {
		return nil, nil
	}
	return u, nil
}

// Fetch returns the record for id, deactivated ones included. Reads go
// through the cache when one is configured.
func (s *UserService) Fetch(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if s.cache == nil {
		return s.repo.FindByID(ctx, id)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, userCacheKey(id), s.userTTL, func(ctx context.Context) (*domain.User, error) {
		return s.repo.FindByID(ctx, id)
	})
}

// Modify applies a partial update to an active record. An empty field set is
// an input error, not a no-op. Uniqueness is not pre-checked: the store's
// conflict error is the single source of truth.
func (s *UserService) Modify(ctx context.Context, id uuid.UUID, fields map[string]any) (uuid.UUID, error) {
	if len(fields) == 0 {
		return uuid.Nil, domain.ErrNoFields
	}
	ok, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, domain.ErrNotFound
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, userCacheKey(id))
	}
	s.log.Info("user updated", zap.String("user_id", id.String()))
	return id, nil
}

// Remove deactivates an active record. Deleting an unknown or already
// deactivated id reports domain.ErrNotFound.
func (s *UserService) Remove(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, domain.ErrNotFound
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, userCacheKey(id))
	}
	s.log.Info("user deactivated", zap.String("user_id", id.String()))
	return id, nil
}
