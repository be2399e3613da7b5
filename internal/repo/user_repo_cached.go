package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"user-service/internal/core/cache"
	"user-service/internal/domain"
)

// Cache is what CachedUserRepo needs from a cache backend.
type Cache interface {
	cache.Loader
	Invalidate(ctx context.Context, keys ...string) error
}

// CachedUserRepo serves GetByID read-through from a cache and invalidates
// the entry on every write. Everything else goes straight to the store.
type CachedUserRepo struct {
	domain.UserRepository
	cache Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedUserRepo(next domain.UserRepository, c Cache, ttl time.Duration, log *zap.Logger) *CachedUserRepo {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedUserRepo{UserRepository: next, cache: c, ttl: ttl, log: log}
}

func userKey(id uuid.UUID) string { return "user:" + id.String() }

func (r *CachedUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return cache.GetOrLoadJSON(r.cache, ctx, userKey(id), r.ttl, func(ctx context.Context) (*domain.User, error) {
		return r.UserRepository.GetByID(ctx, id)
	})
}

func (r *CachedUserRepo) Add(ctx context.Context, u *domain.User) error {
	if err := r.UserRepository.Add(ctx, u); err != nil {
		return err
	}
	// a miss may have been cached as null before the id existed
	r.invalidate(ctx, u.ID)
	return nil
}

func (r *CachedUserRepo) Update(ctx context.Context, u *domain.User) error {
	if err := r.UserRepository.Update(ctx, u); err != nil {
		return err
	}
	r.invalidate(ctx, u.ID)
	return nil
}

func (r *CachedUserRepo) Delete(ctx context.Context, u *domain.User) error {
	if err := r.UserRepository.Delete(ctx, u); err != nil {
		return err
	}
	r.invalidate(ctx, u.ID)
	return nil
}

func (r *CachedUserRepo) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Invalidate(ctx, userKey(id)); err != nil {
		r.log.Warn("cache invalidate failed", zap.String("key", userKey(id)), zap.Error(err))
	}
}
