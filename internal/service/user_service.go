package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"user-service/internal/domain"
)

// UserService validates and persists users. Reads and Delete come from the
// embedded CrudService; Delete soft deletes.
type UserService struct {
	*CrudService[domain.User]
	repo  domain.UserRepository
	newID func() uuid.UUID
	now   func() time.Time
}

type Option func(*UserService)

func WithClock(now func() time.Time) Option { return func(s *UserService) { s.now = now } }

func WithIDGenerator(gen func() uuid.UUID) Option { return func(s *UserService) { s.newID = gen } }

func NewUserService(repo domain.UserRepository, log *zap.Logger, opts ...Option) *UserService {
	s := &UserService{repo: repo, newID: uuid.New, now: utcNow}
	for _, opt := range opts {
		opt(s)
	}
	s.CrudService = NewCrudService[domain.User](repo, log, CrudOptions[domain.User]{
		Entity:       domain.EntityUser,
		BeforeDelete: (*domain.User).MarkDeleted,
		Now:          s.now,
	})
	return s
}

// ListByStatus returns active or inactive users.
func (s *UserService) ListByStatus(ctx context.Context, active bool) domain.ResultOf[[]domain.User] {
	return s.Find(ctx, map[string]any{"is_active": active})
}

// Create assigns a new id and forces IsActive, ignoring the caller's value.
func (s *UserService) Create(ctx context.Context, u *domain.User) (res domain.ResultOf[*domain.User]) {
	defer func() { observe(s.entity, opCreate, res.Err()) }()

	if e := validateUser(u); e != nil {
		return domain.FailureOf[*domain.User](e)
	}

	owner, err := s.repo.GetByEmail(ctx, u.Email)
	if err != nil {
		return domain.FailureOf[*domain.User](s.unexpected(opCreate, err))
	}
	if owner != nil {
		return domain.FailureOf[*domain.User](domain.ErrUserEmailConflict)
	}

	now := s.now()
	u.ID = s.newID()
	u.IsActive = true
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.repo.Add(ctx, u); err != nil {
		// lost the check-then-act race; the unique index is authoritative
		if errors.Is(err, domain.ErrDuplicateKey) {
			return domain.FailureOf[*domain.User](domain.ErrUserEmailConflict)
		}
		return domain.FailureOf[*domain.User](s.unexpected(opCreate, err, zap.Stringer("id", u.ID)))
	}
	return domain.SuccessOf(u)
}

// Update copies Email, FullName and IsActive onto the stored record and
// returns that record. Id and CreatedAt are never taken from u.
func (s *UserService) Update(ctx context.Context, u *domain.User) (res domain.ResultOf[*domain.User]) {
	defer func() { observe(s.entity, opUpdate, res.Err()) }()

	if e := validateUser(u); e != nil {
		return domain.FailureOf[*domain.User](e)
	}

	existing, err := s.repo.GetByID(ctx, u.ID)
	if err != nil {
		return domain.FailureOf[*domain.User](s.unexpected(opUpdate, err, zap.Stringer("id", u.ID)))
	}
	if existing == nil {
		return domain.FailureOf[*domain.User](domain.ErrEntityNotFound(s.entity, u.ID))
	}

	owner, err := s.repo.GetByEmail(ctx, u.Email)
	if err != nil {
		return domain.FailureOf[*domain.User](s.unexpected(opUpdate, err, zap.Stringer("id", u.ID)))
	}
	if owner != nil && owner.ID != u.ID {
		return domain.FailureOf[*domain.User](domain.ErrUserEmailConflict)
	}

	existing.Email = u.Email
	existing.FullName = u.FullName
	existing.IsActive = u.IsActive
	existing.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return domain.FailureOf[*domain.User](domain.ErrUserEmailConflict)
		}
		return domain.FailureOf[*domain.User](s.unexpected(opUpdate, err, zap.Stringer("id", u.ID)))
	}
	return domain.SuccessOf(existing)
}

// validateUser stops at the first failing rule.
func validateUser(u *domain.User) *domain.Error {
	switch {
	case u == nil, strings.TrimSpace(u.Email) == "":
		return domain.ErrUserMissingEmail
	case utf8.RuneCountInString(u.Email) > domain.MaxEmailLength:
		return domain.ErrUserEmailTooLong
	case strings.TrimSpace(u.FullName) == "":
		return domain.ErrUserMissingFullName
	case utf8.RuneCountInString(u.FullName) > domain.MaxFullNameLength:
		return domain.ErrUserFullNameTooLong
	}
	return nil
}
