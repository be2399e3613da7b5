package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"user-service/internal/domain"
)

const (
	opGetByID = "get_by_id"
	opGetAll  = "get_all"
	opFind    = "find"
	opCreate  = "create"
	opUpdate  = "update"
	opDelete  = "delete"
)

// CrudOptions carries the entity-specific parts of a CrudService.
type CrudOptions[T any] struct {
	// Entity names the entity in error codes and logs, e.g. "User".
	Entity string
	// BeforeDelete runs on the fetched entity before Repository.Delete.
	// Soft-deletable entities flip their active flag here.
	BeforeDelete func(entity *T, at time.Time)
	Now          func() time.Time
}

// CrudService implements the reads and the delete shared by every entity.
// Repository faults are logged and returned as "{Entity}.Unexpected".
type CrudService[T any] struct {
	entity       string
	repo         domain.Repository[T]
	log          *zap.Logger
	now          func() time.Time
	beforeDelete func(*T, time.Time)
}

func NewCrudService[T any](repo domain.Repository[T], log *zap.Logger, opts CrudOptions[T]) *CrudService[T] {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = utcNow
	}
	return &CrudService[T]{
		entity:       opts.Entity,
		repo:         repo,
		log:          log,
		now:          opts.Now,
		beforeDelete: opts.BeforeDelete,
	}
}

func (s *CrudService[T]) GetByID(ctx context.Context, id uuid.UUID) (res domain.ResultOf[*T]) {
	defer func() { observe(s.entity, opGetByID, res.Err()) }()

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.FailureOf[*T](s.unexpected(opGetByID, err, zap.Stringer("id", id)))
	}
	if entity == nil {
		return domain.FailureOf[*T](domain.ErrEntityNotFound(s.entity, id))
	}
	return domain.SuccessOf(entity)
}

// GetAll never fails with NotFound; an empty store is an empty slice.
func (s *CrudService[T]) GetAll(ctx context.Context) (res domain.ResultOf[[]T]) {
	defer func() { observe(s.entity, opGetAll, res.Err()) }()

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return domain.FailureOf[[]T](s.unexpected(opGetAll, err))
	}
	if items == nil {
		items = []T{}
	}
	return domain.SuccessOf(items)
}

func (s *CrudService[T]) Find(ctx context.Context, conds map[string]any) (res domain.ResultOf[[]T]) {
	defer func() { observe(s.entity, opFind, res.Err()) }()

	items, err := s.repo.Find(ctx, conds)
	if err != nil {
		return domain.FailureOf[[]T](s.unexpected(opFind, err, zap.Any("conds", conds)))
	}
	if items == nil {
		items = []T{}
	}
	return domain.SuccessOf(items)
}

func (s *CrudService[T]) Delete(ctx context.Context, id uuid.UUID) (res domain.Result) {
	defer func() { observe(s.entity, opDelete, res.Err()) }()

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Failure(s.unexpected(opDelete, err, zap.Stringer("id", id)))
	}
	if entity == nil {
		return domain.Failure(domain.ErrEntityNotFound(s.entity, id))
	}
	if s.beforeDelete != nil {
		s.beforeDelete(entity, s.now())
	}
	if err := s.repo.Delete(ctx, entity); err != nil {
		return domain.Failure(s.unexpected(opDelete, err, zap.Stringer("id", id)))
	}
	return domain.Success()
}

// unexpected logs the fault and returns the generic error that hides it.
func (s *CrudService[T]) unexpected(op string, err error, fields ...zap.Field) *domain.Error {
	fields = append([]zap.Field{
		zap.String("entity", s.entity),
		zap.String("op", op),
		zap.Error(err),
	}, fields...)
	s.log.Error("unexpected repository error", fields...)
	return domain.ErrEntityUnexpected(s.entity)
}

func utcNow() time.Time { return time.Now().UTC() }
