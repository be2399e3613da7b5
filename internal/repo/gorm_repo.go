package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"user-service/internal/domain"
)

// GormRepository implements domain.Repository[T] for any gorm model whose
// primary key column is "id". Writes run in their own transaction.
type GormRepository[T any] struct {
	db      *gorm.DB
	orderBy string
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db, orderBy: "created_at DESC"}
}

func (r *GormRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var e T
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.db.WithContext(ctx).Order(r.orderBy).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository[T]) Find(ctx context.Context, conds map[string]any) ([]T, error) {
	var items []T
	q := r.db.WithContext(ctx)
	if len(conds) > 0 {
		q = q.Where(conds)
	}
	if err := q.Order(r.orderBy).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository[T]) Add(ctx context.Context, e *T) error {
	return r.tx(ctx, func(tx *gorm.DB) error { return tx.Create(e).Error })
}

// Update writes every column. Timestamps are taken from e as set by the
// caller's clock, not from gorm's autoUpdateTime.
func (r *GormRepository[T]) Update(ctx context.Context, e *T) error {
	return r.tx(ctx, func(tx *gorm.DB) error {
		return tx.Session(&gorm.Session{SkipHooks: true}).Save(e).Error
	})
}

func (r *GormRepository[T]) Delete(ctx context.Context, e *T) error {
	return r.tx(ctx, func(tx *gorm.DB) error { return tx.Delete(e).Error })
}

func (r *GormRepository[T]) tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return translate(r.db.WithContext(ctx).Transaction(fn))
}

// translate wraps unique violations with domain.ErrDuplicateKey.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if isDupKey(err) {
		return fmt.Errorf("%w: %w", domain.ErrDuplicateKey, err)
	}
	return err
}

func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// drivers that gorm does not translate
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
