package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"user-service/internal/domain"
)

type UserRepo struct {
	*GormRepository[domain.User]
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{GormRepository: NewGormRepository[domain.User](db), db: db}
}

// GetByEmail is an exact match over active and inactive users.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete persists a soft delete: only is_active and updated_at are written.
func (r *UserRepo) Delete(ctx context.Context, u *domain.User) error {
	return r.tx(ctx, func(tx *gorm.DB) error {
		return tx.Model(u).Updates(map[string]any{
			"is_active":  u.IsActive,
			"updated_at": u.UpdatedAt,
		}).Error
	})
}

var _ domain.UserRepository = (*UserRepo)(nil)
