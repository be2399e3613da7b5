package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence capability the services consume.
// Lookups return (nil, nil) when the record does not exist; any returned
// error is an infrastructure fault.
type Repository[T any] interface {
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	// Find returns records matching every column/value pair in conds.
	Find(ctx context.Context, conds map[string]any) ([]T, error)
	Add(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}

type UserRepository interface {
	Repository[User]
	// GetByEmail matches active and inactive records.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
