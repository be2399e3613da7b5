package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"user-service/internal/domain"
)

// fakeUserRepo is an in-memory domain.UserRepository that counts writes.
// Setting one of the *Err fields makes the matching call fail.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User

	getByIDErr    error
	getAllErr     error
	findErr       error
	getByEmailErr error
	addErr        error
	updateErr     error
	deleteErr     error

	adds, updates, deletes int
	deleted                []domain.User
}

func newFakeUserRepo(seed ...domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]domain.User)}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getByIDErr != nil {
		return nil, r.getByIDErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getAllErr != nil {
		return nil, r.getAllErr
	}
	var out []domain.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Find(_ context.Context, conds map[string]any) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []domain.User
	for _, u := range r.users {
		if active, ok := conds["is_active"]; ok && active != u.IsActive {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getByEmailErr != nil {
		return nil, r.getByEmailErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Add(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adds++
	if r.addErr != nil {
		return r.addErr
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if r.updateErr != nil {
		return r.updateErr
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, *u)
	r.users[u.ID] = *u
	return nil
}
