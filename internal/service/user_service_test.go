package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"user-service/internal/domain"
	"user-service/internal/service"
)

var (
	t0      = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t1      = t0.Add(48 * time.Hour)
	fixedID = uuid.MustParse("11111111-2222-4333-8444-555555555555")
)

func newService(repo *fakeUserRepo, now time.Time) (*service.UserService, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := service.NewUserService(repo, zap.New(core),
		service.WithClock(func() time.Time { return now }),
		service.WithIDGenerator(func() uuid.UUID { return fixedID }),
	)
	return svc, logs
}

func storedUser(email string) domain.User {
	return domain.User{
		ID:        uuid.New(),
		Email:     email,
		FullName:  "Stored User",
		IsActive:  true,
		CreatedAt: t0,
		UpdatedAt: t0,
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		fullName string
		want     *domain.Error
	}{
		{"empty email", "", "John Doe", domain.ErrUserMissingEmail},
		{"whitespace email", "   \t", "John Doe", domain.ErrUserMissingEmail},
		{"email 201 chars", strings.Repeat("a", 201), "John Doe", domain.ErrUserEmailTooLong},
		{"empty full name", "john@doe.com", "", domain.ErrUserMissingFullName},
		{"whitespace full name", "john@doe.com", "  ", domain.ErrUserMissingFullName},
		{"full name 201 chars", "john@doe.com", strings.Repeat("x", 201), domain.ErrUserFullNameTooLong},
		{"email checked before full name", "", "", domain.ErrUserMissingEmail},
		{"length checked before full name", strings.Repeat("a", 201), "", domain.ErrUserEmailTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc, _ := newService(repo, t0)

			res := svc.Create(context.Background(), &domain.User{Email: tt.email, FullName: tt.fullName})

			require.True(t, res.IsFailure())
			assert.Same(t, tt.want, res.Err())
			assert.Zero(t, repo.adds)
		})
	}
}

func TestCreate_AcceptsMaxLengths(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newService(repo, t0)

	res := svc.Create(context.Background(), &domain.User{
		Email:    strings.Repeat("a", 200),
		FullName: strings.Repeat("é", 200),
	})

	require.True(t, res.IsSuccess(), "%v", res.Err())
}

func TestCreate_EmailConflict(t *testing.T) {
	for _, active := range []bool{true, false} {
		t.Run(fmt.Sprintf("existing active=%v", active), func(t *testing.T) {
			existing := storedUser("john@doe.com")
			existing.IsActive = active
			repo := newFakeUserRepo(existing)
			svc, _ := newService(repo, t0)

			res := svc.Create(context.Background(), &domain.User{Email: "john@doe.com", FullName: "John Doe"})

			require.True(t, res.IsFailure())
			assert.Same(t, domain.ErrUserEmailConflict, res.Err())
			assert.Zero(t, repo.adds)
		})
	}
}

func TestCreate_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newService(repo, t0)
	in := &domain.User{ID: uuid.New(), Email: "john@doe.com", FullName: "John Doe", IsActive: false}

	res := svc.Create(context.Background(), in)

	require.True(t, res.IsSuccess())
	got := res.Value()
	assert.Equal(t, fixedID, got.ID)
	assert.True(t, got.IsActive)
	assert.Equal(t, t0, got.CreatedAt)
	assert.Equal(t, t0, got.UpdatedAt)
	assert.Equal(t, 1, repo.adds)
	assert.Contains(t, repo.users, fixedID)
}

func TestCreate_DuplicateKeyOnAddIsConflict(t *testing.T) {
	repo := newFakeUserRepo()
	repo.addErr = fmt.Errorf("%w: UNIQUE constraint failed: users.email", domain.ErrDuplicateKey)
	svc, logs := newService(repo, t0)

	res := svc.Create(context.Background(), &domain.User{Email: "john@doe.com", FullName: "John Doe"})

	require.True(t, res.IsFailure())
	assert.Same(t, domain.ErrUserEmailConflict, res.Err())
	assert.Zero(t, logs.Len())
}

func TestCreate_RepositoryFault(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeUserRepo)
	}{
		{"lookup fails", func(r *fakeUserRepo) { r.getByEmailErr = errors.New("database unavailable") }},
		{"add fails", func(r *fakeUserRepo) { r.addErr = errors.New("database unavailable") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			tt.setup(repo)
			svc, logs := newService(repo, t0)

			res := svc.Create(context.Background(), &domain.User{Email: "john@doe.com", FullName: "John Doe"})

			require.True(t, res.IsFailure())
			assert.Equal(t, "User.Unexpected", res.Err().Code())
			assert.Equal(t, domain.ErrorTypeUnexpected, res.Err().Type())
			assert.NotContains(t, res.Err().Message(), "database unavailable")
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, zapcore.ErrorLevel, entry.Level)
			assert.Equal(t, "User", entry.ContextMap()["entity"])
			assert.Equal(t, "create", entry.ContextMap()["op"])
		})
	}
}

func TestUpdate_Validation(t *testing.T) {
	existing := storedUser("john@doe.com")
	repo := newFakeUserRepo(existing)
	svc, _ := newService(repo, t1)

	res := svc.Update(context.Background(), &domain.User{ID: existing.ID, Email: " ", FullName: "John"})

	require.True(t, res.IsFailure())
	assert.Same(t, domain.ErrUserMissingEmail, res.Err())
	assert.Zero(t, repo.updates)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newService(repo, t1)
	id := uuid.New()

	res := svc.Update(context.Background(), &domain.User{ID: id, Email: "ghost@user.com", FullName: "Ghost"})

	require.True(t, res.IsFailure())
	assert.Equal(t, "User.NotFound", res.Err().Code())
	assert.Contains(t, res.Err().Message(), id.String())
	assert.Zero(t, repo.updates)
}

func TestUpdate_EmailConflict(t *testing.T) {
	existing := storedUser("old@doe.com")
	another := storedUser("new@doe.com")
	repo := newFakeUserRepo(existing, another)
	svc, _ := newService(repo, t1)

	res := svc.Update(context.Background(), &domain.User{ID: existing.ID, Email: "new@doe.com", FullName: "John Doe"})

	require.True(t, res.IsFailure())
	assert.Same(t, domain.ErrUserEmailConflict, res.Err())
	assert.Zero(t, repo.updates)
}

func TestUpdate_KeepOwnEmail(t *testing.T) {
	existing := storedUser("john@doe.com")
	repo := newFakeUserRepo(existing)
	svc, _ := newService(repo, t1)

	res := svc.Update(context.Background(), &domain.User{ID: existing.ID, Email: "john@doe.com", FullName: "Johnny", IsActive: true})

	require.True(t, res.IsSuccess(), "%v", res.Err())
	assert.Equal(t, "Johnny", res.Value().FullName)
	assert.Equal(t, 1, repo.updates)
}

func TestUpdate_ReturnsStoredRecord(t *testing.T) {
	existing := storedUser("john@doe.com")
	repo := newFakeUserRepo(existing)
	svc, _ := newService(repo, t1)
	in := &domain.User{
		ID:        existing.ID,
		Email:     "jane@doe.com",
		FullName:  "Jane Doe",
		IsActive:  false,
		CreatedAt: t1.Add(time.Hour),
	}

	res := svc.Update(context.Background(), in)

	require.True(t, res.IsSuccess())
	got := res.Value()
	assert.NotSame(t, in, got)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, t0, got.CreatedAt)
	assert.Equal(t, t1, got.UpdatedAt)
	assert.Equal(t, "jane@doe.com", got.Email)
	assert.Equal(t, "Jane Doe", got.FullName)
	assert.False(t, got.IsActive)
	assert.Equal(t, 1, repo.updates)
	assert.Equal(t, *got, repo.users[existing.ID])
}

func TestUpdate_RepositoryFault(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeUserRepo)
	}{
		{"get by id fails", func(r *fakeUserRepo) { r.getByIDErr = errors.New("database unavailable") }},
		{"get by email fails", func(r *fakeUserRepo) { r.getByEmailErr = errors.New("database unavailable") }},
		{"update fails", func(r *fakeUserRepo) { r.updateErr = errors.New("database unavailable") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := storedUser("john@doe.com")
			repo := newFakeUserRepo(existing)
			tt.setup(repo)
			svc, logs := newService(repo, t1)

			res := svc.Update(context.Background(), &domain.User{ID: existing.ID, Email: "john@doe.com", FullName: "John"})

			require.True(t, res.IsFailure())
			assert.Equal(t, "User.Unexpected", res.Err().Code())
			require.Equal(t, 1, logs.Len())
			assert.Equal(t, existing.ID.String(), logs.All()[0].ContextMap()["id"])
		})
	}
}

func TestUpdate_DuplicateKeyIsConflict(t *testing.T) {
	existing := storedUser("john@doe.com")
	repo := newFakeUserRepo(existing)
	repo.updateErr = fmt.Errorf("%w: duplicate key value", domain.ErrDuplicateKey)
	svc, _ := newService(repo, t1)

	res := svc.Update(context.Background(), &domain.User{ID: existing.ID, Email: "race@doe.com", FullName: "John"})

	require.True(t, res.IsFailure())
	assert.Same(t, domain.ErrUserEmailConflict, res.Err())
}

func TestListByStatus(t *testing.T) {
	active := storedUser("a@doe.com")
	inactive := storedUser("b@doe.com")
	inactive.IsActive = false
	svc, _ := newService(newFakeUserRepo(active, inactive), t1)

	res := svc.ListByStatus(context.Background(), false)

	require.True(t, res.IsSuccess())
	require.Len(t, res.Value(), 1)
	assert.Equal(t, inactive.ID, res.Value()[0].ID)
}
