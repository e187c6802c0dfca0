package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/repository/memory"
)

func newUserFixture() (IUserService, *memory.Store) {
	store := memory.NewStore()
	return NewUserService(store.Users), store
}

func TestCreateUserDefaults(t *testing.T) {
	svc, store := newUserFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "user", created.Role)
	assert.True(t, created.IsActive)

	// The stored hash must not be the raw password, and the response
	// carries no password at all.
	stored, err := store.Users.FindById(ctx, created.Id)
	assert.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestCreateUserUniqueness(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateUserRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, &dto.CreateUserRequest{Username: "alice", Email: "other@example.com", Password: "secret123"})
	assert.True(t, apperror.IsConflict(err))

	_, err = svc.Create(ctx, &dto.CreateUserRequest{Username: "bob", Email: "alice@example.com", Password: "secret123"})
	assert.True(t, apperror.IsConflict(err))
}

func TestUpdateUserPartial(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{Username: "alice", Email: "alice@example.com", Password: "secret123", FirstName: "Alice"})
	assert.NoError(t, err)

	role := "editor"
	updated, err := svc.Update(ctx, created.Id, &dto.UpdateUserRequest{Role: &role})
	assert.NoError(t, err)
	assert.Equal(t, "editor", updated.Role)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "alice", updated.Username)
}

func TestDeleteUserBlocksSelf(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	admin, err := svc.Create(ctx, &dto.CreateUserRequest{Username: "admin", Email: "admin@example.com", Password: "secret123", Role: "admin"})
	assert.NoError(t, err)
	other, err := svc.Create(ctx, &dto.CreateUserRequest{Username: "bob", Email: "bob@example.com", Password: "secret123"})
	assert.NoError(t, err)

	err = svc.Delete(ctx, admin.Id, admin.Id)
	assert.Error(t, err)

	assert.NoError(t, svc.Delete(ctx, other.Id, admin.Id))

	_, err = svc.GetById(ctx, other.Id)
	assert.True(t, apperror.IsNotFound(err))
}
