package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/contract"
)

type UserRepository struct {
	table *Table[entity.User]
}

var _ contract.UserRepository = &UserRepository{}

func NewUserRepository() *UserRepository {
	return &UserRepository{table: NewTable[entity.User]()}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.Id = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.table.Insert(user.Id, *user)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	if !r.table.Replace(user.Id, *user) {
		return apperror.NotFound("user %s not found", user.Id)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.table.Delete(id)
	return nil
}

func (r *UserRepository) FindById(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := r.table.Get(id); ok {
		return &user, nil
	}
	return nil, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if user, ok := r.table.Find(func(u entity.User) bool { return u.Username == username }); ok {
		return &user, nil
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if user, ok := r.table.Find(func(u entity.User) bool { return u.Email == email }); ok {
		return &user, nil
	}
	return nil, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	return toPointers(r.table.List()), nil
}
