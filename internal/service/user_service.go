package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/contract"
)

type IUserService interface {
	List(ctx context.Context) ([]*dto.UserResponse, error)
	GetById(ctx context.Context, id string) (*dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id, actingUserId string) error
}

type userService struct {
	userRepo contract.UserRepository
}

func NewUserService(userRepo contract.UserRepository) IUserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out, nil
}

func (s *userService) GetById(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return ToUserResponse(user), nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if existing, err := s.userRepo.FindByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperror.Conflict("username %q already taken", req.Username)
	}
	if existing, err := s.userRepo.FindByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperror.Conflict("email %q already registered", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := entity.UserRole(req.Role)
	if role == "" {
		role = entity.UserRoleUser
	}

	user := &entity.User{
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    string(hash),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageUrl: req.ProfileImageUrl,
		Role:            role,
		IsActive:        boolOrDefault(req.IsActive, true),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	if req.Username != nil && *req.Username != user.Username {
		if existing, err := s.userRepo.FindByUsername(ctx, *req.Username); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, apperror.Conflict("username %q already taken", *req.Username)
		}
		user.Username = *req.Username
	}
	if req.Email != nil && *req.Email != user.Email {
		if existing, err := s.userRepo.FindByEmail(ctx, *req.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, apperror.Conflict("email %q already registered", *req.Email)
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.ProfileImageUrl != nil {
		user.ProfileImageUrl = *req.ProfileImageUrl
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Delete refuses self-deletion so an admin cannot lock themselves out.
func (s *userService) Delete(ctx context.Context, id, actingUserId string) error {
	if id == actingUserId {
		return apperror.Validation("cannot delete your own account")
	}
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user not found")
	}
	return s.userRepo.Delete(ctx, id)
}

// ToUserResponse strips the password hash; it never leaves the service
// layer.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:              u.Id,
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageUrl: u.ProfileImageUrl,
		Role:            string(u.Role),
		IsActive:        u.IsActive,
		LastLoginAt:     u.LastLoginAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
