package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/contract"
	"ai-catalog-be/internal/repository/memory"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionId string) error
}

type authService struct {
	userRepo    contract.UserRepository
	sessionRepo *memory.SessionRepository
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthService(
	userRepo contract.UserRepository,
	sessionRepo *memory.SessionRepository,
	jwtSecret string,
	tokenTTL time.Duration,
) IAuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
	}
}

// Login authenticates by username and issues a bearer token bound to a
// server side session. The error is the same for unknown user, wrong
// password and disabled account.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperror.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	session := &entity.Session{
		Id:        uuid.NewString(),
		UserId:    user.Id,
		CreatedAt: now,
	}
	s.sessionRepo.Save(session)

	claims := jwt.MapClaims{
		"user_id": user.Id,
		"role":    string(user.Role),
		"sid":     session.Id,
		"exp":     now.Add(s.tokenTTL).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: signed,
		User:  *ToUserResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionId string) error {
	s.sessionRepo.Delete(sessionId)
	return nil
}
