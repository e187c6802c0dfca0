package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/repository/memory"
)

const testJwtSecret = "test-secret"

func newAuthFixture(t *testing.T) (IAuthService, IUserService, *memory.SessionRepository) {
	t.Helper()
	store := memory.NewStore()
	sessionRepo := memory.NewSessionRepository(time.Hour)
	userSvc := NewUserService(store.Users)
	authSvc := NewAuthService(store.Users, sessionRepo, testJwtSecret, time.Hour)

	_, err := userSvc.Create(context.Background(), &dto.CreateUserRequest{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     "admin",
	})
	assert.NoError(t, err)

	return authSvc, userSvc, sessionRepo
}

func TestLoginSuccess(t *testing.T) {
	authSvc, _, sessions := newAuthFixture(t)

	res, err := authSvc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "secret123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "admin", res.User.Username)
	assert.NotNil(t, res.User.LastLoginAt)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJwtSecret), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["role"])

	sid := claims["sid"].(string)
	_, found := sessions.Get(sid)
	assert.True(t, found)
}

func TestLoginWrongPassword(t *testing.T) {
	authSvc, _, _ := newAuthFixture(t)

	_, err := authSvc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.Error(t, err)
}

func TestLoginUnknownUser(t *testing.T) {
	authSvc, _, _ := newAuthFixture(t)

	_, err := authSvc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "secret123"})
	assert.Error(t, err)
}

func TestLoginInactiveUser(t *testing.T) {
	authSvc, userSvc, _ := newAuthFixture(t)
	ctx := context.Background()
	inactive := false

	bob, err := userSvc.Create(ctx, &dto.CreateUserRequest{Username: "bob", Email: "bob@example.com", Password: "secret123"})
	assert.NoError(t, err)
	_, err = userSvc.Update(ctx, bob.Id, &dto.UpdateUserRequest{IsActive: &inactive})
	assert.NoError(t, err)

	_, err = authSvc.Login(ctx, &dto.LoginRequest{Username: "bob", Password: "secret123"})
	assert.Error(t, err)
}

func TestLogoutRevokesSession(t *testing.T) {
	authSvc, _, sessions := newAuthFixture(t)
	ctx := context.Background()

	res, err := authSvc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "secret123"})
	assert.NoError(t, err)

	token, _ := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJwtSecret), nil
	})
	sid := token.Claims.(jwt.MapClaims)["sid"].(string)

	assert.NoError(t, authSvc.Logout(ctx, sid))
	_, found := sessions.Get(sid)
	assert.False(t, found)
}
