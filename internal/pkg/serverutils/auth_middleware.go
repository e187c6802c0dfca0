package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/contract"
	"ai-catalog-be/internal/repository/memory"
)

// AuthMiddleware validates bearer tokens. A token is only honored while its
// session is still present in the session store, so logout and TTL expiry
// both revoke it.
type AuthMiddleware struct {
	jwtSecret string
	sessions  *memory.SessionRepository
	users     contract.UserRepository
}

func NewAuthMiddleware(jwtSecret string, sessions *memory.SessionRepository, users contract.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
		sessions:  sessions,
		users:     users,
	}
}

func (m *AuthMiddleware) RequireAuth(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return apperror.Unauthorized("missing token")
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return apperror.Unauthorized("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return apperror.Unauthorized("invalid claims")
	}

	userId, _ := claims["user_id"].(string)
	sessionId, _ := claims["sid"].(string)
	if userId == "" || sessionId == "" {
		return apperror.Unauthorized("invalid claims")
	}

	if _, found := m.sessions.Get(sessionId); !found {
		return apperror.Unauthorized("session expired")
	}

	user, err := m.users.FindById(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive {
		return apperror.Unauthorized("account disabled")
	}

	ctx.Locals("user_id", user.Id)
	ctx.Locals("user_role", string(user.Role))
	ctx.Locals("session_id", sessionId)
	return ctx.Next()
}

// RequireRole gates a route to the given roles. It must run after
// RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...entity.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("user_role").(string)
		for _, allowed := range roles {
			if role == string(allowed) {
				return ctx.Next()
			}
		}
		return apperror.Forbidden("insufficient role")
	}
}
