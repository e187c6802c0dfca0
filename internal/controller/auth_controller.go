package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/pkg/serverutils"
	"ai-catalog-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	userService service.IUserService
	auth        *serverutils.AuthMiddleware
}

func NewAuthController(
	authService service.IAuthService,
	userService service.IUserService,
	auth *serverutils.AuthMiddleware,
) IAuthController {
	return &authController{
		authService: authService,
		userService: userService,
		auth:        auth,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("login", c.Login)
	h.Post("logout", c.auth.RequireAuth, c.Logout)
	h.Get("user", c.auth.RequireAuth, c.Me)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	sessionId, _ := ctx.Locals("session_id").(string)
	if err := c.authService.Logout(ctx.Context(), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logout successful", nil))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)
	res, err := c.userService.GetById(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
