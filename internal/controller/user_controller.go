package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/pkg/serverutils"
	"ai-catalog-be/internal/service"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
	auth        *serverutils.AuthMiddleware
}

func NewUserController(userService service.IUserService, auth *serverutils.AuthMiddleware) IUserController {
	return &userController{
		userService: userService,
		auth:        auth,
	}
}

// User management is admin only.
func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/users")
	h.Use(c.auth.RequireAuth, c.auth.RequireRole(entity.UserRoleAdmin))
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *userController) List(ctx *fiber.Ctx) error {
	res, err := c.userService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	res, err := c.userService.GetById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("User created", res))
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.Update(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User updated", res))
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	actingUserId, _ := ctx.Locals("user_id").(string)
	if err := c.userService.Delete(ctx.Context(), ctx.Params("id"), actingUserId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User deleted", nil))
}
