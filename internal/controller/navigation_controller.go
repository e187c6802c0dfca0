package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/pkg/serverutils"
	"ai-catalog-be/internal/service"
)

type INavigationController interface {
	RegisterRoutes(r fiber.Router)
}

type navigationController struct {
	navigationService service.INavigationService
	auth              *serverutils.AuthMiddleware
}

func NewNavigationController(navigationService service.INavigationService, auth *serverutils.AuthMiddleware) INavigationController {
	return &navigationController{
		navigationService: navigationService,
		auth:              auth,
	}
}

func (c *navigationController) RegisterRoutes(r fiber.Router) {
	r.Get("navigation", c.ListVisible)

	admin := r.Group("/admin/navigation")
	admin.Use(c.auth.RequireAuth, c.auth.RequireRole(entity.UserRoleAdmin, entity.UserRoleEditor))
	admin.Get("", c.ListAll)
	admin.Post("", c.Create)
	admin.Post("reorder", c.Reorder)
	admin.Put(":id", c.Update)
	admin.Delete(":id", c.Delete)
}

func (c *navigationController) ListVisible(ctx *fiber.Ctx) error {
	res, err := c.navigationService.ListVisible(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *navigationController) ListAll(ctx *fiber.Ctx) error {
	res, err := c.navigationService.ListAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *navigationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNavigationItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.navigationService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Navigation item created", res))
}

func (c *navigationController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateNavigationItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.navigationService.Update(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Navigation item updated", res))
}

func (c *navigationController) Delete(ctx *fiber.Ctx) error {
	if err := c.navigationService.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Navigation item deleted", nil))
}

func (c *navigationController) Reorder(ctx *fiber.Ctx) error {
	var req dto.ReorderNavigationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.navigationService.Reorder(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Navigation reordered", res))
}
