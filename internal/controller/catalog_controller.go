package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/pkg/serverutils"
	"ai-catalog-be/internal/service"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
}

type catalogController struct {
	catalogService service.ICatalogService
	productService service.IProductService
	auth           *serverutils.AuthMiddleware
}

func NewCatalogController(
	catalogService service.ICatalogService,
	productService service.IProductService,
	auth *serverutils.AuthMiddleware,
) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
		productService: productService,
		auth:           auth,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("stats", c.Stats)

	domains := r.Group("/domains")
	domains.Get("", c.ListDomains)
	domains.Get(":idOrSlug", c.ShowDomain)
	domains.Get(":idOrSlug/categories", c.ListDomainCategories)

	categories := r.Group("/categories")
	categories.Get("", c.ListCategories)
	categories.Get(":idOrSlug", c.ShowCategory)
	categories.Get(":idOrSlug/products", c.ListCategoryProducts)

	admin := r.Group("/admin")
	admin.Use(c.auth.RequireAuth, c.auth.RequireRole(entity.UserRoleAdmin, entity.UserRoleEditor))
	admin.Get("domains", c.ListAllDomains)
	admin.Post("domains", c.CreateDomain)
	admin.Put("domains/:id", c.UpdateDomain)
	admin.Delete("domains/:id", c.DeleteDomain)
	admin.Get("categories", c.ListAllCategories)
	admin.Post("categories", c.CreateCategory)
	admin.Put("categories/:id", c.UpdateCategory)
	admin.Delete("categories/:id", c.DeleteCategory)
}

func (c *catalogController) Stats(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *catalogController) ListDomains(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListDomains(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *catalogController) ShowDomain(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetDomain(ctx.Context(), ctx.Params("idOrSlug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *catalogController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *catalogController) ListDomainCategories(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListDomainCategories(ctx.Context(), ctx.Params("idOrSlug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *catalogController) ShowCategory(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetCategory(ctx.Context(), ctx.Params("idOrSlug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *catalogController) ListCategoryProducts(ctx *fiber.Ctx) error {
	res, err := c.productService.ListByCategory(ctx.Context(), ctx.Params("idOrSlug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *catalogController) ListAllDomains(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListAllDomains(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *catalogController) CreateDomain(ctx *fiber.Ctx) error {
	var req dto.CreateDomainRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateDomain(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Domain created", res))
}

func (c *catalogController) UpdateDomain(ctx *fiber.Ctx) error {
	var req dto.UpdateDomainRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateDomain(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Domain updated", res))
}

func (c *catalogController) DeleteDomain(ctx *fiber.Ctx) error {
	if err := c.catalogService.DeleteDomain(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Domain deleted", nil))
}

func (c *catalogController) ListAllCategories(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListAllCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *catalogController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Category created", res))
}

func (c *catalogController) UpdateCategory(ctx *fiber.Ctx) error {
	var req dto.UpdateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateCategory(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category updated", res))
}

func (c *catalogController) DeleteCategory(ctx *fiber.Ctx) error {
	if err := c.catalogService.DeleteCategory(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Category deleted", nil))
}
