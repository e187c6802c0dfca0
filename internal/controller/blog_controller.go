package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/pkg/serverutils"
	"ai-catalog-be/internal/service"
)

type IBlogController interface {
	RegisterRoutes(r fiber.Router)
}

type blogController struct {
	blogService service.IBlogService
	auth        *serverutils.AuthMiddleware
}

func NewBlogController(blogService service.IBlogService, auth *serverutils.AuthMiddleware) IBlogController {
	return &blogController{
		blogService: blogService,
		auth:        auth,
	}
}

func (c *blogController) RegisterRoutes(r fiber.Router) {
	blog := r.Group("/blog")
	blog.Get("categories", c.ListCategories)
	blog.Get("posts", c.ListPublishedPosts)
	blog.Get("posts/:idOrSlug", c.ShowPost)

	admin := r.Group("/admin/blog")
	admin.Use(c.auth.RequireAuth, c.auth.RequireRole(entity.UserRoleAdmin, entity.UserRoleEditor))
	admin.Post("categories", c.CreateCategory)
	admin.Delete("categories/:id", c.DeleteCategory)
	admin.Get("posts", c.ListAllPosts)
	admin.Get("posts/:id", c.ShowPostAdmin)
	admin.Post("posts", c.CreatePost)
	admin.Put("posts/:id", c.UpdatePost)
	admin.Delete("posts/:id", c.DeletePost)
}

func (c *blogController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.blogService.ListCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *blogController) ListPublishedPosts(ctx *fiber.Ctx) error {
	res, err := c.blogService.ListPublishedPosts(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *blogController) ShowPost(ctx *fiber.Ctx) error {
	res, err := c.blogService.GetPublishedPost(ctx.Context(), ctx.Params("idOrSlug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *blogController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.CreateBlogCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.blogService.CreateCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Blog category created", res))
}

func (c *blogController) DeleteCategory(ctx *fiber.Ctx) error {
	if err := c.blogService.DeleteCategory(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Blog category deleted", nil))
}

func (c *blogController) ListAllPosts(ctx *fiber.Ctx) error {
	res, err := c.blogService.ListAllPosts(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *blogController) ShowPostAdmin(ctx *fiber.Ctx) error {
	res, err := c.blogService.GetPost(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *blogController) CreatePost(ctx *fiber.Ctx) error {
	var req dto.CreateBlogPostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.blogService.CreatePost(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Blog post created", res))
}

func (c *blogController) UpdatePost(ctx *fiber.Ctx) error {
	var req dto.UpdateBlogPostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.blogService.UpdatePost(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Blog post updated", res))
}

func (c *blogController) DeletePost(ctx *fiber.Ctx) error {
	if err := c.blogService.DeletePost(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Blog post deleted", nil))
}
