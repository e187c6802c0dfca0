package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/pkg/serverutils"
	"ai-catalog-be/internal/service"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
}

type productController struct {
	productService    service.IProductService
	attachmentService service.IAttachmentService
	auth              *serverutils.AuthMiddleware
}

func NewProductController(
	productService service.IProductService,
	attachmentService service.IAttachmentService,
	auth *serverutils.AuthMiddleware,
) IProductController {
	return &productController{
		productService:    productService,
		attachmentService: attachmentService,
		auth:              auth,
	}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	products := r.Group("/products")
	// featured and search must register before the :idOrSlug wildcard.
	products.Get("featured", c.ListFeatured)
	products.Get("search", c.Search)
	products.Get("", c.List)
	products.Get(":idOrSlug", c.Show)
	products.Get(":id/attachments", c.ListAttachments)

	r.Get("attachments/:id", c.ShowAttachment)
	r.Get("attachments/:id/download", c.DownloadAttachment)

	admin := r.Group("/admin")
	admin.Use(c.auth.RequireAuth, c.auth.RequireRole(entity.UserRoleAdmin, entity.UserRoleEditor))
	admin.Get("products", c.ListAll)
	admin.Post("products", c.Create)
	admin.Put("products/:id", c.Update)
	admin.Delete("products/:id", c.Delete)
	admin.Post("products/:id/attachments", c.UploadAttachment)
	admin.Delete("attachments/:id", c.DeleteAttachment)
}

func (c *productController) List(ctx *fiber.Ctx) error {
	res, err := c.productService.ListProducts(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *productController) ListFeatured(ctx *fiber.Ctx) error {
	res, err := c.productService.ListFeatured(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *productController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return ctx.JSON(serverutils.SuccessResponse("Success", []*dto.ProductResponse{}))
	}
	res, err := c.productService.Search(ctx.Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	res, err := c.productService.GetProduct(ctx.Context(), ctx.Params("idOrSlug"))
	if err != nil {
		return err
	}

	attachments, err := c.attachmentService.ListByProduct(ctx.Context(), res.Id)
	if err != nil {
		return err
	}
	res.Attachments = attachments

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *productController) ListAll(ctx *fiber.Ctx) error {
	res, err := c.productService.ListAllProducts(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.CreateProduct(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Product created", res))
}

func (c *productController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.UpdateProduct(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Product updated", res))
}

func (c *productController) Delete(ctx *fiber.Ctx) error {
	if err := c.productService.DeleteProduct(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Product deleted", nil))
}

func (c *productController) ListAttachments(ctx *fiber.Ctx) error {
	res, err := c.attachmentService.ListByProduct(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *productController) UploadAttachment(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file")
	}

	res, err := c.attachmentService.Upload(ctx.Context(), ctx.Params("id"), file)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Attachment uploaded", res))
}

func (c *productController) ShowAttachment(ctx *fiber.Ctx) error {
	res, err := c.attachmentService.GetById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *productController) DownloadAttachment(ctx *fiber.Ctx) error {
	attachment, path, err := c.attachmentService.Download(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.Download(path, attachment.OriginalName)
}

func (c *productController) DeleteAttachment(ctx *fiber.Ctx) error {
	if err := c.attachmentService.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Attachment deleted", nil))
}
