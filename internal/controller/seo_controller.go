package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-catalog-be/internal/service"
)

type ISeoController interface {
	RegisterRootRoutes(app *fiber.App)
}

type seoController struct {
	seoService service.ISeoService
}

func NewSeoController(seoService service.ISeoService) ISeoController {
	return &seoController{seoService: seoService}
}

// The sitemap lives at the app root, not under /api, because crawlers
// expect it there.
func (c *seoController) RegisterRootRoutes(app *fiber.App) {
	app.Get("/sitemap.xml", c.Sitemap)
}

func (c *seoController) Sitemap(ctx *fiber.Ctx) error {
	xml, err := c.seoService.GenerateSitemap(ctx.Context())
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return ctx.SendString(xml)
}
