package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/pkg/serverutils"
	"ai-catalog-be/internal/service"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	Limit(ctx *fiber.Ctx) error
	Questions(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{chatbotService: chatbotService}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot")
	h.Post("ask", c.Ask)
	h.Get("remaining/:deviceId", c.Limit)
	h.Get("questions", c.Questions)
}

func (c *chatbotController) Ask(ctx *fiber.Ctx) error {
	var req dto.ChatAskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *chatbotController) Limit(ctx *fiber.Ctx) error {
	deviceId := ctx.Params("deviceId")
	if deviceId == "" {
		return apperror.Validation("deviceId is required")
	}

	res, err := c.chatbotService.CheckRateLimit(ctx.Context(), deviceId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *chatbotController) Questions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success", c.chatbotService.PredefinedQuestions()))
}
