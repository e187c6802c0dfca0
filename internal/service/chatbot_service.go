package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/constant"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/pkg/logger"
	"ai-catalog-be/internal/repository/contract"
	"ai-catalog-be/pkg/llm"
)

type IChatbotService interface {
	Ask(ctx context.Context, req *dto.ChatAskRequest) (*dto.ChatAskResponse, error)
	CheckRateLimit(ctx context.Context, deviceId string) (*dto.ChatLimitResponse, error)
	PredefinedQuestions() *dto.PredefinedQuestionsResponse
}

type chatbotService struct {
	chatSessionRepo contract.ChatSessionRepository
	domainRepo      contract.DomainRepository
	categoryRepo    contract.CategoryRepository
	productRepo     contract.ProductRepository
	llmProvider     llm.LLMProvider
	dailyLimit      int
	log             logger.ILogger
}

func NewChatbotService(
	chatSessionRepo contract.ChatSessionRepository,
	domainRepo contract.DomainRepository,
	categoryRepo contract.CategoryRepository,
	productRepo contract.ProductRepository,
	llmProvider llm.LLMProvider,
	dailyLimit int,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		chatSessionRepo: chatSessionRepo,
		domainRepo:      domainRepo,
		categoryRepo:    categoryRepo,
		productRepo:     productRepo,
		llmProvider:     llmProvider,
		dailyLimit:      dailyLimit,
		log:             log,
	}
}

// Ask answers one question against the catalog context. A question only
// consumes quota when the model actually produced an answer; provider
// failures return a canned response and leave the counter untouched.
func (s *chatbotService) Ask(ctx context.Context, req *dto.ChatAskRequest) (*dto.ChatAskResponse, error) {
	used, err := s.usedToday(ctx, req.DeviceId)
	if err != nil {
		return nil, err
	}
	if used >= s.dailyLimit {
		return nil, apperror.RateLimited(constant.ChatLimitReachedMessage)
	}

	systemPrompt := fmt.Sprintf(constant.ChatSystemPromptTemplate, s.buildContext(ctx))

	answer, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: req.Question},
	},
		llm.WithMaxTokens(constant.ChatMaxTokens),
		llm.WithTemperature(constant.ChatTemperature),
	)
	if err != nil {
		s.log.Error("chatbot", "llm call failed", map[string]interface{}{
			"device_id": req.DeviceId,
			"error":     err.Error(),
		})
		return &dto.ChatAskResponse{
			Response:  constant.ChatUnavailableResponse,
			Remaining: s.dailyLimit - used,
		}, nil
	}
	if strings.TrimSpace(answer) == "" {
		return &dto.ChatAskResponse{
			Response:  constant.ChatEmptyResponse,
			Remaining: s.dailyLimit - used,
		}, nil
	}

	session := &entity.ChatSession{
		DeviceId: req.DeviceId,
		Question: req.Question,
		Response: answer,
	}
	if err := s.chatSessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.ChatAskResponse{
		Response:  answer,
		Remaining: s.dailyLimit - used - 1,
	}, nil
}

func (s *chatbotService) CheckRateLimit(ctx context.Context, deviceId string) (*dto.ChatLimitResponse, error) {
	used, err := s.usedToday(ctx, deviceId)
	if err != nil {
		return nil, err
	}
	remaining := s.dailyLimit - used
	if remaining < 0 {
		remaining = 0
	}
	return &dto.ChatLimitResponse{
		Allowed:   used < s.dailyLimit,
		Remaining: remaining,
	}, nil
}

func (s *chatbotService) PredefinedQuestions() *dto.PredefinedQuestionsResponse {
	return &dto.PredefinedQuestionsResponse{Questions: constant.PredefinedQuestions}
}

// usedToday counts questions since local midnight. The window follows the
// server clock, so the quota resets at the server's midnight, not the
// client's.
func (s *chatbotService) usedToday(ctx context.Context, deviceId string) (int, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)
	return s.chatSessionRepo.CountForDeviceBetween(ctx, deviceId, from, to)
}

// buildContext snapshots the catalog into the system prompt. It never
// fails; any storage problem degrades to a generic platform description.
func (s *chatbotService) buildContext(ctx context.Context) string {
	domains, err := s.domainRepo.FindAll(ctx)
	if err != nil {
		return constant.ChatContextFallback
	}
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return constant.ChatContextFallback
	}
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return constant.ChatContextFallback
	}

	var b strings.Builder
	b.WriteString("DOMAINS:\n")
	for _, d := range domains {
		if d.IsActive {
			fmt.Fprintf(&b, "- %s: %s\n", d.Name, d.Description)
		}
	}

	b.WriteString("\nCATEGORIES:\n")
	for _, c := range categories {
		if c.IsActive {
			fmt.Fprintf(&b, "- %s: %s\n", c.Name, c.Description)
		}
	}

	b.WriteString("\nFEATURED TOOLS:\n")
	count := 0
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if count >= constant.ChatMaxContextProducts {
			break
		}
		fmt.Fprintf(&b, "- %s: %s\n", p.Name, productSnippet(p))
		count++
	}

	return b.String()
}

func productSnippet(p *entity.Product) string {
	if p.Subtitle != "" {
		return p.Subtitle
	}
	// Truncate on rune boundaries so multi-byte text stays valid UTF-8.
	runes := []rune(p.Description)
	if len(runes) > constant.ChatMaxSnippet {
		runes = runes[:constant.ChatMaxSnippet]
	}
	return string(runes)
}
