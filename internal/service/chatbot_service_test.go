package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/constant"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/pkg/logger"
	"ai-catalog-be/internal/repository/memory"
	"ai-catalog-be/pkg/llm"
)

// fakeLLM records the last prompt and returns a fixed answer or error.
type fakeLLM struct {
	answer     string
	err        error
	lastSystem string
	lastUser   string
	calls      int
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	for _, m := range history {
		switch m.Role {
		case constant.ChatMessageRoleSystem:
			f.lastSystem = m.Content
		case constant.ChatMessageRoleUser:
			f.lastUser = m.Content
		}
	}
	return f.answer, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: constant.ChatMessageRoleUser, Content: prompt}}, options...)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

var _ logger.ILogger = nopLogger{}

func newChatbotFixture(provider llm.LLMProvider, limit int) (IChatbotService, *memory.Store) {
	store := memory.NewStore()
	svc := NewChatbotService(store.ChatSessions, store.Domains, store.Categories, store.Products, provider, limit, nopLogger{})
	return svc, store
}

func TestCheckRateLimitFreshDevice(t *testing.T) {
	svc, _ := newChatbotFixture(&fakeLLM{answer: "hi"}, 5)

	res, err := svc.CheckRateLimit(context.Background(), "device-1")
	assert.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 5, res.Remaining)
}

func TestAskConsumesQuota(t *testing.T) {
	provider := &fakeLLM{answer: "an answer"}
	svc, _ := newChatbotFixture(provider, 5)
	ctx := context.Background()

	res, err := svc.Ask(ctx, &dto.ChatAskRequest{Question: "what tools?", DeviceId: "device-1"})
	assert.NoError(t, err)
	assert.Equal(t, "an answer", res.Response)
	assert.Equal(t, 4, res.Remaining)

	limit, err := svc.CheckRateLimit(ctx, "device-1")
	assert.NoError(t, err)
	assert.Equal(t, 4, limit.Remaining)
}

func TestAskRejectsWhenLimitReached(t *testing.T) {
	provider := &fakeLLM{answer: "answer"}
	svc, _ := newChatbotFixture(provider, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Ask(ctx, &dto.ChatAskRequest{Question: "q", DeviceId: "device-1"})
		assert.NoError(t, err)
	}

	_, err := svc.Ask(ctx, &dto.ChatAskRequest{Question: "one more", DeviceId: "device-1"})
	assert.True(t, apperror.IsRateLimited(err))

	limit, err := svc.CheckRateLimit(ctx, "device-1")
	assert.NoError(t, err)
	assert.False(t, limit.Allowed)
	assert.Equal(t, 0, limit.Remaining)
}

func TestQuotaIsPerDevice(t *testing.T) {
	provider := &fakeLLM{answer: "answer"}
	svc, _ := newChatbotFixture(provider, 1)
	ctx := context.Background()

	_, err := svc.Ask(ctx, &dto.ChatAskRequest{Question: "q", DeviceId: "device-1"})
	assert.NoError(t, err)

	res, err := svc.Ask(ctx, &dto.ChatAskRequest{Question: "q", DeviceId: "device-2"})
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Remaining)
}

func TestAskFailurePreservesQuota(t *testing.T) {
	provider := &fakeLLM{err: errors.New("upstream down")}
	svc, _ := newChatbotFixture(provider, 5)
	ctx := context.Background()

	res, err := svc.Ask(ctx, &dto.ChatAskRequest{Question: "q", DeviceId: "device-1"})
	assert.NoError(t, err)
	assert.Equal(t, constant.ChatUnavailableResponse, res.Response)
	assert.Equal(t, 5, res.Remaining)

	limit, err := svc.CheckRateLimit(ctx, "device-1")
	assert.NoError(t, err)
	assert.Equal(t, 5, limit.Remaining)
}

func TestAskEmptyAnswer(t *testing.T) {
	provider := &fakeLLM{answer: "   "}
	svc, _ := newChatbotFixture(provider, 5)

	res, err := svc.Ask(context.Background(), &dto.ChatAskRequest{Question: "q", DeviceId: "device-1"})
	assert.NoError(t, err)
	assert.Equal(t, constant.ChatEmptyResponse, res.Response)
	assert.Equal(t, 5, res.Remaining)
}

func TestQuotaResetsAtMidnight(t *testing.T) {
	provider := &fakeLLM{answer: "answer"}
	svc, store := newChatbotFixture(provider, 1)
	ctx := context.Background()

	// A session from yesterday must not count against today.
	session := &entity.ChatSession{
		DeviceId:  "device-1",
		Question:  "old",
		Response:  "old",
		CreatedAt: time.Now().AddDate(0, 0, -1),
	}
	assert.NoError(t, store.ChatSessions.Create(ctx, session))

	limit, err := svc.CheckRateLimit(ctx, "device-1")
	assert.NoError(t, err)
	assert.True(t, limit.Allowed)
	assert.Equal(t, 1, limit.Remaining)
}

func TestAskInjectsCatalogContext(t *testing.T) {
	provider := &fakeLLM{answer: "answer"}
	svc, store := newChatbotFixture(provider, 5)
	ctx := context.Background()

	assert.NoError(t, store.Domains.Create(ctx, &entity.Domain{Name: "AI Tools", Slug: "ai-tools", Description: "smart things", IsActive: true}))
	assert.NoError(t, store.Products.Create(ctx, &entity.Product{Name: "Pair Assistant", Slug: "pair-assistant", Subtitle: "pairs with you", IsActive: true}))

	_, err := svc.Ask(ctx, &dto.ChatAskRequest{Question: "what is here?", DeviceId: "device-1"})
	assert.NoError(t, err)
	assert.Contains(t, provider.lastSystem, "- AI Tools: smart things")
	assert.Contains(t, provider.lastSystem, "- Pair Assistant: pairs with you")
	assert.Equal(t, "what is here?", provider.lastUser)
}

func TestProductSnippetTruncatesOnRuneBoundary(t *testing.T) {
	// Multi-byte descriptions must not be cut mid-rune.
	desc := strings.Repeat("日", constant.ChatMaxSnippet+20)
	got := productSnippet(&entity.Product{Description: desc})
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, constant.ChatMaxSnippet, utf8.RuneCountInString(got))

	short := productSnippet(&entity.Product{Description: "brief"})
	assert.Equal(t, "brief", short)
}

func TestPredefinedQuestions(t *testing.T) {
	svc, _ := newChatbotFixture(&fakeLLM{}, 5)
	res := svc.PredefinedQuestions()
	assert.Equal(t, constant.PredefinedQuestions, res.Questions)
}
