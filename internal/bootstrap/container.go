package bootstrap

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ai-catalog-be/internal/config"
	"ai-catalog-be/internal/constant"
	"ai-catalog-be/internal/controller"
	"ai-catalog-be/internal/pkg/logger"
	"ai-catalog-be/internal/pkg/serverutils"
	"ai-catalog-be/internal/repository/memory"
	"ai-catalog-be/internal/service"
	"ai-catalog-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	CatalogController    controller.ICatalogController
	ProductController    controller.IProductController
	BlogController       controller.IBlogController
	NavigationController controller.INavigationController
	ChatbotController    controller.IChatbotController
	SeoController        controller.ISeoController

	// Background services (run from main)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(store *memory.Store, cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIKey,
	)
	if err != nil {
		return nil, err
	}

	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Auth.SessionTTLHours) * time.Hour)
	authMiddleware := serverutils.NewAuthMiddleware(cfg.Auth.JwtSecret, sessionRepo, store.Users)

	// Services
	publisherService := service.NewPublisherService(constant.DownloadTopicName, pubSub)
	consumerService := service.NewConsumerService(pubSub, constant.DownloadTopicName, store.Products, sysLogger)

	catalogService := service.NewCatalogService(store.Domains, store.Categories, store.Products)
	productService := service.NewProductService(store.Products, store.Categories)
	attachmentService := service.NewAttachmentService(store.Attachments, store.Products, publisherService, cfg.App.UploadDir, sysLogger)
	blogService := service.NewBlogService(store.BlogCategories, store.BlogPosts)
	navigationService := service.NewNavigationService(store.Navigation)
	userService := service.NewUserService(store.Users)
	authService := service.NewAuthService(store.Users, sessionRepo, cfg.Auth.JwtSecret, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour)
	chatbotService := service.NewChatbotService(store.ChatSessions, store.Domains, store.Categories, store.Products, llmProvider, cfg.Chat.DailyLimit, sysLogger)
	seoService := service.NewSeoService(catalogService, productService, blogService, cfg.App.BaseURL, sysLogger)

	return &Container{
		AuthController:       controller.NewAuthController(authService, userService, authMiddleware),
		UserController:       controller.NewUserController(userService, authMiddleware),
		CatalogController:    controller.NewCatalogController(catalogService, productService, authMiddleware),
		ProductController:    controller.NewProductController(productService, attachmentService, authMiddleware),
		BlogController:       controller.NewBlogController(blogService, authMiddleware),
		NavigationController: controller.NewNavigationController(navigationService, authMiddleware),
		ChatbotController:    controller.NewChatbotController(chatbotService),
		SeoController:        controller.NewSeoController(seoService),
		ConsumerService:      consumerService,
		Logger:               sysLogger,
	}, nil
}
