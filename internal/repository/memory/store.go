package memory

// Store bundles every in-memory repository behind one constructor so the
// bootstrap wiring stays flat.
type Store struct {
	Domains        *DomainRepository
	Categories     *CategoryRepository
	Products       *ProductRepository
	Attachments    *AttachmentRepository
	BlogCategories *BlogCategoryRepository
	BlogPosts      *BlogPostRepository
	Navigation     *NavigationRepository
	Users          *UserRepository
	ChatSessions   *ChatSessionRepository
}

func NewStore() *Store {
	return &Store{
		Domains:        NewDomainRepository(),
		Categories:     NewCategoryRepository(),
		Products:       NewProductRepository(),
		Attachments:    NewAttachmentRepository(),
		BlogCategories: NewBlogCategoryRepository(),
		BlogPosts:      NewBlogPostRepository(),
		Navigation:     NewNavigationRepository(),
		Users:          NewUserRepository(),
		ChatSessions:   NewChatSessionRepository(),
	}
}
