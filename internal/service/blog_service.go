package service

import (
	"context"
	"time"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/contract"
)

type IBlogService interface {
	ListCategories(ctx context.Context) ([]*dto.BlogCategoryResponse, error)
	CreateCategory(ctx context.Context, req *dto.CreateBlogCategoryRequest) (*dto.BlogCategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error

	ListPublishedPosts(ctx context.Context) ([]*dto.BlogPostResponse, error)
	ListAllPosts(ctx context.Context) ([]*dto.BlogPostResponse, error)
	GetPublishedPost(ctx context.Context, idOrSlug string) (*dto.BlogPostResponse, error)
	GetPost(ctx context.Context, id string) (*dto.BlogPostResponse, error)
	CreatePost(ctx context.Context, req *dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error)
	UpdatePost(ctx context.Context, id string, req *dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error)
	DeletePost(ctx context.Context, id string) error
}

type blogService struct {
	categoryRepo contract.BlogCategoryRepository
	postRepo     contract.BlogPostRepository
}

func NewBlogService(categoryRepo contract.BlogCategoryRepository, postRepo contract.BlogPostRepository) IBlogService {
	return &blogService{
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
	}
}

func (s *blogService) ListCategories(ctx context.Context) ([]*dto.BlogCategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BlogCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toBlogCategoryResponse(c))
	}
	return out, nil
}

func (s *blogService) CreateCategory(ctx context.Context, req *dto.CreateBlogCategoryRequest) (*dto.BlogCategoryResponse, error) {
	existing, err := s.categoryRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("blog category slug %q already exists", req.Slug)
	}

	category := &entity.BlogCategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toBlogCategoryResponse(category), nil
}

func (s *blogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *blogService) ListPublishedPosts(ctx context.Context) ([]*dto.BlogPostResponse, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		if p.IsPublished {
			out = append(out, toBlogPostResponse(p))
		}
	}
	return out, nil
}

func (s *blogService) ListAllPosts(ctx context.Context) ([]*dto.BlogPostResponse, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toBlogPostResponse(p))
	}
	return out, nil
}

// GetPublishedPost hides drafts from the public surface; they simply do not
// exist there.
func (s *blogService) GetPublishedPost(ctx context.Context, idOrSlug string) (*dto.BlogPostResponse, error) {
	post, err := s.postRepo.FindById(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		post, err = s.postRepo.FindBySlug(ctx, idOrSlug)
		if err != nil {
			return nil, err
		}
	}
	if post == nil || !post.IsPublished {
		return nil, apperror.NotFound("blog post not found")
	}
	return toBlogPostResponse(post), nil
}

// GetPost is the admin-side lookup; it returns drafts too.
func (s *blogService) GetPost(ctx context.Context, id string) (*dto.BlogPostResponse, error) {
	post, err := s.postRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("blog post not found")
	}
	return toBlogPostResponse(post), nil
}

func (s *blogService) CreatePost(ctx context.Context, req *dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	existing, err := s.postRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("blog post slug %q already exists", req.Slug)
	}

	post := &entity.BlogPost{
		CategoryId:  req.CategoryId,
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		CoverImage:  req.CoverImage,
		Tags:        req.Tags,
		AuthorId:    req.AuthorId,
		ReadTime:    req.ReadTime,
		IsPublished: boolOrDefault(req.IsPublished, false),
	}
	if post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return toBlogPostResponse(post), nil
}

// UpdatePost stamps PublishedAt the first time a post goes live; it is kept
// on later unpublish/republish cycles.
func (s *blogService) UpdatePost(ctx context.Context, id string, req *dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error) {
	post, err := s.postRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("blog post not found")
	}

	if req.Slug != nil && *req.Slug != post.Slug {
		existing, err := s.postRepo.FindBySlug(ctx, *req.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict("blog post slug %q already exists", *req.Slug)
		}
		post.Slug = *req.Slug
	}
	if req.CategoryId != nil {
		post.CategoryId = *req.CategoryId
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.CoverImage != nil {
		post.CoverImage = *req.CoverImage
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.AuthorId != nil {
		post.AuthorId = *req.AuthorId
	}
	if req.ReadTime != nil {
		post.ReadTime = *req.ReadTime
	}
	if req.IsPublished != nil {
		if *req.IsPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.IsPublished = *req.IsPublished
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return toBlogPostResponse(post), nil
}

func (s *blogService) DeletePost(ctx context.Context, id string) error {
	return s.postRepo.Delete(ctx, id)
}

func toBlogCategoryResponse(c *entity.BlogCategory) *dto.BlogCategoryResponse {
	return &dto.BlogCategoryResponse{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
	}
}

func toBlogPostResponse(p *entity.BlogPost) *dto.BlogPostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.BlogPostResponse{
		Id:          p.Id,
		CategoryId:  p.CategoryId,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		Tags:        tags,
		AuthorId:    p.AuthorId,
		ReadTime:    p.ReadTime,
		IsPublished: p.IsPublished,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
