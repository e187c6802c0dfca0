package service

import (
	"context"
	"fmt"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/contract"
	"ai-catalog-be/pkg/slug"
)

type IProductService interface {
	ListProducts(ctx context.Context) ([]*dto.ProductResponse, error)
	ListAllProducts(ctx context.Context) ([]*dto.ProductResponse, error)
	ListByCategory(ctx context.Context, categoryIdOrSlug string) ([]*dto.ProductResponse, error)
	ListFeatured(ctx context.Context) ([]*dto.ProductResponse, error)
	Search(ctx context.Context, query string) ([]*dto.ProductResponse, error)
	GetProduct(ctx context.Context, idOrSlug string) (*dto.ProductResponse, error)
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	productRepo  contract.ProductRepository
	categoryRepo contract.CategoryRepository
}

func NewProductService(productRepo contract.ProductRepository, categoryRepo contract.CategoryRepository) IProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return activeResponses(products), nil
}

func (s *productService) ListAllProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func (s *productService) ListByCategory(ctx context.Context, categoryIdOrSlug string) ([]*dto.ProductResponse, error) {
	category, err := s.categoryRepo.FindById(ctx, categoryIdOrSlug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		category, err = s.categoryRepo.FindBySlug(ctx, categoryIdOrSlug)
		if err != nil {
			return nil, err
		}
	}
	if category == nil {
		return nil, apperror.NotFound("category not found")
	}

	products, err := s.productRepo.FindByCategoryId(ctx, category.Id)
	if err != nil {
		return nil, err
	}
	return activeResponses(products), nil
}

func (s *productService) ListFeatured(ctx context.Context) ([]*dto.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0)
	for _, p := range products {
		if p.IsActive && p.IsFeatured {
			out = append(out, toProductResponse(p))
		}
	}
	return out, nil
}

// Search matches the query against name, subtitle, description and tags of
// active products, case-insensitively.
func (s *productService) Search(ctx context.Context, query string) ([]*dto.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0)
	for _, p := range products {
		if p.IsActive && productMatches(p, query) {
			out = append(out, toProductResponse(p))
		}
	}
	return out, nil
}

func productMatches(p *entity.Product, query string) bool {
	if containsFold(p.Name, query) || containsFold(p.Subtitle, query) || containsFold(p.Description, query) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, query) {
			return true
		}
	}
	return false
}

func (s *productService) GetProduct(ctx context.Context, idOrSlug string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindById(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		product, err = s.productRepo.FindBySlug(ctx, idOrSlug)
		if err != nil {
			return nil, err
		}
	}
	if product == nil {
		return nil, apperror.NotFound("product not found")
	}
	return toProductResponse(product), nil
}

func (s *productService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	base := req.Slug
	if base == "" {
		base = slug.Make(req.Name)
	}
	productSlug, err := s.uniqueSlug(ctx, base)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		CategoryId:    req.CategoryId,
		Name:          req.Name,
		Slug:          productSlug,
		Subtitle:      req.Subtitle,
		Description:   req.Description,
		Thumbnail:     req.Thumbnail,
		Tags:          req.Tags,
		Rating:        req.Rating,
		DownloadCount: req.DownloadCount,
		IsFeatured:    boolOrDefault(req.IsFeatured, false),
		IsActive:      boolOrDefault(req.IsActive, true),
		Author:        req.Author,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// uniqueSlug appends -1, -2, ... to the base until it no longer collides.
func (s *productService) uniqueSlug(ctx context.Context, base string) (string, error) {
	candidate := base
	for i := 1; ; i++ {
		existing, err := s.productRepo.FindBySlug(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// UpdateProduct merges fields; the slug is fixed at creation and never
// regenerated, so links keep working after renames.
func (s *productService) UpdateProduct(ctx context.Context, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NotFound("product not found")
	}

	if req.CategoryId != nil {
		product.CategoryId = *req.CategoryId
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Subtitle != nil {
		product.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Thumbnail != nil {
		product.Thumbnail = *req.Thumbnail
	}
	if req.Tags != nil {
		product.Tags = *req.Tags
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.DownloadCount != nil {
		product.DownloadCount = *req.DownloadCount
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.Author != nil {
		product.Author = *req.Author
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

func activeResponses(products []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if p.IsActive {
			out = append(out, toProductResponse(p))
		}
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.ProductResponse{
		Id:            p.Id,
		CategoryId:    p.CategoryId,
		Name:          p.Name,
		Slug:          p.Slug,
		Subtitle:      p.Subtitle,
		Description:   p.Description,
		Thumbnail:     p.Thumbnail,
		Tags:          tags,
		Rating:        p.Rating,
		DownloadCount: p.DownloadCount,
		IsFeatured:    p.IsFeatured,
		IsActive:      p.IsActive,
		Author:        p.Author,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
