package service

import (
	"context"
	"strings"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/contract"
)

type ICatalogService interface {
	ListDomains(ctx context.Context) ([]*dto.DomainResponse, error)
	ListAllDomains(ctx context.Context) ([]*dto.DomainResponse, error)
	GetDomain(ctx context.Context, idOrSlug string) (*dto.DomainResponse, error)
	CreateDomain(ctx context.Context, req *dto.CreateDomainRequest) (*dto.DomainResponse, error)
	UpdateDomain(ctx context.Context, id string, req *dto.UpdateDomainRequest) (*dto.DomainResponse, error)
	DeleteDomain(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
	ListDomainCategories(ctx context.Context, domainIdOrSlug string) ([]*dto.CategoryResponse, error)
	ListAllCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
	GetCategory(ctx context.Context, idOrSlug string) (*dto.CategoryResponse, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error

	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type catalogService struct {
	domainRepo   contract.DomainRepository
	categoryRepo contract.CategoryRepository
	productRepo  contract.ProductRepository
}

func NewCatalogService(
	domainRepo contract.DomainRepository,
	categoryRepo contract.CategoryRepository,
	productRepo contract.ProductRepository,
) ICatalogService {
	return &catalogService{
		domainRepo:   domainRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// ListDomains returns only active domains; the admin surface uses
// ListAllDomains instead.
func (s *catalogService) ListDomains(ctx context.Context) ([]*dto.DomainResponse, error) {
	domains, err := s.domainRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DomainResponse, 0, len(domains))
	for _, d := range domains {
		if d.IsActive {
			out = append(out, toDomainResponse(d))
		}
	}
	return out, nil
}

func (s *catalogService) ListAllDomains(ctx context.Context) ([]*dto.DomainResponse, error) {
	domains, err := s.domainRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DomainResponse, 0, len(domains))
	for _, d := range domains {
		out = append(out, toDomainResponse(d))
	}
	return out, nil
}

func (s *catalogService) GetDomain(ctx context.Context, idOrSlug string) (*dto.DomainResponse, error) {
	domain, err := s.findDomain(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if domain == nil {
		return nil, apperror.NotFound("domain not found")
	}
	return toDomainResponse(domain), nil
}

func (s *catalogService) CreateDomain(ctx context.Context, req *dto.CreateDomainRequest) (*dto.DomainResponse, error) {
	existing, err := s.domainRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("domain slug %q already exists", req.Slug)
	}

	domain := &entity.Domain{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		HeroImage:   req.HeroImage,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := s.domainRepo.Create(ctx, domain); err != nil {
		return nil, err
	}
	return toDomainResponse(domain), nil
}

func (s *catalogService) UpdateDomain(ctx context.Context, id string, req *dto.UpdateDomainRequest) (*dto.DomainResponse, error) {
	domain, err := s.domainRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if domain == nil {
		return nil, apperror.NotFound("domain not found")
	}

	if req.Slug != nil && *req.Slug != domain.Slug {
		existing, err := s.domainRepo.FindBySlug(ctx, *req.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict("domain slug %q already exists", *req.Slug)
		}
		domain.Slug = *req.Slug
	}
	if req.Name != nil {
		domain.Name = *req.Name
	}
	if req.Description != nil {
		domain.Description = *req.Description
	}
	if req.HeroImage != nil {
		domain.HeroImage = *req.HeroImage
	}
	if req.Icon != nil {
		domain.Icon = *req.Icon
	}
	if req.SortOrder != nil {
		domain.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		domain.IsActive = *req.IsActive
	}

	if err := s.domainRepo.Update(ctx, domain); err != nil {
		return nil, err
	}
	return toDomainResponse(domain), nil
}

func (s *catalogService) DeleteDomain(ctx context.Context, id string) error {
	return s.domainRepo.Delete(ctx, id)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		if c.IsActive {
			out = append(out, toCategoryResponse(c))
		}
	}
	return out, nil
}

func (s *catalogService) ListDomainCategories(ctx context.Context, domainIdOrSlug string) ([]*dto.CategoryResponse, error) {
	domain, err := s.findDomain(ctx, domainIdOrSlug)
	if err != nil {
		return nil, err
	}
	if domain == nil {
		return nil, apperror.NotFound("domain not found")
	}

	categories, err := s.categoryRepo.FindByDomainId(ctx, domain.Id)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		if c.IsActive {
			out = append(out, toCategoryResponse(c))
		}
	}
	return out, nil
}

func (s *catalogService) ListAllCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

func (s *catalogService) GetCategory(ctx context.Context, idOrSlug string) (*dto.CategoryResponse, error) {
	category, err := s.findCategory(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("category not found")
	}
	return toCategoryResponse(category), nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := s.categoryRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("category slug %q already exists", req.Slug)
	}

	category := &entity.Category{
		DomainId:    req.DomainId,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("category not found")
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		existing, err := s.categoryRepo.FindBySlug(ctx, *req.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict("category slug %q already exists", *req.Slug)
		}
		category.Slug = *req.Slug
	}
	if req.DomainId != nil {
		category.DomainId = *req.DomainId
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

// GetStats counts active entities; downloads sum over active products.
func (s *catalogService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	domains, err := s.domainRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{}
	for _, d := range domains {
		if d.IsActive {
			stats.Domains++
		}
	}
	for _, c := range categories {
		if c.IsActive {
			stats.Categories++
		}
	}
	for _, p := range products {
		if p.IsActive {
			stats.Products++
			stats.Downloads += p.DownloadCount
		}
	}
	return stats, nil
}

// findDomain resolves an id first, then falls back to slug lookup.
func (s *catalogService) findDomain(ctx context.Context, idOrSlug string) (*entity.Domain, error) {
	domain, err := s.domainRepo.FindById(ctx, idOrSlug)
	if err != nil || domain != nil {
		return domain, err
	}
	return s.domainRepo.FindBySlug(ctx, idOrSlug)
}

func (s *catalogService) findCategory(ctx context.Context, idOrSlug string) (*entity.Category, error) {
	category, err := s.categoryRepo.FindById(ctx, idOrSlug)
	if err != nil || category != nil {
		return category, err
	}
	return s.categoryRepo.FindBySlug(ctx, idOrSlug)
}

func toDomainResponse(d *entity.Domain) *dto.DomainResponse {
	return &dto.DomainResponse{
		Id:          d.Id,
		Name:        d.Name,
		Slug:        d.Slug,
		Description: d.Description,
		HeroImage:   d.HeroImage,
		Icon:        d.Icon,
		SortOrder:   d.SortOrder,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:          c.Id,
		DomainId:    c.DomainId,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func boolOrDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
