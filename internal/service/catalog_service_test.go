package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/repository/memory"
)

func newCatalogFixture() (ICatalogService, *memory.Store) {
	store := memory.NewStore()
	return NewCatalogService(store.Domains, store.Categories, store.Products), store
}

func TestCreateDomainSlugConflict(t *testing.T) {
	svc, _ := newCatalogFixture()
	ctx := context.Background()

	_, err := svc.CreateDomain(ctx, &dto.CreateDomainRequest{Name: "AI Tools", Slug: "ai-tools"})
	assert.NoError(t, err)

	_, err = svc.CreateDomain(ctx, &dto.CreateDomainRequest{Name: "Other", Slug: "ai-tools"})
	assert.True(t, apperror.IsConflict(err))
}

func TestListDomainsFiltersAndSorts(t *testing.T) {
	svc, _ := newCatalogFixture()
	ctx := context.Background()
	inactive := false

	_, err := svc.CreateDomain(ctx, &dto.CreateDomainRequest{Name: "Second", Slug: "second", SortOrder: 2})
	assert.NoError(t, err)
	_, err = svc.CreateDomain(ctx, &dto.CreateDomainRequest{Name: "First", Slug: "first", SortOrder: 1})
	assert.NoError(t, err)
	_, err = svc.CreateDomain(ctx, &dto.CreateDomainRequest{Name: "Hidden", Slug: "hidden", SortOrder: 0, IsActive: &inactive})
	assert.NoError(t, err)

	public, err := svc.ListDomains(ctx)
	assert.NoError(t, err)
	assert.Len(t, public, 2)
	assert.Equal(t, "First", public[0].Name)
	assert.Equal(t, "Second", public[1].Name)

	all, err := svc.ListAllDomains(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetDomainByIdOrSlug(t *testing.T) {
	svc, _ := newCatalogFixture()
	ctx := context.Background()

	created, err := svc.CreateDomain(ctx, &dto.CreateDomainRequest{Name: "AI Tools", Slug: "ai-tools"})
	assert.NoError(t, err)

	byId, err := svc.GetDomain(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, created.Id, byId.Id)

	bySlug, err := svc.GetDomain(ctx, "ai-tools")
	assert.NoError(t, err)
	assert.Equal(t, created.Id, bySlug.Id)

	_, err = svc.GetDomain(ctx, "missing")
	assert.True(t, apperror.IsNotFound(err))
}

func TestListCategoriesScopedToDomain(t *testing.T) {
	svc, _ := newCatalogFixture()
	ctx := context.Background()
	inactive := false

	domain, err := svc.CreateDomain(ctx, &dto.CreateDomainRequest{Name: "AI Tools", Slug: "ai-tools"})
	assert.NoError(t, err)
	other, err := svc.CreateDomain(ctx, &dto.CreateDomainRequest{Name: "Dev", Slug: "dev"})
	assert.NoError(t, err)

	_, err = svc.CreateCategory(ctx, &dto.CreateCategoryRequest{DomainId: domain.Id, Name: "In", Slug: "in"})
	assert.NoError(t, err)
	_, err = svc.CreateCategory(ctx, &dto.CreateCategoryRequest{DomainId: domain.Id, Name: "Off", Slug: "off", IsActive: &inactive})
	assert.NoError(t, err)
	_, err = svc.CreateCategory(ctx, &dto.CreateCategoryRequest{DomainId: other.Id, Name: "Elsewhere", Slug: "elsewhere"})
	assert.NoError(t, err)

	categories, err := svc.ListDomainCategories(ctx, "ai-tools")
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, "In", categories[0].Name)

	// The unscoped public listing spans domains but still hides inactive.
	public, err := svc.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, public, 2)

	all, err := svc.ListAllCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateDomainPartial(t *testing.T) {
	svc, _ := newCatalogFixture()
	ctx := context.Background()

	created, err := svc.CreateDomain(ctx, &dto.CreateDomainRequest{Name: "AI Tools", Slug: "ai-tools", Description: "desc"})
	assert.NoError(t, err)

	newName := "Renamed"
	updated, err := svc.UpdateDomain(ctx, created.Id, &dto.UpdateDomainRequest{Name: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "ai-tools", updated.Slug)
	assert.Equal(t, "desc", updated.Description)
}

func TestGetStats(t *testing.T) {
	catalogSvc, store := newCatalogFixture()
	productSvc := NewProductService(store.Products, store.Categories)
	ctx := context.Background()
	inactive := false

	domain, err := catalogSvc.CreateDomain(ctx, &dto.CreateDomainRequest{Name: "AI Tools", Slug: "ai-tools"})
	assert.NoError(t, err)
	category, err := catalogSvc.CreateCategory(ctx, &dto.CreateCategoryRequest{DomainId: domain.Id, Name: "Gen", Slug: "gen"})
	assert.NoError(t, err)

	_, err = productSvc.CreateProduct(ctx, &dto.CreateProductRequest{CategoryId: category.Id, Name: "Active"})
	assert.NoError(t, err)
	_, err = productSvc.CreateProduct(ctx, &dto.CreateProductRequest{CategoryId: category.Id, Name: "Dormant", IsActive: &inactive})
	assert.NoError(t, err)

	stats, err := catalogSvc.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Domains)
	assert.Equal(t, 1, stats.Categories)
	assert.Equal(t, 1, stats.Products)
	assert.Equal(t, 0, stats.Downloads)
}
