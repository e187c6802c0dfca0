package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/repository/memory"
)

func TestGenerateSitemap(t *testing.T) {
	store := memory.NewStore()
	catalogSvc := NewCatalogService(store.Domains, store.Categories, store.Products)
	productSvc := NewProductService(store.Products, store.Categories)
	blogSvc := NewBlogService(store.BlogCategories, store.BlogPosts)
	seoSvc := NewSeoService(catalogSvc, productSvc, blogSvc, "https://example.com/", nopLogger{})
	ctx := context.Background()
	published := true
	inactive := false

	domain, err := catalogSvc.CreateDomain(ctx, &dto.CreateDomainRequest{Name: "AI Tools", Slug: "ai-tools"})
	assert.NoError(t, err)
	category, err := catalogSvc.CreateCategory(ctx, &dto.CreateCategoryRequest{DomainId: domain.Id, Name: "Gen", Slug: "gen"})
	assert.NoError(t, err)
	_, err = productSvc.CreateProduct(ctx, &dto.CreateProductRequest{CategoryId: category.Id, Name: "Pair Assistant"})
	assert.NoError(t, err)
	_, err = productSvc.CreateProduct(ctx, &dto.CreateProductRequest{CategoryId: category.Id, Name: "Hidden Tool", IsActive: &inactive})
	assert.NoError(t, err)
	_, err = blogSvc.CreatePost(ctx, &dto.CreateBlogPostRequest{CategoryId: "cat", Title: "Hello", Slug: "hello", Content: "x", IsPublished: &published})
	assert.NoError(t, err)
	_, err = blogSvc.CreatePost(ctx, &dto.CreateBlogPostRequest{CategoryId: "cat", Title: "Draft", Slug: "draft", Content: "x"})
	assert.NoError(t, err)

	xml, err := seoSvc.GenerateSitemap(ctx)
	assert.NoError(t, err)

	assert.Contains(t, xml, "<loc>https://example.com/</loc>")
	assert.Contains(t, xml, "<loc>https://example.com/domains/ai-tools</loc>")
	assert.Contains(t, xml, "<loc>https://example.com/categories/gen</loc>")
	assert.Contains(t, xml, "<loc>https://example.com/products/pair-assistant</loc>")
	assert.Contains(t, xml, "<loc>https://example.com/blog/hello</loc>")
	assert.NotContains(t, xml, "hidden-tool")
	assert.NotContains(t, xml, "/blog/draft")
}
