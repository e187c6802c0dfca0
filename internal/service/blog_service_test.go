package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/repository/memory"
)

func newBlogFixture() IBlogService {
	store := memory.NewStore()
	return NewBlogService(store.BlogCategories, store.BlogPosts)
}

func TestCreatePostStampsPublishedAt(t *testing.T) {
	svc := newBlogFixture()
	ctx := context.Background()
	published := true

	post, err := svc.CreatePost(ctx, &dto.CreateBlogPostRequest{
		CategoryId:  "cat",
		Title:       "Hello",
		Slug:        "hello",
		Content:     "body",
		IsPublished: &published,
	})
	assert.NoError(t, err)
	assert.True(t, post.IsPublished)
	assert.NotNil(t, post.PublishedAt)
}

func TestDraftHasNoPublishedAt(t *testing.T) {
	svc := newBlogFixture()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &dto.CreateBlogPostRequest{
		CategoryId: "cat",
		Title:      "Draft",
		Slug:       "draft",
		Content:    "body",
	})
	assert.NoError(t, err)
	assert.False(t, post.IsPublished)
	assert.Nil(t, post.PublishedAt)
}

func TestPublishTransitionStampsOnce(t *testing.T) {
	svc := newBlogFixture()
	ctx := context.Background()
	published := true
	unpublished := false

	post, err := svc.CreatePost(ctx, &dto.CreateBlogPostRequest{
		CategoryId: "cat",
		Title:      "Later",
		Slug:       "later",
		Content:    "body",
	})
	assert.NoError(t, err)

	live, err := svc.UpdatePost(ctx, post.Id, &dto.UpdateBlogPostRequest{IsPublished: &published})
	assert.NoError(t, err)
	assert.NotNil(t, live.PublishedAt)
	firstPublish := *live.PublishedAt

	hidden, err := svc.UpdatePost(ctx, post.Id, &dto.UpdateBlogPostRequest{IsPublished: &unpublished})
	assert.NoError(t, err)
	assert.False(t, hidden.IsPublished)

	again, err := svc.UpdatePost(ctx, post.Id, &dto.UpdateBlogPostRequest{IsPublished: &published})
	assert.NoError(t, err)
	assert.Equal(t, firstPublish, *again.PublishedAt)
}

func TestPublicSurfaceHidesDrafts(t *testing.T) {
	svc := newBlogFixture()
	ctx := context.Background()
	published := true

	_, err := svc.CreatePost(ctx, &dto.CreateBlogPostRequest{CategoryId: "cat", Title: "Live", Slug: "live", Content: "x", IsPublished: &published})
	assert.NoError(t, err)
	_, err = svc.CreatePost(ctx, &dto.CreateBlogPostRequest{CategoryId: "cat", Title: "Draft", Slug: "draft", Content: "x"})
	assert.NoError(t, err)

	public, err := svc.ListPublishedPosts(ctx)
	assert.NoError(t, err)
	assert.Len(t, public, 1)
	assert.Equal(t, "Live", public[0].Title)

	all, err := svc.ListAllPosts(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.GetPublishedPost(ctx, "draft")
	assert.True(t, apperror.IsNotFound(err))

	got, err := svc.GetPublishedPost(ctx, "live")
	assert.NoError(t, err)
	assert.Equal(t, "Live", got.Title)
}

func TestGetPostReturnsDrafts(t *testing.T) {
	svc := newBlogFixture()
	ctx := context.Background()

	draft, err := svc.CreatePost(ctx, &dto.CreateBlogPostRequest{CategoryId: "cat", Title: "Draft", Slug: "draft", Content: "x"})
	assert.NoError(t, err)

	got, err := svc.GetPost(ctx, draft.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Draft", got.Title)
	assert.False(t, got.IsPublished)

	_, err = svc.GetPost(ctx, "missing")
	assert.True(t, apperror.IsNotFound(err))
}

func TestPostSlugConflict(t *testing.T) {
	svc := newBlogFixture()
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, &dto.CreateBlogPostRequest{CategoryId: "cat", Title: "One", Slug: "same", Content: "x"})
	assert.NoError(t, err)
	_, err = svc.CreatePost(ctx, &dto.CreateBlogPostRequest{CategoryId: "cat", Title: "Two", Slug: "same", Content: "x"})
	assert.True(t, apperror.IsConflict(err))
}

func TestBlogCategorySlugConflict(t *testing.T) {
	svc := newBlogFixture()
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, &dto.CreateBlogCategoryRequest{Name: "News", Slug: "news"})
	assert.NoError(t, err)
	_, err = svc.CreateCategory(ctx, &dto.CreateBlogCategoryRequest{Name: "Other", Slug: "news"})
	assert.True(t, apperror.IsConflict(err))
}
