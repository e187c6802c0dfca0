package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/contract"
)

type BlogCategoryRepository struct {
	table *Table[entity.BlogCategory]
}

var _ contract.BlogCategoryRepository = &BlogCategoryRepository{}

func NewBlogCategoryRepository() *BlogCategoryRepository {
	return &BlogCategoryRepository{table: NewTable[entity.BlogCategory]()}
}

func (r *BlogCategoryRepository) Create(ctx context.Context, category *entity.BlogCategory) error {
	category.Id = uuid.NewString()
	category.CreatedAt = time.Now()
	r.table.Insert(category.Id, *category)
	return nil
}

func (r *BlogCategoryRepository) Delete(ctx context.Context, id string) error {
	r.table.Delete(id)
	return nil
}

func (r *BlogCategoryRepository) FindById(ctx context.Context, id string) (*entity.BlogCategory, error) {
	if category, ok := r.table.Get(id); ok {
		return &category, nil
	}
	return nil, nil
}

func (r *BlogCategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogCategory, error) {
	if category, ok := r.table.Find(func(c entity.BlogCategory) bool { return c.Slug == slug }); ok {
		return &category, nil
	}
	return nil, nil
}

func (r *BlogCategoryRepository) FindAll(ctx context.Context) ([]*entity.BlogCategory, error) {
	categories := r.table.List()
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})
	return toPointers(categories), nil
}

type BlogPostRepository struct {
	table *Table[entity.BlogPost]
}

var _ contract.BlogPostRepository = &BlogPostRepository{}

func NewBlogPostRepository() *BlogPostRepository {
	return &BlogPostRepository{table: NewTable[entity.BlogPost]()}
}

func (r *BlogPostRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	now := time.Now()
	post.Id = uuid.NewString()
	post.CreatedAt = now
	post.UpdatedAt = now
	r.table.Insert(post.Id, *post)
	return nil
}

func (r *BlogPostRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	post.UpdatedAt = time.Now()
	if !r.table.Replace(post.Id, *post) {
		return apperror.NotFound("blog post %s not found", post.Id)
	}
	return nil
}

func (r *BlogPostRepository) Delete(ctx context.Context, id string) error {
	r.table.Delete(id)
	return nil
}

func (r *BlogPostRepository) FindById(ctx context.Context, id string) (*entity.BlogPost, error) {
	if post, ok := r.table.Get(id); ok {
		return &post, nil
	}
	return nil, nil
}

func (r *BlogPostRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	if post, ok := r.table.Find(func(p entity.BlogPost) bool { return p.Slug == slug }); ok {
		return &post, nil
	}
	return nil, nil
}

// FindAll sorts published posts newest first by publish date; drafts fall
// back to their creation date and sort behind nothing special.
func (r *BlogPostRepository) FindAll(ctx context.Context) ([]*entity.BlogPost, error) {
	posts := r.table.List()
	sort.SliceStable(posts, func(i, j int) bool {
		return postTime(posts[i]).After(postTime(posts[j]))
	})
	return toPointers(posts), nil
}

func postTime(post entity.BlogPost) time.Time {
	if post.PublishedAt != nil {
		return *post.PublishedAt
	}
	return post.CreatedAt
}
