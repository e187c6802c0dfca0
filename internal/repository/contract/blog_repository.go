package contract

import (
	"context"

	"ai-catalog-be/internal/entity"
)

type BlogCategoryRepository interface {
	Create(ctx context.Context, category *entity.BlogCategory) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*entity.BlogCategory, error)
	FindBySlug(ctx context.Context, slug string) (*entity.BlogCategory, error)
	FindAll(ctx context.Context) ([]*entity.BlogCategory, error)
}

type BlogPostRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*entity.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	FindAll(ctx context.Context) ([]*entity.BlogPost, error)
}
