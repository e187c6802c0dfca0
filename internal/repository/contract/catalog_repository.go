package contract

import (
	"context"

	"ai-catalog-be/internal/entity"
)

// Finder methods return (nil, nil) when no row matches; errors are reserved
// for storage faults.

type DomainRepository interface {
	Create(ctx context.Context, domain *entity.Domain) error
	Update(ctx context.Context, domain *entity.Domain) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*entity.Domain, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Domain, error)
	FindAll(ctx context.Context) ([]*entity.Domain, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	FindByDomainId(ctx context.Context, domainId string) ([]*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*entity.Product, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)
	FindByCategoryId(ctx context.Context, categoryId string) ([]*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *entity.Attachment) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*entity.Attachment, error)
	FindByProductId(ctx context.Context, productId string) ([]*entity.Attachment, error)
}
