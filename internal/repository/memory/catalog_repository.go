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

type DomainRepository struct {
	table *Table[entity.Domain]
}

var _ contract.DomainRepository = &DomainRepository{}

func NewDomainRepository() *DomainRepository {
	return &DomainRepository{table: NewTable[entity.Domain]()}
}

func (r *DomainRepository) Create(ctx context.Context, domain *entity.Domain) error {
	now := time.Now()
	domain.Id = uuid.NewString()
	domain.CreatedAt = now
	domain.UpdatedAt = now
	r.table.Insert(domain.Id, *domain)
	return nil
}

func (r *DomainRepository) Update(ctx context.Context, domain *entity.Domain) error {
	domain.UpdatedAt = time.Now()
	if !r.table.Replace(domain.Id, *domain) {
		return apperror.NotFound("domain %s not found", domain.Id)
	}
	return nil
}

func (r *DomainRepository) Delete(ctx context.Context, id string) error {
	r.table.Delete(id)
	return nil
}

func (r *DomainRepository) FindById(ctx context.Context, id string) (*entity.Domain, error) {
	if domain, ok := r.table.Get(id); ok {
		return &domain, nil
	}
	return nil, nil
}

func (r *DomainRepository) FindBySlug(ctx context.Context, slug string) (*entity.Domain, error) {
	if domain, ok := r.table.Find(func(d entity.Domain) bool { return d.Slug == slug }); ok {
		return &domain, nil
	}
	return nil, nil
}

func (r *DomainRepository) FindAll(ctx context.Context) ([]*entity.Domain, error) {
	domains := r.table.List()
	sort.SliceStable(domains, func(i, j int) bool {
		return domains[i].SortOrder < domains[j].SortOrder
	})
	return toPointers(domains), nil
}

type CategoryRepository struct {
	table *Table[entity.Category]
}

var _ contract.CategoryRepository = &CategoryRepository{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{table: NewTable[entity.Category]()}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	now := time.Now()
	category.Id = uuid.NewString()
	category.CreatedAt = now
	category.UpdatedAt = now
	r.table.Insert(category.Id, *category)
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	category.UpdatedAt = time.Now()
	if !r.table.Replace(category.Id, *category) {
		return apperror.NotFound("category %s not found", category.Id)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	r.table.Delete(id)
	return nil
}

func (r *CategoryRepository) FindById(ctx context.Context, id string) (*entity.Category, error) {
	if category, ok := r.table.Get(id); ok {
		return &category, nil
	}
	return nil, nil
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	if category, ok := r.table.Find(func(c entity.Category) bool { return c.Slug == slug }); ok {
		return &category, nil
	}
	return nil, nil
}

func (r *CategoryRepository) FindByDomainId(ctx context.Context, domainId string) ([]*entity.Category, error) {
	categories := r.table.Filter(func(c entity.Category) bool { return c.DomainId == domainId })
	sortCategories(categories)
	return toPointers(categories), nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	categories := r.table.List()
	sortCategories(categories)
	return toPointers(categories), nil
}

func sortCategories(categories []entity.Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})
}

type ProductRepository struct {
	table *Table[entity.Product]
}

var _ contract.ProductRepository = &ProductRepository{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{table: NewTable[entity.Product]()}
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now()
	product.Id = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.table.Insert(product.Id, *product)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()
	if !r.table.Replace(product.Id, *product) {
		return apperror.NotFound("product %s not found", product.Id)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.table.Delete(id)
	return nil
}

func (r *ProductRepository) FindById(ctx context.Context, id string) (*entity.Product, error) {
	if product, ok := r.table.Get(id); ok {
		return &product, nil
	}
	return nil, nil
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	if product, ok := r.table.Find(func(p entity.Product) bool { return p.Slug == slug }); ok {
		return &product, nil
	}
	return nil, nil
}

func (r *ProductRepository) FindByCategoryId(ctx context.Context, categoryId string) ([]*entity.Product, error) {
	products := r.table.Filter(func(p entity.Product) bool { return p.CategoryId == categoryId })
	sortProducts(products)
	return toPointers(products), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	products := r.table.List()
	sortProducts(products)
	return toPointers(products), nil
}

// Newest first.
func sortProducts(products []entity.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}

type AttachmentRepository struct {
	table *Table[entity.Attachment]
}

var _ contract.AttachmentRepository = &AttachmentRepository{}

func NewAttachmentRepository() *AttachmentRepository {
	return &AttachmentRepository{table: NewTable[entity.Attachment]()}
}

func (r *AttachmentRepository) Create(ctx context.Context, attachment *entity.Attachment) error {
	attachment.Id = uuid.NewString()
	attachment.UploadedAt = time.Now()
	r.table.Insert(attachment.Id, *attachment)
	return nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id string) error {
	r.table.Delete(id)
	return nil
}

func (r *AttachmentRepository) FindById(ctx context.Context, id string) (*entity.Attachment, error) {
	if attachment, ok := r.table.Get(id); ok {
		return &attachment, nil
	}
	return nil, nil
}

func (r *AttachmentRepository) FindByProductId(ctx context.Context, productId string) ([]*entity.Attachment, error) {
	attachments := r.table.Filter(func(a entity.Attachment) bool { return a.ProductId == productId })
	return toPointers(attachments), nil
}

func toPointers[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
