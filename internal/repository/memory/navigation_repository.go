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

type NavigationRepository struct {
	table *Table[entity.NavigationItem]
}

var _ contract.NavigationRepository = &NavigationRepository{}

func NewNavigationRepository() *NavigationRepository {
	return &NavigationRepository{table: NewTable[entity.NavigationItem]()}
}

func (r *NavigationRepository) Create(ctx context.Context, item *entity.NavigationItem) error {
	now := time.Now()
	item.Id = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.table.Insert(item.Id, *item)
	return nil
}

func (r *NavigationRepository) Update(ctx context.Context, item *entity.NavigationItem) error {
	item.UpdatedAt = time.Now()
	if !r.table.Replace(item.Id, *item) {
		return apperror.NotFound("navigation item %s not found", item.Id)
	}
	return nil
}

func (r *NavigationRepository) Delete(ctx context.Context, id string) error {
	r.table.Delete(id)
	return nil
}

func (r *NavigationRepository) FindById(ctx context.Context, id string) (*entity.NavigationItem, error) {
	if item, ok := r.table.Get(id); ok {
		return &item, nil
	}
	return nil, nil
}

// FindAll returns the menu ordered by position; duplicate positions keep
// insertion order.
func (r *NavigationRepository) FindAll(ctx context.Context) ([]*entity.NavigationItem, error) {
	items := r.table.List()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})
	return toPointers(items), nil
}
