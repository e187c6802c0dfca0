package contract

import (
	"context"

	"ai-catalog-be/internal/entity"
)

type NavigationRepository interface {
	Create(ctx context.Context, item *entity.NavigationItem) error
	Update(ctx context.Context, item *entity.NavigationItem) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*entity.NavigationItem, error)
	FindAll(ctx context.Context) ([]*entity.NavigationItem, error)
}
