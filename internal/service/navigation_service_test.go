package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/repository/memory"
)

func newNavigationFixture() INavigationService {
	store := memory.NewStore()
	return NewNavigationService(store.Navigation)
}

func TestNavigationVisibility(t *testing.T) {
	svc := newNavigationFixture()
	ctx := context.Background()
	hidden := false

	_, err := svc.Create(ctx, &dto.CreateNavigationItemRequest{Label: "Home", Href: "/", Position: 1})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreateNavigationItemRequest{Label: "Secret", Href: "/secret", Position: 2, IsVisible: &hidden})
	assert.NoError(t, err)

	visible, err := svc.ListVisible(ctx)
	assert.NoError(t, err)
	assert.Len(t, visible, 1)
	assert.Equal(t, "Home", visible[0].Label)

	all, err := svc.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestNavigationOrdering(t *testing.T) {
	svc := newNavigationFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateNavigationItemRequest{Label: "Third", Href: "/c", Position: 3})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreateNavigationItemRequest{Label: "First", Href: "/a", Position: 1})
	assert.NoError(t, err)

	items, err := svc.ListAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "First", items[0].Label)
	assert.Equal(t, "Third", items[1].Label)
}

func TestReorderAppliesPositions(t *testing.T) {
	svc := newNavigationFixture()
	ctx := context.Background()

	a, err := svc.Create(ctx, &dto.CreateNavigationItemRequest{Label: "A", Href: "/a", Position: 1})
	assert.NoError(t, err)
	b, err := svc.Create(ctx, &dto.CreateNavigationItemRequest{Label: "B", Href: "/b", Position: 2})
	assert.NoError(t, err)

	items, err := svc.Reorder(ctx, &dto.ReorderNavigationRequest{Items: []dto.ReorderNavigationItem{
		{Id: a.Id, Position: 2},
		{Id: b.Id, Position: 1},
	}})
	assert.NoError(t, err)
	assert.Equal(t, "B", items[0].Label)
	assert.Equal(t, "A", items[1].Label)
}

func TestReorderSkipsMissingIds(t *testing.T) {
	svc := newNavigationFixture()
	ctx := context.Background()

	a, err := svc.Create(ctx, &dto.CreateNavigationItemRequest{Label: "A", Href: "/a", Position: 1})
	assert.NoError(t, err)

	items, err := svc.Reorder(ctx, &dto.ReorderNavigationRequest{Items: []dto.ReorderNavigationItem{
		{Id: "deleted-meanwhile", Position: 1},
		{Id: a.Id, Position: 5},
	}})
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Position)
}
