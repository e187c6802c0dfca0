package service

import (
	"context"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/contract"
)

type INavigationService interface {
	ListVisible(ctx context.Context) ([]*dto.NavigationItemResponse, error)
	ListAll(ctx context.Context) ([]*dto.NavigationItemResponse, error)
	Create(ctx context.Context, req *dto.CreateNavigationItemRequest) (*dto.NavigationItemResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateNavigationItemRequest) (*dto.NavigationItemResponse, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, req *dto.ReorderNavigationRequest) ([]*dto.NavigationItemResponse, error)
}

type navigationService struct {
	navigationRepo contract.NavigationRepository
}

func NewNavigationService(navigationRepo contract.NavigationRepository) INavigationService {
	return &navigationService{navigationRepo: navigationRepo}
}

func (s *navigationService) ListVisible(ctx context.Context) ([]*dto.NavigationItemResponse, error) {
	items, err := s.navigationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NavigationItemResponse, 0, len(items))
	for _, item := range items {
		if item.IsVisible {
			out = append(out, toNavigationItemResponse(item))
		}
	}
	return out, nil
}

func (s *navigationService) ListAll(ctx context.Context) ([]*dto.NavigationItemResponse, error) {
	items, err := s.navigationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NavigationItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toNavigationItemResponse(item))
	}
	return out, nil
}

func (s *navigationService) Create(ctx context.Context, req *dto.CreateNavigationItemRequest) (*dto.NavigationItemResponse, error) {
	item := &entity.NavigationItem{
		Label:       req.Label,
		Href:        req.Href,
		Position:    req.Position,
		IsVisible:   boolOrDefault(req.IsVisible, true),
		Icon:        req.Icon,
		Description: req.Description,
	}
	if err := s.navigationRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toNavigationItemResponse(item), nil
}

func (s *navigationService) Update(ctx context.Context, id string, req *dto.UpdateNavigationItemRequest) (*dto.NavigationItemResponse, error) {
	item, err := s.navigationRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NotFound("navigation item not found")
	}

	if req.Label != nil {
		item.Label = *req.Label
	}
	if req.Href != nil {
		item.Href = *req.Href
	}
	if req.Position != nil {
		item.Position = *req.Position
	}
	if req.IsVisible != nil {
		item.IsVisible = *req.IsVisible
	}
	if req.Icon != nil {
		item.Icon = *req.Icon
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	if err := s.navigationRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toNavigationItemResponse(item), nil
}

func (s *navigationService) Delete(ctx context.Context, id string) error {
	return s.navigationRepo.Delete(ctx, id)
}

// Reorder applies the submitted positions. Ids that have been deleted since
// the editor loaded the menu are skipped silently so a stale editor cannot
// fail the whole save.
func (s *navigationService) Reorder(ctx context.Context, req *dto.ReorderNavigationRequest) ([]*dto.NavigationItemResponse, error) {
	for _, entry := range req.Items {
		item, err := s.navigationRepo.FindById(ctx, entry.Id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}
		item.Position = entry.Position
		if err := s.navigationRepo.Update(ctx, item); err != nil {
			return nil, err
		}
	}
	return s.ListAll(ctx)
}

func toNavigationItemResponse(item *entity.NavigationItem) *dto.NavigationItemResponse {
	return &dto.NavigationItemResponse{
		Id:          item.Id,
		Label:       item.Label,
		Href:        item.Href,
		Position:    item.Position,
		IsVisible:   item.IsVisible,
		Icon:        item.Icon,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
