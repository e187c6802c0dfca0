package dto

import (
	"time"
)

type CreateNavigationItemRequest struct {
	Label       string `json:"label" validate:"required"`
	Href        string `json:"href" validate:"required"`
	Position    int    `json:"position"`
	IsVisible   *bool  `json:"isVisible"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type UpdateNavigationItemRequest struct {
	Label       *string `json:"label"`
	Href        *string `json:"href"`
	Position    *int    `json:"position"`
	IsVisible   *bool   `json:"isVisible"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
}

type NavigationItemResponse struct {
	Id          string    `json:"id"`
	Label       string    `json:"label"`
	Href        string    `json:"href"`
	Position    int       `json:"position"`
	IsVisible   bool      `json:"isVisible"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReorderNavigationRequest carries the full menu in its new order. Ids that
// no longer exist are skipped rather than rejected.
type ReorderNavigationRequest struct {
	Items []ReorderNavigationItem `json:"items" validate:"required,dive"`
}

type ReorderNavigationItem struct {
	Id       string `json:"id" validate:"required"`
	Position int    `json:"position"`
}
