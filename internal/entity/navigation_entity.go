package entity

import (
	"time"
)

// NavigationItem is one entry of the site menu. Position carries no
// uniqueness constraint; duplicates sort by insertion order.
type NavigationItem struct {
	Id          string
	Label       string
	Href        string
	Position    int
	IsVisible   bool
	Icon        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
