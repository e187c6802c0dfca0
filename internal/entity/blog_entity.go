package entity

import (
	"time"
)

type BlogCategory struct {
	Id          string
	Name        string
	Slug        string
	Description string
	SortOrder   int
	CreatedAt   time.Time
}

// BlogPost belongs to one BlogCategory. PublishedAt is stamped when
// IsPublished first transitions to true.
type BlogPost struct {
	Id          string
	CategoryId  string
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	CoverImage  string
	Tags        []string
	AuthorId    string
	ReadTime    int // minutes
	IsPublished bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
