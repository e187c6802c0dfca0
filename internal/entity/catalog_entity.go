package entity

import (
	"time"
)

// Domain is the top level of the catalog hierarchy.
type Domain struct {
	Id          string
	Name        string
	Slug        string
	Description string
	HeroImage   string
	Icon        string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category groups products under a domain. DomainId is not validated
// against existing domains; the store has no referential integrity.
type Category struct {
	Id          string
	DomainId    string
	Name        string
	Slug        string
	Description string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product is an individual catalog entry. Rating is on a 0-50 integer
// scale, displayed divided by 10 as 0-5 stars.
type Product struct {
	Id            string
	CategoryId    string
	Name          string
	Slug          string
	Subtitle      string
	Description   string
	Thumbnail     string
	Tags          []string
	Rating        int
	DownloadCount int
	IsFeatured    bool
	IsActive      bool
	Author        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Attachment is a PDF or Markdown file attached to a product. Content is
// populated only for Markdown files, captured at upload time.
type Attachment struct {
	Id           string
	ProductId    string
	Filename     string
	OriginalName string
	MimeType     string
	FileType     string // "pdf" or "md"
	Size         int64
	Url          string
	Content      *string
	UploadedAt   time.Time
}
