package dto

import (
	"time"
)

// CreateProductRequest takes an optional slug; when empty one is derived
// from the name. Either way the result is de-collided with a numeric
// suffix. DownloadCount is settable so imported products keep their
// historical counts.
type CreateProductRequest struct {
	CategoryId    string   `json:"categoryId" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Slug          string   `json:"slug"`
	Subtitle      string   `json:"subtitle"`
	Description   string   `json:"description"`
	Thumbnail     string   `json:"thumbnail"`
	Tags          []string `json:"tags"`
	Rating        int      `json:"rating" validate:"gte=0,lte=50"`
	DownloadCount int      `json:"downloadCount" validate:"gte=0"`
	IsFeatured    *bool    `json:"isFeatured"`
	IsActive      *bool    `json:"isActive"`
	Author        string   `json:"author"`
}

type UpdateProductRequest struct {
	CategoryId    *string   `json:"categoryId"`
	Name          *string   `json:"name"`
	Subtitle      *string   `json:"subtitle"`
	Description   *string   `json:"description"`
	Thumbnail     *string   `json:"thumbnail"`
	Tags          *[]string `json:"tags"`
	Rating        *int      `json:"rating" validate:"omitempty,gte=0,lte=50"`
	DownloadCount *int      `json:"downloadCount" validate:"omitempty,gte=0"`
	IsFeatured    *bool     `json:"isFeatured"`
	IsActive      *bool     `json:"isActive"`
	Author        *string   `json:"author"`
}

type ProductResponse struct {
	Id            string    `json:"id"`
	CategoryId    string    `json:"categoryId"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Subtitle      string    `json:"subtitle"`
	Description   string    `json:"description"`
	Thumbnail     string    `json:"thumbnail"`
	Tags          []string  `json:"tags"`
	Rating        int       `json:"rating"`
	DownloadCount int       `json:"downloadCount"`
	IsFeatured    bool      `json:"isFeatured"`
	IsActive      bool      `json:"isActive"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Attachments is populated on single-product fetches only.
	Attachments []*AttachmentResponse `json:"attachments,omitempty"`
}

type AttachmentResponse struct {
	Id           string    `json:"id"`
	ProductId    string    `json:"productId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	FileType     string    `json:"fileType"`
	Size         int64     `json:"size"`
	Url          string    `json:"url"`
	Content      *string   `json:"content,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// ProductDownloadedMessage is the event payload published when an
// attachment is served; the consumer bumps the product download counter.
type ProductDownloadedMessage struct {
	ProductId    string `json:"product_id"`
	AttachmentId string `json:"attachment_id"`
}
