package dto

import (
	"time"
)

type CreateBlogCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

type BlogCategoryResponse struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateBlogPostRequest struct {
	CategoryId  string   `json:"categoryId" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Slug        string   `json:"slug" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Excerpt     string   `json:"excerpt"`
	CoverImage  string   `json:"coverImage"`
	Tags        []string `json:"tags"`
	AuthorId    string   `json:"authorId"`
	ReadTime    int      `json:"readTime"`
	IsPublished *bool    `json:"isPublished"`
}

type UpdateBlogPostRequest struct {
	CategoryId  *string   `json:"categoryId"`
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Content     *string   `json:"content"`
	Excerpt     *string   `json:"excerpt"`
	CoverImage  *string   `json:"coverImage"`
	Tags        *[]string `json:"tags"`
	AuthorId    *string   `json:"authorId"`
	ReadTime    *int      `json:"readTime"`
	IsPublished *bool     `json:"isPublished"`
}

type BlogPostResponse struct {
	Id          string     `json:"id"`
	CategoryId  string     `json:"categoryId"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  string     `json:"coverImage"`
	Tags        []string   `json:"tags"`
	AuthorId    string     `json:"authorId"`
	ReadTime    int        `json:"readTime"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
