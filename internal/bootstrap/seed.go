package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"ai-catalog-be/internal/config"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/memory"
	"ai-catalog-be/pkg/slug"
)

// Seed fills the in-memory store with the admin account and starter
// content. The store is empty on every boot, so this always runs.
func Seed(ctx context.Context, store *memory.Store, cfg *config.Config) error {
	if err := seedAdmin(ctx, store, cfg); err != nil {
		return err
	}
	if err := seedCatalog(ctx, store); err != nil {
		return err
	}
	if err := seedNavigation(ctx, store); err != nil {
		return err
	}
	return seedBlog(ctx, store)
}

func seedAdmin(ctx context.Context, store *memory.Store, cfg *config.Config) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	return store.Users.Create(ctx, &entity.User{
		Username:     cfg.Admin.Username,
		Email:        cfg.Admin.Email,
		PasswordHash: string(hash),
		FirstName:    "Platform",
		LastName:     "Admin",
		Role:         entity.UserRoleAdmin,
		IsActive:     true,
	})
}

func seedCatalog(ctx context.Context, store *memory.Store) error {
	domains := []*entity.Domain{
		{
			Name:        "AI Tools",
			Slug:        "ai-tools",
			Description: "Production-ready AI assistants, models and APIs",
			Icon:        "cpu",
			SortOrder:   1,
			IsActive:    true,
		},
		{
			Name:        "Development",
			Slug:        "development",
			Description: "Libraries, frameworks and utilities for software teams",
			Icon:        "code",
			SortOrder:   2,
			IsActive:    true,
		},
	}
	for _, d := range domains {
		if err := store.Domains.Create(ctx, d); err != nil {
			return err
		}
	}

	categories := []*entity.Category{
		{
			DomainId:    domains[0].Id,
			Name:        "Code Generation",
			Slug:        "code-generation",
			Description: "Assistants that write and review code",
			SortOrder:   1,
			IsActive:    true,
		},
		{
			DomainId:    domains[0].Id,
			Name:        "Data Integration",
			Slug:        "data-integration",
			Description: "Pipelines and connectors for AI workloads",
			SortOrder:   2,
			IsActive:    true,
		},
		{
			DomainId:    domains[1].Id,
			Name:        "Developer Utilities",
			Slug:        "developer-utilities",
			Description: "Everyday tooling for builders",
			SortOrder:   1,
			IsActive:    true,
		},
	}
	for _, c := range categories {
		if err := store.Categories.Create(ctx, c); err != nil {
			return err
		}
	}

	products := []*entity.Product{
		{
			CategoryId:  categories[0].Id,
			Name:        "Pair Assistant",
			Subtitle:    "AI pair programmer for your editor",
			Description: "Suggests completions, explains code and drafts tests from context.",
			Tags:        []string{"ai", "code", "assistant"},
			Rating:      46,
			IsFeatured:  true,
			IsActive:    true,
			Author:      "Platform Team",
		},
		{
			CategoryId:  categories[1].Id,
			Name:        "Pipeline Studio",
			Subtitle:    "Visual builder for data pipelines",
			Description: "Connects sources to sinks with transformations in between.",
			Tags:        []string{"data", "etl"},
			Rating:      42,
			IsFeatured:  true,
			IsActive:    true,
			Author:      "Platform Team",
		},
		{
			CategoryId:  categories[2].Id,
			Name:        "Schema Forge",
			Subtitle:    "Schema-first API scaffolding",
			Description: "Generates typed clients and servers from a single schema file.",
			Tags:        []string{"api", "codegen"},
			Rating:      40,
			IsActive:    true,
			Author:      "Platform Team",
		},
	}
	for _, p := range products {
		p.Slug = slug.Make(p.Name)
		if err := store.Products.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedNavigation(ctx context.Context, store *memory.Store) error {
	items := []*entity.NavigationItem{
		{Label: "Home", Href: "/", Position: 1, IsVisible: true},
		{Label: "Domains", Href: "/domains", Position: 2, IsVisible: true},
		{Label: "Blog", Href: "/blog", Position: 3, IsVisible: true},
		{Label: "About", Href: "/about", Position: 4, IsVisible: true},
	}
	for _, item := range items {
		if err := store.Navigation.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func seedBlog(ctx context.Context, store *memory.Store) error {
	category := &entity.BlogCategory{
		Name:        "Announcements",
		Slug:        "announcements",
		Description: "Platform news and releases",
		SortOrder:   1,
	}
	return store.BlogCategories.Create(ctx, category)
}
