package service

import (
	"context"
	"encoding/xml"
	"strings"
	"time"

	"ai-catalog-be/internal/pkg/logger"
)

type ISeoService interface {
	GenerateSitemap(ctx context.Context) (string, error)
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type seoService struct {
	catalogService ICatalogService
	productService IProductService
	blogService    IBlogService
	baseURL        string
	log            logger.ILogger
}

func NewSeoService(
	catalogService ICatalogService,
	productService IProductService,
	blogService IBlogService,
	baseURL string,
	log logger.ILogger,
) ISeoService {
	return &seoService{
		catalogService: catalogService,
		productService: productService,
		blogService:    blogService,
		baseURL:        strings.TrimRight(baseURL, "/"),
		log:            log,
	}
}

// GenerateSitemap lists the public pages: home, active domains and
// categories, active products and published posts. A section that cannot be
// loaded is skipped so the sitemap always renders.
func (s *seoService) GenerateSitemap(ctx context.Context) (string, error) {
	today := time.Now().Format("2006-01-02")

	urls := []sitemapURL{
		{Loc: s.baseURL + "/", LastMod: today, ChangeFreq: "daily", Priority: 1.0},
		{Loc: s.baseURL + "/blog", LastMod: today, ChangeFreq: "daily", Priority: 0.8},
	}

	if domains, err := s.catalogService.ListDomains(ctx); err != nil {
		s.log.Warn("seo", "skipping domains in sitemap", map[string]interface{}{"error": err.Error()})
	} else {
		for _, d := range domains {
			urls = append(urls, sitemapURL{
				Loc:        s.baseURL + "/domains/" + d.Slug,
				LastMod:    d.UpdatedAt.Format("2006-01-02"),
				ChangeFreq: "weekly",
				Priority:   0.8,
			})
		}
	}

	if categories, err := s.catalogService.ListCategories(ctx); err != nil {
		s.log.Warn("seo", "skipping categories in sitemap", map[string]interface{}{"error": err.Error()})
	} else {
		for _, c := range categories {
			urls = append(urls, sitemapURL{
				Loc:        s.baseURL + "/categories/" + c.Slug,
				LastMod:    c.UpdatedAt.Format("2006-01-02"),
				ChangeFreq: "weekly",
				Priority:   0.7,
			})
		}
	}

	if products, err := s.productService.ListProducts(ctx); err != nil {
		s.log.Warn("seo", "skipping products in sitemap", map[string]interface{}{"error": err.Error()})
	} else {
		for _, p := range products {
			urls = append(urls, sitemapURL{
				Loc:        s.baseURL + "/products/" + p.Slug,
				LastMod:    p.UpdatedAt.Format("2006-01-02"),
				ChangeFreq: "weekly",
				Priority:   0.7,
			})
		}
	}

	if posts, err := s.blogService.ListPublishedPosts(ctx); err != nil {
		s.log.Warn("seo", "skipping blog posts in sitemap", map[string]interface{}{"error": err.Error()})
	} else {
		for _, post := range posts {
			urls = append(urls, sitemapURL{
				Loc:        s.baseURL + "/blog/" + post.Slug,
				LastMod:    post.UpdatedAt.Format("2006-01-02"),
				ChangeFreq: "monthly",
				Priority:   0.6,
			})
		}
	}

	out, err := xml.MarshalIndent(sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(out), nil
}
