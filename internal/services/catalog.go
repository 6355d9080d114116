package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"petro-catalog-api/internal/catalog"
	"petro-catalog-api/internal/models"
	"petro-catalog-api/internal/search"
	"petro-catalog-api/internal/store"
	"petro-catalog-api/pkg/cache"
	"petro-catalog-api/pkg/errx"
	logx "petro-catalog-api/pkg/logger"
)

const (
	DefaultLimit = 12
	MaxLimit     = 100
)

type CatalogService struct {
	store store.Store
	cache *cache.RedisCache
}

// NewCatalogService builds the service. cache may be nil.
func NewCatalogService(s store.Store, c *cache.RedisCache) *CatalogService {
	return &CatalogService{
		store: s,
		cache: c,
	}
}

func (s *CatalogService) SearchProducts(ctx context.Context, params models.SearchParams) (*models.SearchResponse, error) {
	startTime := time.Now()
	normalizeParams(&params)

	cacheKey := cache.SearchKey(params)
	var cached models.SearchResponse
	if s.fromCache(ctx, cacheKey, &cached) {
		cached.Duration = fmt.Sprintf("%s (cached)", time.Since(startTime).String())
		return &cached, nil
	}

	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	matched := search.Search(products, params.Query, params.Filters, params.Sort)
	page, totalPages := applyPagination(matched, params.Page, params.Limit)

	response := &models.SearchResponse{
		Query:      params.Query,
		Products:   page,
		Total:      len(matched),
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages,
		Filters:    params.Filters,
		Sort:       params.Sort,
		Duration:   time.Since(startTime).String(),
	}

	s.toCache(ctx, cacheKey, response)
	return response, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	numericID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return nil, errx.BadRequest(fmt.Sprintf("invalid product id: %q", id))
	}

	key := cache.ProductKey(strconv.FormatInt(numericID, 10))
	var cached models.Product
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	raw, err := s.store.GetProduct(ctx, numericID)
	if err != nil {
		return nil, errx.WrapStore(err)
	}
	if raw == nil {
		return nil, errx.NotFound("product")
	}

	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	product := catalog.MapProduct(*raw)
	product.Category.ProductCount = catalog.CountInCategory(products, product.Category.Slug)
	s.toCache(ctx, key, product)
	return &product, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if s.fromCache(ctx, cache.CategoriesKey, &cached) {
		return cached, nil
	}

	raws, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, errx.WrapStore(err)
	}
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	categories := catalog.CategoryCounts(raws, products)
	s.toCache(ctx, cache.CategoriesKey, categories)
	return categories, nil
}

func (s *CatalogService) ListManufacturers(ctx context.Context) ([]string, error) {
	var cached []string
	if s.fromCache(ctx, cache.ManufacturersKey, &cached) {
		return cached, nil
	}

	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	names := catalog.Manufacturers(products)
	s.toCache(ctx, cache.ManufacturersKey, names)
	return names, nil
}

// ListProjects returns all projects, optionally narrowed by category and status.
// Unknown filter values are rejected rather than silently matching nothing.
func (s *CatalogService) ListProjects(ctx context.Context, category, status string) ([]models.Project, error) {
	if category != "" && !catalog.IsProjectCategory(category) {
		return nil, errx.BadRequest(fmt.Sprintf("invalid project category: %s", category))
	}
	if status != "" && !catalog.IsProjectStatus(status) {
		return nil, errx.BadRequest(fmt.Sprintf("invalid project status: %s", status))
	}
	cat, st := models.ProjectCategory(category), models.ProjectStatus(status)

	key := cache.ProjectListKey(cat, st)
	var cached []models.Project
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	raws, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, errx.WrapStore(err)
	}

	projects := search.FilterProjects(catalog.MapProjects(raws), cat, st)
	s.toCache(ctx, key, projects)
	return projects, nil
}

func (s *CatalogService) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errx.BadRequest("project slug cannot be empty")
	}

	key := cache.ProjectKey(slug)
	var cached models.Project
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	raw, err := s.store.GetProjectBySlug(ctx, slug)
	if err != nil {
		return nil, errx.WrapStore(err)
	}
	if raw == nil {
		return nil, errx.NotFound("project")
	}

	project := catalog.MapProject(*raw)
	s.toCache(ctx, key, project)
	return &project, nil
}

// Ping checks the store. The cache is optional and not part of readiness.
func (s *CatalogService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *CatalogService) loadProducts(ctx context.Context) ([]models.Product, error) {
	raws, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, errx.WrapStore(err)
	}
	return catalog.WithCategoryCounts(catalog.MapProducts(raws)), nil
}

func (s *CatalogService) fromCache(ctx context.Context, key string, dst any) bool {
	if !s.cache.IsAvailable() {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return false
	}
	if hit {
		logx.Debug().Str("key", key).Msg("cache hit")
	} else {
		logx.Debug().Str("key", key).Msg("cache miss")
	}
	return hit
}

func (s *CatalogService) toCache(ctx context.Context, key string, value any) {
	if !s.cache.IsAvailable() {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("failed to cache result")
	}
}

func normalizeParams(params *models.SearchParams) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = DefaultLimit
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}
	if r := params.Filters.Rating; r != nil && math.IsNaN(*r) {
		params.Filters.Rating = nil
	}
}

func applyPagination(products []models.Product, page, limit int) ([]models.Product, int) {
	total := len(products)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	start := (page - 1) * limit
	if start >= total {
		return []models.Product{}, totalPages
	}

	end := start + limit
	if end > total {
		end = total
	}

	return products[start:end], totalPages
}
