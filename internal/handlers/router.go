package handlers

import (
	"github.com/gin-gonic/gin"

	"petro-catalog-api/internal/middleware"
	"petro-catalog-api/internal/services"
	"petro-catalog-api/pkg/cache"
)

const (
	ServiceName = "petro-catalog-api"
	Version     = "1.0.0"
)

type Handler struct {
	catalog *services.CatalogService
	cache   *cache.RedisCache
	limiter *middleware.RateLimiter
}

// New builds the handler set. cache may be nil.
func New(catalog *services.CatalogService, c *cache.RedisCache, limiter *middleware.RateLimiter) *Handler {
	return &Handler{
		catalog: catalog,
		cache:   c,
		limiter: limiter,
	}
}

func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(h.limiter.Middleware())

	r.GET("/health", h.health)
	r.GET("/rate-limit/status", h.rateLimitStatus)
	r.GET("/cache/stats", h.cacheStats)
	r.DELETE("/cache/flush", h.flushCache)

	api := r.Group("/api")
	api.GET("/info", h.info)
	api.GET("/products", h.searchProducts)
	api.GET("/products/:id", h.getProduct)
	api.GET("/categories", h.listCategories)
	api.GET("/manufacturers", h.listManufacturers)
	api.GET("/projects", h.listProjects)
	api.GET("/projects/:slug", h.getProject)

	return r
}
