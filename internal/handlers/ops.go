package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) health(c *gin.Context) {
	health := gin.H{
		"status":  "healthy",
		"service": ServiceName,
		"version": Version,
	}
	status := http.StatusOK

	if err := h.catalog.Ping(c.Request.Context()); err != nil {
		health["status"] = "degraded"
		health["store"] = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		health["store"] = "connected"
	}

	if h.cache.IsAvailable() {
		health["cache"] = "redis connected"
	} else {
		health["cache"] = "redis unavailable"
	}

	c.JSON(status, health)
}

func (h *Handler) rateLimitStatus(c *gin.Context) {
	ip := c.ClientIP()
	limiter := h.limiter.Get(ip)

	c.JSON(http.StatusOK, gin.H{
		"ip":               ip,
		"limit_per_second": float64(limiter.Limit()),
		"burst_capacity":   limiter.Burst(),
		"tokens_available": limiter.Tokens(),
	})
}

func (h *Handler) cacheStats(c *gin.Context) {
	if !h.cache.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "cache not available",
		})
		return
	}

	ctx := c.Request.Context()
	keys := h.cache.GetAllKeys(ctx)
	keyDetails := make([]gin.H, 0, len(keys))
	for _, key := range keys {
		ttl := h.cache.GetKeyTTL(ctx, key)
		keyDetails = append(keyDetails, gin.H{
			"key":         key,
			"ttl_seconds": int(ttl.Seconds()),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":      h.cache.GetStats(ctx),
		"cache_keys": keyDetails,
	})
}

// flushCache lets the admin side invalidate cached reads after a write.
func (h *Handler) flushCache(c *gin.Context) {
	if !h.cache.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "cache not available",
		})
		return
	}

	deleted, err := h.cache.FlushCache(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to flush cache",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "cache flushed successfully",
		"deleted":   deleted,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Petroleum Equipment Catalog API",
		"version":     Version,
		"description": "Product catalog and project portfolio for the company website",
		"features":    []string{"Product search", "Filtering", "Sorting", "Pagination", "Redis caching"},
		"endpoints": map[string]string{
			"GET /api/products":       "Search products (q, category, manufacturer, in_stock, rating, sort, page, limit)",
			"GET /api/products/:id":   "Product detail",
			"GET /api/categories":     "Product categories with product counts",
			"GET /api/manufacturers":  "Distinct manufacturers",
			"GET /api/projects":       "Projects (category, status)",
			"GET /api/projects/:slug": "Project detail",
			"GET /health":             "Health check",
			"GET /cache/stats":        "Cache statistics",
			"DELETE /cache/flush":     "Drop cached responses",
		},
		"sort_keys": []string{"name", "rating", "popular"},
	})
}
