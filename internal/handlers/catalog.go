package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"petro-catalog-api/internal/models"
	"petro-catalog-api/internal/search"
	"petro-catalog-api/pkg/errx"
	logx "petro-catalog-api/pkg/logger"
)

func (h *Handler) searchProducts(c *gin.Context) {
	params := parseSearchParams(c)

	results, err := h.catalog.SearchProducts(c.Request.Context(), params)
	if err != nil {
		respondError(c, "search_failed", err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "product_lookup_failed", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, "categories_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"total":      len(categories),
	})
}

func (h *Handler) listManufacturers(c *gin.Context) {
	names, err := h.catalog.ListManufacturers(c.Request.Context())
	if err != nil {
		respondError(c, "manufacturers_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"manufacturers": names,
		"total":         len(names),
	})
}

func (h *Handler) listProjects(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "all" {
		category = ""
	}
	status := strings.TrimSpace(c.Query("status"))

	projects, err := h.catalog.ListProjects(c.Request.Context(), category, status)
	if err != nil {
		respondError(c, "projects_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"total":    len(projects),
	})
}

func (h *Handler) getProject(c *gin.Context) {
	project, err := h.catalog.GetProject(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, "project_lookup_failed", err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func respondError(c *gin.Context, code string, err error) {
	status := errx.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", c.Request.URL.Path).Msg(code)
	}
	c.JSON(status, models.ErrorResponse{
		Error:   code,
		Code:    status,
		Message: errx.MessageOf(err),
	})
}

// parseSearchParams reads the product query string. Malformed numeric or
// boolean values are dropped, which leaves that criterion unconstrained.
func parseSearchParams(c *gin.Context) models.SearchParams {
	params := models.SearchParams{
		Query: strings.TrimSpace(c.Query("q")),
		Sort:  search.ParseSortKey(c.Query("sort")),
	}

	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		params.Page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		params.Limit = l
	}

	if category := strings.TrimSpace(c.Query("category")); category != "" && category != "all" {
		params.Filters.Category = category
	}
	if manufacturer := strings.TrimSpace(c.Query("manufacturer")); manufacturer != "" {
		params.Filters.Manufacturer = manufacturer
	}
	if inStock := c.Query("in_stock"); inStock != "" {
		if stock, err := strconv.ParseBool(inStock); err == nil {
			params.Filters.InStock = &stock
		}
	}
	if rating := c.Query("rating"); rating != "" {
		if r, err := strconv.ParseFloat(rating, 64); err == nil && !math.IsNaN(r) {
			params.Filters.Rating = &r
		}
	}

	return params
}
