// Package catalog turns raw backend records into the view models served by
// the API. Every function here is pure and total: missing columns resolve to
// documented defaults instead of errors.
package catalog

import (
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"petro-catalog-api/internal/models"
	"petro-catalog-api/pkg/utils"
)

const (
	DefaultPrice        = "Contact for price"
	DefaultManufacturer = "Unknown"
	DefaultWarranty     = "N/A"
)

func MapCategory(raw *models.CategoryRecord) models.Category {
	if raw == nil {
		return models.Category{}
	}
	return models.Category{
		ID:          strconv.FormatInt(raw.ID, 10),
		Name:        utils.StringOr(raw.Name, ""),
		Slug:        utils.StringOr(raw.Slug, ""),
		Description: utils.StringOr(raw.Description, ""),
		Icon:        utils.StringOr(raw.Icon, ""),
	}
}

func MapProduct(raw models.ProductRecord) models.Product {
	var rating any
	if raw.Rating != nil {
		rating = *raw.Rating
	}

	return models.Product{
		ID:             strconv.FormatInt(raw.ID, 10),
		Name:           utils.StringOr(raw.Name, ""),
		Category:       MapCategory(raw.Category),
		Price:          utils.StringOr(raw.Price, DefaultPrice),
		Rating:         utils.ParseFloat(rating),
		Image:          utils.StringOr(raw.Image, ""),
		Gallery:        utils.StringList(raw.Gallery),
		Description:    utils.StringOr(raw.Description, ""),
		Features:       utils.StringList(raw.Features),
		Specifications: utils.StringMap(raw.Specifications),
		Popular:        utils.BoolOr(raw.Popular, false),
		InStock:        utils.BoolOr(raw.InStock, true),
		Manufacturer:   utils.StringOr(raw.Manufacturer, DefaultManufacturer),
		Warranty:       utils.StringOr(raw.Warranty, DefaultWarranty),
		Documents:      utils.ObjectList[models.Document](raw.Documents),
		Videos:         utils.ObjectList[models.Video](raw.Videos),
	}
}

func MapProducts(raws []models.ProductRecord) []models.Product {
	products := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, MapProduct(raw))
	}
	return products
}

// WithCategoryCounts returns a copy of products whose Category.ProductCount
// holds the number of products in the list sharing that category slug.
func WithCategoryCounts(products []models.Product) []models.Product {
	counts := countBySlug(products)
	out := make([]models.Product, len(products))
	for i, p := range products {
		p.Category.ProductCount = counts[p.Category.Slug]
		out[i] = p
	}
	return out
}

// CategoryCounts maps category rows and fills in how many of the given
// products belong to each one. Row order is preserved.
func CategoryCounts(raws []models.CategoryRecord, products []models.Product) []models.Category {
	counts := countBySlug(products)
	categories := make([]models.Category, 0, len(raws))
	for i := range raws {
		c := MapCategory(&raws[i])
		c.ProductCount = counts[c.Slug]
		categories = append(categories, c)
	}
	return categories
}

// CountInCategory reports how many products belong to the category slug.
func CountInCategory(products []models.Product, slug string) int {
	return countBySlug(products)[slug]
}

func countBySlug(products []models.Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		if p.Category.Slug == "" {
			continue
		}
		counts[p.Category.Slug]++
	}
	return counts
}

// Manufacturers lists the distinct manufacturers in products, sorted.
func Manufacturers(products []models.Product) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Manufacturer]; ok {
			continue
		}
		seen[p.Manufacturer] = struct{}{}
		names = append(names, p.Manufacturer)
	}
	collate.New(language.English).SortStrings(names)
	return names
}
