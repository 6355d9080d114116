// Package search filters and orders in-memory catalog lists.
//
// Search is stateless: the same arguments always produce the same result,
// the input slice is never modified, and all orderings are stable so that
// ties keep their input order.
package search

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"petro-catalog-api/internal/models"
)

// ParseSortKey normalizes a sort parameter. Unknown keys become SortNone.
func ParseSortKey(s string) models.SortKey {
	switch key := models.SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case models.SortName, models.SortRating, models.SortPopular:
		return key
	default:
		return models.SortNone
	}
}

// Search returns the products matching query and filters, ordered by sortBy.
func Search(products []models.Product, query string, filters models.ProductFilter, sortBy models.SortKey) []models.Product {
	q := strings.ToLower(query)

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesQuery(p, q) || !matchesFilters(p, filters) {
			continue
		}
		result = append(result, p)
	}

	if less := comparator(sortBy); less != nil {
		sort.SliceStable(result, func(i, j int) bool {
			return less(result[i], result[j])
		})
	}
	return result
}

func matchesQuery(p models.Product, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category.Name), q) {
		return true
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesFilters(p models.Product, f models.ProductFilter) bool {
	if f.Category != "" && p.Category.Slug != f.Category {
		return false
	}
	if f.Rating != nil && !math.IsNaN(*f.Rating) && p.Rating < *f.Rating {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if f.Manufacturer != "" && p.Manufacturer != f.Manufacturer {
		return false
	}
	return true
}

// comparator returns the strict ordering for key, or nil when the key
// leaves the filtered order untouched.
func comparator(key models.SortKey) func(a, b models.Product) bool {
	switch key {
	case models.SortName:
		// Collators keep internal buffers; one per call keeps Search safe
		// for concurrent use.
		c := collate.New(language.English)
		return func(a, b models.Product) bool {
			return c.CompareString(a.Name, b.Name) < 0
		}
	case models.SortRating:
		return func(a, b models.Product) bool {
			return a.Rating > b.Rating
		}
	case models.SortPopular:
		return func(a, b models.Product) bool {
			if a.Popular != b.Popular {
				return a.Popular
			}
			return a.Rating > b.Rating
		}
	default:
		return nil
	}
}

// FilterProjects keeps the projects matching every non-empty criterion,
// preserving their order.
func FilterProjects(projects []models.Project, category models.ProjectCategory, status models.ProjectStatus) []models.Project {
	result := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if category != "" && p.Category != category {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		result = append(result, p)
	}
	return result
}
