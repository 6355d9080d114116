// Package store provides read access to the backend tables. Callers receive
// a Store explicitly rather than reaching for a shared client.
package store

import (
	"context"

	"petro-catalog-api/internal/models"
)

// Store fetches raw records. A missing record is reported as (nil, nil);
// errors are reserved for failures of the backend itself.
type Store interface {
	ListProducts(ctx context.Context) ([]models.ProductRecord, error)
	GetProduct(ctx context.Context, id int64) (*models.ProductRecord, error)
	ListCategories(ctx context.Context) ([]models.CategoryRecord, error)
	ListProjects(ctx context.Context) ([]models.ProjectRecord, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.ProjectRecord, error)
	Ping(ctx context.Context) error
}
