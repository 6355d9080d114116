package store

import (
	"context"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"petro-catalog-api/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Seed is the on-disk fixture format read by LoadMemoryStore.
type Seed struct {
	Categories []models.CategoryRecord `json:"categories"`
	Products   []models.ProductRecord  `json:"products"`
	Projects   []models.ProjectRecord  `json:"projects"`
}

// MemoryStore serves records held in process. Products reference categories
// by CategoryID; the join is resolved on read like the database preload.
type MemoryStore struct {
	mu         sync.RWMutex
	categories []models.CategoryRecord
	products   []models.ProductRecord
	projects   []models.ProjectRecord
	err        error
}

func NewMemoryStore(seed Seed) *MemoryStore {
	return &MemoryStore{
		categories: seed.Categories,
		products:   seed.Products,
		projects:   seed.Projects,
	}
}

func LoadMemoryStore(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read seed file")
	}
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, errors.Wrapf(err, "parse seed file %s", path)
	}
	return NewMemoryStore(seed), nil
}

// FailWith makes every subsequent call return err. Passing nil restores service.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MemoryStore) ListProducts(_ context.Context) ([]models.ProductRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	rows := make([]models.ProductRecord, 0, len(m.products))
	for _, p := range m.products {
		rows = append(rows, m.joinCategory(p))
	}
	return rows, nil
}

func (m *MemoryStore) GetProduct(_ context.Context, id int64) (*models.ProductRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			row := m.joinCategory(p)
			return &row, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) ListCategories(_ context.Context) ([]models.CategoryRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.CategoryRecord(nil), m.categories...), nil
}

func (m *MemoryStore) ListProjects(_ context.Context) ([]models.ProjectRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.ProjectRecord(nil), m.projects...), nil
}

func (m *MemoryStore) GetProjectBySlug(_ context.Context, slug string) (*models.ProjectRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.projects {
		if p.Slug != nil && *p.Slug == slug {
			row := p
			return &row, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) Ping(_ context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

func (m *MemoryStore) joinCategory(p models.ProductRecord) models.ProductRecord {
	if p.Category != nil || p.CategoryID == nil {
		return p
	}
	for i := range m.categories {
		if m.categories[i].ID == *p.CategoryID {
			c := m.categories[i]
			p.Category = &c
			break
		}
	}
	return p
}
