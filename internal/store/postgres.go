package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"petro-catalog-api/internal/models"
)

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromDB wraps an already opened connection.
func NewPostgresStoreFromDB(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListProducts(ctx context.Context) ([]models.ProductRecord, error) {
	var rows []models.ProductRecord
	err := s.db.WithContext(ctx).
		Preload("Category").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return rows, nil
}

func (s *PostgresStore) GetProduct(ctx context.Context, id int64) (*models.ProductRecord, error) {
	var row models.ProductRecord
	err := s.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get product %d", id)
	}
	return &row, nil
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]models.CategoryRecord, error) {
	var rows []models.CategoryRecord
	if err := s.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return rows, nil
}

func (s *PostgresStore) ListProjects(ctx context.Context) ([]models.ProjectRecord, error) {
	var rows []models.ProjectRecord
	err := s.db.WithContext(ctx).
		Preload("Images", orderImages).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list projects")
	}
	return rows, nil
}

func (s *PostgresStore) GetProjectBySlug(ctx context.Context, slug string) (*models.ProjectRecord, error) {
	var row models.ProjectRecord
	err := s.db.WithContext(ctx).
		Preload("Images", orderImages).
		Where("slug = ?", slug).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get project %q", slug)
	}
	return &row, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "postgres handle")
	}
	return sqlDB.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Gallery rows keep their stored order.
func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order, id")
}
