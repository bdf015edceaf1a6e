package repository

import (
	"context"

	"github.com/craftora/craftora/app/models"
	"gorm.io/gorm"
)

// storageAreaRepository implements the StorageAreaRepository interface
type storageAreaRepository struct {
	db *gorm.DB
}

// NewStorageAreaRepository creates a new storage area repository instance
func NewStorageAreaRepository(db *gorm.DB) StorageAreaRepository {
	return &storageAreaRepository{db: db}
}

// Create creates a new storage area in the database
func (r *storageAreaRepository) Create(area *models.StorageArea) error {
	return r.db.Create(area).Error
}

// GetByID retrieves a storage area by its ID
func (r *storageAreaRepository) GetByID(id uint) (*models.StorageArea, error) {
	var area models.StorageArea
	err := r.db.First(&area, id).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

// GetActiveByTenant returns the active storage areas of a tenant
func (r *storageAreaRepository) GetActiveByTenant(ctx context.Context, tenantID uint) ([]models.StorageArea, error) {
	return models.FindActiveStorageAreas(r.db.WithContext(ctx), tenantID)
}

// Update saves changes to a storage area
func (r *storageAreaRepository) Update(area *models.StorageArea) error {
	return r.db.Save(area).Error
}

// Delete removes a storage area
func (r *storageAreaRepository) Delete(id uint) error {
	return r.db.Delete(&models.StorageArea{}, id).Error
}
