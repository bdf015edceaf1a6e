package repository

import (
	"context"
	"errors"

	"github.com/craftora/craftora/app/models"
	"gorm.io/gorm"
)

// tenantRepository implements the TenantRepository interface
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository instance
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{db: db}
}

// Create creates a new tenant in the database
func (r *tenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID retrieves a tenant by its ID. Returns (nil, nil) when the
// tenant does not exist so quota checks can report a clean not-found.
func (r *tenantRepository) GetByID(ctx context.Context, id uint) (*models.Tenant, error) {
	tenant, err := models.FindTenantByID(r.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return tenant, nil
}

// GetByUUID retrieves a tenant by its public UUID. Returns (nil, nil)
// when the tenant does not exist; a non-nil error always means the
// lookup itself failed.
func (r *tenantRepository) GetByUUID(uuid string) (*models.Tenant, error) {
	tenant, err := models.FindTenantByUUID(r.db, uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return tenant, nil
}

// Update saves changes to a tenant
func (r *tenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}

// List returns tenants with pagination
func (r *tenantRepository) List(offset, limit int) ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.db.Offset(offset).Limit(limit).Order("id ASC").Find(&tenants).Error
	return tenants, err
}

// Count returns the total number of tenants
func (r *tenantRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tenant{}).Count(&count).Error
	return count, err
}
