package repository

import (
	"context"

	"github.com/craftora/craftora/app/models"
	"gorm.io/gorm"
)

// TenantRepository defines the interface for tenant-related database operations
type TenantRepository interface {
	Create(tenant *models.Tenant) error
	GetByID(ctx context.Context, id uint) (*models.Tenant, error)
	GetByUUID(uuid string) (*models.Tenant, error)
	Update(tenant *models.Tenant) error
	List(offset, limit int) ([]models.Tenant, error)
	Count() (int64, error)
}

// MembershipRepository defines the interface for seat-related database operations
type MembershipRepository interface {
	Create(membership *models.Membership) error
	GetByID(id uint) (*models.Membership, error)
	GetByTenantAndUser(tenantID, userID uint) (*models.Membership, error)
	ListByTenant(tenantID uint) ([]models.Membership, error)
	CountActive(ctx context.Context, tenantID uint) (int64, error)
	Update(membership *models.Membership) error
	Delete(id uint) error
}

// PlanRepository defines the interface for plan-record database operations.
// GetByPlanID returns (nil, nil) when no active record exists so callers
// can fall back to static configuration; a non-nil error always means
// the lookup itself failed.
type PlanRepository interface {
	GetByPlanID(ctx context.Context, planID string) (*models.Plan, error)
	List() ([]models.Plan, error)
	ListMarketing() ([]models.Plan, error)
	Upsert(plan *models.Plan) error
	Delete(id uint) error
}

// StorageAreaRepository defines the interface for storage area operations
type StorageAreaRepository interface {
	Create(area *models.StorageArea) error
	GetByID(id uint) (*models.StorageArea, error)
	GetActiveByTenant(ctx context.Context, tenantID uint) ([]models.StorageArea, error)
	Update(area *models.StorageArea) error
	Delete(id uint) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Tenant      TenantRepository
	Membership  MembershipRepository
	Plan        PlanRepository
	StorageArea StorageAreaRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Tenant:      NewTenantRepository(db),
		Membership:  NewMembershipRepository(db),
		Plan:        NewPlanRepository(db),
		StorageArea: NewStorageAreaRepository(db),
	}
}
