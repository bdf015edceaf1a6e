package repository

import (
	"context"

	"github.com/craftora/craftora/app/models"
	"gorm.io/gorm"
)

// membershipRepository implements the MembershipRepository interface
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository instance
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// Create creates a new membership in the database
func (r *membershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetByID retrieves a membership by its ID
func (r *membershipRepository) GetByID(id uint) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, id).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByTenantAndUser retrieves the membership of a user inside a tenant
func (r *membershipRepository) GetByTenantAndUser(tenantID, userID uint) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Where("tenant_id = ? AND user_id = ?", tenantID, userID).First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListByTenant returns all memberships of a tenant
func (r *membershipRepository) ListByTenant(tenantID uint) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Where("tenant_id = ?", tenantID).Order("id ASC").Find(&memberships).Error
	return memberships, err
}

// CountActive counts the active seats of a tenant. This is the only
// read the quota engine needs.
func (r *membershipRepository) CountActive(ctx context.Context, tenantID uint) (int64, error) {
	return models.CountActiveMemberships(r.db.WithContext(ctx), tenantID)
}

// Update saves changes to a membership
func (r *membershipRepository) Update(membership *models.Membership) error {
	return r.db.Save(membership).Error
}

// Delete removes a membership
func (r *membershipRepository) Delete(id uint) error {
	return r.db.Delete(&models.Membership{}, id).Error
}
