package repository

import (
	"context"
	"errors"

	"github.com/craftora/craftora/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// GetByPlanID retrieves an active plan record by plan id. A missing
// record is not an error: it means the plan has not been migrated into
// the database and static configuration applies.
func (r *planRepository) GetByPlanID(ctx context.Context, planID string) (*models.Plan, error) {
	plan, err := models.FindPlanByPlanID(r.db.WithContext(ctx), planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return plan, nil
}

// List returns all plan records ordered by sort index
func (r *planRepository) List() ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Order("sort_index ASC, id ASC").Find(&plans).Error
	return plans, err
}

// ListMarketing returns active plans shown on marketing surfaces
func (r *planRepository) ListMarketing() ([]models.Plan, error) {
	return models.FindMarketingPlans(r.db)
}

// Upsert creates or updates a plan record keyed by plan id
func (r *planRepository) Upsert(plan *models.Plan) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "plan_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"name",
			"description",
			"sort_index",
			"price_label",
			"feature_flags",
			"seat_limit",
			"seat_price_per_additional",
			"storage_limit_mb",
			"storage_price_100gb",
			"is_active",
			"show_in_marketing",
			"show_in_onboarding",
			"updated_at",
		}),
	}).Create(plan).Error; err != nil {
		return err
	}

	// Ensure ID is populated after upsert.
	return r.db.Where("plan_id = ?", plan.PlanID).First(plan).Error
}

// Delete removes a plan record
func (r *planRepository) Delete(id uint) error {
	return r.db.Delete(&models.Plan{}, id).Error
}
