package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Well-known plan identifiers. Custom plan ids (e.g. partner deals) may
// exist as database records without appearing here.
const (
	PlanTrial      = "trial"
	PlanLaunch     = "launch"
	PlanScale      = "scale"
	PlanEnterprise = "enterprise"
)

// FeatureFlags is a JSON column mapping feature keys to enabled/disabled.
type FeatureFlags map[string]bool

// Value implements driver.Valuer for GORM JSON storage.
func (f FeatureFlags) Value() (driver.Value, error) {
	if f == nil {
		return "{}", nil
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for GORM JSON storage.
func (f *FeatureFlags) Scan(value interface{}) error {
	if value == nil {
		*f = FeatureFlags{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for feature flags: %T", value)
	}
	return json.Unmarshal(data, f)
}

// Plan is the administrator-editable plan record. When a record exists
// for a plan id it is authoritative; the static tables in the
// entitlements package serve only as fallback for plans not yet migrated
// into the database.
type Plan struct {
	ID                     uint           `gorm:"primaryKey" json:"id"`
	PlanID                 string         `gorm:"type:varchar(50);not null;uniqueIndex" json:"plan_id" validate:"required,min=2,max=50"`
	Name                   string         `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Description            string         `gorm:"type:text" json:"description" validate:"max=1000"`
	SortIndex              int            `gorm:"default:0" json:"sort_index"`
	PriceLabel             string         `gorm:"type:varchar(100)" json:"price_label" validate:"max=100"`
	FeatureFlags           FeatureFlags   `gorm:"type:json" json:"feature_flags"`
	SeatLimit              *int           `gorm:"type:int" json:"seat_limit"` // nil = unlimited
	SeatPricePerAdditional *float64       `gorm:"type:decimal(10,2)" json:"seat_price_per_additional"`
	StorageLimitMB         *int           `gorm:"type:int" json:"storage_limit_mb"` // nil = unlimited
	StoragePrice100GB      *float64       `gorm:"type:decimal(10,2)" json:"storage_price_100gb"`
	IsActive               bool           `gorm:"default:true" json:"is_active"`
	ShowInMarketing        bool           `gorm:"default:true" json:"show_in_marketing"`
	ShowInOnboarding       bool           `gorm:"default:true" json:"show_in_onboarding"`
	CreatedAt              time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`
}

// EnabledFeatureKeys returns the keys whose flag is set to true.
func (p *Plan) EnabledFeatureKeys() []string {
	keys := make([]string, 0, len(p.FeatureFlags))
	for key, enabled := range p.FeatureFlags {
		if enabled {
			keys = append(keys, key)
		}
	}
	return keys
}

// IsSeatUnlimited reports whether the plan has no seat limit.
func (p *Plan) IsSeatUnlimited() bool {
	return p.SeatLimit == nil
}

// IsStorageUnlimited reports whether the plan has no storage limit.
func (p *Plan) IsStorageUnlimited() bool {
	return p.StorageLimitMB == nil
}

// FindPlanByPlanID finds an active plan record by its plan id.
func FindPlanByPlanID(db *gorm.DB, planID string) (*Plan, error) {
	var plan Plan
	result := db.Where("plan_id = ? AND is_active = ?", planID, true).First(&plan)
	if result.Error != nil {
		return nil, result.Error
	}
	return &plan, nil
}

// FindMarketingPlans returns active plans shown on marketing surfaces,
// ordered by sort index.
func FindMarketingPlans(db *gorm.DB) ([]Plan, error) {
	var plans []Plan
	result := db.Where("is_active = ? AND show_in_marketing = ?", true, true).
		Order("sort_index ASC, id ASC").
		Find(&plans)
	return plans, result.Error
}

// BeforeSave rejects negative limits; nil stays nil (unlimited).
func (p *Plan) BeforeSave(tx *gorm.DB) error {
	if p.SeatLimit != nil && *p.SeatLimit < 0 {
		return errors.New("seat limit must not be negative")
	}
	if p.StorageLimitMB != nil && *p.StorageLimitMB < 0 {
		return errors.New("storage limit must not be negative")
	}
	return nil
}
