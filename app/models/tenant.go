package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TenantStatusActive    = "active"
	TenantStatusPaused    = "paused"
	TenantStatusSuspended = "suspended"
)

// Business verticals. Tenants created before vertical segmentation was
// introduced have an empty BusinessType and keep full plan access.
const (
	BusinessTypePrintingPress = "printing_press"
	BusinessTypeRetailShop    = "retail_shop"
	BusinessTypePharmacy      = "pharmacy"
	BusinessTypeWorkshop      = "workshop"
)

type Tenant struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UUID         string `gorm:"type:char(36);uniqueIndex" json:"uuid"`
	Name         string `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Plan         string `gorm:"type:varchar(50);default:'trial'" json:"plan" validate:"required,max=50"`
	BusinessType string `gorm:"type:varchar(50);default:''" json:"business_type" validate:"omitempty,oneof=printing_press retail_shop pharmacy workshop"`
	Status       string `gorm:"type:varchar(50);default:'active'" json:"status" validate:"oneof=active paused suspended"`
	// Denial counters, incremented in batches by the counter flusher.
	SeatDenialCount    int64 `gorm:"default:0" json:"seat_denial_count"`
	StorageDenialCount int64 `gorm:"default:0" json:"storage_denial_count"`
	GateDenialCount    int64 `gorm:"default:0" json:"gate_denial_count"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Tenant) Validate() error {
	v := validator.New()

	return v.Struct(t)
}

// BeforeCreate assigns a public UUID when none is set.
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.UUID == "" {
		t.UUID = uuid.New().String()
	}
	return nil
}

// IsActive reports whether the tenant status is active
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}

// HasBusinessType reports whether the tenant declared a business vertical.
func (t *Tenant) HasBusinessType() bool {
	return t.BusinessType != ""
}

// FindTenantByID finds a tenant by primary key.
func FindTenantByID(db *gorm.DB, id uint) (*Tenant, error) {
	var tenant Tenant
	result := db.Where("id = ?", id).First(&tenant)
	if result.Error != nil {
		return nil, result.Error
	}
	return &tenant, nil
}

// FindTenantByUUID finds a tenant by its public UUID.
func FindTenantByUUID(db *gorm.DB, id string) (*Tenant, error) {
	var tenant Tenant
	result := db.Where("uuid = ?", id).First(&tenant)
	if result.Error != nil {
		return nil, result.Error
	}
	return &tenant, nil
}
