package models

import (
	"errors"
	"path/filepath"
	"time"

	"gorm.io/gorm"
)

const (
	StorageAreaKindLocal = "local"
	StorageAreaKindS3    = "s3"
)

// StorageArea is one tenant-scoped location holding uploaded files.
// A tenant's storage usage is the byte sum across all of its active
// areas; the engine only ever reads areas, it never writes files.
type StorageArea struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TenantID  uint           `gorm:"not null;index" json:"tenant_id"`
	Name      string         `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Kind      string         `gorm:"type:varchar(20);default:'local'" json:"kind" validate:"oneof=local s3"`
	BasePath  string         `gorm:"type:varchar(500)" json:"base_path"` // local areas
	Bucket    string         `gorm:"type:varchar(200)" json:"bucket"`    // s3 areas
	Prefix    string         `gorm:"type:varchar(300)" json:"prefix"`    // s3 areas
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeSave validates the location fields for the area kind.
func (a *StorageArea) BeforeSave(tx *gorm.DB) error {
	switch a.Kind {
	case StorageAreaKindLocal:
		if a.BasePath == "" {
			return errors.New("base path cannot be empty for local storage areas")
		}
		if !filepath.IsAbs(a.BasePath) {
			return errors.New("base path must be absolute")
		}
	case StorageAreaKindS3:
		if a.Bucket == "" {
			return errors.New("bucket cannot be empty for s3 storage areas")
		}
	default:
		return errors.New("unknown storage area kind: " + a.Kind)
	}
	return nil
}

// FindActiveStorageAreas returns the active areas for a tenant.
func FindActiveStorageAreas(db *gorm.DB, tenantID uint) ([]StorageArea, error) {
	var areas []StorageArea
	result := db.Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("id ASC").
		Find(&areas)
	return areas, result.Error
}
