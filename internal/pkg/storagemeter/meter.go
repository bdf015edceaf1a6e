// Package storagemeter measures how many bytes a tenant has stored
// across its storage areas. It is a read-only collaborator of the quota
// trackers: it never writes files and never owns the byte counters.
package storagemeter

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/craftora/craftora/app/models"
	"github.com/gofiber/fiber/v2/log"
)

// AreaStore looks up the storage areas to measure. Satisfied by
// repository.StorageAreaRepository.
type AreaStore interface {
	GetActiveByTenant(ctx context.Context, tenantID uint) ([]models.StorageArea, error)
}

// Meter sums file sizes across all active storage areas of a tenant.
// A failure on any single area fails the whole measurement: reporting a
// partial count as the tenant's usage would silently grant headroom.
type Meter struct {
	areas  AreaStore
	lister ObjectLister // nil when no S3 areas are configured
}

// NewMeter creates a meter over the given area store and optional S3
// client.
func NewMeter(areas AreaStore, lister ObjectLister) *Meter {
	return &Meter{areas: areas, lister: lister}
}

// BytesUsed returns the total bytes stored by a tenant. Traversal cost
// is proportional to file count; callers bound it with a context
// deadline.
func (m *Meter) BytesUsed(ctx context.Context, tenantID uint) (int64, error) {
	areas, err := m.areas.GetActiveByTenant(ctx, tenantID)
	if err != nil {
		return 0, fmt.Errorf("loading storage areas for tenant %d: %w", tenantID, err)
	}

	var total int64
	for _, area := range areas {
		var size int64
		switch area.Kind {
		case models.StorageAreaKindLocal:
			size, err = m.localAreaSize(ctx, area)
		case models.StorageAreaKindS3:
			size, err = m.s3AreaSize(ctx, area)
		default:
			err = fmt.Errorf("unknown storage area kind %q", area.Kind)
		}
		if err != nil {
			return 0, fmt.Errorf("measuring area %q for tenant %d: %w", area.Name, tenantID, err)
		}
		total += size
	}
	return total, nil
}

// localAreaSize walks the area's base path and sums regular file sizes.
// A base path that does not exist yet counts as empty: areas are
// created lazily on first upload.
func (m *Meter) localAreaSize(ctx context.Context, area models.StorageArea) (int64, error) {
	var total int64
	err := filepath.WalkDir(area.BasePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("[StorageMeter] Area %q has no files yet (%s)", area.Name, area.BasePath)
			return 0, nil
		}
		return 0, err
	}
	return total, nil
}
