// Package quota classifies tenant usage against plan limits and
// produces the structured denial payloads callers surface to end users.
//
// Both trackers are check-then-act, not reserve-then-commit: two
// concurrent validations that both see one unit of headroom can both
// pass and together exceed the limit. The limits are advisory, UX-grade
// soft limits. Callers needing a hard guarantee must serialize at the
// membership/storage write site; that is outside this package.
package quota

import (
	"context"
	"errors"
	"math"

	"github.com/craftora/craftora/app/models"
)

// Machine-readable denial codes.
const (
	CodeSeatLimitExceeded    = "SEAT_LIMIT_EXCEEDED"
	CodeStorageLimitExceeded = "STORAGE_LIMIT_EXCEEDED"
)

// ErrTenantNotFound is returned when a quota check is attempted for a
// tenant id that does not resolve. Callers map this to a client error.
var ErrTenantNotFound = errors.New("tenant not found")

// TenantStore resolves tenant records for quota checks.
type TenantStore interface {
	GetByID(ctx context.Context, id uint) (*models.Tenant, error)
}

// Denial is a policy decision, not an error: it carries everything a UI
// needs to render an upgrade prompt without a second round trip.
type Denial struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

// SeatUsage is the seat-quota snapshot exposed to collaborators.
type SeatUsage struct {
	Current            int      `json:"current"`
	Limit              *int     `json:"limit"`     // nil = unlimited
	Remaining          *int     `json:"remaining"` // nil when unlimited
	PercentageUsed     int      `json:"percentage_used"`
	IsUnlimited        bool     `json:"is_unlimited"`
	IsNearLimit        bool     `json:"is_near_limit"`
	IsAtLimit          bool     `json:"is_at_limit"`
	CanAddMore         bool     `json:"can_add_more"`
	PlanName           string   `json:"plan_name"`
	PricePerAdditional *float64 `json:"price_per_additional"`
	Source             string   `json:"source"`
}

// StorageUsage is the storage-quota snapshot exposed to collaborators.
type StorageUsage struct {
	UsedBytes      int64    `json:"used_bytes"`
	UsedMB         float64  `json:"used_mb"`
	UsedGB         float64  `json:"used_gb"`
	LimitMB        *int     `json:"limit_mb"`     // nil = unlimited
	RemainingMB    *float64 `json:"remaining_mb"` // nil when unlimited
	PercentageUsed int      `json:"percentage_used"`
	IsUnlimited    bool     `json:"is_unlimited"`
	IsNearLimit    bool     `json:"is_near_limit"`
	IsAtLimit      bool     `json:"is_at_limit"`
	CanAddMore     bool     `json:"can_add_more"`
	PlanName       string   `json:"plan_name"`
	Price100GB     *float64 `json:"price_100gb"`
	Source         string   `json:"source"`
}

// WouldExceedResult is the pre-check answer for an upload of a given
// size, computed before anything is written.
type WouldExceedResult struct {
	Allowed       bool     `json:"allowed"`
	FileSizeMB    float64  `json:"file_size_mb"`
	AfterUploadMB float64  `json:"after_upload_mb"`
	RemainingMB   *float64 `json:"remaining_mb"` // nil when unlimited
	LimitMB       *int     `json:"limit_mb"`     // nil = unlimited
	IsUnlimited   bool     `json:"is_unlimited"`
}

// StorageDenialDetails is the denial payload for storage validations:
// the usage snapshot plus the pre-check numbers for the rejected write.
type StorageDenialDetails struct {
	StorageUsage
	FileSizeMB    float64 `json:"file_size_mb"`
	AfterUploadMB float64 `json:"after_upload_mb"`
}

func roundPct(part, whole float64) int {
	if whole <= 0 {
		// A zero limit with any measurable usage is fully consumed.
		return 100
	}
	return int(math.Round(part / whole * 100))
}

func bytesToMB(b int64) float64 {
	return float64(b) / (1024 * 1024)
}
