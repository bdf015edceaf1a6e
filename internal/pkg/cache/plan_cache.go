package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// Plan records are read on nearly every request but change only through
// admin edits, so they get a longer TTL plus explicit invalidation.
// Usage snapshots change continuously and are cached only briefly to
// absorb burst traffic on dashboard pages.
const (
	PlanRecordTTL    = 10 * time.Minute
	UsageSnapshotTTL = 15 * time.Second
)

func planRecordKey(planID string) string {
	return fmt.Sprintf("plan:record:%s", planID)
}

func usageKey(kind string, tenantID uint) string {
	return fmt.Sprintf("usage:%s:%d", kind, tenantID)
}

// SetPlanRecord caches a serialized plan record under its plan id.
func SetPlanRecord(planID string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Warnf("[Cache] Failed to marshal plan record %s: %v", planID, err)
		return
	}
	if err := Set(planRecordKey(planID), data, PlanRecordTTL); err != nil {
		log.Warnf("[Cache] Failed to cache plan record %s: %v", planID, err)
	}
}

// GetPlanRecord loads a cached plan record into dest. Returns false on
// miss or decode failure; callers fall through to the database.
func GetPlanRecord(planID string, dest interface{}) bool {
	raw, err := Get(planRecordKey(planID))
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Warnf("[Cache] Corrupt plan record cache for %s: %v", planID, err)
		_ = Delete(planRecordKey(planID))
		return false
	}
	return true
}

// InvalidatePlanRecord drops the cached record after an admin plan edit.
func InvalidatePlanRecord(planID string) {
	if err := Delete(planRecordKey(planID)); err != nil {
		log.Warnf("[Cache] Failed to invalidate plan record %s: %v", planID, err)
	}
}

// SetUsageSnapshot caches a serialized usage snapshot for a tenant.
// kind is "seats" or "storage".
func SetUsageSnapshot(kind string, tenantID uint, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = Set(usageKey(kind, tenantID), data, UsageSnapshotTTL)
}

// GetUsageSnapshot loads a cached usage snapshot into dest.
func GetUsageSnapshot(kind string, tenantID uint, dest interface{}) bool {
	raw, err := Get(usageKey(kind, tenantID))
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

// InvalidateUsageSnapshots drops both usage snapshots for a tenant.
// The prechecks call it when they clear a membership change or file
// write, so dashboards update promptly after the mutation lands.
func InvalidateUsageSnapshots(tenantID uint) {
	_ = Delete(usageKey("seats", tenantID))
	_ = Delete(usageKey("storage", tenantID))
}
