// Package statistics serves cached platform-wide totals for the admin
// surface. The counts are informational and may lag by up to the cache
// expiration; nothing in the enforcement path reads them.
package statistics

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/craftora/craftora/app/models"
	"github.com/craftora/craftora/internal/pkg/cache"
	"github.com/craftora/craftora/internal/pkg/database"
)

const (
	CacheKeyTenantsTotal = "statistics:tenants:total"
	CacheKeyTenantsDaily = "statistics:tenants:daily:%s" // Format with date YYYY-MM-DD
	CacheKeySeatsActive  = "statistics:seats:active"
	CacheExpiration      = 30 * time.Minute
)

// StatisticsData holds the platform totals shown to administrators.
type StatisticsData struct {
	TotalTenants int `json:"total_tenants"`
	TodayTenants int `json:"today_tenants"`
	ActiveSeats  int `json:"active_seats"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache reports whether the cached totals are due a refresh.
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached totals when they are stale.
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Error updating statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// ResetCacheUpdateTimer forces the next read to refresh the cache.
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache recomputes all totals and stores them in the cache.
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalTenants int64
	if err := db.Model(&models.Tenant{}).Count(&totalTenants).Error; err != nil {
		log.Printf("Error counting tenants: %v", err)
		return err
	}

	var todayTenants int64
	today := time.Now().Format("2006-01-02")
	todayStart, _ := time.Parse("2006-01-02", today)
	todayEnd := todayStart.Add(24 * time.Hour)

	if err := db.Model(&models.Tenant{}).Where("created_at BETWEEN ? AND ?", todayStart, todayEnd).Count(&todayTenants).Error; err != nil {
		log.Printf("Error counting today's tenants: %v", err)
		return err
	}

	var activeSeats int64
	if err := db.Model(&models.Membership{}).Where("status = ?", models.MembershipStatusActive).Count(&activeSeats).Error; err != nil {
		log.Printf("Error counting active seats: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyTenantsTotal, strconv.FormatInt(totalTenants, 10), CacheExpiration); err != nil {
		log.Printf("Error caching tenant total: %v", err)
		return err
	}

	dailyKey := fmt.Sprintf(CacheKeyTenantsDaily, today)
	if err := cache.Set(dailyKey, strconv.FormatInt(todayTenants, 10), CacheExpiration); err != nil {
		log.Printf("Error caching today's tenants: %v", err)
		return err
	}

	if err := cache.Set(CacheKeySeatsActive, strconv.FormatInt(activeSeats, 10), CacheExpiration); err != nil {
		log.Printf("Error caching active seats: %v", err)
		return err
	}

	return nil
}

// cachedCount reads a counter from the cache, falling back to the given
// database count and repopulating the cache on a miss.
func cachedCount(key string, count func(db *gorm.DB) (int64, error)) int {
	val, err := cache.Get(key)
	if err != nil {
		n, dbErr := count(database.GetDB())
		if dbErr != nil {
			log.Printf("Error counting for %s: %v", key, dbErr)
			return 0
		}
		if err := cache.Set(key, strconv.FormatInt(n, 10), CacheExpiration); err != nil {
			log.Printf("Error caching %s: %v", key, err)
		}
		return int(n)
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return int(n)
}

// GetTotalTenants returns the tenant count from cache or database.
func GetTotalTenants() int {
	return cachedCount(CacheKeyTenantsTotal, func(db *gorm.DB) (int64, error) {
		var count int64
		err := db.Model(&models.Tenant{}).Count(&count).Error
		return count, err
	})
}

// GetTodayTenants returns the number of tenants created today from cache
// or database.
func GetTodayTenants() int {
	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf(CacheKeyTenantsDaily, today)
	return cachedCount(dailyKey, func(db *gorm.DB) (int64, error) {
		todayStart, _ := time.Parse("2006-01-02", today)
		todayEnd := todayStart.Add(24 * time.Hour)
		var count int64
		err := db.Model(&models.Tenant{}).Where("created_at BETWEEN ? AND ?", todayStart, todayEnd).Count(&count).Error
		return count, err
	})
}

// GetActiveSeats returns the platform-wide active membership count from
// cache or database.
func GetActiveSeats() int {
	return cachedCount(CacheKeySeatsActive, func(db *gorm.DB) (int64, error) {
		var count int64
		err := db.Model(&models.Membership{}).Where("status = ?", models.MembershipStatusActive).Count(&count).Error
		return count, err
	})
}

// GetStatisticsData returns all platform totals, refreshing the cache
// when stale.
func GetStatisticsData() StatisticsData {
	UpdateCacheIfNeeded()

	return StatisticsData{
		TotalTenants: GetTotalTenants(),
		TodayTenants: GetTodayTenants(),
		ActiveSeats:  GetActiveSeats(),
	}
}
