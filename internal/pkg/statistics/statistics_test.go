package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldUpdateCache(t *testing.T) {
	cacheUpdateMutex.Lock()
	saved := lastCacheUpdate
	cacheUpdateMutex.Unlock()
	defer func() {
		cacheUpdateMutex.Lock()
		lastCacheUpdate = saved
		cacheUpdateMutex.Unlock()
	}()

	cacheUpdateMutex.Lock()
	lastCacheUpdate = time.Now()
	cacheUpdateMutex.Unlock()
	assert.False(t, ShouldUpdateCache(), "a fresh cache should not be refreshed")

	cacheUpdateMutex.Lock()
	lastCacheUpdate = time.Now().Add(-cacheUpdateInterval - time.Second)
	cacheUpdateMutex.Unlock()
	assert.True(t, ShouldUpdateCache(), "a stale cache should be refreshed")
}

func TestResetCacheUpdateTimerForcesRefresh(t *testing.T) {
	cacheUpdateMutex.Lock()
	saved := lastCacheUpdate
	lastCacheUpdate = time.Now()
	cacheUpdateMutex.Unlock()
	defer func() {
		cacheUpdateMutex.Lock()
		lastCacheUpdate = saved
		cacheUpdateMutex.Unlock()
	}()

	assert.False(t, ShouldUpdateCache())
	ResetCacheUpdateTimer()
	assert.True(t, ShouldUpdateCache())
}
