package counter

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// Flusher periodically flushes pending denial counters to the database.
type Flusher struct {
	ticker *time.Ticker
	stopCh chan struct{}
	wg     sync.WaitGroup

	mu      sync.Mutex
	running bool
}

// NewFlusher creates a flusher with the given flush interval.
func NewFlusher(interval time.Duration) *Flusher {
	return &Flusher{
		ticker: time.NewTicker(interval),
		stopCh: make(chan struct{}),
	}
}

// Start launches the background flush worker.
func (f *Flusher) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return
	}
	f.running = true

	f.wg.Add(1)
	go f.worker()
	log.Info("[Counter] Denial counter flush worker started")
}

// Stop stops the worker and runs one final flush so pending counters are
// not lost on shutdown.
func (f *Flusher) Stop() {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return
	}
	f.running = false
	f.mu.Unlock()

	close(f.stopCh)
	f.ticker.Stop()
	f.wg.Wait()

	if err := FlushAll(); err != nil {
		log.Errorf("[Counter] Final flush error: %v", err)
	}
}

func (f *Flusher) worker() {
	defer f.wg.Done()
	for {
		select {
		case <-f.stopCh:
			log.Info("[Counter] Denial counter flush worker stopping")
			return
		case <-f.ticker.C:
			if err := FlushAll(); err != nil {
				log.Errorf("[Counter] Flush error: %v", err)
			}
		}
	}
}
