package telemetry

import (
	"log"
	"sync"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api"
)

// Writer wraps the async Influx WriteAPI and tracks the age of the last
// write error for /healthz and /readyz.
type Writer struct {
	api     api.WriteAPI
	mu      sync.RWMutex
	lastErr time.Time
	counts  map[string]int64
}

func NewWriter(w api.WriteAPI) *Writer {
	ww := &Writer{
		api:     w,
		lastErr: time.Now().Add(-24 * time.Hour),
		counts:  make(map[string]int64),
	}
	go func() {
		for err := range w.Errors() {
			if err != nil {
				ww.mu.Lock()
				ww.lastErr = time.Now()
				ww.mu.Unlock()
				log.Printf("telemetry: influx write error: %v", err)
			}
		}
	}()
	return ww
}

// LastErrorAge reports how long writes have been error-free.
func (w *Writer) LastErrorAge() time.Duration {
	if w == nil {
		return 99999 * time.Hour
	}
	w.mu.RLock()
	t := w.lastErr
	w.mu.RUnlock()
	return time.Since(t)
}

// MarkIngest bumps the per-greenhouse ingest counter, a cheap debug aid.
func (w *Writer) MarkIngest(greenhouseID string) {
	if w == nil {
		return
	}
	w.mu.Lock()
	w.counts[greenhouseID]++
	w.mu.Unlock()
}

func (w *Writer) Count(greenhouseID string) int64 {
	if w == nil {
		return 0
	}
	w.mu.RLock()
	c := w.counts[greenhouseID]
	w.mu.RUnlock()
	return c
}
