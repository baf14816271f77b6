// Package dedup drops QoS-1 redeliveries: a broker may redeliver the
// same payload, and the consumers key it by payload hash to process each
// message once per TTL window.
package dedup

import (
	"sync"
	"time"
)

type entry struct {
	id  string
	exp time.Time
}

// Deduper remembers ids for a TTL window, bounded by maxKeys. An
// insertion-order queue backs the map, so expired ids are swept from the
// head and capacity eviction is deterministic oldest-first.
type Deduper struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxKeys int
	expiry  map[string]time.Time
	queue   []entry // insertion order, head is oldest
}

func New(ttl time.Duration, maxKeys int) *Deduper {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if maxKeys <= 0 {
		maxKeys = 10000
	}
	return &Deduper{ttl: ttl, maxKeys: maxKeys, expiry: make(map[string]time.Time, maxKeys)}
}

// ShouldProcess reports whether this id has not been seen within the TTL
// window, and records it. An empty id is always processed.
func (d *Deduper) ShouldProcess(id string) bool {
	if id == "" {
		return true
	}
	now := time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.sweep(now)

	if exp, ok := d.expiry[id]; ok && now.Before(exp) {
		return false
	}
	d.expiry[id] = now.Add(d.ttl)
	d.queue = append(d.queue, entry{id: id, exp: d.expiry[id]})

	for len(d.expiry) > d.maxKeys {
		d.dropOldest()
	}
	return true
}

// sweep pops expired entries off the queue head. A re-recorded id leaves
// a stale queue entry behind; those are skipped by comparing the stored
// expiry against the entry's.
func (d *Deduper) sweep(now time.Time) {
	for len(d.queue) > 0 && !now.Before(d.queue[0].exp) {
		head := d.queue[0]
		d.queue = d.queue[1:]
		if exp, ok := d.expiry[head.id]; ok && exp.Equal(head.exp) {
			delete(d.expiry, head.id)
		}
	}
}

func (d *Deduper) dropOldest() {
	for len(d.queue) > 0 {
		head := d.queue[0]
		d.queue = d.queue[1:]
		if exp, ok := d.expiry[head.id]; ok && exp.Equal(head.exp) {
			delete(d.expiry, head.id)
			return
		}
	}
}
