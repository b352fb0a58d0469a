package application

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

// slotCache remembers the common slots of a party query together with the
// calendar versions of its members at computation time. An entry answers only
// while every member calendar is still at that version.
type slotCache struct {
	mu         sync.Mutex
	now        func() time.Time
	ttl        time.Duration
	maxEntries int
	entries    map[string]slotCacheEntry
}

type slotCacheEntry struct {
	members   []*catalog.Person
	versions  []uint64
	slots     []scheduler.Slot
	expiresAt time.Time
}

// fresh reports whether no member calendar was written since the entry was
// computed.
func (e slotCacheEntry) fresh() bool {
	return slices.Equal(e.versions, calendarVersions(e.members))
}

func newSlotCache(ttl time.Duration, maxEntries int, now func() time.Time) *slotCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if maxEntries <= 0 {
		maxEntries = 128
	}
	if now == nil {
		now = time.Now
	}
	return &slotCache{
		now:        now,
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]slotCacheEntry),
	}
}

// Lookup returns the cached slots for key. Expired entries and entries whose
// members have booked since are dropped and reported as a miss.
func (c *slotCache) Lookup(key string) ([]scheduler.Slot, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) || !entry.fresh() {
		delete(c.entries, key)
		return nil, false
	}
	return slices.Clone(entry.slots), true
}

// Remember stores slots computed for members at versions. versions must be
// read before the slots are computed so that a concurrent booking leaves the
// entry stale rather than wrong.
func (c *slotCache) Remember(key string, members []*catalog.Person, versions []uint64, slots []scheduler.Slot) {
	if c == nil {
		return
	}
	entry := slotCacheEntry{
		members:   slices.Clone(members),
		versions:  slices.Clone(versions),
		slots:     slices.Clone(slots),
		expiresAt: c.now().Add(c.ttl),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.pruneLocked()
		if len(c.entries) >= c.maxEntries {
			c.evictEarliestLocked()
		}
	}
	c.entries[key] = entry
}

func (c *slotCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// pruneLocked drops expired entries and entries outdated by a booking.
func (c *slotCache) pruneLocked() {
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) || !entry.fresh() {
			delete(c.entries, key)
		}
	}
}

func (c *slotCache) evictEarliestLocked() {
	var (
		victim   string
		earliest time.Time
		found    bool
	)
	for key, entry := range c.entries {
		if !found || entry.expiresAt.Before(earliest) || (entry.expiresAt.Equal(earliest) && key < victim) {
			victim, earliest, found = key, entry.expiresAt, true
		}
	}
	if found {
		delete(c.entries, victim)
	}
}

func calendarVersions(persons []*catalog.Person) []uint64 {
	versions := make([]uint64, len(persons))
	for i, p := range persons {
		versions[i] = p.Calendar().Version()
	}
	return versions
}

// slotCacheKey identifies a query by day, minimum duration and the party in
// order. Calendar versions live in the entry, not the key.
func slotCacheKey(persons []*catalog.Person, day scheduler.Date, minDuration time.Duration) string {
	var builder strings.Builder
	builder.WriteString(day.String())
	builder.WriteString("|")
	builder.WriteString(minDuration.String())
	for _, p := range persons {
		builder.WriteString("|")
		builder.WriteString(p.Email())
	}
	return builder.String()
}
