// Package session owns the per-browser-session catalogs. Sessions are
// transient: a catalog appears on first touch, lives while its session keeps
// talking to us, and is dropped once it sits idle past the TTL or capacity
// pushes the oldest one out.
package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"docgrid/internal/catalog"
)

const (
	defaultTTL         = 30 * time.Minute
	defaultSweepEvery  = time.Minute
	defaultMaxSessions = 1000
)

// Config bounds the in-memory session registry.
type Config struct {
	// TTL is how long a session may sit idle before a sweep drops it.
	TTL time.Duration
	// SweepInterval is how often the janitor looks for idle sessions.
	SweepInterval time.Duration
	// MaxSessions caps the number of catalogs held at once. Creating one
	// past the cap evicts the longest-idle session first.
	MaxSessions int
}

type entry struct {
	cat      *catalog.Catalog
	lastSeen time.Time
}

// Manager maps session ids to their catalogs.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	ttl        time.Duration
	sweepEvery time.Duration
	max        int
	loc        *time.Location

	now     func() time.Time
	catOpts []catalog.Option
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the idle-tracking clock.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithCatalogOptions passes options through to every catalog the manager
// creates.
func WithCatalogOptions(opts ...catalog.Option) Option {
	return func(m *Manager) { m.catOpts = opts }
}

// NewManager builds a registry with the given bounds. Zero config values
// fall back to defaults.
func NewManager(cfg Config, loc *time.Location, opts ...Option) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepEvery
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	if loc == nil {
		loc = time.UTC
	}

	m := &Manager{
		sessions:   make(map[string]*entry),
		ttl:        cfg.TTL,
		sweepEvery: cfg.SweepInterval,
		max:        cfg.MaxSessions,
		loc:        loc,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetOrCreate returns the session's catalog, creating it on first use and
// refreshing its idle timer either way.
func (m *Manager) GetOrCreate(id string) *catalog.Catalog {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.sessions[id]; ok {
		e.lastSeen = m.now()
		return e.cat
	}

	if len(m.sessions) >= m.max {
		m.evictOldest()
	}
	e := &entry{cat: catalog.New(m.catOpts...), lastSeen: m.now()}
	m.sessions[id] = e
	return e.cat
}

// Get returns the catalog if the session exists, refreshing its idle timer.
func (m *Manager) Get(id string) (*catalog.Catalog, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = m.now()
	return e.cat, true
}

// Remove drops a session's catalog outright.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Active returns the number of catalogs currently held.
func (m *Manager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops every session idle past the TTL and returns how many went
// away.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl)
	removed := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// evictOldest removes the longest-idle session. Caller must hold the lock.
func (m *Manager) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, e := range m.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID = id
			oldest = e.lastSeen
		}
	}
	if oldestID != "" {
		delete(m.sessions, oldestID)
	}
}

// RunJanitor sweeps idle sessions on the configured interval until ctx is
// cancelled. Meant to run as a goroutine from main.
func (m *Manager) RunJanitor(ctx context.Context) {
	logJSON(m.loc, map[string]any{
		"component":          "session",
		"event":              "janitor_started",
		"ttl_sec":            int(m.ttl.Seconds()),
		"sweep_interval_sec": int(m.sweepEvery.Seconds()),
		"max_sessions":       m.max,
	})

	t := time.NewTicker(m.sweepEvery)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			logJSON(m.loc, map[string]any{
				"component": "session",
				"event":     "janitor_stopped",
			})
			return
		case <-t.C:
			start := time.Now()
			if removed := m.Sweep(); removed > 0 {
				logJSON(m.loc, map[string]any{
					"component":   "session",
					"event":       "session_sweep",
					"removed":     removed,
					"active":      m.Active(),
					"duration_ms": time.Since(start).Milliseconds(),
				})
			}
		}
	}
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal session log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
