package cache

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"ytlookup/pkg/models"
)

var (
	ErrEntryNotFound = errors.New("cache entry not found")
	ErrInvalidEntry  = errors.New("invalid cache entry")
)

// Store is a shared second-level cache consulted on local misses
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}

// Manager keeps successful video payloads in memory for a fixed TTL,
// optionally backed by a shared Store
type Manager struct {
	mu         sync.RWMutex
	entries    map[string]*models.CacheEntry
	ttl        time.Duration
	maxEntries int
	remote     Store
	now        func() time.Time
}

// NewManager creates a new cache manager. A non-positive ttl disables caching.
func NewManager(ttl time.Duration, maxEntries int, remote Store) *Manager {
	return &Manager{
		entries:    make(map[string]*models.CacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		remote:     remote,
		now:        time.Now,
	}
}

// Enabled reports whether entries are retained at all
func (m *Manager) Enabled() bool {
	return m.ttl > 0
}

// Put stores a payload under id
func (m *Manager) Put(id string, body []byte) error {
	if !m.Enabled() {
		return nil
	}
	if id == "" || len(body) == 0 {
		return ErrInvalidEntry
	}

	m.mu.Lock()
	m.putLocked(id, body)
	m.mu.Unlock()

	if m.remote != nil {
		if err := m.remote.Set(id, body, m.ttl); err != nil {
			return fmt.Errorf("failed to write shared cache: %w", err)
		}
	}

	return nil
}

// Get returns the payload for id, checking the shared store on a local miss
func (m *Manager) Get(id string) ([]byte, error) {
	if !m.Enabled() {
		return nil, ErrEntryNotFound
	}

	m.mu.Lock()
	entry, ok := m.entries[id]
	if ok && m.now().After(entry.Expires) {
		delete(m.entries, id)
		ok = false
	}
	if ok {
		entry.LastAccess = m.now()
		body := entry.Body
		m.mu.Unlock()
		return body, nil
	}
	m.mu.Unlock()

	if m.remote == nil {
		return nil, ErrEntryNotFound
	}

	body, err := m.remote.Get(id)
	if err != nil {
		if !errors.Is(err, ErrEntryNotFound) {
			slog.Warn("cache: shared store read failed", slog.String("id", id), slog.Any("error", err))
		}
		return nil, ErrEntryNotFound
	}

	m.mu.Lock()
	m.putLocked(id, body)
	m.mu.Unlock()

	return body, nil
}

// GetEntry retrieves a cache entry by ID
func (m *Manager) GetEntry(id string) (*models.CacheEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[id]
	if !ok || m.now().After(entry.Expires) {
		return nil, ErrEntryNotFound
	}

	// Return a copy
	entryCopy := *entry
	return &entryCopy, nil
}

// DeleteEntry removes an entry locally and from the shared store
func (m *Manager) DeleteEntry(id string) error {
	m.mu.Lock()
	_, ok := m.entries[id]
	delete(m.entries, id)
	m.mu.Unlock()

	if m.remote != nil {
		if err := m.remote.Delete(id); err != nil && !errors.Is(err, ErrEntryNotFound) {
			return fmt.Errorf("failed to delete from shared cache: %w", err)
		}
		return nil
	}

	if !ok {
		return ErrEntryNotFound
	}
	return nil
}

// ListEntries returns all live entries, most recently used first
func (m *Manager) ListEntries() []*models.CacheEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.now()
	entries := make([]*models.CacheEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		if now.After(entry.Expires) {
			continue
		}
		entryCopy := *entry
		entries = append(entries, &entryCopy)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastAccess.After(entries[j].LastAccess)
	})

	return entries
}

// GetSize returns the total payload bytes held in memory
func (m *Manager) GetSize() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	for _, entry := range m.entries {
		total += entry.Size
	}

	return total
}

// Clear removes all local entries
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]*models.CacheEntry)
}

// putLocked must be called with lock held
func (m *Manager) putLocked(id string, body []byte) {
	now := m.now()
	m.entries[id] = &models.CacheEntry{
		ID:         id,
		Body:       body,
		Size:       int64(len(body)),
		LastAccess: now,
		Created:    now,
		Expires:    now.Add(m.ttl),
	}

	m.evictIfNeeded()
}

// evictIfNeeded drops expired entries, then least recently used ones
// until the entry limit holds. Must be called with lock held.
func (m *Manager) evictIfNeeded() {
	now := m.now()
	for id, entry := range m.entries {
		if now.After(entry.Expires) {
			delete(m.entries, id)
		}
	}

	if m.maxEntries <= 0 || len(m.entries) <= m.maxEntries {
		return
	}

	// Sort entries by last access time (oldest first)
	entries := make([]*models.CacheEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastAccess.Before(entries[j].LastAccess)
	})

	for _, entry := range entries {
		if len(m.entries) <= m.maxEntries {
			break
		}
		delete(m.entries, entry.ID)
	}
}
