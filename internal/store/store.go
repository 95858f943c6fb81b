package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/beetlebot/itinerary-cli/internal/config"
	"github.com/beetlebot/itinerary-cli/internal/core"
	"go.uber.org/zap"
)

// Store is an override store that may hold external resources.
type Store interface {
	core.OverrideStore
	Close() error
}

type Entry struct {
	OptionID  string    `json:"optionId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e Entry) expired(ttl time.Duration) bool {
	return ttl > 0 && time.Since(e.UpdatedAt) > ttl
}

// Memory keeps overrides for the lifetime of the process.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func (m *Memory) Get(entityID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[entityID]
	if !ok || e.expired(m.ttl) {
		return "", false
	}
	return e.OptionID, true
}

func (m *Memory) Set(entityID, optionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entityID] = Entry{OptionID: optionID, UpdatedAt: time.Now().UTC()}
}

func (m *Memory) Close() error { return nil }

func (m *Memory) snapshot() map[string]Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]Entry, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// Scoped prefixes every key, so overrides from different trips sharing one
// backing store stay apart.
type Scoped struct {
	inner core.OverrideStore
	scope string
}

func NewScoped(inner core.OverrideStore, scope string) *Scoped {
	return &Scoped{inner: inner, scope: scope}
}

func (s *Scoped) Get(entityID string) (string, bool) {
	return s.inner.Get(Key(s.scope, entityID))
}

func (s *Scoped) Set(entityID, optionID string) {
	s.inner.Set(Key(s.scope, entityID), optionID)
}

func Key(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ":")
}

// Open builds the backend named in cfg.Store.
func Open(cfg *config.Config, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	sc := cfg.Store
	switch sc.Backend {
	case config.BackendMemory:
		m := NewMemory()
		m.ttl = sc.TTL
		return m, nil
	case config.BackendFile:
		return OpenFile(sc.Path, sc.TTL, logger)
	case config.BackendRedis:
		return NewRedis(RedisOptions{
			Addr:     sc.RedisAddr,
			Password: sc.RedisPassword,
			DB:       sc.RedisDB,
			Prefix:   sc.KeyPrefix,
			TTL:      sc.TTL,
		}, logger), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", sc.Backend)
}
