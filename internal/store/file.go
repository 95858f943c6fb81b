package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// File persists overrides as one JSON document on local disk. Reads are
// served from memory; every Set rewrites the document.
type File struct {
	path   string
	mem    *Memory
	mu     sync.Mutex
	logger *zap.Logger
}

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "beetlebot", "itinerary", "overrides.json"), nil
}

func OpenFile(path string, ttl time.Duration, logger *zap.Logger) (*File, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve store path: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	mem := NewMemory()
	mem.ttl = ttl
	f := &File{path: path, mem: mem, logger: logger}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read overrides: %w", err)
	default:
		var entries map[string]Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			logger.Warn("ignoring unreadable overrides file", zap.String("path", path), zap.Error(err))
			break
		}
		for k, e := range entries {
			mem.entries[k] = e
		}
	}
	return f, nil
}

func (f *File) Path() string { return f.path }

func (f *File) Get(entityID string) (string, bool) {
	return f.mem.Get(entityID)
}

func (f *File) Set(entityID, optionID string) {
	f.mem.Set(entityID, optionID)
	if err := f.flush(); err != nil {
		f.logger.Error("persist override failed",
			zap.String("path", f.path),
			zap.String("entity_id", entityID),
			zap.Error(err),
		)
	}
}

func (f *File) Close() error {
	return f.flush()
}

func (f *File) flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := json.MarshalIndent(f.mem.snapshot(), "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
