package system

import (
	"fmt"
	"sync"

	"github.com/younwookim/fluxrunner/internal/domain/entity"
	"github.com/younwookim/fluxrunner/internal/infrastructure/config"
)

// LevelSource provides level configs by name. *config.Loader implements it.
type LevelSource interface {
	LoadLevel(name string) (*config.LevelConfig, error)
}

// LevelManager builds fresh levels by name and caches their configs.
// It is safe for concurrent use.
type LevelManager struct {
	source LevelSource

	mu    sync.Mutex
	cache map[string]*config.LevelConfig
}

// NewLevelManager creates a manager reading from source
func NewLevelManager(source LevelSource) *LevelManager {
	return &LevelManager{
		source: source,
		cache:  make(map[string]*config.LevelConfig),
	}
}

// Config returns the cached config for name, loading it on first use
func (m *LevelManager) Config(name string) (*config.LevelConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg, ok := m.cache[name]; ok {
		return cfg, nil
	}
	cfg, err := m.source.LoadLevel(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", name, err)
	}
	m.cache[name] = cfg
	return cfg, nil
}

// Build constructs a new instance of the named level
func (m *LevelManager) Build(name string, t Tuning) (*entity.Level, error) {
	cfg, err := m.Config(name)
	if err != nil {
		return nil, err
	}
	return BuildLevel(cfg, t)
}

// Next returns the name of the level after name; empty for the last one
func (m *LevelManager) Next(name string) (string, error) {
	cfg, err := m.Config(name)
	if err != nil {
		return "", err
	}
	return cfg.Next, nil
}

// StaticLevels is an in-memory LevelSource
type StaticLevels map[string]*config.LevelConfig

// LoadLevel implements LevelSource
func (s StaticLevels) LoadLevel(name string) (*config.LevelConfig, error) {
	cfg, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("failed to read level %s: %w", name, config.ErrUnknownLevel)
	}
	return cfg, nil
}
