package tui

import (
	"fmt"
	"sync"

	"github.com/tokenpick/tokenpick-terminal/pkg/registry"
)

// Manager owns the set of live picker instances. Ids are generated
// from a monotonic counter and never reused.
type Manager struct {
	mu      sync.Mutex
	seq     int
	pickers map[string]*Picker
}

// NewManager creates an empty instance manager.
func NewManager() *Manager {
	return &Manager{
		pickers: make(map[string]*Picker),
	}
}

// Create allocates a new picker instance from the configuration,
// applying defaults: empty categories means the whole catalog, an
// empty mode means popup.
func (m *Manager) Create(cfg Config) *Picker {
	if len(cfg.Categories) == 0 {
		cfg.Categories = registry.CategoryIDs()
	}
	if cfg.Mode == "" {
		cfg.Mode = ModePopup
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := fmt.Sprintf("token-picker-%d", m.seq)
	p := newPicker(id, cfg)
	m.pickers[id] = p
	return p
}

// Destroy removes the instance from the registry and marks it
// destroyed, so its pending commands become no-ops. Destroying an
// already-destroyed instance is a no-op.
func (m *Manager) Destroy(p *Picker) {
	if p == nil {
		return
	}
	m.mu.Lock()
	delete(m.pickers, p.id)
	m.mu.Unlock()
	p.destroy()
}

// Get returns the live instance with the given id.
func (m *Manager) Get(id string) (*Picker, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pickers[id]
	return p, ok
}

// Count returns the number of live instances.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pickers)
}
