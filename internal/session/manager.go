package session

import (
	"sync"

	"github.com/google/uuid"

	"solitaire/internal/engine"
)

// Manager manages the open tables.
type Manager struct {
	mu     sync.Mutex
	tables map[string]*Table
	config func() engine.GameConfig
}

// NewManager creates a manager. config is called once per deal; nil means
// a clock-seeded shuffle.
func NewManager(config func() engine.GameConfig) *Manager {
	if config == nil {
		config = engine.DefaultConfig
	}
	return &Manager{tables: make(map[string]*Table), config: config}
}

// Create deals a new table and returns it with the deal events.
func (m *Manager) Create() (*Table, []engine.Event) {
	t, events := NewTable(uuid.NewString(), m.config())

	m.mu.Lock()
	m.tables[t.ID] = t
	m.mu.Unlock()
	return t, events
}

// Get returns a table by ID.
func (m *Manager) Get(id string) *Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tables[id]
}

// Remove forgets a table.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tables, id)
}

// Redeal starts a new game on t with the manager's shuffle.
func (m *Manager) Redeal(t *Table) (Summary, []engine.Event) {
	return t.NewGame(m.config())
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tables)
}
