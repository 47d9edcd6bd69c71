package state

import (
	"sync"
	"time"

	"github.com/korjavin/nutrinudge/pkg/models"
)

// State represents the conversation state of a chat
type State string

const (
	// StateNormal is the normal state
	StateNormal State = "normal"
	// StateAwaitingDiet is the state after /diet was sent without a tag
	StateAwaitingDiet State = "awaiting_diet"
)

// DefaultTTL is how long a non-normal state survives without activity
const DefaultTTL = 10 * time.Minute

// ChatState represents the state of a chat
type ChatState struct {
	State     State
	Diet      models.DietTag
	Timestamp time.Time
}

// Manager manages chat states
type Manager struct {
	states map[int64]ChatState
	ttl    time.Duration
	now    func() time.Time
	mu     sync.Mutex
}

// New creates a new state manager
func New() *Manager {
	return &Manager{
		states: make(map[int64]ChatState),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
}

// get returns the chat state, expiring a stale conversation state but
// keeping the diet preference. Callers hold mu.
func (m *Manager) get(chatID int64) ChatState {
	cs, ok := m.states[chatID]
	if !ok {
		return ChatState{State: StateNormal, Diet: models.DietNone}
	}
	if cs.State != StateNormal && m.now().Sub(cs.Timestamp) > m.ttl {
		cs.State = StateNormal
		m.states[chatID] = cs
	}
	return cs
}

// SetState sets the state for a chat
func (m *Manager) SetState(chatID int64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cs := m.get(chatID)
	cs.State = state
	cs.Timestamp = m.now()
	m.states[chatID] = cs
}

// GetState gets the state for a chat
func (m *Manager) GetState(chatID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(chatID).State
}

// SetDiet stores the chat's dietary preference
func (m *Manager) SetDiet(chatID int64, diet models.DietTag) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cs := m.get(chatID)
	cs.Diet = diet
	cs.Timestamp = m.now()
	m.states[chatID] = cs
}

// Diet returns the chat's dietary preference, DietNone if unset
func (m *Manager) Diet(chatID int64) models.DietTag {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(chatID).Diet
}

// ClearState resets the conversation state but keeps the diet preference
func (m *Manager) ClearState(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cs, ok := m.states[chatID]; ok {
		cs.State = StateNormal
		m.states[chatID] = cs
	}
}
