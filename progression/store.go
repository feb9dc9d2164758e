package progression

import (
	"context"
	"fmt"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store persists progression per player.
type Store interface {
	Load(ctx context.Context, playerID string) (*State, error)
	Save(ctx context.Context, playerID string, state *State) error
}

type NotFoundError struct {
	PlayerID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Progression for player %s is not found", e.PlayerID)
}

type MemoryStore struct {
	mu     sync.Mutex
	states map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[string][]byte),
	}
}

func (m *MemoryStore) Load(ctx context.Context, playerID string) (*State, error) {
	m.mu.Lock()
	data, ok := m.states[playerID]
	m.mu.Unlock()
	if !ok {
		return nil, &NotFoundError{PlayerID: playerID}
	}
	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (m *MemoryStore) Save(ctx context.Context, playerID string, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.states[playerID] = data
	m.mu.Unlock()
	return nil
}
