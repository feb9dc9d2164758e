package game

import (
	"context"
	"sync"
)

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string][]byte),
	}
}

func (m *MemorySessionStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	m.mu.RLock()
	data, ok := m.sessions[sessionKey(sessionID)]
	m.mu.RUnlock()
	if !ok {
		return nil, &SessionNotFoundError{SessionID: sessionID}
	}
	return decodeSession(sessionID, data)
}

func (m *MemorySessionStore) Save(ctx context.Context, sessionID string, state *Session) error {
	data, err := encodeSession(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.sessions[sessionKey(sessionID)] = data
	m.mu.Unlock()
	return nil
}

// SaveRaw stores bytes as they are. Used to seed corrupted saves.
func (m *MemorySessionStore) SaveRaw(sessionID string, data []byte) {
	m.mu.Lock()
	m.sessions[sessionKey(sessionID)] = data
	m.mu.Unlock()
}

func (m *MemorySessionStore) Remove(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.sessions, sessionKey(sessionID))
	m.mu.Unlock()
	return nil
}
