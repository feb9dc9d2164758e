package game

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SessionStore saves whole sessions as plain JSON documents.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, sessionID string, state *Session) error
	Remove(ctx context.Context, sessionID string) error
}

type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("Session state for %s is not found", e.SessionID)
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session|%s", sessionID)
}

func encodeSession(state *Session) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to encode session %s", state.ID)
	}
	return data, nil
}

func decodeSession(sessionID string, data []byte) (*Session, error) {
	state := &Session{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, errors.Wrapf(err, "Unable to decode session %s", sessionID)
	}
	return state, nil
}
