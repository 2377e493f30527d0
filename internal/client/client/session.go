package client

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/dermasight/internal/filex"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

// Session is what the CLI remembers between runs.
type Session struct {
	AccessToken string       `json:"accessToken"`
	User        *models.User `json:"user,omitempty"`
}

// SessionStore persists the session of the signed-in user. Load returns a
// zero Session when nobody is signed in.
type SessionStore interface {
	Load() (Session, error)
	Save(s Session) error
	Clear() error
}

// FileSessionStore keeps the session as JSON in a single owner-only file.
type FileSessionStore struct {
	path string
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

func (f *FileSessionStore) Load() (Session, error) {
	var s Session
	data, err := filex.ReadOptional(f.path)
	if err != nil || len(data) == 0 {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("session file %s: %w", f.path, err)
	}
	return s, nil
}

func (f *FileSessionStore) Save(s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return filex.WritePrivate(f.path, data)
}

func (f *FileSessionStore) Clear() error {
	return filex.RemoveOptional(f.path)
}

// MemorySessionStore keeps the session for the lifetime of the process.
type MemorySessionStore struct {
	mu      sync.Mutex
	session Session
}

func (m *MemorySessionStore) Load() (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, nil
}

func (m *MemorySessionStore) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s
	return nil
}

func (m *MemorySessionStore) Clear() error {
	return m.Save(Session{})
}
