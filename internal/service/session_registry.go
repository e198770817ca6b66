package service

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/upload-sink/models"
)

// SessionRegistry tracks the sessions currently being ingested. A session
// is added when ingestion starts and removed when it returns, whatever the
// outcome, so the in-memory record never outlives its HTTP exchange.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*models.UploadSession
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*models.UploadSession),
	}
}

// Add registers session under its ID.
func (r *SessionRegistry) Add(session *models.UploadSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return fmt.Errorf("%w: %s", ErrSessionAlreadyRegistered, session.ID)
	}
	r.sessions[session.ID] = session
	return nil
}

// Remove forgets the session with the given ID. Unknown IDs are ignored.
func (r *SessionRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

// Len returns the number of registered sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// Snapshot returns the progress of every registered session ordered by
// session ID.
func (r *SessionRegistry) Snapshot() []models.UploadProgress {
	r.mu.RLock()
	out := make([]models.UploadProgress, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.Snapshot())
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.UploadProgress) int {
		return strings.Compare(a.SessionID, b.SessionID)
	})
	return out
}
