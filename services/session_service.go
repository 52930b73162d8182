// services/session_service.go - in-memory operator session registry
package services

import (
	"clanboard/models"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionService holds the live operator sessions. The lock guards the
// registry map only; a session's fields have a single mutator (the one
// operator driving it through request/response actions).
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewSessionService() *SessionService {
	return &SessionService{sessions: make(map[string]*models.Session)}
}

// Create opens a session for one clan with the credential that will sign
// every upstream call.
func (s *SessionService) Create(clanTag, apiToken string) *models.Session {
	sess := &models.Session{
		ID:        uuid.NewString(),
		ClanTag:   clanTag,
		APIToken:  apiToken,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session or nil when it is gone.
func (s *SessionService) Get(id string) *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Delete tears a session down. Deleting an unknown ID is a no-op.
func (s *SessionService) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
