package memory

import (
	"context"
	"sync"

	"lms-admin-service/internal/app"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*app.EditSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*app.EditSession),
	}
}

func (s *SessionStore) GetOrCreate(courseID string) *app.EditSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[courseID]; ok {
		return session
	}
	session := app.NewEditSession(courseID)
	s.sessions[courseID] = session
	return session
}

func (s *SessionStore) Get(courseID string) (*app.EditSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[courseID]
	return session, ok
}

// Touch does nothing: sessions held in process never expire.
func (s *SessionStore) Touch(string) {}

// OpenCourses lists the courses that are open or still watched.
func (s *SessionStore) OpenCourses(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id, session := range s.sessions {
		if !session.IsIdle() {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *SessionStore) DeleteIfIdle(courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[courseID]
	if !ok {
		return
	}
	if session.IsIdle() {
		delete(s.sessions, courseID)
	}
}
