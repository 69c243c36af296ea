package redis

import (
	"context"
	"sync"
	"time"

	"lms-admin-service/internal/app"

	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Edit sessions live in process so broadcasts stay local; Redis only carries a
// liveness marker per open course (course:session:{courseID}) so other
// instances and operators can see which courses are being edited.
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*app.EditSession
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		sessions: make(map[string]*app.EditSession),
	}
}

func (s *SessionStore) GetOrCreate(courseID string) *app.EditSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[courseID]
	if !ok {
		session = app.NewEditSession(courseID)
		s.sessions[courseID] = session
	}
	s.mark(courseID)
	return session
}

// Touch refreshes the liveness marker of a course held by this instance.
// The marker is recreated if it already expired.
func (s *SessionStore) Touch(courseID string) {
	s.mu.RLock()
	_, ok := s.sessions[courseID]
	s.mu.RUnlock()
	if ok {
		s.mark(courseID)
	}
}

func (s *SessionStore) mark(courseID string) {
	_ = s.client.Set(context.Background(), s.key(courseID), "1", s.ttl).Err()
}

func (s *SessionStore) Get(courseID string) (*app.EditSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[courseID]
	return session, ok
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
		_ = s.client.Del(context.Background(), s.key(courseID)).Err()
	}
}

// OpenCourses lists the courses any instance currently marks as open.
func (s *SessionStore) OpenCourses(ctx context.Context) ([]string, error) {
	var (
		ids    []string
		cursor uint64
	)
	prefix := s.key("")
	for {
		keys, next, err := s.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			ids = append(ids, k[len(prefix):])
		}
		if next == 0 {
			return ids, nil
		}
		cursor = next
	}
}

func (s *SessionStore) key(courseID string) string {
	return "course:session:" + courseID
}
