package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"lms-admin-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// ParticipantLoader fetches participants from a backing store (e.g., Postgres).
type ParticipantLoader interface {
	LoadParticipants(ctx context.Context) ([]domain.Participant, error)
}

// ParticipantRepository caches participants with TTL to avoid repeated DB hits.
type ParticipantRepository struct {
	loader ParticipantLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cached    []domain.Participant
	expiresAt time.Time
}

func NewParticipantRepository(loader ParticipantLoader, ttl time.Duration) *ParticipantRepository {
	return &ParticipantRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *ParticipantRepository) List(ctx context.Context) ([]domain.Participant, error) {
	if ps, ok := r.fresh(r.clock()); ok {
		return ps, nil
	}

	result, err, _ := r.sf.Do("participants", func() (interface{}, error) {
		now := r.clock()
		if ps, ok := r.fresh(now); ok {
			return ps, nil
		}

		ps, err := r.loader.LoadParticipants(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cached = append([]domain.Participant{}, ps...)
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return ps, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]domain.Participant{}, result.([]domain.Participant)...), nil
}

func (r *ParticipantRepository) fresh(now time.Time) ([]domain.Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cached == nil || !r.expiresAt.After(now) {
		return nil, false
	}
	return append([]domain.Participant{}, r.cached...), true
}

// StaticParticipantLoader is a simple loader backed by a slice (useful for tests/demos).
type StaticParticipantLoader struct {
	participants []domain.Participant
}

func NewStaticParticipantLoader(ps []domain.Participant) *StaticParticipantLoader {
	return &StaticParticipantLoader{participants: ps}
}

func (l *StaticParticipantLoader) LoadParticipants(_ context.Context) ([]domain.Participant, error) {
	return append([]domain.Participant{}, l.participants...), nil
}

func (r *ParticipantRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
